package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/matzehuels/blockrender/pkg/cache"
)

func TestCacheDirXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only applies on linux")
	}
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cache.DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("DefaultDir() = %q, want %q", dir, want)
	}
}

func TestClearCache(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if err := clearCache(newConsole(io.Discard), dir); err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entry survived clearCache")
	}
}

func TestClearCacheMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	if err := clearCache(newConsole(io.Discard), dir); err != nil {
		t.Fatalf("clearCache() error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("clearCache should not create a missing directory")
	}
}

func TestNewCacheBackends(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	ctx := context.Background()

	nc, err := c.newCache(ctx, cacheOpts{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := nc.(*cache.NullCache); !ok {
		t.Errorf("noCache gave %T, want *cache.NullCache", nc)
	}

	dir := t.TempDir()
	fc, err := c.newCache(ctx, cacheOpts{dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := fc.(*cache.FileCache); !ok || f.Dir() != dir {
		t.Errorf("dir gave %T, want *cache.FileCache at %s", fc, dir)
	}

	if _, err := c.newCache(ctx, cacheOpts{redisURL: "not a url"}); err == nil {
		t.Error("bad redis url should fail")
	}
}
