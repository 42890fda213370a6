package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockrender/pkg/cache"
	"github.com/matzehuels/blockrender/pkg/server"
)

// serveCommand runs the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
		co      cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve exposes the renderers over HTTP:

  GET  /renderers                 list renderers
  GET  /themes                    list built-in themes
  POST /render?renderer=&format=  render the posted document`,
		Example: `  blockrender serve --addr :8080
  blockrender serve --redis redis://localhost:6379/0
  curl --data-binary @program.yaml 'localhost:8080/render?renderer=zelos' > program.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, maxBody, co)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "largest accepted document in bytes")
	cmd.Flags().BoolVar(&co.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&co.redisURL, "redis", "", "cache artifacts in redis (redis://host:port/db)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, maxBody int64, co cacheOpts) error {
	runner, err := c.newRunner(ctx, co)
	if stderrors.Is(err, cache.ErrUnavailable) {
		c.ui.warn("Redis unavailable, using the file cache")
		co.redisURL = ""
		runner, err = c.newRunner(ctx, co)
	}
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Keyer = cache.NewScopedKeyer(runner.Keyer, "server:")

	backend := "file"
	switch {
	case co.noCache:
		backend = "none"
	case co.redisURL != "":
		backend = "redis"
	}
	c.ui.field("Address", addr)
	c.ui.field("Cache", backend)
	c.ui.field("Renderers", strings.Join(c.Registry.Names(), ", "))

	srv := server.New(runner, c.Logger, server.WithMaxBody(maxBody))
	err = srv.ListenAndServe(ctx, addr)
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
