// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /renderers                   registered renderers and descriptions
//	GET  /themes                      built-in theme names
//	POST /render?renderer=&format=    render the request body
//
// The request body of /render is a workspace document. Its format comes from
// the "input" query parameter, or else from the Content-Type header, and
// defaults to YAML. Other query parameters: theme, rtl, flow, scale,
// background, notext and refresh.
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with the error code, message and request id, and map to HTTP statuses via
// [errors.HTTPStatus].
package server

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/blockrender/pkg/errors"
	docio "github.com/matzehuels/blockrender/pkg/io"
	"github.com/matzehuels/blockrender/pkg/pipeline"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// DefaultMaxBody bounds the size of a posted document.
const DefaultMaxBody = 4 << 20

// RequestIDHeader carries the request id on every response.
const RequestIDHeader = "X-Request-ID"

var contentTypes = map[string]string{
	pipeline.FormatSVG:       "image/svg+xml",
	pipeline.FormatPNG:       "image/png",
	pipeline.FormatJSON:      "application/json",
	pipeline.FormatDOT:       "text/vnd.graphviz",
	pipeline.FormatStructure: "image/svg+xml",
}

// Server handles render requests with a shared pipeline runner.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	maxBody int64
}

// Option configures a [Server].
type Option func(*Server)

// WithMaxBody overrides DefaultMaxBody.
func WithMaxBody(n int64) Option { return func(s *Server) { s.maxBody = n } }

// New creates a server around runner. A nil logger uses the runner's.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{runner: runner, logger: logger, maxBody: DefaultMaxBody}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router serving every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/renderers", s.handleRenderers)
	r.Get("/themes", s.handleThemes)
	r.Post("/render", s.handleRender)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type rendererInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

func (s *Server) handleRenderers(w http.ResponseWriter, r *http.Request) {
	reg := s.runner.Registry
	var out []rendererInfo
	for _, name := range reg.Names() {
		desc, _ := reg.Describe(name)
		out = append(out, rendererInfo{Name: name, Description: desc, Default: name == pipeline.DefaultRenderer})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theme.Names())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document"))
		return
	}
	opts.Document = body
	opts.Logger = loggerFrom(r.Context(), s.logger)

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("ETag", strconv.Quote(res.DocHash))
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// renderOptions reads the query string and headers of a render request.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Renderer:   q.Get("renderer"),
		Theme:      q.Get("theme"),
		Flow:       queryBool(q.Get("flow")),
		RTL:        queryBool(q.Get("rtl")),
		Background: queryBool(q.Get("background")),
		NoText:     queryBool(q.Get("notext")),
		Refresh:    queryBool(q.Get("refresh")),
	}

	if filepath.Ext(opts.Theme) != "" {
		return opts, errors.New(errors.ErrCodeUnknownTheme, "theme files are not served, use one of %v", theme.Names())
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}

	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
		opts.Scale = scale
	}

	opts.DocumentFormat = q.Get("input")
	if opts.DocumentFormat == "" {
		opts.DocumentFormat = formatFromContentType(r.Header.Get("Content-Type"))
	}
	return opts, nil
}

func formatFromContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return docio.FormatYAML
	}
	switch mt {
	case "application/json":
		return docio.FormatJSON
	case "application/toml":
		return docio.FormatTOML
	default:
		return docio.FormatYAML
	}
}

func queryBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		loggerFrom(r.Context(), s.logger).Error("render failed", "err", err)
	}
	writeJSON(w, status, errorBody{
		Code:      string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
