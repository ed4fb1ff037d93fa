package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Bundle files expected in the dist directory.
const (
	WasmFile     = "main.wasm"
	WasmExecFile = "wasm_exec.js"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Split-It</title>
<script src="/` + WasmExecFile + `"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("/` + WasmFile + `"), go.importObject)
	.then((result) => go.run(result.instance));
</script>
</head>
<body>
<div id="app">{{.View}}</div>
</body>
</html>
`))

// Server serves the app shell, the wasm bundle and a health check.
type Server struct {
	cfg    Config
	log    zerolog.Logger
	router chi.Router
}

// New wires the routes. The config is validated first.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Server{cfg: cfg, log: log}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleShell)
	r.Get("/health", s.handleHealth)
	r.Get("/"+WasmFile, s.handleDistFile(WasmFile, "application/wasm"))
	r.Get("/"+WasmExecFile, s.handleDistFile(WasmExecFile, "text/javascript; charset=utf-8"))

	s.router = r
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Str("dist", s.cfg.DistDir).Msg("server starting")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	var view bytes.Buffer
	if err := Prerender(&view); err != nil {
		s.log.Error().Err(err).Msg("prerender failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	if err := shellTemplate.Execute(&page, struct{ View template.HTML }{
		View: template.HTML(view.String()),
	}); err != nil {
		s.log.Error().Err(err).Msg("shell template failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(page.Bytes())
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{Status: "healthy"}); err != nil {
		s.log.Error().Err(err).Msg("encode health response")
	}
}

// handleDistFile serves one fixed file from the dist directory.
func (s *Server) handleDistFile(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.cfg.DistDir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			s.log.Warn().Str("file", path).Msg("bundle file missing")
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, path)
	}
}
