package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	httpadapter "github.com/fuzzyray/sudoku-solver/internal/adapters/http"
	"github.com/fuzzyray/sudoku-solver/internal/config"
	"github.com/fuzzyray/sudoku-solver/internal/solver"
	"github.com/fuzzyray/sudoku-solver/internal/usecase"
	"github.com/fuzzyray/sudoku-solver/internal/validator"
	"github.com/fuzzyray/sudoku-solver/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			slog.Error("load config", "path", *cfgPath, "err", err)
			os.Exit(1)
		}
		cfg = c
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))

	// Wire core → use cases → HTTP adapter. The solver and checker are
	// stateless; every request parses its own board.
	uc := usecase.NewService(solver.New(), validator.New())
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(web.StaticFS()))
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "tls", cfg.TLSEnabled())
	var err error
	if cfg.TLSEnabled() {
		err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
	} else {
		err = srv.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
