package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "svw.info/sudoku-game/internal/adapters/http"
	"svw.info/sudoku-game/internal/config"
	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/generator"
	"svw.info/sudoku-game/internal/hint"
	"svw.info/sudoku-game/internal/infrastructure/storage"
	"svw.info/sudoku-game/internal/usecase"
	"svw.info/sudoku-game/internal/verify"
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
	persist := flag.String("persist-path", "", "puzzle save directory (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	diffStr := flag.String("difficulty", "", "easy|medium|hard|expert (overrides config)")
	removed := flag.Int("removed", 0, "cells to blank per puzzle, 0-81 (overrides difficulty)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.PersistDir = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *diffStr != "" {
		cfg.Difficulty = *diffStr
	}
	if *removed != 0 {
		cfg.Removed = *removed
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(cfg.PersistDir, 0o755)

	defaultRemoved := cfg.Removed
	if defaultRemoved == 0 {
		defaultRemoved = domain.ParseDifficulty(strings.ToLower(cfg.Difficulty)).Removed()
	}
	defaultRemoved = generator.ClampRemoved(defaultRemoved)

	// Wire providers → use cases → HTTP adapter
	g := generator.NewRandom()
	v := verify.New()
	st := storage.NewFS(cfg.PersistDir)
	hin := hint.NewSingles()
	uc := usecase.NewService(g, v, hin, st)
	h := httpadapter.New(uc, defaultRemoved)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistDir, "removed", defaultRemoved)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
