package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/definition"
	"github.com/at-ishikawa/wordbook/internal/message"
	"github.com/at-ishikawa/wordbook/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	setupLogger(cfg.Server.Debug)

	handler, err := newHandler(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newHandler() > %w", err)
	}

	srv := newHTTPServer(cfg.Server, handler)
	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info(fmt.Sprintf("Server running on port %d", cfg.Server.Port),
			slog.String("resourcePath", cfg.Server.ResourcePath),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.ListenAndServe() > %w", err)
	case <-ctx.Done():
	}

	slog.Default().Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown() > %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(os.Getenv("WORDBOOK_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}
	return cfg, nil
}

func newHandler(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	store := definition.NewMemoryStore()
	if cfg.Seed.File != "" {
		count, err := definition.LoadSeed(ctx, store, cfg.Seed.File)
		if err != nil {
			return nil, fmt.Errorf("definition.LoadSeed() > %w", err)
		}
		slog.Default().Info("Loaded seed definitions",
			slog.String("file", cfg.Seed.File),
			slog.Int("count", count),
		)
	}

	messages, err := message.New(cfg.Messages.Locale)
	if err != nil {
		return nil, fmt.Errorf("message.New() > %w", err)
	}

	dispatcher, err := server.NewDispatcher(store, messages,
		server.WithResourcePath(cfg.Server.ResourcePath),
		server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("server.NewDispatcher() > %w", err)
	}
	return dispatcher, nil
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: cfg.ReadTimeout(),
		ReadTimeout:       cfg.ReadTimeout(),
		WriteTimeout:      cfg.WriteTimeout(),
	}
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
