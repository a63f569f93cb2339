package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"steamapi.xdoubleu.com/internal/config"
	"steamapi.xdoubleu.com/pkg/steam"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
)

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	level := slog.LevelInfo
	if cfg.Env == configtools.DevEnv {
		level = slog.LevelDebug
	}

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(cfg.SentryDsn) > 0 {
		//nolint:exhaustruct //other fields are optional
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDsn,
			Environment:      cfg.Env,
			Release:          cfg.Release,
			EnableTracing:    true,
			TracesSampleRate: cfg.SampleRate,
			SampleRate:       cfg.SampleRate,
		})
		if err != nil {
			logger.Error("failed to init sentry", logging.ErrAttr(err))
		}
		defer sentry.Flush(2 * time.Second) //nolint:mnd //no magic number
	}

	app := NewApplication(logger, cfg, nil, os.Stdout)
	app.newClient = func() (steam.Client, error) {
		return steam.New(
			logger,
			cfg.SteamAPIKey,
			steam.WithBaseURL(cfg.SteamBaseURL),
			steam.WithStorefrontURL(cfg.SteamStorefrontURL),
			//nolint:exhaustruct //other fields are optional
			steam.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
		)
	}

	if err := fang.Execute(context.Background(), app.Commands()); err != nil {
		sentry.Flush(2 * time.Second) //nolint:mnd //no magic number
		os.Exit(1)
	}
}
