package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"sync"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/spf13/cobra"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"steamapi.xdoubleu.com/internal/config"
	"steamapi.xdoubleu.com/pkg/steam"
)

type Application struct {
	logger    *slog.Logger
	config    config.Config
	client    steam.Client
	newClient func() (steam.Client, error)
	out       io.Writer
}

// NewApplication uses client when it is set, otherwise newClient is called
// before the first command that talks to Steam.
func NewApplication(
	logger *slog.Logger,
	config config.Config,
	client steam.Client,
	out io.Writer,
) *Application {
	//nolint:exhaustruct //newClient is optional
	return &Application{
		logger: logger,
		config: config,
		client: client,
		out:    out,
	}
}

func (app *Application) Commands() *cobra.Command {
	//nolint:exhaustruct //other fields are optional
	rootCmd := &cobra.Command{
		Use:   "steam",
		Short: "Query the Steam Web API",
		Long: "steam - query players, games and servers through the Steam Web API.\n" +
			"Ids can be vanity names, SteamID64s or any other SteamID notation.",
		SilenceUsage:      true,
		PersistentPreRunE: app.connect,
	}

	rootCmd.AddCommand(app.userCommands()...)
	rootCmd.AddCommand(app.appCommands()...)
	rootCmd.AddCommand(app.versionCommand())

	return rootCmd
}

func (app *Application) connect(_ *cobra.Command, _ []string) error {
	if app.client != nil {
		return nil
	}

	if app.newClient == nil {
		return steam.ErrAPIKeyMissing
	}

	client, err := app.newClient()
	if err != nil {
		return err
	}

	app.client = client
	return nil
}

func (app *Application) versionCommand() *cobra.Command {
	//nolint:exhaustruct //other fields are optional
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// no client is needed
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.print(map[string]string{
				"version": BuildVersion,
				"commit":  BuildCommit,
				"built":   BuildDate,
				"runtime": BuildGoVersion,
			})
		},
	}
}

func (app *Application) print(v any) error {
	encoder := json.NewEncoder(app.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

//nolint:gochecknoglobals //compiled once
var steamNotationPattern = regexp.MustCompile(
	`^(STEAM_[0-5]:[01]:[0-9]+|\[U:1:[0-9]+\])$`,
)

// normalizeID rewrites Steam2 and Steam3 ids to a SteamID64. Anything else,
// numeric vanity names included, is passed on untouched.
func normalizeID(id string) string {
	if !steamNotationPattern.MatchString(id) {
		return id
	}

	parsed := steamid.New(id)
	if !parsed.Valid() {
		return id
	}

	return parsed.String()
}

func parseAppID(value string) (int, error) {
	appID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid app id %q", value)
	}

	return appID, nil
}

// fanOut calls fn for every id on a worker pool and keeps the results in
// the order of ids. The first error wins.
func fanOut[T any](
	ctx context.Context,
	logger *slog.Logger,
	workers int,
	ids []string,
	fn func(ctx context.Context, id string) (T, error),
) ([]T, error) {
	results := make([]T, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	if workers < 1 {
		workers = 1
	}

	workerPool := threading.NewWorkerPool(logger, min(workers, len(ids)), len(ids))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	// the pool can report idle before a dequeued job has started
	wg.Add(len(ids))

	for i, id := range ids {
		workerPool.EnqueueWork(func(_ context.Context, _ *slog.Logger) error {
			defer wg.Done()

			result, err := fn(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", id, err)
				}
				return err
			}

			results[i] = result
			return nil
		})
	}

	workerPool.WaitUntilDone()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}
