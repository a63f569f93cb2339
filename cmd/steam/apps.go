package main

import (
	"github.com/spf13/cobra"
	"steamapi.xdoubleu.com/pkg/steam"
)

//nolint:exhaustruct,funlen //other fields are optional
func (app *Application) appCommands() []*cobra.Command {
	var newsCount, newsMaxLength int
	newsCmd := &cobra.Command{
		Use:   "news <appid>",
		Short: "Show the latest news of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			news, err := app.client.GetNewsForApp(
				cmd.Context(),
				appID,
				newsCount,
				newsMaxLength,
			)
			if err != nil {
				return err
			}

			return app.print(news)
		},
	}
	newsCmd.Flags().IntVar(&newsCount, "count", steam.DefaultNewsCount,
		"Number of news items")
	newsCmd.Flags().IntVar(&newsMaxLength, "max-length", steam.DefaultNewsMaxLength,
		"Maximum length of each news item")

	percentagesCmd := &cobra.Command{
		Use:   "achievement-percentages <appid>",
		Short: "Show the global unlock rate of every achievement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			percentages, err := app.client.GetGlobalAchievementPercentagesForApp(
				cmd.Context(),
				appID,
			)
			if err != nil {
				return err
			}

			return app.print(percentages)
		},
	}

	var statsDays int
	globalStatsCmd := &cobra.Command{
		Use:   "global-stats <appid> <name>...",
		Short: "Show aggregated stats of a game",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd //no magic number
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			stats, err := app.client.GetGlobalStatsForGame(
				cmd.Context(),
				appID,
				statsDays,
				args[1:],
			)
			if err != nil {
				return err
			}

			return app.print(stats)
		},
	}
	globalStatsCmd.Flags().IntVar(&statsDays, "count", 1,
		"Number of days to aggregate")

	schemaCmd := &cobra.Command{
		Use:   "schema <appid>",
		Short: "Show the achievements and stats a game defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			schema, err := app.client.GetSchemaForGame(cmd.Context(), appID)
			if err != nil {
				return err
			}

			return app.print(schema)
		},
	}

	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "List every app on Steam",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apps, err := app.client.GetAppList(cmd.Context())
			if err != nil {
				return err
			}

			return app.print(apps)
		},
	}

	appInfoCmd := &cobra.Command{
		Use:   "app-info <appid>",
		Short: "Show the store page details of an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			info, err := app.client.GetAppInfo(cmd.Context(), appID)
			if err != nil {
				return err
			}

			return app.print(info)
		},
	}

	playersCmd := &cobra.Command{
		Use:   "players <appid>",
		Short: "Show the number of players currently in game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[0])
			if err != nil {
				return err
			}

			players, err := app.client.GetNumberOfCurrentPlayers(cmd.Context(), appID)
			if err != nil {
				return err
			}

			return app.print(players)
		},
	}

	var serverLimit int
	serversCmd := &cobra.Command{
		Use:     "servers <filter>",
		Short:   "List game servers matching a master server filter",
		Example: `  steam servers '\appid\440\dedicated\1' --limit 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			servers, err := app.client.GetServerList(cmd.Context(), args[0], serverLimit)
			if err != nil {
				return err
			}

			return app.print(servers)
		},
	}
	serversCmd.Flags().IntVar(&serverLimit, "limit", 0,
		"Maximum number of servers, 0 for the upstream default")

	return []*cobra.Command{
		newsCmd,
		percentagesCmd,
		globalStatsCmd,
		schemaCmd,
		appsCmd,
		appInfoCmd,
		playersCmd,
		serversCmd,
	}
}
