package main

import (
	"context"

	"github.com/spf13/cobra"
)

//nolint:exhaustruct,funlen //other fields are optional
func (app *Application) userCommands() []*cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve a vanity name to a SteamID64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steamID, err := app.client.ResolveID(cmd.Context(), normalizeID(args[0]))
			if err != nil {
				return err
			}

			return app.print(map[string]string{"steamid": steamID})
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary <id>...",
		Short: "Show player summaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				summary, err := app.client.GetPlayerSummary(
					cmd.Context(),
					normalizeID(args[0]),
				)
				if err != nil {
					return err
				}

				return app.print(summary)
			}

			steamIDs, err := app.resolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			summaries, err := app.client.GetPlayersSummary(cmd.Context(), steamIDs)
			if err != nil {
				return err
			}

			return app.print(summaries)
		},
	}

	var includeFreeGames, includeAppInfo bool
	ownedGamesCmd := &cobra.Command{
		Use:   "owned-games <id>",
		Short: "List the games a player owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := app.client.GetOwnedGames(
				cmd.Context(),
				normalizeID(args[0]),
				includeFreeGames,
				includeAppInfo,
			)
			if err != nil {
				return err
			}

			return app.print(games)
		},
	}
	ownedGamesCmd.Flags().BoolVar(&includeFreeGames, "free", false,
		"Include free games the player has played")
	ownedGamesCmd.Flags().BoolVar(&includeAppInfo, "app-info", true,
		"Include names and icons")

	recentGamesCmd := &cobra.Command{
		Use:   "recent-games <id>",
		Short: "List the games played in the last two weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := app.client.GetRecentlyPlayedGames(
				cmd.Context(),
				normalizeID(args[0]),
			)
			if err != nil {
				return err
			}

			return app.print(games)
		},
	}

	bansCmd := &cobra.Command{
		Use:   "bans <id>...",
		Short: "Show VAC, game, community and trade bans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bans, err := fanOut(
				cmd.Context(),
				app.logger,
				app.config.Workers,
				normalizeIDs(args),
				app.client.GetPlayerBans,
			)
			if err != nil {
				return err
			}

			if len(bans) == 1 {
				return app.print(bans[0])
			}

			return app.print(bans)
		},
	}

	var onlyAchieved bool
	achievementsCmd := &cobra.Command{
		Use:   "achievements <id> <appid>",
		Short: "List a player's achievements for a game",
		Args:  cobra.ExactArgs(2), //nolint:mnd //no magic number
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[1])
			if err != nil {
				return err
			}

			achievements, err := app.client.GetPlayerAchievements(
				cmd.Context(),
				normalizeID(args[0]),
				appID,
				onlyAchieved,
			)
			if err != nil {
				return err
			}

			return app.print(achievements)
		},
	}
	achievementsCmd.Flags().BoolVar(&onlyAchieved, "only-achieved", false,
		"Leave out locked achievements")

	statsCmd := &cobra.Command{
		Use:   "stats <id> <appid>",
		Short: "List a player's stats for a game",
		Args:  cobra.ExactArgs(2), //nolint:mnd //no magic number
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[1])
			if err != nil {
				return err
			}

			stats, err := app.client.GetUserStatsForGame(
				cmd.Context(),
				normalizeID(args[0]),
				appID,
			)
			if err != nil {
				return err
			}

			return app.print(stats)
		},
	}

	friendsCmd := &cobra.Command{
		Use:   "friends <id>",
		Short: "List a player's friends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			friends, err := app.client.GetFriendList(cmd.Context(), normalizeID(args[0]))
			if err != nil {
				return err
			}

			return app.print(friends)
		},
	}

	levelCmd := &cobra.Command{
		Use:   "level <id>",
		Short: "Show a player's Steam level, -1 when hidden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := app.client.GetUserLevel(cmd.Context(), normalizeID(args[0]))
			if err != nil {
				return err
			}

			return app.print(map[string]int{"level": level})
		},
	}

	sharedGameCmd := &cobra.Command{
		Use:   "shared-game <id> <appid>",
		Short: "Show who lent the game a player is playing",
		Args:  cobra.ExactArgs(2), //nolint:mnd //no magic number
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseAppID(args[1])
			if err != nil {
				return err
			}

			lender, err := app.client.IsPlayingSharedGame(
				cmd.Context(),
				normalizeID(args[0]),
				appID,
			)
			if err != nil {
				return err
			}

			return app.print(map[string]string{"lender_steamid": lender})
		},
	}

	badgesCmd := &cobra.Command{
		Use:   "badges <id>",
		Short: "List a player's badges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			badges, err := app.client.GetUserBadges(cmd.Context(), normalizeID(args[0]))
			if err != nil {
				return err
			}

			return app.print(badges)
		},
	}

	return []*cobra.Command{
		resolveCmd,
		summaryCmd,
		ownedGamesCmd,
		recentGamesCmd,
		bansCmd,
		achievementsCmd,
		statsCmd,
		friendsCmd,
		levelCmd,
		sharedGameCmd,
		badgesCmd,
	}
}

func normalizeIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized = append(normalized, normalizeID(id))
	}

	return normalized
}

func (app *Application) resolveAll(ctx context.Context, ids []string) ([]string, error) {
	return fanOut(
		ctx,
		app.logger,
		app.config.Workers,
		normalizeIDs(ids),
		func(ctx context.Context, id string) (string, error) {
			return app.client.ResolveID(ctx, id)
		},
	)
}
