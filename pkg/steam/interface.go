package steam

import "context"

// Client is safe for concurrent use. Methods that take an id accept both
// vanity names and 64-bit SteamIDs unless stated otherwise.
type Client interface {
	ResolveID(ctx context.Context, id string) (string, error)

	GetNewsForApp(
		ctx context.Context,
		appID int,
		count int,
		maxLength int,
	) ([]NewsItem, error)
	GetGlobalAchievementPercentagesForApp(
		ctx context.Context,
		appID int,
	) ([]GlobalAchievement, error)
	GetGlobalStatsForGame(
		ctx context.Context,
		appID int,
		count int,
		names []string,
	) (map[string]GlobalStat, error)

	GetPlayerSummary(ctx context.Context, id string) (*PlayerSummary, error)
	GetPlayersSummary(ctx context.Context, ids []string) ([]PlayerSummary, error)
	GetOwnedGames(
		ctx context.Context,
		id string,
		includeFreeGames bool,
		includeAppInfo bool,
	) ([]OwnedGame, error)
	GetRecentlyPlayedGames(ctx context.Context, id string) ([]PlayedGame, error)
	GetPlayerBans(ctx context.Context, id string) (*PlayerBans, error)
	GetPlayerAchievements(
		ctx context.Context,
		id string,
		appID int,
		onlyAchieved bool,
	) ([]Achievement, error)
	GetUserStatsForGame(ctx context.Context, id string, appID int) ([]UserStat, error)
	GetFriendList(ctx context.Context, id string) ([]Friend, error)
	GetUserLevel(ctx context.Context, id string) (int, error)
	IsPlayingSharedGame(ctx context.Context, id string, appID int) (string, error)
	GetUserBadges(ctx context.Context, id string) ([]UserBadge, error)

	GetSchemaForGame(ctx context.Context, appID int) (*GameSchema, error)
	GetAppList(ctx context.Context) ([]App, error)
	GetAppInfo(ctx context.Context, appID int) (*AppInfo, error)
	GetNumberOfCurrentPlayers(ctx context.Context, appID int) (*AppPlayers, error)
	GetServerList(ctx context.Context, filter string, limit int) ([]Server, error)
}
