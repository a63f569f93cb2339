package mocks

import (
	"context"
	"time"

	"steamapi.xdoubleu.com/pkg/steam"
)

const (
	MockVanity         = "mockuser"
	MockSteamID        = "76561198000000001"
	MockPrivateSteamID = "76561198000000002"
	MockAppID          = 440
)

// MockSteamClient serves fixed data. MockVanity resolves to MockSteamID,
// MockPrivateSteamID behaves like a private profile and any other
// non-canonical id is unknown.
type MockSteamClient struct {
}

func NewMockSteamClient() steam.Client {
	return MockSteamClient{}
}

func accessDenied() error {
	return &steam.Error{
		Kind:    steam.KindAccessDenied,
		Message: "Profile not found or private",
	}
}

func (client MockSteamClient) ResolveID(_ context.Context, id string) (string, error) {
	switch {
	case id == "":
		return "", &steam.Error{Kind: steam.KindInvalidArgument, Message: "ID not provided."}
	case steam.IsSteamID64(id):
		return id, nil
	case id == MockVanity:
		return MockSteamID, nil
	default:
		return "", &steam.Error{Kind: steam.KindNotFound, Message: "ID not found."}
	}
}

func (client MockSteamClient) GetNewsForApp(
	_ context.Context,
	appID int,
	count int,
	_ int,
) ([]steam.NewsItem, error) {
	if count < 1 {
		count = steam.DefaultNewsCount
	}

	news := []steam.NewsItem{}
	for i := range count {
		//nolint:exhaustruct //skip
		news = append(news, steam.NewsItem{
			Title: "test",
			AppID: appID,
			Date:  time.Now().UTC().Add(-time.Duration(i) * time.Hour).Unix(),
		})
	}

	return news, nil
}

func (client MockSteamClient) GetGlobalAchievementPercentagesForApp(
	_ context.Context,
	_ int,
) ([]steam.GlobalAchievement, error) {
	return []steam.GlobalAchievement{
		{Name: "TEST", Percent: "50.5"},
	}, nil
}

func (client MockSteamClient) GetGlobalStatsForGame(
	_ context.Context,
	_ int,
	_ int,
	names []string,
) (map[string]steam.GlobalStat, error) {
	stats := map[string]steam.GlobalStat{}
	for _, name := range names {
		stats[name] = steam.GlobalStat{Total: "1000"}
	}

	return stats, nil
}

func (client MockSteamClient) GetPlayerSummary(
	ctx context.Context,
	id string,
) (*steam.PlayerSummary, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries, err := client.GetPlayersSummary(ctx, []string{steamID})
	if err != nil {
		return nil, err
	}

	return &summaries[0], nil
}

func (client MockSteamClient) GetPlayersSummary(
	_ context.Context,
	ids []string,
) ([]steam.PlayerSummary, error) {
	summaries := []steam.PlayerSummary{}
	for _, id := range ids {
		//nolint:exhaustruct //skip
		summaries = append(summaries, steam.PlayerSummary{
			SteamID:     id,
			PersonaName: "test",
		})
	}

	return summaries, nil
}

func (client MockSteamClient) GetOwnedGames(
	ctx context.Context,
	id string,
	_ bool,
	_ bool,
) ([]steam.OwnedGame, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if steamID == MockPrivateSteamID {
		return nil, nil
	}

	//nolint:exhaustruct //skip
	return []steam.OwnedGame{
		{
			AppID:                    MockAppID,
			Name:                     "test",
			PlaytimeForever:          60,
			HasCommunityVisibleStats: true,
		},
	}, nil
}

func (client MockSteamClient) GetRecentlyPlayedGames(
	ctx context.Context,
	id string,
) ([]steam.PlayedGame, error) {
	games, err := client.GetOwnedGames(ctx, id, true, true)
	if err != nil {
		return nil, err
	}

	played := []steam.PlayedGame{}
	for _, game := range games {
		//nolint:exhaustruct //skip
		played = append(played, steam.PlayedGame{OwnedGame: game, Playtime2Weeks: 10})
	}

	return played, nil
}

func (client MockSteamClient) GetPlayerBans(
	ctx context.Context,
	id string,
) (*steam.PlayerBans, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	//nolint:exhaustruct //skip
	return &steam.PlayerBans{SteamID: steamID, EconomyBan: "none"}, nil
}

func (client MockSteamClient) GetPlayerAchievements(
	ctx context.Context,
	id string,
	_ int,
	onlyAchieved bool,
) ([]steam.Achievement, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if steamID == MockPrivateSteamID {
		return nil, accessDenied()
	}

	achievements := []steam.Achievement{
		{
			APIName:     "TEST",
			Achieved:    1,
			UnlockTime:  time.Now().UTC().Unix(),
			Name:        "test",
			Description: "Hello, World!",
		},
	}

	if !onlyAchieved {
		//nolint:exhaustruct //skip
		achievements = append(achievements, steam.Achievement{APIName: "LOCKED"})
	}

	return achievements, nil
}

func (client MockSteamClient) GetUserStatsForGame(
	ctx context.Context,
	id string,
	_ int,
) ([]steam.UserStat, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if steamID == MockPrivateSteamID {
		return nil, accessDenied()
	}

	return []steam.UserStat{{Name: "test", Value: "1"}}, nil
}

func (client MockSteamClient) GetFriendList(
	ctx context.Context,
	id string,
) ([]steam.Friend, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if steamID == MockPrivateSteamID {
		return nil, accessDenied()
	}

	return []steam.Friend{
		{SteamID: MockPrivateSteamID, Relationship: "friend", FriendSince: 0},
	}, nil
}

func (client MockSteamClient) GetUserLevel(
	ctx context.Context,
	id string,
) (int, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return 0, err
	}

	if steamID == MockPrivateSteamID {
		return steam.UnknownUserLevel, nil
	}

	//nolint:mnd //no magic number
	return 10, nil
}

func (client MockSteamClient) IsPlayingSharedGame(
	ctx context.Context,
	id string,
	_ int,
) (string, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return "", err
	}

	if steamID == MockPrivateSteamID {
		return "", accessDenied()
	}

	return "0", nil
}

func (client MockSteamClient) GetUserBadges(
	ctx context.Context,
	id string,
) ([]steam.UserBadge, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if steamID == MockPrivateSteamID {
		return nil, accessDenied()
	}

	//nolint:exhaustruct //skip
	return []steam.UserBadge{{BadgeID: 1, Level: 1}}, nil
}

func (client MockSteamClient) GetSchemaForGame(
	_ context.Context,
	_ int,
) (*steam.GameSchema, error) {
	//nolint:exhaustruct //skip
	return &steam.GameSchema{GameName: "test"}, nil
}

func (client MockSteamClient) GetAppList(_ context.Context) ([]steam.App, error) {
	return []steam.App{{AppID: MockAppID, Name: "test"}}, nil
}

func (client MockSteamClient) GetAppInfo(
	_ context.Context,
	appID int,
) (*steam.AppInfo, error) {
	if appID != MockAppID {
		return nil, &steam.Error{Kind: steam.KindNotFound, Message: "App not found."}
	}

	return &steam.AppInfo{
		Success: true,
		//nolint:exhaustruct //skip
		Data: &steam.AppData{Name: "test", SteamAppID: appID},
	}, nil
}

func (client MockSteamClient) GetNumberOfCurrentPlayers(
	_ context.Context,
	_ int,
) (*steam.AppPlayers, error) {
	//nolint:mnd //no magic number
	return &steam.AppPlayers{PlayerCount: 100, Result: 1}, nil
}

func (client MockSteamClient) GetServerList(
	_ context.Context,
	_ string,
	limit int,
) ([]steam.Server, error) {
	if limit < 1 {
		limit = 1
	}

	servers := []steam.Server{}
	for range limit {
		//nolint:exhaustruct //skip
		servers = append(servers, steam.Server{Name: "test", AppID: MockAppID})
	}

	return servers, nil
}
