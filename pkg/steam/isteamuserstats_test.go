package steam_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"steamapi.xdoubleu.com/pkg/steam"
)

func TestGetGlobalAchievementPercentagesForApp(t *testing.T) {
	client, fake := newTestClient(t, map[string]response{
		"ISteamUserStats/GetGlobalAchievementPercentagesForApp/v0002": ok(
			`{"achievementpercentages":{"achievements":[
				{"name":"COLLECT_100_WOOD","percent":"91.5"},
				{"name":"KILL_BEAR","percent":12.25}
			]}}`,
		),
	})

	achievements, err := client.GetGlobalAchievementPercentagesForApp(
		context.Background(),
		testAppID,
	)
	assert.Nil(t, err)
	require.Len(t, achievements, 2)
	assert.Equal(t, "91.5", achievements[0].Percent.String())
	assert.Equal(t, "12.25", achievements[1].Percent.String())
	assert.Equal(t, "252490", fake.LastQuery(t).Get("gameid"))
}

func TestGetGlobalAchievementPercentagesForAppNotFound(t *testing.T) {
	for _, body := range []string{`{}`, `{"achievementpercentages":{}}`} {
		client, _ := newTestClient(t, map[string]response{
			"ISteamUserStats/GetGlobalAchievementPercentagesForApp/v0002": ok(body),
		})

		_, err := client.GetGlobalAchievementPercentagesForApp(
			context.Background(),
			74545454687846,
		)
		assert.ErrorIs(t, err, steam.ErrNotFound)
		assert.Equal(t, "Game not found.", err.Error())
	}
}

func TestGetGlobalStatsForGame(t *testing.T) {
	client, fake := newTestClient(t, map[string]response{
		"ISteamUserStats/GetGlobalStatsForGame/v0001": ok(`{"response":{
			"globalstats":{"bullet_fired":{"total":"1234567"},"arrow_fired":{"total":42}},
			"result":1
		}}`),
	})

	stats, err := client.GetGlobalStatsForGame(
		context.Background(),
		testAppID,
		1,
		[]string{"bullet_fired", "arrow_fired"},
	)
	assert.Nil(t, err)
	assert.Equal(t, "1234567", stats["bullet_fired"].Total.String())
	assert.Equal(t, "42", stats["arrow_fired"].Total.String())

	query := fake.LastQuery(t)
	assert.Equal(t, "252490", query.Get("appid"))
	assert.Equal(t, "1", query.Get("count"))
	assert.Equal(t, "bullet_fired", query.Get("name[0]"))
	assert.Equal(t, "arrow_fired", query.Get("name[1]"))
	assert.False(t, query.Has("name[2]"))
}

func TestGetGlobalStatsForGameInvalidArguments(t *testing.T) {
	tests := []struct {
		appID   int
		count   int
		names   []string
		message string
	}{
		{0, 0, nil, "AppID not provided."},
		{74545454687846, 0, nil, "Count must be larger than 1"},
		{testAppID, -3, []string{"bullet_fired"}, "Count must be larger than 1"},
		{74545454687846, 1, nil, "You must provide an array of achievement names."},
		{testAppID, 1, []string{}, "You must provide an array of achievement names."},
	}

	client, fake := newTestClient(t, map[string]response{})

	for _, tt := range tests {
		_, err := client.GetGlobalStatsForGame(
			context.Background(),
			tt.appID,
			tt.count,
			tt.names,
		)
		assert.ErrorIs(t, err, steam.ErrInvalidArgument)
		assert.Equal(t, tt.message, err.Error())
	}

	assert.Empty(t, fake.Requests())
}

func TestGetGlobalStatsForGameNotFound(t *testing.T) {
	bodies := []string{
		`{"response":{"result":20,"error":"Invalid appid"}}`,
		`{"response":{}}`,
		`{}`,
	}

	for _, body := range bodies {
		client, _ := newTestClient(t, map[string]response{
			"ISteamUserStats/GetGlobalStatsForGame/v0001": ok(body),
		})

		_, err := client.GetGlobalStatsForGame(
			context.Background(),
			74545454687846,
			1,
			[]string{"bullet_fired"},
		)
		assert.ErrorIs(t, err, steam.ErrNotFound)
		assert.Equal(t, "Game not found.", err.Error())
	}
}

const achievementsBody = `{"playerstats":{"steamID":"76561198007433923","gameName":"Rust",
	"achievements":[
		{"apiname":"COLLECT_100_WOOD","achieved":1,"unlocktime":1600000000},
		{"apiname":"KILL_BEAR","achieved":0,"unlocktime":0},
		{"apiname":"PLACE_BED","achieved":1,"unlocktime":1600000001}
	],"success":true}}`

func TestGetPlayerAchievements(t *testing.T) {
	client, _ := newTestClient(t, withVanity(map[string]response{
		"ISteamUserStats/GetPlayerAchievements/v0001": ok(achievementsBody),
	}))

	all, err := client.GetPlayerAchievements(
		context.Background(),
		vanityName,
		testAppID,
		false,
	)
	assert.Nil(t, err)
	assert.Len(t, all, 3)

	achieved, err := client.GetPlayerAchievements(
		context.Background(),
		vanityName,
		testAppID,
		true,
	)
	assert.Nil(t, err)
	assert.Len(t, achieved, 2)

	for _, achievement := range achieved {
		assert.Equal(t, 1, achievement.Achieved)
		assert.Contains(t, all, achievement)
	}
}

func TestGetPlayerAchievementsPrivate(t *testing.T) {
	client, _ := newTestClient(t, map[string]response{
		"ISteamUserStats/GetPlayerAchievements/v0001": {
			status: http.StatusForbidden,
			body:   `{"playerstats":{"error":"Profile is not public","success":false}}`,
		},
	})

	for _, onlyAchieved := range []bool{false, true} {
		_, err := client.GetPlayerAchievements(
			context.Background(),
			"76561199225710783",
			testAppID,
			onlyAchieved,
		)
		assert.ErrorIs(t, err, steam.ErrAccessDenied)
		assert.Equal(t, "Profile not found or private", err.Error())
	}
}

func TestGetPlayerAchievementsNoAppID(t *testing.T) {
	client, fake := newTestClient(t, withVanity(map[string]response{}))

	for _, onlyAchieved := range []bool{false, true} {
		_, err := client.GetPlayerAchievements(
			context.Background(),
			vanityName,
			0,
			onlyAchieved,
		)
		assert.ErrorIs(t, err, steam.ErrInvalidArgument)
		assert.Equal(t, "AppID not provided.", err.Error())
	}

	assert.Empty(t, fake.Requests())
}

func TestGetUserStatsForGame(t *testing.T) {
	client, _ := newTestClient(t, withVanity(map[string]response{
		"ISteamUserStats/GetUserStatsForGame/v0002": ok(`{"playerstats":{
			"steamID":"76561198007433923","gameName":"Rust",
			"stats":[{"name":"bullet_fired","value":1234},{"name":"deaths","value":12}]
		}}`),
	}))

	stats, err := client.GetUserStatsForGame(context.Background(), vanityName, testAppID)
	assert.Nil(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "bullet_fired", stats[0].Name)
	assert.Equal(t, "1234", stats[0].Value.String())
}

func TestGetUserStatsForGamePrivate(t *testing.T) {
	responses := []response{
		{status: http.StatusInternalServerError, body: "<html>Internal Server Error</html>"},
		ok(`{}`),
	}

	for _, res := range responses {
		client, _ := newTestClient(t, map[string]response{
			"ISteamUserStats/GetUserStatsForGame/v0002": res,
		})

		_, err := client.GetUserStatsForGame(
			context.Background(),
			"76561199225710783",
			testAppID,
		)
		assert.ErrorIs(t, err, steam.ErrAccessDenied)
		assert.Equal(t, "Profile not found or private", err.Error())
	}
}

func TestGetUserStatsForGameKeepsResolveErrors(t *testing.T) {
	client, _ := newTestClient(t, map[string]response{
		"ISteamUser/ResolveVanityURL/v0001": ok(`{"response":{"success":42}}`),
	})

	_, err := client.GetUserStatsForGame(context.Background(), "doesnotexist", testAppID)
	assert.ErrorIs(t, err, steam.ErrNotFound)

	_, err = client.GetUserStatsForGame(context.Background(), vanityName, 0)
	assert.ErrorIs(t, err, steam.ErrInvalidArgument)
}

func TestGetUserStatsForGameCancelled(t *testing.T) {
	client, _ := newTestClient(t, map[string]response{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUserStatsForGame(ctx, steamID, testAppID)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, steam.IsAccessDenied(err))
}

func TestGetSchemaForGame(t *testing.T) {
	client, _ := newTestClient(t, map[string]response{
		"ISteamUserStats/GetSchemaForGame/v2": ok(`{"game":{"gameName":"Rust","gameVersion":"12",
			"availableGameStats":{"achievements":[{"name":"COLLECT_100_WOOD","defaultvalue":0,
			"displayName":"Lumberjack","hidden":0,"icon":"a.jpg","icongray":"b.jpg"}],
			"stats":[{"name":"bullet_fired","defaultvalue":0,"displayName":"Bullets"}]}}}`),
	})

	schema, err := client.GetSchemaForGame(context.Background(), testAppID)
	assert.Nil(t, err)
	require.NotNil(t, schema)
	assert.Equal(t, "Rust", schema.GameName)
	require.NotNil(t, schema.AvailableGameStats)
	assert.Len(t, schema.AvailableGameStats.Achievements, 1)
	assert.Len(t, schema.AvailableGameStats.Stats, 1)
}

func TestGetNumberOfCurrentPlayers(t *testing.T) {
	client, _ := newTestClient(t, map[string]response{
		"ISteamUserStats/GetNumberOfCurrentPlayers/v1": ok(
			`{"response":{"player_count":123456,"result":1}}`,
		),
	})

	players, err := client.GetNumberOfCurrentPlayers(context.Background(), testAppID)
	assert.Nil(t, err)
	assert.Equal(t, &steam.AppPlayers{PlayerCount: 123456, Result: 1}, players)
}

func TestAppIDRequired(t *testing.T) {
	client, fake := newTestClient(t, withVanity(map[string]response{}))
	ctx := context.Background()

	calls := map[string]func(appID int) error{
		"GetNewsForApp": func(appID int) error {
			_, err := client.GetNewsForApp(ctx, appID, 0, 0)
			return err
		},
		"GetGlobalAchievementPercentagesForApp": func(appID int) error {
			_, err := client.GetGlobalAchievementPercentagesForApp(ctx, appID)
			return err
		},
		"GetGlobalStatsForGame": func(appID int) error {
			_, err := client.GetGlobalStatsForGame(ctx, appID, 1, []string{"a"})
			return err
		},
		"GetPlayerAchievements": func(appID int) error {
			_, err := client.GetPlayerAchievements(ctx, vanityName, appID, false)
			return err
		},
		"GetUserStatsForGame": func(appID int) error {
			_, err := client.GetUserStatsForGame(ctx, vanityName, appID)
			return err
		},
		"IsPlayingSharedGame": func(appID int) error {
			_, err := client.IsPlayingSharedGame(ctx, vanityName, appID)
			return err
		},
		"GetSchemaForGame": func(appID int) error {
			_, err := client.GetSchemaForGame(ctx, appID)
			return err
		},
		"GetAppInfo": func(appID int) error {
			_, err := client.GetAppInfo(ctx, appID)
			return err
		},
		"GetNumberOfCurrentPlayers": func(appID int) error {
			_, err := client.GetNumberOfCurrentPlayers(ctx, appID)
			return err
		},
	}

	for name, call := range calls {
		for _, appID := range []int{0, -1} {
			err := call(appID)
			assert.ErrorIs(t, err, steam.ErrInvalidArgument, fmt.Sprintf("%s(%d)", name, appID))
			assert.Equal(t, "AppID not provided.", err.Error(), name)
		}
	}

	assert.Empty(t, fake.Requests())
}
