package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// upstream's result code for an unknown game in GetGlobalStatsForGame
const globalStatsNoMatch = 20

type GlobalAchievement struct {
	Name string `json:"name"`
	// Percent is sent as a number or a numeric string depending on the app.
	Percent json.Number `json:"percent"`
}

type GlobalAchievementPercentagesResponse struct {
	AchievementPercentages *AchievementPercentages `json:"achievementpercentages"`
}

type AchievementPercentages struct {
	Achievements []GlobalAchievement `json:"achievements"`
}

func (client client) GetGlobalAchievementPercentagesForApp(
	ctx context.Context,
	appID int,
) ([]GlobalAchievement, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	var percentagesResponse GlobalAchievementPercentagesResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUserStats/GetGlobalAchievementPercentagesForApp/v0002",
		url.Values{"gameid": {strconv.Itoa(appID)}},
		&percentagesResponse,
	)
	if err != nil {
		return nil, err
	}

	percentages := percentagesResponse.AchievementPercentages
	if percentages == nil || percentages.Achievements == nil {
		return nil, notFound(msgGameNotFound)
	}

	return percentages.Achievements, nil
}

type GlobalStat struct {
	Total json.Number `json:"total"`
}

type GlobalStatsResponse struct {
	Response *GlobalStatsResponseData `json:"response"`
}

type GlobalStatsResponseData struct {
	GlobalStats map[string]GlobalStat `json:"globalstats"`
	Result      *int                  `json:"result"`
	Error       *string               `json:"error"`
}

func (data *GlobalStatsResponseData) empty() bool {
	return data == nil ||
		(data.GlobalStats == nil && data.Result == nil && data.Error == nil)
}

// GetGlobalStatsForGame returns the aggregated totals of the named stats,
// keyed by name. count is the number of days to aggregate.
func (client client) GetGlobalStatsForGame(
	ctx context.Context,
	appID int,
	count int,
	names []string,
) (map[string]GlobalStat, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	if count < 1 {
		return nil, invalidArgument(msgCountTooSmall)
	}

	if len(names) == 0 {
		return nil, invalidArgument(msgNoAchievementNames)
	}

	query := url.Values{
		"appid": {strconv.Itoa(appID)},
		"count": {strconv.Itoa(count)},
	}
	for i, name := range names {
		query.Set(fmt.Sprintf("name[%d]", i), name)
	}

	var statsResponse GlobalStatsResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUserStats/GetGlobalStatsForGame/v0001",
		query,
		&statsResponse,
	)
	if err != nil {
		return nil, err
	}

	data := statsResponse.Response
	if data.empty() || (data.Result != nil && *data.Result == globalStatsNoMatch) {
		return nil, notFound(msgGameNotFound)
	}

	return data.GlobalStats, nil
}

type Achievement struct {
	APIName     string `json:"apiname"`
	Achieved    int    `json:"achieved"`
	UnlockTime  int64  `json:"unlocktime"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type AchievementsResponse struct {
	PlayerStats *PlayerStats `json:"playerstats"`
}

type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Achievements []Achievement `json:"achievements"`
	Success      truthy        `json:"success"`
	Error        string        `json:"error,omitempty"`
}

// GetPlayerAchievements returns the player's achievements for appID. With
// onlyAchieved set, locked achievements are left out.
func (client client) GetPlayerAchievements(
	ctx context.Context,
	id string,
	appID int,
	onlyAchieved bool,
) ([]Achievement, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]Achievement, error) {
			var achievementsResponse AchievementsResponse

			err := client.sendRequestAPI(
				ctx,
				"ISteamUserStats/GetPlayerAchievements/v0001",
				url.Values{
					"steamid": {steamID},
					"appid":   {strconv.Itoa(appID)},
				},
				&achievementsResponse,
			)
			if err != nil {
				return nil, err
			}

			stats := achievementsResponse.PlayerStats
			if stats == nil || !stats.Success {
				return nil, accessDenied()
			}

			if !onlyAchieved {
				return stats.Achievements, nil
			}

			achieved := []Achievement{}
			for _, achievement := range stats.Achievements {
				if achievement.Achieved == 1 {
					achieved = append(achieved, achievement)
				}
			}

			return achieved, nil
		},
	)
}

type UserStat struct {
	Name  string      `json:"name"`
	Value json.Number `json:"value"`
}

type UserStatsResponse struct {
	PlayerStats *UserStats `json:"playerstats"`
}

type UserStats struct {
	SteamID      string     `json:"steamID"`
	GameName     string     `json:"gameName"`
	Stats        []UserStat `json:"stats"`
	Achievements []struct {
		Name     string `json:"name"`
		Achieved int    `json:"achieved"`
	} `json:"achievements,omitempty"`
}

// GetUserStatsForGame reports every upstream failure as ErrAccessDenied:
// upstream answers private profiles on this endpoint with a server error.
func (client client) GetUserStatsForGame(
	ctx context.Context,
	id string,
	appID int,
) ([]UserStat, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]UserStat, error) {
			var statsResponse UserStatsResponse

			err := client.sendRequestAPI(
				ctx,
				"ISteamUserStats/GetUserStatsForGame/v0002",
				url.Values{
					"steamid": {steamID},
					"appid":   {strconv.Itoa(appID)},
				},
				&statsResponse,
			)
			if errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}

			if err != nil || statsResponse.PlayerStats == nil {
				return nil, accessDenied()
			}

			return statsResponse.PlayerStats.Stats, nil
		},
	)
}

type GetSchemaForGameResponse struct {
	Game *GameSchema `json:"game"`
}

type GameSchema struct {
	GameName           string              `json:"gameName"`
	GameVersion        string              `json:"gameVersion"`
	AvailableGameStats *AvailableGameStats `json:"availableGameStats,omitempty"`
}

type AvailableGameStats struct {
	Achievements []AchievementSchema `json:"achievements,omitempty"`
	Stats        []StatSchema        `json:"stats,omitempty"`
}

type AchievementSchema struct {
	Name         string `json:"name"`
	DefaultValue int    `json:"defaultvalue"`
	DisplayName  string `json:"displayName"`
	Hidden       int    `json:"hidden"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon"`
	IconGray     string `json:"icongray"`
}

type StatSchema struct {
	Name         string      `json:"name"`
	DefaultValue json.Number `json:"defaultvalue"`
	DisplayName  string      `json:"displayName"`
}

// GetSchemaForGame returns nil when upstream has no schema for appID.
func (client client) GetSchemaForGame(
	ctx context.Context,
	appID int,
) (*GameSchema, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	var schemaResponse GetSchemaForGameResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUserStats/GetSchemaForGame/v2",
		url.Values{"appid": {strconv.Itoa(appID)}},
		&schemaResponse,
	)
	if err != nil {
		return nil, err
	}

	return schemaResponse.Game, nil
}

type AppPlayers struct {
	PlayerCount int `json:"player_count"`
	Result      int `json:"result"`
}

type CurrentPlayersResponse struct {
	Response *AppPlayers `json:"response"`
}

// GetNumberOfCurrentPlayers returns nil when upstream sends no response
// object.
func (client client) GetNumberOfCurrentPlayers(
	ctx context.Context,
	appID int,
) (*AppPlayers, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	var playersResponse CurrentPlayersResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUserStats/GetNumberOfCurrentPlayers/v1",
		url.Values{"appid": {strconv.Itoa(appID)}},
		&playersResponse,
	)
	if err != nil {
		return nil, err
	}

	return playersResponse.Response, nil
}
