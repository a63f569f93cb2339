package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const BaseImgURL = "https://media.steampowered.com/steamcommunity/public/images/apps"

// UnknownUserLevel is returned by GetUserLevel for private or unknown
// profiles.
const UnknownUserLevel = -1

type OwnedGame struct {
	AppID                    int    `json:"appid"`
	Name                     string `json:"name,omitempty"`
	PlaytimeForever          int    `json:"playtime_forever"`
	PlaytimeWindowsForever   int    `json:"playtime_windows_forever"`
	PlaytimeMacForever       int    `json:"playtime_mac_forever"`
	PlaytimeLinuxForever     int    `json:"playtime_linux_forever"`
	RTimeLastPlayed          int64  `json:"rtime_last_played,omitempty"`
	ImgIconURL               string `json:"img_icon_url,omitempty"`
	HasCommunityVisibleStats bool   `json:"has_community_visible_stats,omitempty"`
}

// IconURL is empty unless the game was fetched with app info.
func (game OwnedGame) IconURL() string {
	if game.ImgIconURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s.jpg", BaseImgURL, game.AppID, game.ImgIconURL)
}

type PlayedGame struct {
	OwnedGame
	Playtime2Weeks int    `json:"playtime_2weeks"`
	ImgLogoURL     string `json:"img_logo_url,omitempty"`
}

func (game PlayedGame) LogoURL() string {
	if game.ImgLogoURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s.jpg", BaseImgURL, game.AppID, game.ImgLogoURL)
}

type OwnedGamesResponse struct {
	Response *OwnedGamesResponseData `json:"response"`
}

type OwnedGamesResponseData struct {
	GameCount *int        `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

func (client client) GetOwnedGames(
	ctx context.Context,
	id string,
	includeFreeGames bool,
	includeAppInfo bool,
) ([]OwnedGame, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]OwnedGame, error) {
			var ownedGamesResponse OwnedGamesResponse

			err := client.sendRequestAPI(
				ctx,
				"IPlayerService/GetOwnedGames/v1",
				url.Values{
					"steamid":                   {steamID},
					"format":                    {"json"},
					"include_played_free_games": {boolParam(includeFreeGames)},
					"include_appinfo":           {boolParam(includeAppInfo)},
				},
				&ownedGamesResponse,
			)
			if err != nil {
				return nil, err
			}

			if ownedGamesResponse.Response == nil {
				return nil, nil
			}

			return ownedGamesResponse.Response.Games, nil
		},
	)
}

type RecentlyPlayedGamesResponse struct {
	Response *RecentlyPlayedGamesResponseData `json:"response"`
}

type RecentlyPlayedGamesResponseData struct {
	TotalCount *int         `json:"total_count"`
	Games      []PlayedGame `json:"games"`
}

func (client client) GetRecentlyPlayedGames(
	ctx context.Context,
	id string,
) ([]PlayedGame, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]PlayedGame, error) {
			var recentResponse RecentlyPlayedGamesResponse

			err := client.sendRequestAPI(
				ctx,
				"IPlayerService/GetRecentlyPlayedGames/v0001",
				url.Values{
					"steamid": {steamID},
					"format":  {"json"},
				},
				&recentResponse,
			)
			if err != nil {
				return nil, err
			}

			if recentResponse.Response == nil {
				return nil, nil
			}

			return recentResponse.Response.Games, nil
		},
	)
}

type SteamLevelResponse struct {
	Response *SteamLevelResponseData `json:"response"`
}

type SteamLevelResponseData struct {
	PlayerLevel *int `json:"player_level"`
}

// GetUserLevel returns UnknownUserLevel instead of an error when the profile
// is private or doesn't exist.
func (client client) GetUserLevel(ctx context.Context, id string) (int, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) (int, error) {
			var levelResponse SteamLevelResponse

			err := client.sendRequestAPI(
				ctx,
				"IPlayerService/GetSteamLevel/v1",
				url.Values{"steamid": {steamID}},
				&levelResponse,
			)
			if err != nil {
				return 0, err
			}

			if levelResponse.Response == nil ||
				levelResponse.Response.PlayerLevel == nil {
				return UnknownUserLevel, nil
			}

			return *levelResponse.Response.PlayerLevel, nil
		},
	)
}

type SharedGameResponse struct {
	Response *SharedGameResponseData `json:"response"`
}

type SharedGameResponseData struct {
	LenderSteamID string `json:"lender_steamid"`
	Success       truthy `json:"success"`
}

// IsPlayingSharedGame returns the SteamID of the account lending appID to
// the player.
func (client client) IsPlayingSharedGame(
	ctx context.Context,
	id string,
	appID int,
) (string, error) {
	if appID <= 0 {
		return "", invalidArgument(msgAppIDNotProvided)
	}

	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) (string, error) {
			var sharedResponse SharedGameResponse

			err := client.sendRequestAPI(
				ctx,
				"IPlayerService/IsPlayingSharedGame/v0001",
				url.Values{
					"steamid":       {steamID},
					"appid_playing": {strconv.Itoa(appID)},
				},
				&sharedResponse,
			)
			if err != nil {
				return "", err
			}

			if sharedResponse.Response == nil || !sharedResponse.Response.Success {
				return "", accessDenied()
			}

			return sharedResponse.Response.LenderSteamID, nil
		},
	)
}

type UserBadge struct {
	AppID           *int        `json:"appid,omitempty"`
	BadgeID         int         `json:"badgeid"`
	Level           int         `json:"level"`
	CompletionTime  int64       `json:"completion_time"`
	XP              int         `json:"xp"`
	Scarcity        int         `json:"scarcity"`
	CommunityItemID json.Number `json:"communityitemid,omitempty"`
	BorderColor     *int        `json:"border_color,omitempty"`
}

type BadgesResponse struct {
	Response *BadgesResponseData `json:"response"`
}

type BadgesResponseData struct {
	Badges                     []UserBadge `json:"badges"`
	PlayerXP                   *int        `json:"player_xp"`
	PlayerLevel                *int        `json:"player_level"`
	PlayerXPNeededToLevelUp    *int        `json:"player_xp_needed_to_level_up"`
	PlayerXPNeededCurrentLevel *int        `json:"player_xp_needed_current_level"`
}

func (data *BadgesResponseData) empty() bool {
	return data == nil ||
		(data.Badges == nil &&
			data.PlayerXP == nil &&
			data.PlayerLevel == nil &&
			data.PlayerXPNeededToLevelUp == nil &&
			data.PlayerXPNeededCurrentLevel == nil)
}

func (client client) GetUserBadges(ctx context.Context, id string) ([]UserBadge, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]UserBadge, error) {
			var badgesResponse BadgesResponse

			err := client.sendRequestAPI(
				ctx,
				"IPlayerService/GetBadges/v1",
				url.Values{"steamid": {steamID}},
				&badgesResponse,
			)
			if err != nil {
				return nil, err
			}

			if badgesResponse.Response.empty() {
				return nil, accessDenied()
			}

			return badgesResponse.Response.Badges, nil
		},
	)
}

func boolParam(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
