package steam

import (
	"context"
	"net/url"
	"strings"
)

type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	ProfileState             int    `json:"profilestate,omitempty"`
	PersonaName              string `json:"personaname"`
	CommentPermission        int    `json:"commentpermission,omitempty"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	AvatarHash               string `json:"avatarhash"`
	LastLogoff               int64  `json:"lastlogoff,omitempty"`
	PersonaState             int    `json:"personastate"`
	RealName                 string `json:"realname,omitempty"`
	PrimaryClanID            string `json:"primaryclanid,omitempty"`
	TimeCreated              int64  `json:"timecreated,omitempty"`
	PersonaStateFlags        int    `json:"personastateflags,omitempty"`
	GameExtraInfo            string `json:"gameextrainfo,omitempty"`
	GameID                   string `json:"gameid,omitempty"`
	GameServerIP             string `json:"gameserverip,omitempty"`
	LocCountryCode           string `json:"loccountrycode,omitempty"`
	LocStateCode             string `json:"locstatecode,omitempty"`
	LocCityID                int    `json:"loccityid,omitempty"`
}

type PlayerSummariesResponse struct {
	Response *PlayerSummariesResponseData `json:"response"`
}

type PlayerSummariesResponseData struct {
	Players []PlayerSummary `json:"players"`
}

// GetPlayerSummary accepts both vanity names and 64-bit SteamIDs. It returns
// nil when upstream lists no player for the id.
func (client client) GetPlayerSummary(
	ctx context.Context,
	id string,
) (*PlayerSummary, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) (*PlayerSummary, error) {
			players, err := client.getPlayerSummaries(ctx, []string{steamID})
			if err != nil {
				return nil, err
			}

			if len(players) == 0 {
				return nil, nil //nolint:nilnil //absent player isn't an error
			}

			return &players[0], nil
		},
	)
}

// GetPlayersSummary only accepts 64-bit SteamIDs, ids are not resolved.
func (client client) GetPlayersSummary(
	ctx context.Context,
	ids []string,
) ([]PlayerSummary, error) {
	if len(ids) == 0 {
		return nil, invalidArgument(msgIDsNotProvided)
	}

	return client.getPlayerSummaries(ctx, ids)
}

func (client client) getPlayerSummaries(
	ctx context.Context,
	steamIDs []string,
) ([]PlayerSummary, error) {
	var summariesResponse PlayerSummariesResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUser/GetPlayerSummaries/v0002",
		url.Values{"steamids": {strings.Join(steamIDs, ",")}},
		&summariesResponse,
	)
	if err != nil {
		return nil, err
	}

	if summariesResponse.Response == nil {
		return nil, nil
	}

	return summariesResponse.Response.Players, nil
}

type PlayerBans struct {
	SteamID          string `json:"SteamId"`
	CommunityBanned  bool   `json:"CommunityBanned"`
	VACBanned        bool   `json:"VACBanned"`
	NumberOfVACBans  int    `json:"NumberOfVACBans"`
	DaysSinceLastBan int    `json:"DaysSinceLastBan"`
	NumberOfGameBans int    `json:"NumberOfGameBans"`
	EconomyBan       string `json:"EconomyBan"`
}

type PlayerBansResponse struct {
	Players []PlayerBans `json:"players"`
}

// GetPlayerBans returns nil when upstream lists no player for the id.
func (client client) GetPlayerBans(
	ctx context.Context,
	id string,
) (*PlayerBans, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) (*PlayerBans, error) {
			var bansResponse PlayerBansResponse

			err := client.sendRequestAPI(
				ctx,
				"ISteamUser/GetPlayerBans/v1",
				url.Values{"steamids": {steamID}},
				&bansResponse,
			)
			if err != nil {
				return nil, err
			}

			if len(bansResponse.Players) == 0 {
				return nil, nil //nolint:nilnil //absent player isn't an error
			}

			return &bansResponse.Players[0], nil
		},
	)
}

type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

type FriendListResponse struct {
	FriendsList *FriendsList `json:"friendslist"`
}

type FriendsList struct {
	Friends []Friend `json:"friends"`
}

func (client client) GetFriendList(ctx context.Context, id string) ([]Friend, error) {
	return withSteamID(
		ctx,
		client,
		id,
		func(steamID string) ([]Friend, error) {
			var friendListResponse FriendListResponse

			err := client.sendRequestAPI(
				ctx,
				"ISteamUser/GetFriendList/v0001",
				url.Values{
					"steamid":      {steamID},
					"relationship": {"friend"},
				},
				&friendListResponse,
			)
			if err != nil {
				return nil, err
			}

			if friendListResponse.FriendsList == nil {
				return nil, accessDenied()
			}

			return friendListResponse.FriendsList.Friends, nil
		},
	)
}
