package steam

import (
	"context"
	"net/url"
	"strconv"
)

type Server struct {
	Addr       string `json:"addr"`
	GamePort   int    `json:"gameport"`
	SteamID    string `json:"steamid"`
	Name       string `json:"name"`
	AppID      int    `json:"appid"`
	GameDir    string `json:"gamedir"`
	Version    string `json:"version"`
	Product    string `json:"product"`
	Region     int    `json:"region"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	Bots       int    `json:"bots"`
	Map        string `json:"map"`
	Secure     bool   `json:"secure"`
	Dedicated  bool   `json:"dedicated"`
	OS         string `json:"os"`
	GameType   string `json:"gametype"`
}

type ServerListResponse struct {
	Response *ServerListResponseData `json:"response"`
}

type ServerListResponseData struct {
	Servers []Server `json:"servers"`
}

// GetServerList queries the master server. filter uses the master server
// query syntax, e.g. `\appid\440\dedicated\1`. A limit below 1 leaves the
// upstream default in place.
func (client client) GetServerList(
	ctx context.Context,
	filter string,
	limit int,
) ([]Server, error) {
	if filter == "" {
		return nil, invalidArgument(msgFilterNotProvided)
	}

	query := url.Values{"filter": {filter}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var serverListResponse ServerListResponse

	err := client.sendRequestAPI(
		ctx,
		"IGameServersService/GetServerList/v1",
		query,
		&serverListResponse,
	)
	if err != nil {
		return nil, err
	}

	// an empty response object and one without servers are both invalid
	if serverListResponse.Response == nil ||
		serverListResponse.Response.Servers == nil {
		return nil, upstreamInvalid()
	}

	return serverListResponse.Response.Servers, nil
}
