package steam

import (
	"context"
	"net/url"
	"regexp"
)

// upstream's "no match" code for ResolveVanityURL
const vanityNoMatch = 42

//nolint:gochecknoglobals //compiled once
var steamID64Pattern = regexp.MustCompile(`(?i)^7656119[0-9]{10}$`)

// IsSteamID64 reports whether id already has the canonical 64-bit form.
func IsSteamID64(id string) bool {
	return steamID64Pattern.MatchString(id)
}

type resolveVanityURLResponse struct {
	Response *resolveVanityURLResponseData `json:"response"`
}

type resolveVanityURLResponseData struct {
	SteamID *string `json:"steamid"`
	Success *int    `json:"success"`
	Message *string `json:"message"`
}

func (data *resolveVanityURLResponseData) empty() bool {
	return data == nil ||
		(data.SteamID == nil && data.Success == nil && data.Message == nil)
}

// ResolveID turns a vanity name into a 64-bit SteamID. Canonical ids are
// returned as-is without contacting upstream. Results are never cached.
func (client client) ResolveID(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", invalidArgument(msgIDNotProvided)
	}

	if IsSteamID64(id) {
		return id, nil
	}

	var vanityResponse resolveVanityURLResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamUser/ResolveVanityURL/v0001",
		url.Values{"vanityurl": {id}},
		&vanityResponse,
	)
	if err != nil {
		return "", err
	}

	data := vanityResponse.Response
	if data.empty() || (data.Success != nil && *data.Success == vanityNoMatch) {
		return "", notFound(msgIDNotFound)
	}

	if data.SteamID == nil || !IsSteamID64(*data.SteamID) {
		return "", notFound(msgIDNotFound)
	}

	return *data.SteamID, nil
}

// withSteamID runs fn with id resolved to its 64-bit form.
func withSteamID[T any](
	ctx context.Context,
	client client,
	id string,
	fn func(steamID string) (T, error),
) (T, error) {
	steamID, err := client.ResolveID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	return fn(steamID)
}
