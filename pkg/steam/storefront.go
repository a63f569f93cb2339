package steam

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

type AppInfo struct {
	Success bool     `json:"success"`
	Data    *AppData `json:"data,omitempty"`
}

type AppData struct {
	Type                string          `json:"type"`
	Name                string          `json:"name"`
	SteamAppID          int             `json:"steam_appid"`
	RequiredAge         json.Number     `json:"required_age"`
	IsFree              bool            `json:"is_free"`
	DetailedDescription string          `json:"detailed_description"`
	AboutTheGame        string          `json:"about_the_game"`
	ShortDescription    string          `json:"short_description"`
	SupportedLanguages  string          `json:"supported_languages"`
	HeaderImage         string          `json:"header_image"`
	Website             *string         `json:"website"`
	Developers          []string        `json:"developers,omitempty"`
	Publishers          []string        `json:"publishers,omitempty"`
	PriceOverview       *PriceOverview  `json:"price_overview,omitempty"`
	Platforms           map[string]bool `json:"platforms,omitempty"`
	Categories          []AppTag        `json:"categories,omitempty"`
	Genres              []AppTag        `json:"genres,omitempty"`
	ReleaseDate         *ReleaseDate    `json:"release_date,omitempty"`
	Background          string          `json:"background,omitempty"`
}

type PriceOverview struct {
	Currency         string `json:"currency"`
	Initial          int    `json:"initial"`
	Final            int    `json:"final"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
}

type AppTag struct {
	// ID is numeric for categories and a string for genres.
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
}

type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// GetAppInfo fetches the storefront details of appID.
func (client client) GetAppInfo(ctx context.Context, appID int) (*AppInfo, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	key := strconv.Itoa(appID)

	// keyed by the requested app id
	var appDetailsResponse map[string]*AppInfo

	err := client.sendRequestStorefront(
		ctx,
		"appdetails",
		url.Values{"appids": {key}},
		&appDetailsResponse,
	)
	if err != nil {
		return nil, err
	}

	info, ok := appDetailsResponse[key]
	if !ok || info == nil || !info.Success {
		return nil, notFound(msgAppNotFound)
	}

	return info, nil
}
