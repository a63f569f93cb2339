package steam

import (
	"context"
	"net/url"
	"strconv"
)

const (
	DefaultNewsCount     = 3
	DefaultNewsMaxLength = 300
)

type NewsItem struct {
	GID           string   `json:"gid"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	IsExternalURL bool     `json:"is_external_url"`
	Author        string   `json:"author"`
	Contents      string   `json:"contents"`
	FeedLabel     string   `json:"feedlabel"`
	Date          int64    `json:"date"`
	FeedName      string   `json:"feedname"`
	FeedType      int      `json:"feed_type"`
	AppID         int      `json:"appid"`
	Tags          []string `json:"tags,omitempty"`
}

type NewsForAppResponse struct {
	AppNews *AppNews `json:"appnews"`
}

type AppNews struct {
	AppID     int        `json:"appid"`
	NewsItems []NewsItem `json:"newsitems"`
	Count     int        `json:"count"`
}

// GetNewsForApp returns the latest news of appID. A count or maxLength
// below 1 falls back to DefaultNewsCount and DefaultNewsMaxLength.
func (client client) GetNewsForApp(
	ctx context.Context,
	appID int,
	count int,
	maxLength int,
) ([]NewsItem, error) {
	if appID <= 0 {
		return nil, invalidArgument(msgAppIDNotProvided)
	}

	if count < 1 {
		count = DefaultNewsCount
	}

	if maxLength < 1 {
		maxLength = DefaultNewsMaxLength
	}

	var newsResponse NewsForAppResponse

	err := client.sendRequestAPI(
		ctx,
		"ISteamNews/GetNewsForApp/v0002",
		url.Values{
			"appid":     {strconv.Itoa(appID)},
			"count":     {strconv.Itoa(count)},
			"maxlength": {strconv.Itoa(maxLength)},
			"format":    {"json"},
		},
		&newsResponse,
	)
	if err != nil {
		return nil, err
	}

	if newsResponse.AppNews == nil {
		return nil, notFound(msgGameNotFound)
	}

	return newsResponse.AppNews.NewsItems, nil
}
