package steam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const BaseURLRESTAPI = "https://api.steampowered.com"
const StorefrontURLRESTAPI = "https://store.steampowered.com/api"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Client = client{}

type client struct {
	logger        *slog.Logger
	apiKey        string
	baseURL       string
	storefrontURL string
	httpClient    HTTPClient
}

// New returns a Client authenticated with apiKey. The key is required,
// an empty key fails here instead of on every call.
func New(logger *slog.Logger, apiKey string, options ...Option) (Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	if logger == nil {
		logger = logging.NewNopLogger()
	}

	c := client{
		logger:        logger,
		apiKey:        apiKey,
		baseURL:       BaseURLRESTAPI,
		storefrontURL: StorefrontURLRESTAPI,
		httpClient:    http.DefaultClient,
	}

	for _, option := range options {
		option(&c)
	}

	return c, nil
}

func (client client) sendRequestAPI(
	ctx context.Context,
	endpoint string,
	query url.Values,
	dst any,
) error {
	return client.sendRequest(
		ctx,
		client.baseURL,
		client.apiKey,
		endpoint,
		query,
		dst,
	)
}

// the storefront doesn't take an API key, so none is sent there.
func (client client) sendRequestStorefront(
	ctx context.Context,
	endpoint string,
	query url.Values,
	dst any,
) error {
	return client.sendRequest(ctx, client.storefrontURL, "", endpoint, query, dst)
}

func (client client) sendRequest(
	ctx context.Context,
	baseURL string,
	apiKey string,
	endpoint string,
	query url.Values,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", baseURL, endpoint))
	if err != nil {
		return transportError(endpoint, 0, err)
	}

	if query == nil {
		query = url.Values{}
	}

	u.RawQuery = query.Encode()
	redactedURL := u.String()

	if apiKey != "" {
		query.Set("key", apiKey)
		u.RawQuery = query.Encode()
	}

	client.logger.Debug("sending request", slog.String("url", redactedURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return transportError(endpoint, 0, err)
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactedURL
		}
		return transportError(endpoint, 0, err)
	}
	defer res.Body.Close()

	// the body is decoded whatever the status, private profiles come back
	// as JSON on 4xx responses
	err = httptools.ReadJSON(res.Body, dst)
	if err != nil {
		return transportError(endpoint, res.StatusCode, err)
	}

	return nil
}
