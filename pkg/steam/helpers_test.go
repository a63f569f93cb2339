package steam_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"steamapi.xdoubleu.com/pkg/steam"
)

const testAPIKey = "test-key"

const (
	vanityName = "pho3nix90"
	steamID    = "76561198007433923"
	testAppID  = 252490
)

type response struct {
	status int
	body   string
}

func ok(body string) response {
	return response{status: http.StatusOK, body: body}
}

// upstream fakes both the Web API and the storefront, the latter under
// /store.
type upstream struct {
	mu       sync.Mutex
	routes   map[string]response
	requests []*url.URL
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, r.URL)
	res, found := u.routes[strings.TrimPrefix(r.URL.Path, "/")]
	u.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html>Not Found</html>"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.status)
	_, _ = w.Write([]byte(res.body))
}

func (u *upstream) Requests() []*url.URL {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]*url.URL{}, u.requests...)
}

func (u *upstream) LastQuery(t *testing.T) url.Values {
	t.Helper()

	requests := u.Requests()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1].Query()
}

func newTestClient(
	t *testing.T,
	routes map[string]response,
) (steam.Client, *upstream) {
	t.Helper()

	fake := &upstream{routes: routes}

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := steam.New(
		logging.NewNopLogger(),
		testAPIKey,
		steam.WithBaseURL(server.URL),
		steam.WithStorefrontURL(server.URL+"/store"),
		steam.WithHTTPClient(server.Client()),
	)
	require.Nil(t, err)

	return client, fake
}

// vanityRoute resolves vanityName to steamID.
func vanityRoute() (string, response) {
	return "ISteamUser/ResolveVanityURL/v0001",
		ok(`{"response":{"steamid":"` + steamID + `","success":1}}`)
}

func withVanity(routes map[string]response) map[string]response {
	path, res := vanityRoute()
	routes[path] = res
	return routes
}
