package steam

// Option configures a Client.
type Option func(*client)

// WithHTTPClient sets the client used to send requests (default:
// http.DefaultClient). Timeouts are whatever this client enforces.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets the Web API origin (default: BaseURLRESTAPI).
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithStorefrontURL sets the storefront API origin used by GetAppInfo
// (default: StorefrontURLRESTAPI).
func WithStorefrontURL(storefrontURL string) Option {
	return func(c *client) {
		c.storefrontURL = storefrontURL
	}
}
