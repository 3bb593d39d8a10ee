package vkapi

import (
	"net/http"
	"strings"
	"time"
)

// API defaults applied by New. Callers and configuration actions are free
// to overwrite any of them after construction.
const (
	DefaultBaseURL        = "https://api.vk.com/method"
	DefaultVersion        = "5.199"
	DefaultUserAgent      = "vkfactory-go"
	DefaultRequestTimeout = 30 * time.Second
)

// Client is a configurable handle on the VK-style API. All fields are
// public and mutable: the factory layer constructs a Client and then lets
// registered configuration actions set whatever they need before the
// instance is handed out.
//
// The Client carries configuration only; request execution lives with the
// HTTPClient it is given.
type Client struct {
	// AccessToken authenticates API calls. Empty means anonymous.
	AccessToken string

	// Version is the API version sent with every request.
	Version string

	// Language requests localized responses ("ru", "en", ...). Optional.
	Language string

	// UserAgent is sent as the User-Agent header.
	UserAgent string

	// BaseURL is the method-call endpoint prefix, without trailing slash.
	BaseURL string

	// RequestTimeout bounds a single API call.
	RequestTimeout time.Duration

	// HTTPClient performs the actual requests.
	HTTPClient *http.Client

	// Headers are extra headers attached to every request.
	Headers map[string]string
}

// New constructs a Client with API defaults and an empty header set.
func New() *Client {
	return &Client{
		Version:        DefaultVersion,
		UserAgent:      DefaultUserAgent,
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		HTTPClient:     &http.Client{Timeout: DefaultRequestTimeout},
		Headers:        make(map[string]string),
	}
}

// SetHeader sets an extra request header, allocating the header map if the
// client was built without New.
func (c *Client) SetHeader(name, value string) {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[name] = value
}

// MethodURL returns the full endpoint URL for an API method name, e.g.
// MethodURL("users.get") → "https://api.vk.com/method/users.get".
func (c *Client) MethodURL(method string) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	return base + "/" + method
}

// Authorized reports whether the client carries an access token.
func (c *Client) Authorized() bool {
	return c.AccessToken != ""
}
