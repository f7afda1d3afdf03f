package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent is sent with every outbound request.
const userAgent = "go-roster-bot"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.telegram.org", 10*time.Second)
//	resp, err := client.R().Get("/bot{token}/getMe")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL whose requests time out
// after timeout. A zero timeout means no client-side limit; callers then
// bound requests with their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
