package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty request
// API plus room for application-specific extensions.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient preconfigured for the
// JSON API: every request accepts application/json responses. Base URL,
// timeout and auth headers are left to the caller.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
