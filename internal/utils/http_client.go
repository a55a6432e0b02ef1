package utils

import (
	"github.com/go-resty/resty/v2"
)

// ClientUserAgent identifies requests made by the API client.
const ClientUserAgent = "go-users-api-client"

// HTTPClient is a resty.Client preconfigured to talk to the users API.
// Every request asks for JSON and carries [ClientUserAgent].
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", ClientUserAgent)

	return &HTTPClient{Client: client}
}
