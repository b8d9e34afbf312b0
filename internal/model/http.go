package model

//
// Common HTTP definitions.
//

import "net/http"

const (
	// HTTPHeaderAccept is the Accept header we send to JSON APIs.
	HTTPHeaderAccept = "application/json"

	// HTTPHeaderUserAgent is the default User-Agent header.
	HTTPHeaderUserAgent = "apitour/0.1 (+https://github.com/apitour/apitour-cli)"
)

// HTTPClient is the subset of [*http.Client] used by the service clients.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = http.DefaultClient
