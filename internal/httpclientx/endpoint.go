package httpclientx

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoint is an HTTP endpoint.
//
// The zero value is invalid; construct using [NewEndpoint].
type Endpoint struct {
	// URL is the MANDATORY endpoint URL without the query string.
	URL string

	// Query contains the OPTIONAL query parameters.
	Query url.Values
}

// NewEndpoint constructs a new [*Endpoint] instance using the given URL.
func NewEndpoint(URL string) *Endpoint {
	return &Endpoint{
		URL:   URL,
		Query: url.Values{},
	}
}

// WithPath returns a copy of the [*Endpoint] with the given path segments
// appended to the URL. Each segment is path-escaped.
func (e *Endpoint) WithPath(segments ...string) *Endpoint {
	out := e.clone()
	for _, s := range segments {
		out.URL += "/" + url.PathEscape(s)
	}
	return out
}

// WithParam returns a copy of the [*Endpoint] with the given query parameter.
//
// Strings, integers, floats, and booleans are formatted the way the
// remote APIs expect them; everything else uses [fmt.Sprint].
func (e *Endpoint) WithParam(key string, value any) *Endpoint {
	out := e.clone()
	out.Query.Set(key, formatParam(value))
	return out
}

// String returns the full URL including the query string.
func (e *Endpoint) String() string {
	if len(e.Query) <= 0 {
		return e.URL
	}
	return e.URL + "?" + e.Query.Encode()
}

func (e *Endpoint) clone() *Endpoint {
	query := url.Values{}
	for key, values := range e.Query {
		query[key] = append([]string{}, values...)
	}
	return &Endpoint{URL: e.URL, Query: query}
}

func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
