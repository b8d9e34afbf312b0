// Package httpclientx contains generic code for talking to JSON web APIs.
package httpclientx

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/apitour/apitour-cli/internal/model"
	"github.com/pkg/errors"
)

// ErrRequestFailed indicates that an HTTP request's status indicates failure.
type ErrRequestFailed struct {
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpclientx: request failed with status %d", err.StatusCode)
}

// zeroValue is a convenience function to return the zero value.
func zeroValue[T any]() T {
	return *new(T)
}

// do sends the given request and returns the body. The body is returned
// only if the status code indicates success.
func do(ctx context.Context, req *http.Request, epnt *Endpoint, config *Config) ([]byte, error) {
	// optionally assign authorization
	if value := config.Authorization; value != "" {
		req.Header.Set("Authorization", value)
	}

	req.Header.Set("User-Agent", config.userAgent())

	// say that we're accepting JSON and gzip compressed bodies
	req.Header.Set("Accept", model.HTTPHeaderAccept)
	req.Header.Set("Accept-Encoding", "gzip")

	logger := config.logger()
	logger.Debugf("%s %s", req.Method, epnt)

	// get the response
	resp, err := config.Client.Do(req)

	// handle the case of failure
	if err != nil {
		return nil, err
	}

	// make sure we release the connection resources
	defer resp.Body.Close()

	// handle the case of failure
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debugf("%s %s: status code %d", req.Method, epnt, resp.StatusCode)
		return nil, &ErrRequestFailed{resp.StatusCode}
	}

	// make sure we handle compressed response bodies
	var baseReader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(baseReader)
		if err != nil {
			return nil, errors.Wrap(err, "reading gzip body")
		}
		defer gzreader.Close()
		baseReader = gzreader
	}

	// read the response body
	rawrespbody, err := io.ReadAll(baseReader)

	// handle the case of failure
	if err != nil {
		return nil, err
	}

	// log the raw response body
	logger.Debugf("%s %s: response body: %s", req.Method, epnt, rawrespbody)

	return rawrespbody, nil
}
