package httpclientx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// GetRaw issues a GET for epnt and returns the body of a 2xx response.
func GetRaw(ctx context.Context, epnt *Endpoint, config *Config) ([]byte, error) {
	req, err := newRequest(ctx, http.MethodGet, epnt, nil)
	if err != nil {
		return nil, err
	}
	return do(ctx, req, epnt, config)
}

// PostJSON serializes input as the body of a POST to epnt and decodes
// the response like [GetJSON]. A nil input is rejected with [ErrNullBody]
// without sending anything.
func PostJSON[Input, Output any](ctx context.Context, epnt *Endpoint, config *Config, input Input) (Output, error) {
	if err := rejectNil(input); err != nil {
		return zeroValue[Output](), err
	}
	body, err := json.Marshal(input)
	if err != nil {
		return zeroValue[Output](), errors.Wrap(err, "encoding request body")
	}
	config.logger().Debugf("POST %s: request body: %s", epnt, body)

	req, err := newRequest(ctx, http.MethodPost, epnt, bytes.NewReader(body))
	if err != nil {
		return zeroValue[Output](), err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	rawrespbody, err := do(ctx, req, epnt, config)
	if err != nil {
		return zeroValue[Output](), err
	}
	return UnmarshalJSON[Output](rawrespbody)
}

func newRequest(ctx context.Context, method string, epnt *Endpoint, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, epnt.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s request", method)
	}
	return req, nil
}
