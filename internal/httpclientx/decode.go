package httpclientx

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// ErrNullBody indicates a JSON body consisting of a literal null, or a
// nil value passed where a body is required.
var ErrNullBody = errors.New("httpclientx: null JSON body")

// rejectNil returns [ErrNullBody] when value is a nil map, pointer or slice.
func rejectNil(value any) error {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			return ErrNullBody
		}
	case reflect.Invalid:
		return ErrNullBody
	}
	return nil
}

// GetJSON issues a GET for epnt and decodes the response body into Output.
func GetJSON[Output any](ctx context.Context, epnt *Endpoint, config *Config) (Output, error) {
	rawrespbody, err := GetRaw(ctx, epnt, config)
	if err != nil {
		return zeroValue[Output](), err
	}
	return UnmarshalJSON[Output](rawrespbody)
}

// UnmarshalJSON decodes raw into Output. A literal null is [ErrNullBody].
func UnmarshalJSON[Output any](raw []byte) (Output, error) {
	var output Output
	if err := json.Unmarshal(raw, &output); err != nil {
		return zeroValue[Output](), errors.Wrap(err, "decoding response body")
	}
	if err := rejectNil(output); err != nil {
		return zeroValue[Output](), err
	}
	return output, nil
}

// Document holds a response body decoded both into the typed Value
// the commands print and into the untyped Raw we write to snapshots.
type Document[Output any] struct {
	Value Output
	Raw   any
}

// GetJSONDocument is like [GetJSON] but also keeps the untyped body.
func GetJSONDocument[Output any](ctx context.Context, epnt *Endpoint, config *Config) (*Document[Output], error) {
	rawrespbody, err := GetRaw(ctx, epnt, config)
	if err != nil {
		return nil, err
	}
	value, err := UnmarshalJSON[Output](rawrespbody)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(rawrespbody, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding response body")
	}
	return &Document[Output]{Value: value, Raw: raw}, nil
}
