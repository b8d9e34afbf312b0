package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/apitour/apitour-cli/internal/httpclientx"
)

func TestKindString(t *testing.T) {
	expect := map[Kind]string{
		KindSuccess:          "success",
		KindMiss:             "miss",
		KindTransportFailure: "transport_failure",
		KindInputError:       "input_error",
		Kind(17):             "unknown",
	}
	for kind, value := range expect {
		if kind.String() != value {
			t.Fatal("unexpected string for", int(kind), kind.String())
		}
	}
}

func TestClassify(t *testing.T) {
	type testcase struct {
		name   string
		err    error
		kind   Kind
		reason string
	}

	cases := []testcase{{
		name: "success",
		err:  nil,
		kind: KindSuccess,
	}, {
		name:   "miss",
		err:    NewMiss("city not found"),
		kind:   KindMiss,
		reason: "city not found",
	}, {
		name:   "wrapped miss",
		err:    fmt.Errorf("geocoding: %w", NewMiss("no results")),
		kind:   KindMiss,
		reason: "geocoding: no results",
	}, {
		name:   "input error",
		err:    NewInputError("user id must be a positive integer"),
		kind:   KindInputError,
		reason: "user id must be a positive integer",
	}, {
		name:   "404 status",
		err:    &httpclientx.ErrRequestFailed{StatusCode: 404},
		kind:   KindMiss,
		reason: "not found",
	}, {
		name:   "500 status",
		err:    &httpclientx.ErrRequestFailed{StatusCode: 500},
		kind:   KindTransportFailure,
		reason: "httpclientx: request failed with status 500",
	}, {
		name:   "timeout",
		err:    context.DeadlineExceeded,
		kind:   KindTransportFailure,
		reason: "context deadline exceeded",
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(42, tc.err)
			if res.Kind != tc.kind {
				t.Fatal("unexpected kind", res.Kind)
			}
			if res.Reason != tc.reason {
				t.Fatal("unexpected reason", res.Reason)
			}
			if res.OK() != (tc.kind == KindSuccess) {
				t.Fatal("unexpected OK")
			}
			if res.OK() && res.Value != 42 {
				t.Fatal("unexpected value", res.Value)
			}
			if !res.OK() && res.Value != 0 {
				t.Fatal("expected zero value", res.Value)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	if !errors.Is(NewMiss("x"), ErrMiss) {
		t.Fatal("miss does not match ErrMiss")
	}
	if errors.Is(NewMiss("x"), ErrInvalidInput) {
		t.Fatal("miss matches ErrInvalidInput")
	}
	if !errors.Is(NewInputError("x"), ErrInvalidInput) {
		t.Fatal("input error does not match ErrInvalidInput")
	}
}
