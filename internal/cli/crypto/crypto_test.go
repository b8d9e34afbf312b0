package crypto

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apitour/apitour-cli/internal/apitourtest"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/google/go-cmp/cmp"
)

const bitcoin = `{"id": "btc-bitcoin", "name": "Bitcoin", "symbol": "BTC", "rank": 1,
	"quotes": {"USD": {"price": 64123.456, "volume_24h": 31000000000.4,
	"market_cap": 1262000000000.2, "percent_change_1h": 0.12,
	"percent_change_24h": -1.5, "percent_change_7d": 4.25}}}`

const ethereum = `{"id": "eth-ethereum", "name": "Ethereum", "symbol": "ETH", "rank": 2,
	"quotes": {"USD": {"price": 3100.5, "percent_change_24h": 2}}}`

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/tickers/btc-bitcoin":
			w.Write([]byte(bitcoin))
		case "/v1/tickers/eth-ethereum":
			w.Write([]byte(ethereum))
		case "/v1/tickers":
			w.Write([]byte(`[` + bitcoin + `,` + ethereum + `, {"id": "x", "quotes": {}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestPrice(t *testing.T) {
	server := newServer()
	defer server.Close()

	t.Run("with a known coin", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		handler, logger := apitourtest.NewLogger()
		if kind := Price(context.Background(), tour, logger, " Bitcoin "); kind != pipeline.KindSuccess {
			t.Fatal("unexpected kind", kind)
		}
		fields := handler.Typed("fields")
		if len(fields) != 1 || fields[0].Message != "Bitcoin (BTC)" {
			t.Fatal("unexpected fields", fields)
		}
		expect := []output.Pair{
			{Label: "Price", Value: "$64,123.46"},
			{Label: "Market Cap", Value: "$1.26T"},
			{Label: "24h Volume", Value: "$31.00B"},
			{},
			{Label: "1h Change", Value: "+0.12%"},
			{Label: "24h Change", Value: "-1.50%"},
			{Label: "7d Change", Value: "+4.25%"},
		}
		if diff := cmp.Diff(expect, fields[0].Fields["pairs"]); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an unknown coin", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		handler, logger := apitourtest.NewLogger()
		if kind := Price(context.Background(), tour, logger, "shibacoin"); kind != pipeline.KindMiss {
			t.Fatal("unexpected kind", kind)
		}
		entries := handler.Entries()
		if len(entries) < 2 {
			t.Fatal("expected at least two entries")
		}
		if entries[len(entries)-2].Message != "not found" {
			t.Fatal("unexpected message", entries[len(entries)-2].Message)
		}
		expect := "available coins: bitcoin, ethereum, dogecoin, cardano, solana, ripple"
		if entries[len(entries)-1].Message != expect {
			t.Fatal("unexpected message", entries[len(entries)-1].Message)
		}
	})
}

func TestTop(t *testing.T) {
	server := newServer()
	defer server.Close()

	t.Run("drops entries without a USD quote", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		handler, logger := apitourtest.NewLogger()
		if kind := Top(context.Background(), tour, logger, 5); kind != pipeline.KindSuccess {
			t.Fatal("unexpected kind", kind)
		}
		grids := handler.Typed("grid")
		if len(grids) != 1 || grids[0].Message != "Top 2 Cryptocurrencies by Market Cap" {
			t.Fatal("unexpected grids", grids)
		}
		expect := [][]string{
			{"1", "Bitcoin", "$64,123.46", "-1.50%"},
			{"2", "Ethereum", "$3,100.50", "+2.00%"},
		}
		if diff := cmp.Diff(expect, grids[0].Fields["rows"]); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with a non positive limit", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		_, logger := apitourtest.NewLogger()
		if kind := Top(context.Background(), tour, logger, 0); kind != pipeline.KindInputError {
			t.Fatal("unexpected kind", kind)
		}
	})
}

func TestCompare(t *testing.T) {
	t.Run("shows N/A for coins that fail", func(t *testing.T) {
		server := newServer()
		defer server.Close()
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		handler, logger := apitourtest.NewLogger()
		if kind := Compare(context.Background(), tour, logger, io.Discard); kind != pipeline.KindSuccess {
			t.Fatal("unexpected kind", kind)
		}
		grids := handler.Typed("grid")
		if len(grids) != 1 {
			t.Fatal("expected a single grid")
		}
		expect := [][]string{
			{"Bitcoin", "BTC", "$64,123.46", "-1.50%"},
			{"Ethereum", "ETH", "$3,100.50", "+2.00%"},
			{"Dogecoin", "N/A", "N/A", "N/A"},
			{"Cardano", "N/A", "N/A", "N/A"},
			{"Solana", "N/A", "N/A", "N/A"},
			{"Ripple", "N/A", "N/A", "N/A"},
		}
		if diff := cmp.Diff(expect, grids[0].Fields["rows"]); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("when every coin fails", func(t *testing.T) {
		server := newServer()
		URL := server.URL
		server.Close()
		tour := apitourtest.NewFakeTourCLI(t, URL)
		handler, logger := apitourtest.NewLogger()
		if kind := Compare(context.Background(), tour, logger, io.Discard); kind != pipeline.KindTransportFailure {
			t.Fatal("unexpected kind", kind)
		}
		if len(handler.Typed("grid")) != 0 {
			t.Fatal("expected no grid")
		}
		lookups, err := database.ListLookups(tour.DB(), 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(lookups) != 1 || lookups[0].Operation != "crypto compare" {
			t.Fatal("unexpected lookups", lookups)
		}
	})

	t.Run("with a done context", func(t *testing.T) {
		server := newServer()
		defer server.Close()
		tour := apitourtest.NewFakeTourCLI(t, server.URL)
		handler, logger := apitourtest.NewLogger()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if kind := Compare(ctx, tour, logger, io.Discard); kind != pipeline.KindTransportFailure {
			t.Fatal("unexpected kind", kind)
		}
		if len(handler.Typed("grid")) != 0 {
			t.Fatal("expected no grid")
		}
		lookups, err := database.ListLookups(tour.DB(), 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(lookups) != 1 || lookups[0].Outcome != "transport_failure" || lookups[0].Reason != "context canceled" {
			t.Fatal("unexpected lookups", lookups)
		}
	})
}

func TestTransportFailure(t *testing.T) {
	URL := apitourtest.ClosedServerURL()
	for name, run := range map[string]func(tour *apitourtest.FakeTourCLI) pipeline.Kind{
		"price": func(tour *apitourtest.FakeTourCLI) pipeline.Kind {
			_, logger := apitourtest.NewLogger()
			return Price(context.Background(), tour, logger, "bitcoin")
		},
		"top": func(tour *apitourtest.FakeTourCLI) pipeline.Kind {
			_, logger := apitourtest.NewLogger()
			return Top(context.Background(), tour, logger, 5)
		},
	} {
		t.Run(name, func(t *testing.T) {
			tour := apitourtest.NewFakeTourCLI(t, URL)
			if kind := run(tour); kind != pipeline.KindTransportFailure {
				t.Fatal("unexpected kind", kind)
			}
			if diff := cmp.Diff([]string{"transport_failure"}, apitourtest.Outcomes(t, tour)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
