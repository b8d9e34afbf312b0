package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/apitour/apitour-cli/internal/apitourtest"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/apitour/apitour-cli/internal/snapshot"
	"github.com/google/go-cmp/cmp"
)

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" || r.URL.Query().Get("latitude") != "28.6139" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"current_weather": {"temperature": 31.2, "windspeed": 7.4,
			"winddirection": 250, "weathercode": 3}}`))
	}))
}

func TestShowSuccess(t *testing.T) {
	server := newServer()
	defer server.Close()
	tour := apitourtest.NewFakeTourCLI(t, server.URL)
	handler, logger := apitourtest.NewLogger()

	if kind := Show(context.Background(), tour, logger, "Delhi"); kind != pipeline.KindSuccess {
		t.Fatal("unexpected kind", kind)
	}

	fields := handler.Typed("fields")
	if len(fields) != 1 {
		t.Fatal("expected a single fields entry")
	}
	if fields[0].Message != "Weather in Delhi" {
		t.Fatal("unexpected title", fields[0].Message)
	}
	expect := []output.Pair{
		{Label: "Temperature", Value: "31.2°C"},
		{Label: "Wind Speed", Value: "7.4 km/h"},
		{Label: "Wind Direction", Value: "250°"},
		{Label: "Condition", Value: "Overcast"},
	}
	if diff := cmp.Diff(expect, fields[0].Fields["pairs"]); diff != "" {
		t.Fatal(diff)
	}

	path := filepath.Join(tour.Snapshots().Dir(), "weather_delhi.json")
	value, err := snapshot.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	current := value.(map[string]any)["current_weather"].(map[string]any)
	if current["weathercode"] != float64(3) {
		t.Fatal("unexpected snapshot", value)
	}

	lookups, err := database.ListLookups(tour.DB(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lookups) != 1 || lookups[0].Outcome != "success" || lookups[0].SnapshotPath != path {
		t.Fatal("unexpected lookups", lookups)
	}
}

func TestShowUnknownCity(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()
	tour := apitourtest.NewFakeTourCLI(t, server.URL)
	handler, logger := apitourtest.NewLogger()

	if kind := Show(context.Background(), tour, logger, "atlantis"); kind != pipeline.KindMiss {
		t.Fatal("unexpected kind", kind)
	}
	if requests != 0 {
		t.Fatal("expected no requests")
	}
	entries := handler.Entries()
	last := entries[len(entries)-1]
	if last.Message != "available cities: delhi, mumbai, bangalore, chennai, kolkata, hyderabad, "+
		"pune, ahmedabad, jaipur, nashik, new york, london, tokyo, sydney, seoul, singapore, dubai" {
		t.Fatal("unexpected message", last.Message)
	}
}

func TestShowTransportFailure(t *testing.T) {
	server := newServer()
	URL := server.URL
	server.Close()
	tour := apitourtest.NewFakeTourCLI(t, URL)
	handler, logger := apitourtest.NewLogger()

	if kind := Show(context.Background(), tour, logger, "delhi"); kind != pipeline.KindTransportFailure {
		t.Fatal("unexpected kind", kind)
	}
	if len(handler.Typed("fields")) != 0 {
		t.Fatal("expected no output")
	}
	lookups, err := database.ListLookups(tour.DB(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lookups) != 1 || lookups[0].Outcome != "transport_failure" || lookups[0].Reason == "" {
		t.Fatal("unexpected lookups", lookups)
	}
}
