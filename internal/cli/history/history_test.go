package history

import (
	"testing"
	"time"

	"github.com/apitour/apitour-cli/internal/apitourtest"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/google/go-cmp/cmp"
)

func insert(t *testing.T, cli *apitourtest.FakeTourCLI, l *database.Lookup) {
	if l.StartTime.IsZero() {
		l.StartTime = time.Now().UTC()
	}
	if err := database.CreateLookup(cli.DB(), l); err != nil {
		t.Fatal(err)
	}
}

func TestList(t *testing.T) {
	t.Run("when empty", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, "http://127.0.0.1")
		handler, logger := apitourtest.NewLogger()
		if err := list(tour, logger, 20); err != nil {
			t.Fatal(err)
		}
		if len(handler.Typed("grid")) != 0 {
			t.Fatal("expected no grid")
		}
	})

	t.Run("newest first", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, "http://127.0.0.1")
		insert(t, tour, &database.Lookup{Operation: "weather", Target: "delhi", Outcome: "success"})
		insert(t, tour, &database.Lookup{Operation: "crypto price", Target: "dogecoin", Outcome: "miss"})
		insert(t, tour, &database.Lookup{Operation: "aqi", Target: "pune", Outcome: "transport_failure"})
		handler, logger := apitourtest.NewLogger()
		if err := list(tour, logger, 2); err != nil {
			t.Fatal(err)
		}
		grids := handler.Typed("grid")
		if len(grids) != 1 {
			t.Fatal("expected a single grid")
		}
		var got [][]string
		for _, row := range grids[0].Fields["rows"].([][]string) {
			got = append(got, []string{row[0], row[2], row[3], row[4]})
		}
		expect := [][]string{
			{"3", "aqi", "pune", "transport_failure"},
			{"2", "crypto price", "dogecoin", "miss"},
		}
		if diff := cmp.Diff(expect, got); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestShow(t *testing.T) {
	t.Run("with a snapshot", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, "http://127.0.0.1")
		path, err := tour.Snapshots().Save("weather", "delhi", map[string]any{"temperature": 30.5})
		if err != nil {
			t.Fatal(err)
		}
		insert(t, tour, &database.Lookup{
			Operation:    "weather",
			Target:       "delhi",
			Outcome:      "success",
			SnapshotPath: path,
		})
		handler, logger := apitourtest.NewLogger()
		if err := show(tour, logger, 1); err != nil {
			t.Fatal(err)
		}
		if fields := handler.Typed("fields"); len(fields) != 1 || fields[0].Message != "Lookup #1" {
			t.Fatal("unexpected fields", fields)
		}
		docs := handler.Typed("json")
		if len(docs) != 1 {
			t.Fatal("expected the snapshot")
		}
		expect := map[string]any{"temperature": 30.5}
		if diff := cmp.Diff(expect, docs[0].Fields["value"]); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with a missing lookup", func(t *testing.T) {
		tour := apitourtest.NewFakeTourCLI(t, "http://127.0.0.1")
		handler, logger := apitourtest.NewLogger()
		if err := show(tour, logger, 7); err != nil {
			t.Fatal(err)
		}
		entries := handler.Entries()
		if len(entries) != 1 || entries[0].Message != "lookup 7 not found" {
			t.Fatal("unexpected entries", entries)
		}
	})
}
