// Package apitourtest contains code used for testing.
package apitourtest

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/config"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/lookup"
	"github.com/apitour/apitour-cli/internal/model"
	"github.com/apitour/apitour-cli/internal/snapshot"
	"github.com/upper/db/v4"
)

// FakeOutput allows to fake the output package.
type FakeOutput struct {
	FakeSectionTitle []string
	mu               sync.Mutex
}

// SectionTitle writes the section title.
func (fo *FakeOutput) SectionTitle(s string) {
	fo.mu.Lock()
	defer fo.mu.Unlock()
	fo.FakeSectionTitle = append(fo.FakeSectionTitle, s)
}

// FakeTourCLI fakes apitour.TourCLI
type FakeTourCLI struct {
	FakeConfig     *config.Config
	FakeDB         db.Session
	FakeHome       string
	FakeTables     *lookup.Tables
	FakeHTTPConfig *httpclientx.Config
	FakeSnapshots  *snapshot.Store
	FakeSessionID  string
}

// Config implements TourCLI.Config
func (cli *FakeTourCLI) Config() *config.Config {
	return cli.FakeConfig
}

// DB implements TourCLI.DB
func (cli *FakeTourCLI) DB() db.Session {
	return cli.FakeDB
}

// Home implements TourCLI.Home
func (cli *FakeTourCLI) Home() string {
	return cli.FakeHome
}

// Tables implements TourCLI.Tables
func (cli *FakeTourCLI) Tables() *lookup.Tables {
	return cli.FakeTables
}

// HTTPConfig implements TourCLI.HTTPConfig
func (cli *FakeTourCLI) HTTPConfig() *httpclientx.Config {
	return cli.FakeHTTPConfig
}

// Snapshots implements TourCLI.Snapshots
func (cli *FakeTourCLI) Snapshots() *snapshot.Store {
	return cli.FakeSnapshots
}

// SessionID implements TourCLI.SessionID
func (cli *FakeTourCLI) SessionID() string {
	return cli.FakeSessionID
}

var _ apitour.TourCLI = &FakeTourCLI{}

// NewFakeTourCLI returns a [*FakeTourCLI] backed by a temporary home with
// a real database and snapshot store. Every endpoint points to URL.
func NewFakeTourCLI(t *testing.T, URL string) *FakeTourCLI {
	home := t.TempDir()
	sess, err := database.Connect(filepath.Join(home, "main.sqlite3"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sess.Close() })
	store, err := snapshot.New(filepath.Join(home, "snapshots"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.ParseConfig(config.DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Endpoints = config.Endpoints{
		Geocoding:   URL + "/v1/search",
		AirQuality:  URL + "/v1/air-quality",
		Weather:     URL + "/v1/forecast",
		Tickers:     URL + "/v1/tickers",
		Movies:      URL + "/omdb/",
		Placeholder: URL + "/placeholder",
	}
	return &FakeTourCLI{
		FakeConfig: cfg,
		FakeDB:     sess,
		FakeHome:   home,
		FakeTables: lookup.Default(),
		FakeHTTPConfig: &httpclientx.Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: model.HTTPHeaderUserAgent,
		},
		FakeSnapshots: store,
		FakeSessionID: "00000000-0000-0000-0000-000000000000",
	}
}

// FakeLoggerHandler fakes a logger handler.
type FakeLoggerHandler struct {
	FakeEntries []*log.Entry
	mu          sync.Mutex
}

// HandleLog implements log.Handler.HandleLog.
func (handler *FakeLoggerHandler) HandleLog(entry *log.Entry) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	handler.FakeEntries = append(handler.FakeEntries, entry)
	return nil
}

// Entries returns a copy of the collected entries.
func (handler *FakeLoggerHandler) Entries() []*log.Entry {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	return append([]*log.Entry{}, handler.FakeEntries...)
}

// Typed returns the entries with the given "type" field.
func (handler *FakeLoggerHandler) Typed(t string) []*log.Entry {
	var out []*log.Entry
	for _, e := range handler.Entries() {
		if e.Fields["type"] == t {
			out = append(out, e)
		}
	}
	return out
}

// NewLogger returns a logger writing into a new [*FakeLoggerHandler].
func NewLogger() (*FakeLoggerHandler, log.Interface) {
	handler := &FakeLoggerHandler{}
	return handler, &log.Logger{Handler: handler, Level: log.DebugLevel}
}

// ClosedServerURL returns the URL of a server that is no longer
// listening, so that connecting to it fails.
func ClosedServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	URL := server.URL
	server.Close()
	return URL
}

// Outcomes returns the outcome of every recorded lookup, oldest first.
func Outcomes(t *testing.T, cli *FakeTourCLI) []string {
	lookups, err := database.ListLookups(cli.FakeDB, 0)
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for idx := len(lookups) - 1; idx >= 0; idx-- {
		out = append(out, lookups[idx].Outcome)
	}
	return out
}
