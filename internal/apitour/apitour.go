// Package apitour contains the state shared by the apitour commands.
package apitour

import (
	"net/http"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/config"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/lookup"
	"github.com/apitour/apitour-cli/internal/model"
	"github.com/apitour/apitour-cli/internal/snapshot"
	"github.com/apitour/apitour-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/upper/db/v4"
)

// DefaultSoftwareName is the default software name.
const DefaultSoftwareName = "apitour"

// TourCLI is the apitour CLI context.
type TourCLI interface {
	Config() *config.Config
	DB() db.Session
	Home() string
	Tables() *lookup.Tables
	HTTPConfig() *httpclientx.Config
	Snapshots() *snapshot.Store
	SessionID() string
}

// Tour contains the apitour CLI context.
type Tour struct {
	config    *config.Config
	db        db.Session
	tables    *lookup.Tables
	snapshots *snapshot.Store
	http      *httpclientx.Config

	home       string
	configPath string
	dbPath     string
	sessionID  string

	timeout      time.Duration
	saveDisabled bool

	softwareName    string
	softwareVersion string
}

var _ TourCLI = &Tour{}

// NewTour creates a new tour instance.
func NewTour(configPath string, homePath string) *Tour {
	return &Tour{
		home:       homePath,
		config:     &config.Config{},
		configPath: configPath,
		tables:     lookup.Default(),
	}
}

// SetTimeout overrides the configured timeout when d is positive.
func (t *Tour) SetTimeout(d time.Duration) {
	t.timeout = d
}

// SetSaveSnapshots allows disabling snapshots regardless of the config.
func (t *Tour) SetSaveSnapshots(v bool) {
	t.saveDisabled = !v
}

// Config returns the configuration
func (t *Tour) Config() *config.Config {
	return t.config
}

// DB returns the database we're using
func (t *Tour) DB() db.Session {
	return t.db
}

// Home returns the home directory.
func (t *Tour) Home() string {
	return t.home
}

// Tables returns the static lookup tables.
func (t *Tour) Tables() *lookup.Tables {
	return t.tables
}

// HTTPConfig returns the config shared by every API client.
func (t *Tour) HTTPConfig() *httpclientx.Config {
	return t.http
}

// Snapshots returns the snapshot store or nil when snapshots are disabled.
func (t *Tour) Snapshots() *snapshot.Store {
	return t.snapshots
}

// SessionID returns the identifier of this process, stored with each lookup.
func (t *Tour) SessionID() string {
	return t.sessionID
}

// Init the apitour context
func (t *Tour) Init(softwareName, softwareVersion string) error {
	var err error

	if err = MaybeInitializeHome(t.home); err != nil {
		return err
	}

	if t.configPath != "" {
		log.Debugf("Reading config file from %s", t.configPath)
		t.config, err = config.ReadConfig(t.configPath)
	} else {
		log.Debug("Reading default config file")
		t.config, err = InitDefaultConfig(t.home)
	}
	if err != nil {
		return err
	}

	t.dbPath = utils.DBPath(t.home, "main")
	log.Debugf("Connecting to database sqlite3://%s", t.dbPath)
	sess, err := database.Connect(t.dbPath)
	if err != nil {
		return err
	}
	t.db = sess

	if t.config.Snapshots.Enabled && !t.saveDisabled {
		dir := t.config.Snapshots.Dir
		if dir == "" {
			dir = utils.SnapshotDir(t.home)
		}
		store, err := snapshot.New(dir)
		if err != nil {
			log.WithError(err).Warn("cannot create snapshot dir; snapshots disabled")
		}
		t.snapshots = store
	}

	timeout := t.config.Timeout()
	if t.timeout > 0 {
		timeout = t.timeout
	}
	userAgent := t.config.Network.UserAgent
	if userAgent == "" {
		userAgent = softwareName + "/" + softwareVersion
	}
	t.http = &httpclientx.Config{
		Client:    &http.Client{Timeout: timeout},
		Logger:    log.Log,
		UserAgent: userAgent,
	}

	t.sessionID = uuid.NewString()
	t.softwareName = softwareName
	t.softwareVersion = softwareVersion
	return nil
}

// Close releases the resources used by the tour.
func (t *Tour) Close() error {
	if t.db == nil {
		return nil
	}
	return t.db.Close()
}

// MaybeInitializeHome does the setup for a new apitour home
func MaybeInitializeHome(home string) error {
	for _, d := range utils.RequiredDirs(home) {
		if _, e := os.Stat(d); e != nil {
			if err := os.MkdirAll(d, 0700); err != nil {
				return err
			}
		}
	}
	return nil
}

// InitDefaultConfig reads the config from the home or creates it if
// missing.
func InitDefaultConfig(home string) (*config.Config, error) {
	configPath := utils.ConfigPath(home)

	c, err := config.ReadConfig(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("writing default config to %s", configPath)
			if err = os.WriteFile(configPath, config.DefaultConfig, 0644); err != nil {
				return nil, err
			}
			return InitDefaultConfig(home)
		}
		return nil, err
	}

	return c, nil
}

// ensure the logger is compatible
var _ model.Logger = log.Log
