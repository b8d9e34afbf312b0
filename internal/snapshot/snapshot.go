// Package snapshot saves decoded API responses as indented JSON files.
package snapshot

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// Store is a directory containing snapshots.
type Store struct {
	basedir string
}

// New creates a new [*Store] rooted at basedir, creating basedir if needed.
func New(basedir string) (*Store, error) {
	return newStore(basedir, os.MkdirAll)
}

// osMkdirAll is the type of os.MkdirAll.
type osMkdirAll func(path string, perm fs.FileMode) error

// newStore is like New with a customizable osMkdirAll.
func newStore(basedir string, mkdir osMkdirAll) (*Store, error) {
	if err := mkdir(basedir, 0700); err != nil {
		return nil, err
	}
	return &Store{basedir: basedir}, nil
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.basedir
}

// Filename returns the file name used for the given kind and identifier,
// e.g. Filename("weather", "New York") is "weather_new_york.json".
func Filename(kind, id string) string {
	return sanitize(kind) + "_" + sanitize(id) + ".json"
}

func sanitize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, value)
}

// Save writes value as indented JSON, overwriting any previous snapshot
// with the same kind and identifier, and returns the file path.
func (s *Store) Save(kind, id string, value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding snapshot")
	}
	path := filepath.Join(s.basedir, Filename(kind, id))
	if err := lockedfile.Write(path, bytes.NewReader(data), 0644); err != nil {
		return "", errors.Wrap(err, "writing snapshot")
	}
	return path, nil
}

// Load reads and decodes the snapshot at path.
func Load(path string) (any, error) {
	data, err := lockedfile.Read(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot")
	}
	return value, nil
}
