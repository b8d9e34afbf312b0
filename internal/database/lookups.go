package database

import (
	"time"

	"github.com/pkg/errors"
	"github.com/upper/db/v4"
)

// ErrNoSuchLookup indicates that a lookup does not exist.
var ErrNoSuchLookup = errors.New("no such lookup")

// Lookup is a row of the lookups table.
type Lookup struct {
	ID           int64     `db:"id,omitempty"`
	SessionID    string    `db:"session_id"`
	Operation    string    `db:"operation"`
	Target       string    `db:"target"`
	Outcome      string    `db:"outcome"`
	Reason       string    `db:"reason"`
	SnapshotPath string    `db:"snapshot_path"`
	StartTime    time.Time `db:"start_time"`
	Runtime      float64   `db:"runtime"` // fractional seconds
}

// CreateLookup inserts lookup and assigns its ID.
func CreateLookup(sess db.Session, lookup *Lookup) error {
	res, err := sess.Collection("lookups").Insert(lookup)
	if err != nil {
		return errors.Wrap(err, "creating lookup")
	}
	switch id := res.ID().(type) {
	case int64:
		lookup.ID = id
	case int:
		lookup.ID = int64(id)
	}
	return nil
}

// ListLookups returns at most limit lookups, newest first. A
// non-positive limit means no limit.
func ListLookups(sess db.Session, limit int) ([]Lookup, error) {
	lookups := []Lookup{}
	res := sess.Collection("lookups").Find().OrderBy("-id")
	if limit > 0 {
		res = res.Limit(limit)
	}
	if err := res.All(&lookups); err != nil {
		return nil, errors.Wrap(err, "listing lookups")
	}
	return lookups, nil
}

// GetLookup returns the lookup with the given id.
func GetLookup(sess db.Session, id int64) (*Lookup, error) {
	var lookup Lookup
	err := sess.Collection("lookups").Find(db.Cond{"id": id}).One(&lookup)
	if errors.Is(err, db.ErrNoMoreRows) {
		return nil, ErrNoSuchLookup
	}
	if err != nil {
		return nil, errors.Wrap(err, "getting lookup")
	}
	return &lookup, nil
}
