package apitour

import (
	"time"

	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
)

// Invocation tracks a single lookup from start to finish and records
// its outcome in the history database.
type Invocation struct {
	logger log.Interface
	row    *database.Lookup
	tour   TourCLI
	done   bool
}

// Begin starts tracking an invocation of operation on target.
func Begin(tour TourCLI, logger log.Interface, operation, target string) *Invocation {
	logger.Debugf("%s: %s", operation, target)
	return &Invocation{
		logger: logger,
		row: &database.Lookup{
			SessionID: tour.SessionID(),
			Operation: operation,
			Target:    target,
			StartTime: time.Now().UTC(),
		},
		tour: tour,
	}
}

// Check finishes the invocation and returns false unless kind is a success.
func (inv *Invocation) Check(kind pipeline.Kind, reason string) bool {
	if kind == pipeline.KindSuccess {
		return true
	}
	inv.Finish(kind, reason)
	return false
}

// Save writes a snapshot of value when snapshots are enabled. Failures
// are logged and otherwise ignored.
func (inv *Invocation) Save(kind, id string, value any) {
	store := inv.tour.Snapshots()
	if store == nil {
		return
	}
	path, err := store.Save(kind, id, value)
	if err != nil {
		inv.logger.WithError(err).Warn("cannot save snapshot")
		return
	}
	inv.row.SnapshotPath = path
	output.Saved(inv.logger, path)
}

// Finish logs non successful outcomes and records the invocation. It
// is safe to call Finish more than once; only the first call counts.
func (inv *Invocation) Finish(kind pipeline.Kind, reason string) {
	if inv.done {
		return
	}
	inv.done = true
	output.Outcome(inv.logger, kind, reason)
	inv.row.Outcome = kind.String()
	inv.row.Reason = reason
	inv.row.Runtime = time.Since(inv.row.StartTime).Seconds()
	sess := inv.tour.DB()
	if sess == nil {
		return
	}
	if err := database.CreateLookup(sess, inv.row); err != nil {
		inv.logger.WithError(err).Warn("cannot record lookup")
	}
}

// Done is a shorthand for Finish(pipeline.KindSuccess, "").
func (inv *Invocation) Done() {
	inv.Finish(pipeline.KindSuccess, "")
}

// Record returns the history row. Its ID is set once Finish has stored it.
func (inv *Invocation) Record() *database.Lookup {
	return inv.row
}
