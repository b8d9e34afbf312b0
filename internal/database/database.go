// Package database stores the history of lookups in sqlite.
package database

import (
	"database/sql"

	"github.com/apex/log"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
)

// migrations contains the schema migrations in order.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{{
		Id: "001-lookups",
		Up: []string{`CREATE TABLE lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id VARCHAR(64) NOT NULL,
			operation VARCHAR(64) NOT NULL,
			target VARCHAR(255) NOT NULL,
			outcome VARCHAR(32) NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			snapshot_path TEXT NOT NULL DEFAULT '',
			start_time DATETIME NOT NULL,
			runtime REAL NOT NULL DEFAULT 0
		);`,
			`CREATE INDEX lookups_start_time ON lookups(start_time);`,
		},
		Down: []string{`DROP TABLE lookups;`},
	}},
}

// RunMigrations runs the database migrations.
func RunMigrations(db *sql.DB) error {
	n, err := migrate.Exec(db, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return errors.Wrap(err, "running migrations")
	}
	log.Debugf("performed %d migrations", n)
	return nil
}

// Connect opens the database at path and runs the migrations.
func Connect(path string) (db.Session, error) {
	sess, err := sqlite.Open(sqlite.ConnectionURL{Database: path})
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	driver, ok := sess.Driver().(*sql.DB)
	if !ok {
		sess.Close()
		return nil, errors.New("unexpected database driver")
	}
	if err := RunMigrations(driver); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}
