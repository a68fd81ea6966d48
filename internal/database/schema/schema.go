// Package schema owns the startup schema lifecycle. The service wipes
// and recreates all tables on every start, then reseeds reference
// data; there is no incremental migration story.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/etaubman/annotations/internal/database"
)

type step struct {
	Name string
	SQL  string
}

// Dropped in reverse dependency order so foreign keys never dangle.
var dropSteps = []step{
	{Name: "drop_table_annotations", SQL: `DROP TABLE IF EXISTS annotations;`},
	{Name: "drop_table_documents", SQL: `DROP TABLE IF EXISTS documents;`},
	{Name: "drop_table_document_data_elements", SQL: `DROP TABLE IF EXISTS document_data_elements;`},
	{Name: "drop_table_data_elements", SQL: `DROP TABLE IF EXISTS data_elements;`},
	{Name: "drop_table_document_types", SQL: `DROP TABLE IF EXISTS document_types;`},
}

var sqliteSteps = []step{
	{
		Name: "create_table_document_types",
		SQL: `CREATE TABLE document_types (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL UNIQUE,
  description TEXT
);`,
	},
	{
		Name: "create_table_data_elements",
		SQL: `CREATE TABLE data_elements (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL,
  description TEXT
);`,
	},
	{
		Name: "create_table_document_data_elements",
		SQL: `CREATE TABLE document_data_elements (
  document_type_id INTEGER NOT NULL REFERENCES document_types (id),
  data_element_id  INTEGER NOT NULL REFERENCES data_elements (id),
  is_required      BOOLEAN NOT NULL DEFAULT 0,
  allow_multiple   BOOLEAN NOT NULL DEFAULT 0,
  PRIMARY KEY (document_type_id, data_element_id)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE documents (
  id               INTEGER PRIMARY KEY AUTOINCREMENT,
  file_path        TEXT NOT NULL UNIQUE,
  uploaded_at      TIMESTAMP NOT NULL,
  document_type_id INTEGER REFERENCES document_types (id),
  created_by       TEXT
);`,
	},
	{
		Name: "create_table_annotations",
		SQL: `CREATE TABLE annotations (
  id               INTEGER PRIMARY KEY AUTOINCREMENT,
  document_id      INTEGER NOT NULL REFERENCES documents (id),
  page             INTEGER NOT NULL,
  x                REAL NOT NULL,
  y                REAL NOT NULL,
  width            REAL NOT NULL,
  height           REAL NOT NULL,
  value            TEXT NOT NULL,
  annotation_value TEXT,
  created_at       TIMESTAMP NOT NULL,
  created_by       TEXT
);`,
	},
	{
		Name: "create_index_annotations_document_id",
		SQL:  `CREATE INDEX idx_annotations_document_id ON annotations (document_id);`,
	},
}

var postgresSteps = []step{
	{
		Name: "create_table_document_types",
		SQL: `CREATE TABLE document_types (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT NOT NULL UNIQUE,
  description TEXT
);`,
	},
	{
		Name: "create_table_data_elements",
		SQL: `CREATE TABLE data_elements (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT NOT NULL,
  description TEXT
);`,
	},
	{
		Name: "create_table_document_data_elements",
		SQL: `CREATE TABLE document_data_elements (
  document_type_id BIGINT  NOT NULL REFERENCES document_types (id),
  data_element_id  BIGINT  NOT NULL REFERENCES data_elements (id),
  is_required      BOOLEAN NOT NULL DEFAULT FALSE,
  allow_multiple   BOOLEAN NOT NULL DEFAULT FALSE,
  PRIMARY KEY (document_type_id, data_element_id)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE documents (
  id               BIGSERIAL   PRIMARY KEY,
  file_path        TEXT        NOT NULL UNIQUE,
  uploaded_at      TIMESTAMPTZ NOT NULL,
  document_type_id BIGINT      REFERENCES document_types (id),
  created_by       TEXT
);`,
	},
	{
		Name: "create_table_annotations",
		SQL: `CREATE TABLE annotations (
  id               BIGSERIAL        PRIMARY KEY,
  document_id      BIGINT           NOT NULL REFERENCES documents (id),
  page             INTEGER          NOT NULL,
  x                DOUBLE PRECISION NOT NULL,
  y                DOUBLE PRECISION NOT NULL,
  width            DOUBLE PRECISION NOT NULL,
  height           DOUBLE PRECISION NOT NULL,
  value            TEXT             NOT NULL,
  annotation_value TEXT,
  created_at       TIMESTAMPTZ      NOT NULL,
  created_by       TEXT
);`,
	},
	{
		Name: "create_index_annotations_document_id",
		SQL:  `CREATE INDEX idx_annotations_document_id ON annotations (document_id);`,
	},
}

// Reset drops every table and recreates the schema for the given
// driver. Existing data, including previously seeded reference rows,
// is discarded; the caller is expected to reseed afterwards.
func Reset(ctx context.Context, db *sql.DB, driver string) error {
	createSteps := sqliteSteps
	if driver == database.DriverPostgres {
		createSteps = postgresSteps
	}

	start := time.Now()
	log := logrus.WithField("component", "schema")
	log.WithField("driver", driver).Info("resetting database schema")

	for _, s := range append(append([]step{}, dropSteps...), createSteps...) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"step":        s.Name,
				"duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("schema step failed")
			return fmt.Errorf("schema step %s: %w", s.Name, err)
		}
		log.WithFields(logrus.Fields{
			"step":        s.Name,
			"duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("schema step applied")
	}

	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("schema reset complete")
	return nil
}
