package db

// SchemaSQL is the complete schema for fresh tether installs.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. All tests use
// it via GetSchemaSQL() so that repository code and test fixtures cannot
// drift apart: a repository referencing a missing column fails immediately
// with "no such column" instead of in production.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Spaces (local containers for remote teams/organizations)
CREATE TABLE IF NOT EXISTS spaces (
	id TEXT PRIMARY KEY,
	remote_id TEXT,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- At most one local space per distinct remote team
CREATE UNIQUE INDEX IF NOT EXISTS idx_spaces_remote_id ON spaces(remote_id) WHERE remote_id IS NOT NULL;

-- Workspaces (checked-out project roots; id is the remote root document id)
CREATE TABLE IF NOT EXISTS workspaces (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	parent_id TEXT NOT NULL,
	scope TEXT NOT NULL CHECK(scope IN ('collection', 'design', 'mock')) DEFAULT 'collection',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (parent_id) REFERENCES spaces(id)
);

CREATE INDEX IF NOT EXISTS idx_workspaces_parent ON workspaces(parent_id);

-- Documents (generic children of a workspace's space: requests etc.)
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	parent_id TEXT NOT NULL,
	type TEXT,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_parent ON documents(parent_id);
`

// schemaVersionMax is the highest migration version; fresh installs are
// stamped at this version so migrations never re-run.
const schemaVersionMax = 2

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create the modern schema directly and
		// stamp schema_version at max so migrations never run against it.
		_, err = db.Exec(SchemaSQL)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for i := 1; i <= schemaVersionMax; i++ {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", i)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
