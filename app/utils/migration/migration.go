package migration

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Migration is one versioned schema change, loaded from paired
// NNN_name.up.sql / NNN_name.down.sql files.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	Checksum  string
	AppliedAt time.Time
}

// Migrator applies the session-store schema. Bookkeeping lives in the
// schema_migrations table alongside the sessions it manages.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
	files  fs.FS
}

// NewMigrator creates a new migration manager
func NewMigrator(db *sql.DB, logger *slog.Logger, files fs.FS) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger.With("component", "migrator"),
		files:  files,
	}
}

func (m *Migrator) ensureBookkeeping() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// Load reads every up/down pair from the filesystem, sorted by version.
func (m *Migrator) Load() ([]Migration, error) {
	var migrations []Migration

	err := fs.WalkDir(m.files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		parts := strings.SplitN(strings.TrimSuffix(filename, ".up.sql"), "_", 2)
		if len(parts) != 2 {
			m.logger.Warn("skipping migration with unexpected filename", "filename", filename)
			return nil
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			m.logger.Warn("skipping migration with non-numeric version", "filename", filename)
			return nil
		}

		upSQL, err := fs.ReadFile(m.files, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		downPath := strings.Replace(path, ".up.sql", ".down.sql", 1)
		downSQL, err := fs.ReadFile(m.files, downPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", downPath, err)
		}

		migrations = append(migrations, Migration{
			Version:  version,
			Name:     parts[1],
			UpSQL:    string(upSQL),
			DownSQL:  string(downSQL),
			Checksum: checksum(string(upSQL)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// Applied returns the recorded migrations in version order.
func (m *Migrator) Applied() ([]Migration, error) {
	rows, err := m.db.Query(`SELECT version, name, checksum, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	var applied []Migration
	for rows.Next() {
		var mg Migration
		if err := rows.Scan(&mg.Version, &mg.Name, &mg.Checksum, &mg.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied = append(applied, mg)
	}
	return applied, rows.Err()
}

// Up applies every pending migration. A checksum mismatch on an already
// applied migration aborts: the file changed after it ran.
func (m *Migrator) Up() error {
	if err := m.ensureBookkeeping(); err != nil {
		return err
	}

	all, err := m.Load()
	if err != nil {
		return err
	}
	applied, err := m.Applied()
	if err != nil {
		return err
	}

	appliedByVersion := make(map[int]Migration, len(applied))
	for _, mg := range applied {
		appliedByVersion[mg.Version] = mg
	}

	for _, mg := range all {
		if prior, ok := appliedByVersion[mg.Version]; ok {
			if prior.Checksum != mg.Checksum {
				return fmt.Errorf("migration %03d_%s changed after being applied", mg.Version, mg.Name)
			}
			continue
		}

		if err := m.apply(mg); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", mg.Version, err)
		}
		m.logger.Info("applied migration", "version", mg.Version, "name", mg.Name)
	}
	return nil
}

// Down rolls back the most recent steps migrations (1 if steps < 1).
func (m *Migrator) Down(steps int) error {
	if steps < 1 {
		steps = 1
	}

	applied, err := m.Applied()
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		m.logger.Info("no migrations to roll back")
		return nil
	}

	all, err := m.Load()
	if err != nil {
		return err
	}
	byVersion := make(map[int]Migration, len(all))
	for _, mg := range all {
		byVersion[mg.Version] = mg
	}

	for i := 0; i < steps && len(applied) > 0; i++ {
		last := applied[len(applied)-1]
		applied = applied[:len(applied)-1]

		mg, ok := byVersion[last.Version]
		if !ok {
			return fmt.Errorf("migration %d not found in filesystem", last.Version)
		}
		if err := m.rollback(mg); err != nil {
			return fmt.Errorf("failed to roll back migration %d: %w", mg.Version, err)
		}
		m.logger.Info("rolled back migration", "version", mg.Version, "name", mg.Name)
	}
	return nil
}

func (m *Migrator) apply(mg Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(mg.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		mg.Version, mg.Name, mg.Checksum,
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}

func (m *Migrator) rollback(mg Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(mg.DownSQL); err != nil {
		return fmt.Errorf("failed to execute rollback: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, mg.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}
	return tx.Commit()
}

// Status logs each known migration and whether it has been applied.
func (m *Migrator) Status() error {
	all, err := m.Load()
	if err != nil {
		return err
	}
	applied, err := m.Applied()
	if err != nil {
		return err
	}

	appliedAt := make(map[int]time.Time, len(applied))
	for _, mg := range applied {
		appliedAt[mg.Version] = mg.AppliedAt
	}

	for _, mg := range all {
		if ts, ok := appliedAt[mg.Version]; ok {
			m.logger.Info("migration applied",
				"version", mg.Version,
				"name", mg.Name,
				"applied_at", ts.Format(time.RFC3339))
		} else {
			m.logger.Info("migration pending", "version", mg.Version, "name", mg.Name)
		}
	}
	return nil
}

func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
