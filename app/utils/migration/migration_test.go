package migration

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMigrator_Load(t *testing.T) {
	files := fstest.MapFS{
		"002_add_last_seen_index.up.sql":   {Data: []byte("CREATE INDEX idx_sessions_last_seen ON sessions (last_seen_at);")},
		"002_add_last_seen_index.down.sql": {Data: []byte("DROP INDEX idx_sessions_last_seen;")},
		"001_create_sessions.up.sql":       {Data: []byte("CREATE TABLE sessions (token TEXT PRIMARY KEY);")},
		"001_create_sessions.down.sql":     {Data: []byte("DROP TABLE sessions;")},
	}

	m := NewMigrator(nil, testLogger(), files)
	migrations, err := m.Load()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version, "migrations sort by version regardless of walk order")
	assert.Equal(t, "create_sessions", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "add_last_seen_index", migrations[1].Name)

	assert.Contains(t, migrations[0].UpSQL, "CREATE TABLE sessions")
	assert.Contains(t, migrations[0].DownSQL, "DROP TABLE sessions")
	assert.Len(t, migrations[0].Checksum, 64, "sha256 hex digest")
}

func TestMigrator_LoadSkipsMalformedNames(t *testing.T) {
	files := fstest.MapFS{
		"001_create_sessions.up.sql":   {Data: []byte("CREATE TABLE sessions (token TEXT PRIMARY KEY);")},
		"001_create_sessions.down.sql": {Data: []byte("DROP TABLE sessions;")},
		"notaversion.up.sql":           {Data: []byte("SELECT 1;")},
		"abc_bad_version.up.sql":       {Data: []byte("SELECT 1;")},
		"README.md":                    {Data: []byte("docs")},
	}

	m := NewMigrator(nil, testLogger(), files)
	migrations, err := m.Load()
	require.NoError(t, err)

	require.Len(t, migrations, 1)
	assert.Equal(t, "create_sessions", migrations[0].Name)
}

func TestMigrator_LoadRequiresDownPair(t *testing.T) {
	files := fstest.MapFS{
		"001_create_sessions.up.sql": {Data: []byte("CREATE TABLE sessions (token TEXT PRIMARY KEY);")},
	}

	m := NewMigrator(nil, testLogger(), files)
	_, err := m.Load()

	assert.Error(t, err, "an up migration without its down pair must fail loudly")
}

func TestChecksum(t *testing.T) {
	a := checksum("CREATE TABLE sessions (token TEXT PRIMARY KEY);")
	b := checksum("CREATE TABLE sessions (token TEXT PRIMARY KEY);")
	c := checksum("CREATE TABLE sessions (token TEXT PRIMARY KEY);\n-- edited")

	assert.Equal(t, a, b, "checksum is deterministic")
	assert.NotEqual(t, a, c, "any edit changes the checksum")
	assert.Len(t, a, 64)
}
