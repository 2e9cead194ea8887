package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lshigami/Lapras/config"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatementsSkipsCommentsAndBlanks(t *testing.T) {
	script := `-- seed users
INSERT INTO users (username, email) VALUES ('alice', 'alice@example.com');

-- seed lessons
INSERT INTO lessons (title) VALUES ('Intro');
`
	stmts := splitStatements(script)
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO users (username, email) VALUES ('alice', 'alice@example.com')", stmts[0])
	assert.Equal(t, "INSERT INTO lessons (title) VALUES ('Intro')", stmts[1])
}

func TestResetContinuesPastFailedSeedStatement(t *testing.T) {
	db := newTestDB(t)

	seed := filepath.Join(t.TempDir(), "seed.sql")
	script := `INSERT INTO users (username, email) VALUES ('alice', 'alice@example.com');
INSERT INTO no_such_table (id) VALUES (1);
INSERT INTO users (username, email) VALUES ('bob', 'bob@example.com');
`
	require.NoError(t, os.WriteFile(seed, []byte(script), 0o644))

	cfg := &config.Config{SeedFile: seed}
	require.NoError(t, NewResetService(db, cfg).Reset())

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestResetSkipsMissingSeedFile(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{SeedFile: filepath.Join(t.TempDir(), "absent.sql")}
	require.NoError(t, NewResetService(db, cfg).Reset())
}
