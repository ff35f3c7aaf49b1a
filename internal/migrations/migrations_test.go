package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
	assert.Positive(t, ups)

	up, err := fs.ReadFile(files, "sql/000001_create_progress_records.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "UNIQUE KEY uq_progress_topic_week_day (topic, week, day)")
	// topic identity is exact: "Spark" and "spark" are different keys
	assert.Contains(t, string(up), "topic VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL")
}

func TestEmbeddedMigrations_Source(t *testing.T) {
	source, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer source.Close()

	version, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}
