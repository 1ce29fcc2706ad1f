package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := source().FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i := 1; i < len(migrations); i++ {
		assert.True(t, migrations[i-1].Less(migrations[i]), "migrations must be ordered")
	}
	for _, m := range migrations {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}

	last := strings.Join(migrations[2].Up, "\n")
	assert.Contains(t, last, "CREATE UNIQUE INDEX appointments_doctor_id_date_key ON appointments (doctor_id, date)")
}
