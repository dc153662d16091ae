package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyType(t *testing.T) {
	t.Cleanup(func() { SetDialect("") })

	SetDialect("mysql")
	assert.Contains(t, keyType(), "COLLATE utf8mb4_bin")

	for _, d := range []string{"sqlite3", "postgres"} {
		SetDialect(d)
		assert.Equal(t, "TEXT", keyType(), d)
	}
}
