package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCreatorUpdate(t *testing.T) {
	t.Run("Should reject an empty field set", func(t *testing.T) {
		_, _, err := buildCreatorUpdate(7, map[string]string{})
		assert.Error(t, err)
	})

	t.Run("Should reject columns outside the whitelist", func(t *testing.T) {
		_, _, err := buildCreatorUpdate(7, map[string]string{"password_hash": "x"})
		assert.Error(t, err)

		_, _, err = buildCreatorUpdate(7, map[string]string{"id": "1"})
		assert.Error(t, err)
	})

	t.Run("Should emit columns in deterministic order", func(t *testing.T) {
		query, args, err := buildCreatorUpdate(7, map[string]string{
			"name": "Ana",
			"city": "Lisbon",
		})
		assert.NoError(t, err)
		assert.Equal(t,
			"UPDATE creators SET city = $1, name = $2, updated_at = NOW() WHERE id = $3",
			query)
		assert.Equal(t, []interface{}{"Lisbon", "Ana", int64(7)}, args)
	})

	t.Run("Should accept every mutable field at once", func(t *testing.T) {
		fields := map[string]string{}
		for col := range mutableColumns {
			fields[col] = "v"
		}
		query, args, err := buildCreatorUpdate(7, fields)
		assert.NoError(t, err)
		assert.Len(t, args, len(fields)+1)
		assert.Contains(t, query, "updated_at = NOW()")
	})
}
