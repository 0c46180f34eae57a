package sqlbuilder

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSetClause(t *testing.T) {
	t.Run("single field with translation", func(t *testing.T) {
		clause, err := BuildSetClause(
			map[string]interface{}{"lastName": "Last"},
			map[string]string{"firstName": "first_name", "lastName": "last_name"},
		)

		require.NoError(t, err)
		require.Equal(t, `"last_name"=$1`, clause.Columns)
		require.Equal(t, []interface{}{"Last"}, clause.Values)
	})

	t.Run("unmapped field falls back to its own name", func(t *testing.T) {
		clause, err := BuildSetClause(
			map[string]interface{}{"age": 32},
			map[string]string{"firstName": "first_name"},
		)

		require.NoError(t, err)
		require.Equal(t, `"age"=$1`, clause.Columns)
		require.Equal(t, []interface{}{32}, clause.Values)
	})

	t.Run("multiple fields in sorted order", func(t *testing.T) {
		clause, err := BuildSetClause(
			map[string]interface{}{
				"firstName": "Aliya",
				"age":       32,
				"isAdmin":   false,
			},
			map[string]string{"firstName": "first_name", "isAdmin": "is_admin"},
		)

		require.NoError(t, err)
		require.Equal(t, `"age"=$1, "first_name"=$2, "is_admin"=$3`, clause.Columns)
		require.Equal(t, []interface{}{32, "Aliya", false}, clause.Values)
	})

	t.Run("nil value is bound, not dropped", func(t *testing.T) {
		clause, err := BuildSetClause(
			map[string]interface{}{"logoUrl": nil},
			map[string]string{"logoUrl": "logo_url"},
		)

		require.NoError(t, err)
		require.Equal(t, `"logo_url"=$1`, clause.Columns)
		require.Equal(t, []interface{}{nil}, clause.Values)
	})

	t.Run("empty update fails", func(t *testing.T) {
		_, err := BuildSetClause(map[string]interface{}{}, nil)
		require.ErrorIs(t, err, ErrEmptyUpdate)

		_, err = BuildSetClause(nil, nil)
		require.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("placeholder count always equals value count", func(t *testing.T) {
		placeholders := regexp.MustCompile(`\$\d+`)

		inputs := []map[string]interface{}{
			{"a": 1},
			{"a": 1, "b": "two"},
			{"a": 1, "b": "two", "c": nil, "d": true, "e": 5.5},
		}
		for _, updates := range inputs {
			clause, err := BuildSetClause(updates, nil)
			require.NoError(t, err)
			require.Len(t, clause.Values, len(updates))
			require.Len(t, placeholders.FindAllString(clause.Columns, -1), len(updates))
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		updates := map[string]interface{}{"numEmployees": 10, "name": "Acme"}
		translations := map[string]string{"numEmployees": "num_employees"}

		first, err := BuildSetClause(updates, translations)
		require.NoError(t, err)
		second, err := BuildSetClause(updates, translations)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}
