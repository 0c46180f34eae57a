package sqlbuilder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyUpdate is returned when a partial update carries no fields.
var ErrEmptyUpdate = errors.New("no fields to update")

// SetClause is a SQL SET fragment plus the values bound to its placeholders.
// Invariant: Columns contains exactly len(Values) placeholders, numbered
// $1..$n contiguously, and the nth placeholder binds Values[n-1].
type SetClause struct {
	Columns string
	Values  []interface{}
}

// BuildSetClause turns a field-to-value mapping into a parameterized SET
// fragment for a partial UPDATE. Each field name resolves to a column through
// columnFor, falling back to the field name itself when unmapped. Keys are
// emitted in sorted order so placeholder numbering is deterministic.
//
// Values are always bound, never interpolated. Column names ARE interpolated
// into the fragment, so callers must only ever pass trusted field names: the
// translation table together with the key set form the column allowlist.
func BuildSetClause(updates map[string]interface{}, columnFor map[string]string) (SetClause, error) {
	if len(updates) == 0 {
		return SetClause{}, ErrEmptyUpdate
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cols := make([]string, 0, len(keys))
	values := make([]interface{}, 0, len(keys))
	for i, key := range keys {
		column := key
		if mapped, ok := columnFor[key]; ok {
			column = mapped
		}
		cols = append(cols, fmt.Sprintf(`"%s"=$%d`, column, i+1))
		values = append(values, updates[key])
	}

	return SetClause{
		Columns: strings.Join(cols, ", "),
		Values:  values,
	}, nil
}
