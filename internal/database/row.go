package database

import (
	"slices"
	"sort"
)

// Row is a single result row keyed by column name. Values are the driver's
// native types: int64 for INTEGER, string for TEXT and nil for NULL.
type Row map[string]any

// rowReader pulls typed values out of a Row and remembers every column whose
// value had the wrong type, so a constructor can report them all at once.
type rowReader struct {
	entity     string
	row        Row
	mismatched []string
}

// readRow checks that row has exactly the given columns before handing back
// a reader for it.
func readRow(entity string, row Row, columns []string) (*rowReader, error) {
	var missing, unexpected []string
	for _, col := range columns {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	for col := range row {
		if !slices.Contains(columns, col) {
			unexpected = append(unexpected, col)
		}
	}
	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(unexpected)
		return nil, &RowShapeError{Entity: entity, Missing: missing, Unexpected: unexpected}
	}
	return &rowReader{entity: entity, row: row}, nil
}

func (r *rowReader) integer(col string) int64 {
	v, ok := r.row[col].(int64)
	if !ok {
		r.mismatched = append(r.mismatched, col)
	}
	return v
}

func (r *rowReader) text(col string) string {
	v, ok := r.row[col].(string)
	if !ok {
		r.mismatched = append(r.mismatched, col)
	}
	return v
}

// nullInteger reads a nullable INTEGER column (nil for NULL)
func (r *rowReader) nullInteger(col string) *int64 {
	switch v := r.row[col].(type) {
	case nil:
		return nil
	case int64:
		return &v
	default:
		r.mismatched = append(r.mismatched, col)
		return nil
	}
}

func (r *rowReader) err() error {
	if len(r.mismatched) == 0 {
		return nil
	}
	return &RowShapeError{Entity: r.entity, Mismatched: r.mismatched}
}
