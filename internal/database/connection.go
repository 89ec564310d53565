package database

import "github.com/rs/zerolog/log"

// queryRows runs a parameterized SELECT and returns every row as a column
// keyed map, in the order the store produced them.
func (db *DB) queryRows(op string, query string, args ...any) ([]Row, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Queryx(query, args...)
	if err != nil {
		return nil, db.queryErr(op, err)
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		row := make(Row)
		if err := rows.MapScan(row); err != nil {
			return nil, db.queryErr(op, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, db.queryErr(op, err)
	}
	return result, nil
}

// queryFirst runs query and returns its first row, or a NotFoundError for
// entity/key when there is none.
func (db *DB) queryFirst(op, entity string, key any, query string, args ...any) (Row, error) {
	rows, err := db.queryRows(op, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound(entity, key)
	}
	return rows[0], nil
}

func (db *DB) queryErr(op string, err error) error {
	log.Debug().Err(err).Str("op", op).Str("path", db.path).Msg("Query failed")
	return &QueryError{Op: op, Err: err}
}

// mapRows converts every row with fromRow, stopping at the first bad row.
func mapRows[T any](rows []Row, fromRow func(Row) (*T, error)) ([]*T, error) {
	result := make([]*T, 0, len(rows))
	for _, row := range rows {
		v, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
