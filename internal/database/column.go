package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/tabkit/internal/sqlutil"
)

// ReadColumn returns every value of table.column in row order, as the
// driver reports it: integers as int64, reals as float64, NULL as nil.
// Text the driver hands back as []byte is converted to string.
func ReadColumn(ctx context.Context, db *sql.DB, table, column string) ([]interface{}, error) {
	query, err := sqlutil.SelectColumn(table, column)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []interface{}
	for rows.Next() {
		var v interface{}
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s.%s: %w", table, column, err)
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s.%s: %w", table, column, err)
	}
	return values, nil
}
