package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresQueryStore is a PostgreSQL implementation of the QueryStore
// interface on top of a shared connection pool. Connections are acquired per
// call and released on every exit path.
type PostgresQueryStore struct {
	db *pgxpool.Pool
}

// NewPostgresQueryStore creates a new PostgresQueryStore.
func NewPostgresQueryStore(db *pgxpool.Pool) *PostgresQueryStore {
	return &PostgresQueryStore{db: db}
}

// Execute runs the statement exactly once. SELECT (and WITH) statements are
// materialized into rows keyed by column name; anything else reports the
// affected-row count. No implicit LIMIT is applied: whatever the query
// returns is returned in full.
func (s *PostgresQueryStore) Execute(ctx context.Context, sql string) (*QueryResult, error) {
	if !returnsRows(sql) {
		tag, err := s.db.Exec(ctx, sql)
		if err != nil {
			return nil, fmt.Errorf("query execution failed: %w", err)
		}
		return &QueryResult{RowsAffected: tag.RowsAffected()}, nil
	}

	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = string(fd.Name)
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return &QueryResult{
		Columns:  columns,
		Rows:     results,
		RowCount: len(results),
	}, nil
}

// CheckSyntax runs an EXPLAIN pass so the store parses and plans the
// statement without executing it.
func (s *PostgresQueryStore) CheckSyntax(ctx context.Context, sql string) error {
	rows, err := s.db.Query(ctx, "EXPLAIN "+sql)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
	}
	return rows.Err()
}

func returnsRows(sql string) bool {
	keyword := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(keyword, "SELECT") || strings.HasPrefix(keyword, "WITH")
}
