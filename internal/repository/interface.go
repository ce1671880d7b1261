package repository

import "context"

// QueryResult is the normalized outcome of executing one SQL statement.
type QueryResult struct {
	// Columns holds the result column names in descriptor order. Empty for
	// non-SELECT statements.
	Columns []string
	// Rows holds every result row as a mapping from column name to value.
	Rows []map[string]interface{}
	// RowCount is len(Rows).
	RowCount int
	// RowsAffected is reported for non-SELECT statements only. The validator
	// never lets one through; this path exists as defense in depth.
	RowsAffected int64
}

// QueryStore is an interface for executing validated SQL against the
// relational store.
type QueryStore interface {
	// Execute runs the statement exactly once and materializes the result.
	Execute(ctx context.Context, sql string) (*QueryResult, error)
}

// SyntaxChecker is an optional extension of QueryStore for stores that can
// plan a statement without executing it. The pipeline uses it as an extra
// validation pass when available.
type SyntaxChecker interface {
	CheckSyntax(ctx context.Context, sql string) error
}
