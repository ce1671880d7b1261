package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresQueryStore(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2)),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	store := NewPostgresQueryStore(pool)

	_, err = pool.Exec(ctx, `CREATE TABLE querycraft_customer (
		id SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		email VARCHAR(254) NOT NULL,
		registration_date DATE NOT NULL
	);
	INSERT INTO querycraft_customer (name, email, registration_date) VALUES
		('Ada', 'ada@example.com', '2024-01-15'),
		('Grace', 'grace@example.com', '2024-03-02');`)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Select", func(t *testing.T) {
		result, err := store.Execute(ctx, "SELECT id, name, email FROM querycraft_customer ORDER BY id")
		require.NoError(t, err)

		assert.Equal(t, []string{"id", "name", "email"}, result.Columns)
		assert.Equal(t, 2, result.RowCount)
		require.Len(t, result.Rows, 2)
		assert.EqualValues(t, 1, result.Rows[0]["id"])
		assert.Equal(t, "Ada", result.Rows[0]["name"])
		assert.Equal(t, "grace@example.com", result.Rows[1]["email"])
	})

	t.Run("SelectEmpty", func(t *testing.T) {
		result, err := store.Execute(ctx, "SELECT name FROM querycraft_customer WHERE id = 999")
		require.NoError(t, err)

		assert.Equal(t, []string{"name"}, result.Columns)
		assert.Zero(t, result.RowCount)
		assert.Empty(t, result.Rows)
	})

	t.Run("AggregateColumnsFollowDescriptor", func(t *testing.T) {
		result, err := store.Execute(ctx, "SELECT COUNT(*) AS total FROM querycraft_customer")
		require.NoError(t, err)

		assert.Equal(t, []string{"total"}, result.Columns)
		require.Equal(t, 1, result.RowCount)
		assert.EqualValues(t, 2, result.Rows[0]["total"])
	})

	t.Run("RowsAffected", func(t *testing.T) {
		// The validator never lets a write through; the store still handles
		// one defensively.
		result, err := store.Execute(ctx, "INSERT INTO querycraft_customer (name, email, registration_date) VALUES ('Linus', 'linus@example.com', '2024-05-01')")
		require.NoError(t, err)

		assert.EqualValues(t, 1, result.RowsAffected)
		assert.Empty(t, result.Columns)
		assert.Empty(t, result.Rows)
	})

	t.Run("ExecutionError", func(t *testing.T) {
		_, err := store.Execute(ctx, "SELECT * FROM missing_table")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query execution failed")
	})

	t.Run("CheckSyntax", func(t *testing.T) {
		assert.NoError(t, store.CheckSyntax(ctx, "SELECT name FROM querycraft_customer"))

		err := store.CheckSyntax(ctx, "SELECT nope FROM querycraft_customer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})
}
