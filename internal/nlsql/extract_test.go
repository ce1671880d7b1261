package nlsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple select query",
			input:    "SELECT * FROM querycraft_customer",
			expected: "SELECT * FROM querycraft_customer",
		},
		{
			name:     "trailing semicolon removed",
			input:    "SELECT * FROM querycraft_product;",
			expected: "SELECT * FROM querycraft_product",
		},
		{
			name:     "markdown code block",
			input:    "```sql\nSELECT * FROM querycraft_order\n```",
			expected: "SELECT * FROM querycraft_order",
		},
		{
			name:     "markdown without language identifier",
			input:    "```\nSELECT id, name FROM querycraft_customer\n```",
			expected: "SELECT id, name FROM querycraft_customer",
		},
		{
			name:     "uppercase SQL language identifier",
			input:    "```SQL\nSELECT * FROM querycraft_product\n```",
			expected: "SELECT * FROM querycraft_product",
		},
		{
			name:     "extra text before query",
			input:    "Here is the query you requested:\nSELECT * FROM querycraft_customer WHERE id = 1",
			expected: "SELECT * FROM querycraft_customer WHERE id = 1",
		},
		{
			name:     "text after semicolon ignored",
			input:    "SELECT * FROM querycraft_order;\nThis query returns all orders.",
			expected: "SELECT * FROM querycraft_order",
		},
		{
			name: "multiline query collapsed",
			input: `SELECT
            c.name,
            COUNT(o.id) as order_count
        FROM querycraft_customer c
        LEFT JOIN querycraft_order o ON c.id = o.customer_id
        GROUP BY c.name`,
			expected: "SELECT c.name, COUNT(o.id) as order_count FROM querycraft_customer c LEFT JOIN querycraft_order o ON c.id = o.customer_id GROUP BY c.name",
		},
		{
			name: "multiline query in markdown",
			input: "```sql\n        SELECT\n            p.name,\n            p.price\n        FROM querycraft_product p\n        WHERE p.category = 'electronics';\n        ```",
			expected: "SELECT p.name, p.price FROM querycraft_product p WHERE p.category = 'electronics'",
		},
		{
			name:     "leading whitespace",
			input:    "        SELECT id, name FROM querycraft_product",
			expected: "SELECT id, name FROM querycraft_product",
		},
		{
			name: "realistic llm response with explanation",
			input: "Sure! Here's the SQL query to get all customers:\n\n        ```sql\n        SELECT id, name, email\n        FROM querycraft_customer\n        WHERE registration_date >= '2024-01-01';\n        ```\n\n        This query will return all customers who registered in 2024.",
			expected: "SELECT id, name, email FROM querycraft_customer WHERE registration_date >= '2024-01-01'",
		},
		{
			name:     "prefix text without markdown",
			input:    "The query you need is:\n        SELECT name, price FROM querycraft_product WHERE category = 'books'",
			expected: "SELECT name, price FROM querycraft_product WHERE category = 'books'",
		},
		{
			name:     "special characters in strings",
			input:    "SELECT * FROM querycraft_customer WHERE email LIKE '%@example.com'",
			expected: "SELECT * FROM querycraft_customer WHERE email LIKE '%@example.com'",
		},
		{
			name:     "escaped quotes",
			input:    "SELECT * FROM querycraft_customer WHERE name = 'O''Brien'",
			expected: "SELECT * FROM querycraft_customer WHERE name = 'O''Brien'",
		},
		{
			name: "line by line extraction with trailing notes",
			input: "Response:\n\n        SELECT\n        c.id,\n        c.name\n        FROM querycraft_customer c;\n\n        Additional notes",
			expected: "SELECT c.id, c.name FROM querycraft_customer c",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n  \t  ",
			expected: "",
		},
		{
			name:     "very short string returned as-is",
			input:    "SEL",
			expected: "SEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanSQL(tt.input))
		})
	}
}

func TestCleanSQLWithClause(t *testing.T) {
	input := `WITH customer_orders AS (
            SELECT customer_id, COUNT(*) as count
            FROM querycraft_order
            GROUP BY customer_id
        )
        SELECT * FROM customer_orders`
	result := CleanSQL(input)
	assert.True(t, strings.HasPrefix(result, "WITH"))
	assert.Contains(t, result, "customer_orders")
	assert.Contains(t, result, "SELECT * FROM customer_orders")
}

func TestCleanSQLWriteStatements(t *testing.T) {
	// The extractor isolates write statements too; rejecting them is the
	// validator's job.
	insert := CleanSQL("INSERT INTO querycraft_customer (name, email) VALUES ('John', 'john@example.com')")
	assert.True(t, strings.HasPrefix(insert, "INSERT"))
	assert.Contains(t, insert, "querycraft_customer")

	update := CleanSQL("UPDATE querycraft_product SET price = 99.99 WHERE id = 1")
	assert.True(t, strings.HasPrefix(update, "UPDATE"))
	assert.Contains(t, update, "querycraft_product")

	del := CleanSQL("DELETE FROM querycraft_order WHERE status = 'cancelled'")
	assert.True(t, strings.HasPrefix(del, "DELETE"))
	assert.Contains(t, del, "querycraft_order")
}

func TestCleanSQLCaseInsensitiveKeyword(t *testing.T) {
	result := CleanSQL("select * from querycraft_customer")
	assert.Contains(t, strings.ToLower(result), "select")
	assert.Contains(t, result, "querycraft_customer")
}

func TestCleanSQLCommentsInMarkdown(t *testing.T) {
	result := CleanSQL("```sql\n        -- Get all customers\n        SELECT * FROM querycraft_customer;\n        ```")
	assert.Contains(t, result, "SELECT")
	assert.Contains(t, result, "querycraft_customer")
}

func TestCleanSQLSubquery(t *testing.T) {
	input := `SELECT c.name
        FROM querycraft_customer c
        WHERE c.id IN (
            SELECT customer_id
            FROM querycraft_order
            WHERE status = 'completed'
        )`
	result := CleanSQL(input)
	assert.Contains(t, result, "SELECT c.name FROM querycraft_customer c WHERE c.id IN")
	assert.Contains(t, result, "SELECT customer_id FROM querycraft_order WHERE status = 'completed'")
}

func TestCleanSQLFirstMarkdownBlockWins(t *testing.T) {
	input := "```sql\n        SELECT * FROM querycraft_customer\n        ```\n        Some explanation here\n        ```sql\n        SELECT * FROM querycraft_product\n        ```"
	result := CleanSQL(input)
	assert.Contains(t, result, "querycraft_customer")
	assert.NotContains(t, result, "querycraft_product")
}

func TestCleanSQLNeverReturnsBackticks(t *testing.T) {
	inputs := []string{
		"```sql\nSELECT * FROM querycraft_customer\n```",
		"```\nSELECT 1\n```",
		"``` ```",
		"```sql\n```",
		"prose only, no statement at all",
		"```x```",
	}
	for _, input := range inputs {
		assert.NotContains(t, CleanSQL(input), "`", "input: %q", input)
	}
}

func TestCleanSQLIdempotent(t *testing.T) {
	inputs := []string{
		"```sql\nSELECT * FROM querycraft_customer\n```",
		"SELECT * FROM querycraft_order;\ntrailing prose",
		"The query you need is:\nSELECT name FROM querycraft_product",
		"no sql here at all, just words",
		"SEL",
	}
	for _, input := range inputs {
		once := CleanSQL(input)
		assert.Equal(t, once, CleanSQL(once), "input: %q", input)
	}
}
