package nlsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"querycraft/backend/internal/schema"
)

func TestPatternSQL(t *testing.T) {
	tests := []struct {
		question string
		expected string
	}{
		{
			question: "How many customers do we have?",
			expected: "SELECT COUNT(*) FROM querycraft_customer",
		},
		{
			question: "how many customers signed up last month",
			expected: "SELECT COUNT(*) FROM querycraft_customer WHERE registration_date >= CURRENT_DATE - INTERVAL '1 month'",
		},
		{
			question: "show customers please",
			expected: "SELECT * FROM querycraft_customer ORDER BY registration_date DESC",
		},
		{
			question: "list all products",
			expected: "SELECT * FROM querycraft_product ORDER BY name",
		},
		{
			question: "how many products are in stock",
			expected: "SELECT COUNT(*) FROM querycraft_product",
		},
		{
			question: "count of orders",
			expected: "SELECT COUNT(*) FROM querycraft_order",
		},
		{
			question: "recent orders",
			expected: "SELECT * FROM querycraft_order ORDER BY order_date DESC LIMIT 10",
		},
		{
			question: "something entirely unrelated",
			expected: "SELECT COUNT(*) FROM querycraft_customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.expected, PatternSQL(tt.question))
		})
	}
}

// Every canned statement must itself survive validation, or the fallback
// would reject its own output.
func TestPatternSQLPassesValidation(t *testing.T) {
	catalog := schema.Default()
	questions := []string{
		"how many customers",
		"new customers last month",
		"show customers",
		"list products",
		"number of products",
		"count orders",
		"latest orders",
		"gibberish",
	}
	for _, question := range questions {
		sql := PatternSQL(question)
		verdict := Validate(sql, catalog)
		assert.True(t, verdict.Valid, "question %q produced %q, rejected: %s", question, sql, verdict.Reason)
		assert.True(t, strings.HasPrefix(sql, "SELECT"))
	}
}
