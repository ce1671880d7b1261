package nlsql

import (
	"fmt"

	"querycraft/backend/internal/schema"
)

// BuildPrompt renders a completion request for the given question. The
// rendered text embeds the storage schema with exact physical table names so
// the generated SQL is directly executable, and instructs the backend to
// answer with a bare SQL statement only.
func BuildPrompt(question string, catalog *schema.Catalog) string {
	return fmt.Sprintf(`You are a SQL expert. Convert the following question to a SQL query.

Database schema:
%s
Question: %s

Return only the SQL query, without additional explanations or markdown formatting. Use the exact table and column names shown above.`, catalog.Describe(), question)
}
