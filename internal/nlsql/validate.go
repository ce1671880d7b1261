package nlsql

import (
	"fmt"
	"strings"

	"querycraft/backend/internal/schema"
)

// Verdict is the result of validating a candidate statement.
type Verdict struct {
	Valid  bool
	Reason string
}

// denylist keywords cause rejection wherever they appear in the statement,
// even inside a nominally SELECT statement. Defense in depth against
// smuggled multi-statement input.
var denylist = []string{"DROP", "DELETE", "INSERT", "UPDATE", "ALTER", "CREATE", "TRUNCATE"}

// Validate enforces the read-only safety policy on a candidate statement.
// It is a pure function of the statement and the catalog; rules are checked
// in order and the first failure wins.
func Validate(sql string, catalog *schema.Catalog) Verdict {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return Verdict{Reason: "empty query"}
	}

	upper := strings.ToUpper(trimmed)
	if !startsWithStatementKeyword(trimmed) || !strings.HasPrefix(upper, "SELECT") {
		return Verdict{Reason: "only read queries are allowed"}
	}

	for _, keyword := range denylist {
		if strings.Contains(upper, keyword) {
			return Verdict{Reason: fmt.Sprintf("query contains forbidden keyword %s", keyword)}
		}
	}

	if !catalog.References(trimmed) {
		return Verdict{Reason: "must reference a known table"}
	}

	return Verdict{Valid: true}
}
