package nlsql

import "strings"

// PatternSQL maps common question shapes onto canned SELECT statements. It is
// the rule-based fallback used when no completion backend is configured, so
// the service still answers the frequent questions. It always produces some
// statement; the default is a customer count.
func PatternSQL(question string) string {
	q := strings.ToLower(question)

	lastMonth := containsAny(q, "last month", "past month")

	switch {
	case containsAny(q, "how many customers", "number of customers", "count customers"),
		containsAny(q, "new customers", "new customer"):
		if lastMonth {
			return "SELECT COUNT(*) FROM querycraft_customer WHERE registration_date >= CURRENT_DATE - INTERVAL '1 month'"
		}
		return "SELECT COUNT(*) FROM querycraft_customer"

	case containsAny(q, "all customers", "list customers", "show customers"):
		return "SELECT * FROM querycraft_customer ORDER BY registration_date DESC"

	case strings.Contains(q, "product"):
		if containsAny(q, "count", "how many", "number") {
			return "SELECT COUNT(*) FROM querycraft_product"
		}
		return "SELECT * FROM querycraft_product ORDER BY name"

	case strings.Contains(q, "order"):
		if containsAny(q, "count", "how many", "number") {
			return "SELECT COUNT(*) FROM querycraft_order"
		}
		return "SELECT * FROM querycraft_order ORDER BY order_date DESC LIMIT 10"
	}

	return "SELECT COUNT(*) FROM querycraft_customer"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
