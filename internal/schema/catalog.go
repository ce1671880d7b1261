// Package schema holds the static catalog of storage tables the query
// pipeline is allowed to touch. The catalog is hard-coded metadata: it is
// loaded once at startup and shared read-only across all pipeline runs.
package schema

import (
	"strings"
)

// Column describes a single column of a storage table.
type Column struct {
	Name string
	Type string
	// Note carries constraint hints such as a foreign-key target or the set
	// of allowed values. Included verbatim in the prompt rendering.
	Note string
}

// Table describes a storage table. Name is the physical table identifier in
// the database, including the persistence-layer prefix.
type Table struct {
	Name    string
	Columns []Column
}

// Catalog is an ordered list of storage tables.
type Catalog struct {
	tables []Table
}

// NewCatalog builds a catalog from the given table descriptors.
func NewCatalog(tables []Table) *Catalog {
	return &Catalog{tables: tables}
}

// Default returns the catalog for the customers/products/orders schema.
func Default() *Catalog {
	return NewCatalog([]Table{
		{
			Name: "querycraft_customer",
			Columns: []Column{
				{Name: "id", Type: "INTEGER", Note: "PRIMARY KEY"},
				{Name: "name", Type: "VARCHAR"},
				{Name: "email", Type: "VARCHAR"},
				{Name: "registration_date", Type: "DATE"},
			},
		},
		{
			Name: "querycraft_product",
			Columns: []Column{
				{Name: "id", Type: "INTEGER", Note: "PRIMARY KEY"},
				{Name: "name", Type: "VARCHAR"},
				{Name: "category", Type: "VARCHAR"},
				{Name: "price", Type: "DECIMAL"},
			},
		},
		{
			Name: "querycraft_order",
			Columns: []Column{
				{Name: "id", Type: "INTEGER", Note: "PRIMARY KEY"},
				{Name: "customer_id", Type: "INTEGER", Note: "FOREIGN KEY to querycraft_customer.id"},
				{Name: "product_id", Type: "INTEGER", Note: "FOREIGN KEY to querycraft_product.id"},
				{Name: "order_date", Type: "DATE"},
				{Name: "quantity", Type: "INTEGER"},
				{Name: "status", Type: "VARCHAR", Note: "one of 'pending', 'completed', 'cancelled'"},
			},
		},
	})
}

// Tables returns the ordered table descriptors.
func (c *Catalog) Tables() []Table {
	return c.tables
}

// TableNames returns the physical names of all tables in catalog order.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.tables))
	for _, t := range c.tables {
		names = append(names, t.Name)
	}
	return names
}

// References reports whether the statement mentions at least one known
// storage table. The match is case-insensitive and purely textual; it is the
// whitelist gate, not a parse.
func (c *Catalog) References(sql string) bool {
	lower := strings.ToLower(sql)
	for _, t := range c.tables {
		if strings.Contains(lower, strings.ToLower(t.Name)) {
			return true
		}
	}
	return false
}

// Describe renders the catalog as a human-readable listing suitable for
// embedding in a completion prompt. Storage table names are stated verbatim
// so generated SQL is directly executable.
func (c *Catalog) Describe() string {
	var b strings.Builder
	for i, t := range c.tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Name)
		b.WriteString(" table:\n")
		for _, col := range t.Columns {
			b.WriteString("- ")
			b.WriteString(col.Name)
			b.WriteString(" (")
			b.WriteString(col.Type)
			if col.Note != "" {
				b.WriteString(", ")
				b.WriteString(col.Note)
			}
			b.WriteString(")\n")
		}
	}
	return b.String()
}
