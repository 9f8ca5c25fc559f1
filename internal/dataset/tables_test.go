package dataset

import "testing"

func TestTablesFollowDependencyOrder(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tables := ds.Tables()
	if len(tables) != len(DependencyOrder) {
		t.Fatalf("Expected %d tables, got %d", len(DependencyOrder), len(tables))
	}

	for i, table := range tables {
		if table.Name != DependencyOrder[i] {
			t.Errorf("Table at position %d is %s, expected %s", i, table.Name, DependencyOrder[i])
		}
	}
}

func TestTableRowsAreUniformShape(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(Counts{
		Customers:     5,
		Employees:     3,
		Departments:   2,
		Manufacturers: 2,
		Products:      4,
		Orders:        6,
		Returns:       2,
		PriceHistory:  3,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, table := range ds.Tables() {
		if table.PrimaryKey == "" {
			t.Errorf("Table %s has no primary key", table.Name)
		}
		for i, row := range table.Rows {
			if len(row) != len(table.Columns) {
				t.Errorf("Table %s row %d has %d fields, expected %d", table.Name, i, len(row), len(table.Columns))
			}
			for _, col := range table.Columns {
				if _, ok := row[col]; !ok {
					t.Errorf("Table %s row %d is missing column %s", table.Name, i, col)
				}
			}
		}
	}
}

func TestTableRowCountsMatchCollections(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	counts := map[string]int{
		"customer":       len(ds.Customers),
		"employee":       len(ds.Employees),
		"department":     len(ds.Departments),
		"manufacture":    len(ds.Manufacturers),
		"product":        len(ds.Products),
		"orders":         len(ds.Orders),
		"order_details":  len(ds.OrderDetails),
		"shipping":       len(ds.Shipping),
		"payment":        len(ds.Payments),
		"return_request": len(ds.Returns),
		"price_history":  len(ds.PriceHistory),
	}

	for _, table := range ds.Tables() {
		if len(table.Rows) != counts[table.Name] {
			t.Errorf("Table %s has %d rows, collection has %d", table.Name, len(table.Rows), counts[table.Name])
		}
	}
}

func TestNullableForeignKeysProjectAsNil(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	table := ds.Tables()[0]
	if table.Name != "customer" {
		t.Fatalf("Expected customer table first, got %s", table.Name)
	}

	if table.Rows[0]["userReferral"] != nil {
		t.Errorf("First customer's referral should project as nil, got %v", table.Rows[0]["userReferral"])
	}

	sawSet := false
	for _, row := range table.Rows {
		if v, ok := row["userReferral"].(int); ok && v >= 1 {
			sawSet = true
			break
		}
	}
	if !sawSet {
		t.Error("Expected at least one non-nil referral across 100 customers")
	}
}
