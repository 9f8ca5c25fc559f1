package dataset

// SummaryLine is one row of the end-of-run generation report.
type SummaryLine struct {
	Label string
	Count int
}

func (d *Dataset) Summary() []SummaryLine {
	return []SummaryLine{
		{"customers", len(d.Customers)},
		{"employees", len(d.Employees)},
		{"departments", len(d.Departments)},
		{"manufactures", len(d.Manufacturers)},
		{"products", len(d.Products)},
		{"orders", len(d.Orders)},
		{"order details", len(d.OrderDetails)},
		{"shipping records", len(d.Shipping)},
		{"payments", len(d.Payments)},
		{"return requests", len(d.Returns)},
		{"price history records", len(d.PriceHistory)},
	}
}
