package dataset

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCustomerReferralsPointBackwards(t *testing.T) {
	g := New(42)
	customers := g.Customers(100)

	if len(customers) != 100 {
		t.Fatalf("Expected 100 customers, got %d", len(customers))
	}

	for i, c := range customers {
		if c.CustomerID != i+1 {
			t.Errorf("Expected dense ids, customer at index %d has id %d", i, c.CustomerID)
		}
		if c.UserReferral != nil && *c.UserReferral >= c.CustomerID {
			t.Errorf("Customer %d refers forward to %d", c.CustomerID, *c.UserReferral)
		}
		if c.UserReferral != nil && *c.UserReferral < 1 {
			t.Errorf("Customer %d has out-of-range referral %d", c.CustomerID, *c.UserReferral)
		}
	}

	if customers[0].UserReferral != nil {
		t.Error("First customer can have no one to be referred by")
	}
}

func TestEmployeeSupervisorsPointBackwards(t *testing.T) {
	g := New(42)
	employees := g.Employees(50)

	for _, e := range employees {
		if e.SupervisorID != nil && *e.SupervisorID >= e.EmployeeID {
			t.Errorf("Employee %d supervised by later employee %d", e.EmployeeID, *e.SupervisorID)
		}
		if e.DepartmentID != nil {
			t.Errorf("Employee %d has a department before departments exist", e.EmployeeID)
		}
	}
}

func TestDepartmentsBackfillEmployees(t *testing.T) {
	g := New(42)
	employees := g.Employees(50)
	departments := g.Departments(5, employees)

	if len(departments) != 5 {
		t.Fatalf("Expected 5 departments, got %d", len(departments))
	}

	for _, d := range departments {
		if d.DepartmentManagerID < 1 || d.DepartmentManagerID > 20 {
			t.Errorf("Department %d manager %d not drawn from first 20 employees", d.DepartmentID, d.DepartmentManagerID)
		}
	}

	for _, e := range employees {
		if e.DepartmentID == nil {
			t.Errorf("Employee %d was not back-filled with a department", e.EmployeeID)
			continue
		}
		if *e.DepartmentID < 1 || *e.DepartmentID > 5 {
			t.Errorf("Employee %d back-filled with out-of-range department %d", e.EmployeeID, *e.DepartmentID)
		}
	}
}

func TestDepartmentManagerPoolSmallerThanTwenty(t *testing.T) {
	g := New(42)
	employees := g.Employees(3)
	departments := g.Departments(2, employees)

	for _, d := range departments {
		if d.DepartmentManagerID < 1 || d.DepartmentManagerID > 3 {
			t.Errorf("Manager %d outside the 3-employee pool", d.DepartmentManagerID)
		}
	}
}

func TestOrderTotalsMatchLineItems(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	totals := make(map[int]decimal.Decimal)
	for _, d := range ds.OrderDetails {
		expected := d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))).Round(2)
		if !d.LineTotal.Equal(expected) {
			t.Errorf("Detail %d line total %s, expected %s", d.OrderDetailID, d.LineTotal, expected)
		}
		totals[d.OrderID] = totals[d.OrderID].Add(d.LineTotal)
	}

	for _, o := range ds.Orders {
		if !o.TotalAmount.Equal(totals[o.OrderID].Round(2)) {
			t.Errorf("Order %d total %s, line items sum to %s", o.OrderID, o.TotalAmount, totals[o.OrderID])
		}
	}
}

func TestOrderDetailIDsDense(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i, d := range ds.OrderDetails {
		if d.OrderDetailID != i+1 {
			t.Fatalf("Detail at index %d has id %d, expected %d", i, d.OrderDetailID, i+1)
		}
	}
}

func TestPaymentsMirrorOrders(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.Payments) != len(ds.Orders) {
		t.Fatalf("Expected exactly one payment per order, got %d payments for %d orders",
			len(ds.Payments), len(ds.Orders))
	}

	for i, p := range ds.Payments {
		order := ds.Orders[i]
		if p.PaymentID != i+1 {
			t.Errorf("Payment at index %d has id %d", i, p.PaymentID)
		}
		if p.OrderID != order.OrderID {
			t.Errorf("Payment %d references order %d, expected %d", p.PaymentID, p.OrderID, order.OrderID)
		}
		if !p.Amount.Equal(order.TotalAmount) {
			t.Errorf("Payment %d amount %s, order total %s", p.PaymentID, p.Amount, order.TotalAmount)
		}
		offset := p.PaymentDate.Sub(order.OrderDate).Hours() / 24
		if offset < 0 || offset > 2 {
			t.Errorf("Payment %d dated %.0f days after order, expected 0-2", p.PaymentID, offset)
		}
	}
}

func TestShippingReusesOrderIDs(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(DefaultCounts())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.Shipping) != len(ds.Orders) {
		t.Fatalf("Expected one shipment per order, got %d for %d orders", len(ds.Shipping), len(ds.Orders))
	}

	for i, s := range ds.Shipping {
		order := ds.Orders[i]
		if s.ShippingID != order.OrderID || s.OrderID != order.OrderID {
			t.Errorf("Shipment at index %d has ids (%d, %d), expected order id %d", i, s.ShippingID, s.OrderID, order.OrderID)
		}
		if !s.ShippingDate.Equal(order.OrderDate) {
			t.Errorf("Shipment %d ship date %v differs from order date %v", s.ShippingID, s.ShippingDate, order.OrderDate)
		}
		offset := s.DeliveryDate.Sub(s.ShippingDate).Hours() / 24
		if offset < 2 || offset > 14 {
			t.Errorf("Shipment %d delivered %.0f days after shipping, expected 2-14", s.ShippingID, offset)
		}
	}
}

func TestReturnsCappedAtAvailableDetails(t *testing.T) {
	g := New(42)
	employees := g.Employees(3)

	details := []OrderDetail{
		{OrderDetailID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(10.00), LineTotal: decimal.NewFromFloat(20.00)},
		{OrderDetailID: 2, OrderID: 1, ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(7.50), LineTotal: decimal.NewFromFloat(7.50)},
		{OrderDetailID: 3, OrderID: 2, ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromFloat(10.00), LineTotal: decimal.NewFromFloat(30.00)},
	}

	returns := g.Returns(10, details, employees)

	if len(returns) != 3 {
		t.Fatalf("Expected sampling capped at 3 details, got %d returns", len(returns))
	}

	seen := make(map[int]bool)
	lineTotals := map[int]decimal.Decimal{1: details[0].LineTotal, 2: details[1].LineTotal, 3: details[2].LineTotal}
	for i, r := range returns {
		if r.ReturnID != i+1 {
			t.Errorf("Return at index %d has id %d", i, r.ReturnID)
		}
		if seen[r.OrderDetailID] {
			t.Errorf("Detail %d sampled more than once", r.OrderDetailID)
		}
		seen[r.OrderDetailID] = true

		line := lineTotals[r.OrderDetailID]
		half := line.Mul(decimal.NewFromFloat(0.5))
		if r.RefundAmount.LessThan(half.Sub(decimal.NewFromFloat(0.01))) || r.RefundAmount.GreaterThan(line) {
			t.Errorf("Refund %s outside 50-100%% of line total %s", r.RefundAmount, line)
		}
	}
}

func TestPriceHistoryDoesNotMutateProducts(t *testing.T) {
	g := New(42)
	manufacturers := g.Manufacturers(2)
	products := g.Products(4, manufacturers)
	employees := g.Employees(3)

	before := make([]decimal.Decimal, len(products))
	for i, p := range products {
		before[i] = p.UnitPrice
	}

	history := g.PriceHistory(20, products, employees)

	for i, p := range products {
		if !p.UnitPrice.Equal(before[i]) {
			t.Errorf("Product %d unit price changed from %s to %s", p.ProductID, before[i], p.UnitPrice)
		}
	}

	for _, h := range history {
		current := products[h.ProductID-1].UnitPrice
		if !h.OldPrice.Equal(current) {
			t.Errorf("History %d old price %s differs from product price %s", h.PriceHistoryID, h.OldPrice, current)
		}
		low := current.Mul(decimal.NewFromFloat(0.8)).Sub(decimal.NewFromFloat(0.01))
		high := current.Mul(decimal.NewFromFloat(1.2)).Add(decimal.NewFromFloat(0.01))
		if h.NewPrice.LessThan(low) || h.NewPrice.GreaterThan(high) {
			t.Errorf("History %d new price %s outside ±20%% of %s", h.PriceHistoryID, h.NewPrice, current)
		}
	}
}

func TestGenerateScenarioSmallShop(t *testing.T) {
	g := New(42)
	ds, err := g.Generate(Counts{
		Customers:     5,
		Employees:     3,
		Departments:   2,
		Manufacturers: 2,
		Products:      4,
		Orders:        6,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.OrderDetails) < 6 || len(ds.OrderDetails) > 30 {
		t.Errorf("Expected 6-30 order details for 6 orders, got %d", len(ds.OrderDetails))
	}

	for _, d := range ds.OrderDetails {
		if d.ProductID < 1 || d.ProductID > 4 {
			t.Errorf("Detail %d references unknown product %d", d.OrderDetailID, d.ProductID)
		}
	}

	for _, o := range ds.Orders {
		if o.TotalAmount.IsNegative() {
			t.Errorf("Order %d has negative total %s", o.OrderID, o.TotalAmount)
		}
		if !o.TotalAmount.Equal(o.TotalAmount.Round(2)) {
			t.Errorf("Order %d total %s not rounded to 2 decimals", o.OrderID, o.TotalAmount)
		}
	}
}

func TestGenerateRejectsImpossibleCounts(t *testing.T) {
	cases := []struct {
		name   string
		counts Counts
	}{
		{"zero customers", Counts{Employees: 5, Departments: 1, Manufacturers: 1, Products: 1, Orders: 1}},
		{"zero employees", Counts{Customers: 5, Departments: 1, Manufacturers: 1, Products: 1, Orders: 1}},
		{"zero manufacturers", Counts{Customers: 5, Employees: 5, Departments: 1, Products: 1, Orders: 1}},
		{"negative returns", Counts{Customers: 1, Employees: 1, Departments: 1, Manufacturers: 1, Products: 1, Orders: 1, Returns: -1}},
	}

	for _, tc := range cases {
		g := New(42)
		_, err := g.Generate(tc.counts)
		if err == nil {
			t.Errorf("%s: expected an error, got none", tc.name)
			continue
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected *ConfigError, got %T: %v", tc.name, err, err)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	counts := Counts{Customers: 10, Employees: 5, Departments: 2, Manufacturers: 2, Products: 4, Orders: 8, Returns: 3, PriceHistory: 5}

	first, err := New(7).Generate(counts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := New(7).Generate(counts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := range first.Customers {
		if first.Customers[i].Username != second.Customers[i].Username {
			t.Fatalf("Customer %d username differs between equal seeds: %q vs %q",
				i+1, first.Customers[i].Username, second.Customers[i].Username)
		}
	}
	for i := range first.Orders {
		if !first.Orders[i].TotalAmount.Equal(second.Orders[i].TotalAmount) {
			t.Fatalf("Order %d total differs between equal seeds", i+1)
		}
	}
	if len(first.OrderDetails) != len(second.OrderDetails) {
		t.Fatalf("Detail counts differ between equal seeds: %d vs %d", len(first.OrderDetails), len(second.OrderDetails))
	}

	other, err := New(8).Generate(counts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	same := len(other.OrderDetails) == len(first.OrderDetails)
	for i := 0; same && i < len(first.Customers); i++ {
		same = first.Customers[i].Username == other.Customers[i].Username
	}
	if same {
		t.Error("Different seeds produced an identical dataset")
	}
}

func TestProductFieldsWithinBounds(t *testing.T) {
	g := New(42)
	manufacturers := g.Manufacturers(3)
	products := g.Products(50, manufacturers)

	min := decimal.NewFromFloat(5.0)
	max := decimal.NewFromFloat(500.0)
	for _, p := range products {
		if p.UnitPrice.LessThan(min) || p.UnitPrice.GreaterThan(max) {
			t.Errorf("Product %d unit price %s outside [5.00, 500.00]", p.ProductID, p.UnitPrice)
		}
		if p.StockQuantity < 0 || p.StockQuantity > 1000 {
			t.Errorf("Product %d stock %d outside [0, 1000]", p.ProductID, p.StockQuantity)
		}
		if p.ManufactureID < 1 || p.ManufactureID > 3 {
			t.Errorf("Product %d references unknown manufacturer %d", p.ProductID, p.ManufactureID)
		}
	}
}
