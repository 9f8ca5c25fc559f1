package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

var (
	shippingCompanies = []string{"FedEx", "UPS", "DHL", "USPS", "Amazon Logistics"}
	shippingStatuses  = []string{"Pending", "Shipped", "In Transit", "Delivered", "Cancelled"}
	paymentMethods    = []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer", "Cash"}
	paymentStatuses   = []string{"Completed", "Pending", "Failed", "Refunded"}
	returnReasons     = []string{"Defective", "Wrong item", "Not as described", "Changed mind", "Damaged in shipping"}
	returnStatuses    = []string{"Pending", "Approved", "Rejected", "Processed"}
)

// Generator produces the dataset from a single seeded random source. Every
// phase draws from the same rng and faker, so equal seeds yield equal
// datasets.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker

	// Inclusive year window for order dates.
	OrderYearStart int
	OrderYearEnd   int
}

func New(seed int64) *Generator {
	return &Generator{
		rng:            rand.New(rand.NewSource(seed)),
		faker:          gofakeit.New(seed),
		OrderYearStart: 2023,
		OrderYearEnd:   2024,
	}
}

// Generate runs every phase in dependency order and returns the assembled
// dataset. Counts are validated before any record is built.
func (g *Generator) Generate(counts Counts) (*Dataset, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	ds.Customers = g.Customers(counts.Customers)
	ds.Employees = g.Employees(counts.Employees)
	ds.Departments = g.Departments(counts.Departments, ds.Employees)
	ds.Manufacturers = g.Manufacturers(counts.Manufacturers)
	ds.Products = g.Products(counts.Products, ds.Manufacturers)
	ds.Orders = g.Orders(counts.Orders, ds.Customers, ds.Employees)
	ds.OrderDetails = g.OrderDetails(ds.Orders, ds.Products)
	ds.Shipping = g.Shipping(ds.Orders)
	ds.Payments = g.Payments(ds.Orders)
	ds.Returns = g.Returns(counts.Returns, ds.OrderDetails, ds.Employees)
	ds.PriceHistory = g.PriceHistory(counts.PriceHistory, ds.Products, ds.Employees)
	return ds, nil
}

// Customers generates n customer profiles with ids 1..n. Referrals only
// ever point backwards, so the referral graph is acyclic by construction.
func (g *Generator) Customers(n int) []Customer {
	customers := make([]Customer, 0, n)
	for i := 1; i <= n; i++ {
		customers = append(customers, Customer{
			CustomerID:   i,
			Username:     fmt.Sprintf("%s%d", g.faker.Username(), i),
			FirstName:    g.faker.FirstName(),
			LastName:     g.faker.LastName(),
			DOB:          g.randomDate(1960, 2005),
			Address:      g.address(),
			UserReferral: g.earlierID(i),
		})
	}
	return customers
}

// Employees generates n employees with ids 1..n. DepartmentID stays nil
// until Departments back-fills it; supervisors point backwards like
// customer referrals.
func (g *Generator) Employees(n int) []Employee {
	employees := make([]Employee, 0, n)
	for i := 1; i <= n; i++ {
		employees = append(employees, Employee{
			EmployeeID:   i,
			Username:     fmt.Sprintf("%s_emp%d", g.faker.Username(), i),
			FirstName:    g.faker.FirstName(),
			LastName:     g.faker.LastName(),
			DOB:          g.randomDate(1960, 2005),
			PhoneNumber:  g.faker.PhoneFormatted(),
			Email:        g.faker.Email(),
			Address:      g.address(),
			SupervisorID: g.earlierID(i),
		})
	}
	return employees
}

// Departments generates n departments whose managers are drawn from the
// first min(20, len(employees)) employees, then back-fills every
// employee's DepartmentID. This is the one place a later phase mutates an
// earlier phase's records; the mutual employee/department reference has no
// single-pass solution.
func (g *Generator) Departments(n int, employees []Employee) []Department {
	managerPool := len(employees)
	if managerPool > 20 {
		managerPool = 20
	}

	departments := make([]Department, 0, n)
	for i := 1; i <= n; i++ {
		departments = append(departments, Department{
			DepartmentID:          i,
			DepartmentName:        g.faker.Company() + " Department",
			DepartmentPhoneNumber: g.faker.PhoneFormatted(),
			DepartmentEmail:       g.faker.Email(),
			DepartmentAddress:     g.address(),
			DepartmentManagerID:   employees[g.rng.Intn(managerPool)].EmployeeID,
		})
	}

	for i := range employees {
		id := g.rng.Intn(n) + 1
		employees[i].DepartmentID = &id
	}

	return departments
}

func (g *Generator) Manufacturers(n int) []Manufacturer {
	manufacturers := make([]Manufacturer, 0, n)
	for i := 1; i <= n; i++ {
		manufacturers = append(manufacturers, Manufacturer{
			ManufactureID:          i,
			ManufactureName:        g.faker.Company(),
			ManufacturePhoneNumber: g.faker.PhoneFormatted(),
			ManufactureEmail:       g.faker.Email(),
			ManufactureAddress:     g.address(),
			EmergencyContact:       g.faker.PhoneFormatted(),
		})
	}
	return manufacturers
}

func (g *Generator) Products(n int, manufacturers []Manufacturer) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, Product{
			ProductID:      i,
			ProductName:    g.productName(),
			ManufactureID:  manufacturers[g.rng.Intn(len(manufacturers))].ManufactureID,
			BatchOrder:     fmt.Sprintf("BATCH-%d", g.intBetween(1000, 9999)),
			BatchOrderDate: g.randomDate(2022, 2024),
			UnitPrice:      g.moneyBetween(5.0, 500.0),
			StockQuantity:  g.rng.Intn(1001),
		})
	}
	return products
}

// Orders generates n orders with TotalAmount zero; OrderDetails finalizes
// the totals.
func (g *Generator) Orders(n int, customers []Customer, employees []Employee) []Order {
	orders := make([]Order, 0, n)
	for i := 1; i <= n; i++ {
		orders = append(orders, Order{
			OrderID:     i,
			CustomerID:  customers[g.rng.Intn(len(customers))].CustomerID,
			AgentID:     employees[g.rng.Intn(len(employees))].EmployeeID,
			OrderDate:   g.randomDate(g.OrderYearStart, g.OrderYearEnd),
			TotalAmount: decimal.Zero,
		})
	}
	return orders
}

// OrderDetails draws 1-5 line items per order. Detail ids are assigned
// densely across all orders in visitation order, and each order's
// TotalAmount is set to the rounded sum of its line totals.
func (g *Generator) OrderDetails(orders []Order, products []Product) []OrderDetail {
	var details []OrderDetail
	detailID := 1

	for i := range orders {
		numItems := g.intBetween(1, 5)
		orderTotal := decimal.Zero

		for j := 0; j < numItems; j++ {
			product := products[g.rng.Intn(len(products))]
			quantity := g.intBetween(1, 10)
			lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
			orderTotal = orderTotal.Add(lineTotal)

			details = append(details, OrderDetail{
				OrderDetailID: detailID,
				OrderID:       orders[i].OrderID,
				ProductID:     product.ProductID,
				Quantity:      quantity,
				UnitPrice:     product.UnitPrice,
				LineTotal:     lineTotal,
			})
			detailID++
		}

		orders[i].TotalAmount = orderTotal.Round(2)
	}

	return details
}

// Shipping generates exactly one shipment per order, reusing the order id
// as the shipping id.
func (g *Generator) Shipping(orders []Order) []Shipping {
	shipments := make([]Shipping, 0, len(orders))
	for _, order := range orders {
		shipDate := order.OrderDate
		shipments = append(shipments, Shipping{
			ShippingID:      order.OrderID,
			OrderID:         order.OrderID,
			ShippingCompany: shippingCompanies[g.rng.Intn(len(shippingCompanies))],
			Status:          shippingStatuses[g.rng.Intn(len(shippingStatuses))],
			ShippingDate:    shipDate,
			DeliveryDate:    shipDate.AddDate(0, 0, g.intBetween(2, 14)),
			TrackingNumber:  fmt.Sprintf("TRK%d", g.intBetween(100000000, 999999999)),
		})
	}
	return shipments
}

// Payments generates exactly one payment per order, in order-list order,
// with a fresh sequential id. Amount copies the order's finalized total,
// so Payments must run after OrderDetails.
func (g *Generator) Payments(orders []Order) []Payment {
	payments := make([]Payment, 0, len(orders))
	for i, order := range orders {
		payments = append(payments, Payment{
			PaymentID:            i + 1,
			OrderID:              order.OrderID,
			PaymentMethod:        paymentMethods[g.rng.Intn(len(paymentMethods))],
			PaymentStatus:        paymentStatuses[g.rng.Intn(len(paymentStatuses))],
			Amount:               order.TotalAmount,
			PaymentDate:          order.OrderDate.AddDate(0, 0, g.intBetween(0, 2)),
			TransactionReference: fmt.Sprintf("TXN-%d", g.intBetween(1000000, 9999999)),
		})
	}
	return payments
}

// Returns samples min(n, len(details)) distinct order details without
// replacement. Asking for more returns than details exist caps at the
// population instead of erroring.
func (g *Generator) Returns(n int, details []OrderDetail, employees []Employee) []ReturnRequest {
	count := n
	if count > len(details) {
		count = len(details)
	}

	perm := g.rng.Perm(len(details))
	returns := make([]ReturnRequest, 0, count)
	for i := 0; i < count; i++ {
		detail := details[perm[i]]
		refundRatio := decimal.NewFromFloat(0.5 + g.rng.Float64()*0.5)
		returns = append(returns, ReturnRequest{
			ReturnID:      i + 1,
			OrderDetailID: detail.OrderDetailID,
			Reason:        returnReasons[g.rng.Intn(len(returnReasons))],
			ReturnStatus:  returnStatuses[g.rng.Intn(len(returnStatuses))],
			RefundAmount:  detail.LineTotal.Mul(refundRatio).Round(2),
			ProcessedBy:   employees[g.rng.Intn(len(employees))].EmployeeID,
			ProcessedDate: g.randomDate(2025, 2025),
		})
	}
	return returns
}

// PriceHistory synthesizes n simulated price changes. The product's stored
// UnitPrice is never updated: every entry perturbs the original price, the
// deltas are not compounded.
func (g *Generator) PriceHistory(n int, products []Product, employees []Employee) []PriceHistory {
	history := make([]PriceHistory, 0, n)
	for i := 1; i <= n; i++ {
		product := products[g.rng.Intn(len(products))]
		factor := decimal.NewFromFloat(0.8 + g.rng.Float64()*0.4)
		history = append(history, PriceHistory{
			PriceHistoryID: i,
			ProductID:      product.ProductID,
			OldPrice:       product.UnitPrice,
			NewPrice:       product.UnitPrice.Mul(factor).Round(2),
			EffectiveDate:  g.randomDate(2023, 2024),
			ChangedBy:      employees[g.rng.Intn(len(employees))].EmployeeID,
		})
	}
	return history
}

// earlierID uniformly picks no reference or one of the ids 1..i-1 for the
// i-th record.
func (g *Generator) earlierID(i int) *int {
	pick := g.rng.Intn(i)
	if pick == 0 {
		return nil
	}
	return &pick
}

func (g *Generator) randomDate(startYear, endYear int) time.Time {
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.Intn(days+1))
}

func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) moneyBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + g.rng.Float64()*(max-min)).Round(2)
}

func (g *Generator) address() string {
	addr := g.faker.Address()
	return strings.ReplaceAll(addr.Address, "\n", ", ")
}

func (g *Generator) productName() string {
	return capitalize(g.faker.Word()) + " " + capitalize(g.faker.Word())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
