package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a storefront account. UserReferral, when set, points at a
// customer with a strictly smaller id.
type Customer struct {
	CustomerID   int
	Username     string
	FirstName    string
	LastName     string
	DOB          time.Time
	Address      string
	UserReferral *int
}

// Employee is a staff record. DepartmentID is nil until departments exist
// and is back-filled by the department phase. SupervisorID, when set,
// points at an earlier employee.
type Employee struct {
	EmployeeID   int
	Username     string
	FirstName    string
	LastName     string
	DOB          time.Time
	PhoneNumber  string
	Email        string
	Address      string
	DepartmentID *int
	SupervisorID *int
}

type Department struct {
	DepartmentID          int
	DepartmentName        string
	DepartmentPhoneNumber string
	DepartmentEmail       string
	DepartmentAddress     string
	DepartmentManagerID   int
}

type Manufacturer struct {
	ManufactureID          int
	ManufactureName        string
	ManufacturePhoneNumber string
	ManufactureEmail       string
	ManufactureAddress     string
	EmergencyContact       string
}

type Product struct {
	ProductID      int
	ProductName    string
	ManufactureID  int
	BatchOrder     string
	BatchOrderDate time.Time
	UnitPrice      decimal.Decimal
	StockQuantity  int
}

// Order carries a derived TotalAmount: zero at creation, accumulated by
// the order-detail phase and never re-derived afterwards.
type Order struct {
	OrderID     int
	CustomerID  int
	AgentID     int
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}

type OrderDetail struct {
	OrderDetailID int
	OrderID       int
	ProductID     int
	Quantity      int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
}

// Shipping reuses the order id as its own key: one shipment per order.
type Shipping struct {
	ShippingID      int
	OrderID         int
	ShippingCompany string
	Status          string
	ShippingDate    time.Time
	DeliveryDate    time.Time
	TrackingNumber  string
}

type Payment struct {
	PaymentID            int
	OrderID              int
	PaymentMethod        string
	PaymentStatus        string
	Amount               decimal.Decimal
	PaymentDate          time.Time
	TransactionReference string
}

type ReturnRequest struct {
	ReturnID      int
	OrderDetailID int
	Reason        string
	ReturnStatus  string
	RefundAmount  decimal.Decimal
	ProcessedBy   int
	ProcessedDate time.Time
}

// PriceHistory records a simulated price change. NewPrice is never written
// back to the product, so repeated entries perturb the same original price.
type PriceHistory struct {
	PriceHistoryID int
	ProductID      int
	OldPrice       decimal.Decimal
	NewPrice       decimal.Decimal
	EffectiveDate  time.Time
	ChangedBy      int
}

// Dataset holds every generated collection, each keyed 1..N in generation
// order.
type Dataset struct {
	Customers     []Customer
	Employees     []Employee
	Departments   []Department
	Manufacturers []Manufacturer
	Products      []Product
	Orders        []Order
	OrderDetails  []OrderDetail
	Shipping      []Shipping
	Payments      []Payment
	Returns       []ReturnRequest
	PriceHistory  []PriceHistory
}
