package dataset

// Table is the loader- and exporter-facing projection of one collection:
// a stable column order and uniform-shape rows.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []string
	Rows       []map[string]any
}

// DependencyOrder is the order tables must be generated, loaded and
// exported in so that every foreign key points at an already-materialized
// record.
var DependencyOrder = []string{
	"customer",
	"employee",
	"department",
	"manufacture",
	"product",
	"orders",
	"order_details",
	"shipping",
	"payment",
	"return_request",
	"price_history",
}

// Tables projects every collection into its target table, in dependency
// order.
func (d *Dataset) Tables() []Table {
	return []Table{
		d.customerTable(),
		d.employeeTable(),
		d.departmentTable(),
		d.manufactureTable(),
		d.productTable(),
		d.ordersTable(),
		d.orderDetailsTable(),
		d.shippingTable(),
		d.paymentTable(),
		d.returnRequestTable(),
		d.priceHistoryTable(),
	}
}

func (d *Dataset) customerTable() Table {
	rows := make([]map[string]any, 0, len(d.Customers))
	for _, c := range d.Customers {
		rows = append(rows, map[string]any{
			"customerId":   c.CustomerID,
			"username":     c.Username,
			"firstName":    c.FirstName,
			"lastName":     c.LastName,
			"DOB":          c.DOB,
			"address":      c.Address,
			"userReferral": optInt(c.UserReferral),
		})
	}
	return Table{
		Name:       "customer",
		PrimaryKey: "customerId",
		Columns:    []string{"customerId", "username", "firstName", "lastName", "DOB", "address", "userReferral"},
		Rows:       rows,
	}
}

func (d *Dataset) employeeTable() Table {
	rows := make([]map[string]any, 0, len(d.Employees))
	for _, e := range d.Employees {
		rows = append(rows, map[string]any{
			"employeeId":   e.EmployeeID,
			"username":     e.Username,
			"firstName":    e.FirstName,
			"lastName":     e.LastName,
			"DOB":          e.DOB,
			"phoneNumber":  e.PhoneNumber,
			"email":        e.Email,
			"address":      e.Address,
			"departmentId": optInt(e.DepartmentID),
			"supervisorId": optInt(e.SupervisorID),
		})
	}
	return Table{
		Name:       "employee",
		PrimaryKey: "employeeId",
		Columns: []string{
			"employeeId", "username", "firstName", "lastName", "DOB",
			"phoneNumber", "email", "address", "departmentId", "supervisorId",
		},
		Rows: rows,
	}
}

func (d *Dataset) departmentTable() Table {
	rows := make([]map[string]any, 0, len(d.Departments))
	for _, dep := range d.Departments {
		rows = append(rows, map[string]any{
			"departmentId":          dep.DepartmentID,
			"departmentName":        dep.DepartmentName,
			"departmentPhoneNumber": dep.DepartmentPhoneNumber,
			"departmentEmail":       dep.DepartmentEmail,
			"departmentAddress":     dep.DepartmentAddress,
			"departmentManagerId":   dep.DepartmentManagerID,
		})
	}
	return Table{
		Name:       "department",
		PrimaryKey: "departmentId",
		Columns: []string{
			"departmentId", "departmentName", "departmentPhoneNumber",
			"departmentEmail", "departmentAddress", "departmentManagerId",
		},
		Rows: rows,
	}
}

func (d *Dataset) manufactureTable() Table {
	rows := make([]map[string]any, 0, len(d.Manufacturers))
	for _, m := range d.Manufacturers {
		rows = append(rows, map[string]any{
			"manufactureId":          m.ManufactureID,
			"manufactureName":        m.ManufactureName,
			"manufacturePhoneNumber": m.ManufacturePhoneNumber,
			"manufactureEmail":       m.ManufactureEmail,
			"manufactureAddress":     m.ManufactureAddress,
			"emergencyContact":       m.EmergencyContact,
		})
	}
	return Table{
		Name:       "manufacture",
		PrimaryKey: "manufactureId",
		Columns: []string{
			"manufactureId", "manufactureName", "manufacturePhoneNumber",
			"manufactureEmail", "manufactureAddress", "emergencyContact",
		},
		Rows: rows,
	}
}

func (d *Dataset) productTable() Table {
	rows := make([]map[string]any, 0, len(d.Products))
	for _, p := range d.Products {
		rows = append(rows, map[string]any{
			"productId":      p.ProductID,
			"productName":    p.ProductName,
			"manufactureId":  p.ManufactureID,
			"batchOrder":     p.BatchOrder,
			"batchOrderDate": p.BatchOrderDate,
			"unitPrice":      p.UnitPrice,
			"stockQuantity":  p.StockQuantity,
		})
	}
	return Table{
		Name:       "product",
		PrimaryKey: "productId",
		Columns: []string{
			"productId", "productName", "manufactureId", "batchOrder",
			"batchOrderDate", "unitPrice", "stockQuantity",
		},
		Rows: rows,
	}
}

func (d *Dataset) ordersTable() Table {
	rows := make([]map[string]any, 0, len(d.Orders))
	for _, o := range d.Orders {
		rows = append(rows, map[string]any{
			"orderId":     o.OrderID,
			"customerId":  o.CustomerID,
			"agentId":     o.AgentID,
			"orderDate":   o.OrderDate,
			"totalAmount": o.TotalAmount,
		})
	}
	return Table{
		Name:       "orders",
		PrimaryKey: "orderId",
		Columns:    []string{"orderId", "customerId", "agentId", "orderDate", "totalAmount"},
		Rows:       rows,
	}
}

func (d *Dataset) orderDetailsTable() Table {
	rows := make([]map[string]any, 0, len(d.OrderDetails))
	for _, od := range d.OrderDetails {
		rows = append(rows, map[string]any{
			"orderDetailId": od.OrderDetailID,
			"orderId":       od.OrderID,
			"productId":     od.ProductID,
			"quantity":      od.Quantity,
			"unitPrice":     od.UnitPrice,
			"lineTotal":     od.LineTotal,
		})
	}
	return Table{
		Name:       "order_details",
		PrimaryKey: "orderDetailId",
		Columns:    []string{"orderDetailId", "orderId", "productId", "quantity", "unitPrice", "lineTotal"},
		Rows:       rows,
	}
}

func (d *Dataset) shippingTable() Table {
	rows := make([]map[string]any, 0, len(d.Shipping))
	for _, s := range d.Shipping {
		rows = append(rows, map[string]any{
			"shippingId":      s.ShippingID,
			"orderId":         s.OrderID,
			"shippingCompany": s.ShippingCompany,
			"status":          s.Status,
			"shippingDate":    s.ShippingDate,
			"deliveryDate":    s.DeliveryDate,
			"trackingNumber":  s.TrackingNumber,
		})
	}
	return Table{
		Name:       "shipping",
		PrimaryKey: "shippingId",
		Columns: []string{
			"shippingId", "orderId", "shippingCompany", "status",
			"shippingDate", "deliveryDate", "trackingNumber",
		},
		Rows: rows,
	}
}

func (d *Dataset) paymentTable() Table {
	rows := make([]map[string]any, 0, len(d.Payments))
	for _, p := range d.Payments {
		rows = append(rows, map[string]any{
			"paymentId":            p.PaymentID,
			"orderId":              p.OrderID,
			"paymentMethod":        p.PaymentMethod,
			"paymentStatus":        p.PaymentStatus,
			"amount":               p.Amount,
			"paymentDate":          p.PaymentDate,
			"transactionReference": p.TransactionReference,
		})
	}
	return Table{
		Name:       "payment",
		PrimaryKey: "paymentId",
		Columns: []string{
			"paymentId", "orderId", "paymentMethod", "paymentStatus",
			"amount", "paymentDate", "transactionReference",
		},
		Rows: rows,
	}
}

func (d *Dataset) returnRequestTable() Table {
	rows := make([]map[string]any, 0, len(d.Returns))
	for _, r := range d.Returns {
		rows = append(rows, map[string]any{
			"returnId":      r.ReturnID,
			"orderDetailId": r.OrderDetailID,
			"reason":        r.Reason,
			"returnStatus":  r.ReturnStatus,
			"refundAmount":  r.RefundAmount,
			"processedBy":   r.ProcessedBy,
			"processedDate": r.ProcessedDate,
		})
	}
	return Table{
		Name:       "return_request",
		PrimaryKey: "returnId",
		Columns: []string{
			"returnId", "orderDetailId", "reason", "returnStatus",
			"refundAmount", "processedBy", "processedDate",
		},
		Rows: rows,
	}
}

func (d *Dataset) priceHistoryTable() Table {
	rows := make([]map[string]any, 0, len(d.PriceHistory))
	for _, ph := range d.PriceHistory {
		rows = append(rows, map[string]any{
			"priceHistoryId": ph.PriceHistoryID,
			"productId":      ph.ProductID,
			"oldPrice":       ph.OldPrice,
			"newPrice":       ph.NewPrice,
			"effectiveDate":  ph.EffectiveDate,
			"changedBy":      ph.ChangedBy,
		})
	}
	return Table{
		Name:       "price_history",
		PrimaryKey: "priceHistoryId",
		Columns:    []string{"priceHistoryId", "productId", "oldPrice", "newPrice", "effectiveDate", "changedBy"},
		Rows:       rows,
	}
}

func optInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
