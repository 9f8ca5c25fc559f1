package loader

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"
)

// Constraint names one foreign key so it can be dropped before a batch and
// re-added afterwards. Definition is the ADD CONSTRAINT body.
type Constraint struct {
	Table      string
	Name       string
	Definition string
}

// DefaultConstraints lists every foreign key across the target schema,
// including the mutual employee/department pair that forces two-phase
// generation.
func DefaultConstraints() []Constraint {
	return []Constraint{
		{"customer", "fk_customer_referral", `FOREIGN KEY ("userReferral") REFERENCES customer("customerId")`},
		{"employee", "fk_employee_department", `FOREIGN KEY ("departmentId") REFERENCES department("departmentId")`},
		{"employee", "fk_employee_supervisor", `FOREIGN KEY ("supervisorId") REFERENCES employee("employeeId")`},
		{"department", "fk_department_manager", `FOREIGN KEY ("departmentManagerId") REFERENCES employee("employeeId")`},
		{"product", "fk_product_manufacture", `FOREIGN KEY ("manufactureId") REFERENCES manufacture("manufactureId")`},
		{"orders", "fk_orders_customer", `FOREIGN KEY ("customerId") REFERENCES customer("customerId")`},
		{"orders", "fk_orders_agent", `FOREIGN KEY ("agentId") REFERENCES employee("employeeId")`},
		{"order_details", "fk_order_details_order", `FOREIGN KEY ("orderId") REFERENCES orders("orderId")`},
		{"order_details", "fk_order_details_product", `FOREIGN KEY ("productId") REFERENCES product("productId")`},
		{"shipping", "fk_shipping_order", `FOREIGN KEY ("orderId") REFERENCES orders("orderId")`},
		{"payment", "fk_payment_order", `FOREIGN KEY ("orderId") REFERENCES orders("orderId")`},
		{"return_request", "fk_return_request_detail", `FOREIGN KEY ("orderDetailId") REFERENCES order_details("orderDetailId")`},
		{"return_request", "fk_return_request_employee", `FOREIGN KEY ("processedBy") REFERENCES employee("employeeId")`},
		{"price_history", "fk_price_history_product", `FOREIGN KEY ("productId") REFERENCES product("productId")`},
		{"price_history", "fk_price_history_employee", `FOREIGN KEY ("changedBy") REFERENCES employee("employeeId")`},
	}
}

// DropConstraints relaxes every registered foreign key. Failures are
// logged per constraint and do not abort the siblings: a missing
// constraint is the common, harmless case on a fresh schema.
func (l *Loader) DropConstraints(ctx context.Context) {
	for _, c := range l.constraints {
		stmt := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s",
			pq.QuoteIdentifier(c.Table), pq.QuoteIdentifier(c.Name))
		if _, err := l.db.Exec(ctx, stmt); err != nil {
			log.Printf("Warning: failed to drop constraint %s on %s: %v", c.Name, c.Table, err)
		}
	}
}

// RestoreConstraints re-adds every registered foreign key and returns the
// failures. Restoring over data that violates a key must fail loudly, so
// errors are collected rather than swallowed.
func (l *Loader) RestoreConstraints(ctx context.Context) []error {
	var errs []error
	for _, c := range l.constraints {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s",
			pq.QuoteIdentifier(c.Table), pq.QuoteIdentifier(c.Name), c.Definition)
		if _, err := l.db.Exec(ctx, stmt); err != nil {
			log.Printf("Warning: failed to restore constraint %s on %s: %v", c.Name, c.Table, err)
			errs = append(errs, fmt.Errorf("restore %s on %s: %w", c.Name, c.Table, err))
		}
	}
	return errs
}
