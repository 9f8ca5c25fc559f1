package dataset

import "fmt"

// Counts configures how many records each phase produces. Order details,
// shipping and payments are derived from the order count and have no
// independent knob.
type Counts struct {
	Customers     int `json:"customers" mapstructure:"customers"`
	Employees     int `json:"employees" mapstructure:"employees"`
	Departments   int `json:"departments" mapstructure:"departments"`
	Manufacturers int `json:"manufacturers" mapstructure:"manufacturers"`
	Products      int `json:"products" mapstructure:"products"`
	Orders        int `json:"orders" mapstructure:"orders"`
	Returns       int `json:"returns" mapstructure:"returns"`
	PriceHistory  int `json:"price_history" mapstructure:"price_history"`
}

// DefaultCounts mirrors the sizing the dataset was originally tuned for.
func DefaultCounts() Counts {
	return Counts{
		Customers:     100,
		Employees:     50,
		Departments:   5,
		Manufacturers: 5,
		Products:      10,
		Orders:        400,
		Returns:       50,
		PriceHistory:  100,
	}
}

// ConfigError reports a count that would leave a later phase with an empty
// population to sample from. Generation aborts before any record is built.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid generation config: %s: %s", e.Field, e.Reason)
}

// Validate fails fast on counts that violate a downstream phase's
// sampling precondition.
func (c Counts) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"customers", c.Customers},
		{"employees", c.Employees},
		{"departments", c.Departments},
		{"manufacturers", c.Manufacturers},
		{"products", c.Products},
		{"orders", c.Orders},
	}
	for _, p := range positive {
		if p.value < 1 {
			return &ConfigError{Field: p.name, Reason: fmt.Sprintf("must be at least 1, got %d", p.value)}
		}
	}
	if c.Returns < 0 {
		return &ConfigError{Field: "returns", Reason: fmt.Sprintf("must not be negative, got %d", c.Returns)}
	}
	if c.PriceHistory < 0 {
		return &ConfigError{Field: "price_history", Reason: fmt.Sprintf("must not be negative, got %d", c.PriceHistory)}
	}
	return nil
}
