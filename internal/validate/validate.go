package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
)

// DatetimeLayout is the only accepted timestamp format, e.g. "2025-03-06 14:30:00".
const DatetimeLayout = "2006-01-02 15:04:05"

// ValidationError marks bad input shape or value. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func failf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ID rejects empty identifiers.
func ID(value string) error {
	if strings.TrimSpace(value) == "" {
		return failf("ID cannot be empty and must be a string")
	}
	return nil
}

// Text rejects blank strings, naming the offending field.
func Text(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return failf("%s must not be empty", field)
	}
	return nil
}

// Price rejects negative values.
func Price(value float64) error {
	if value < 0 {
		return failf("Price cannot be negative")
	}
	return nil
}

// Datetime rejects anything that does not parse under DatetimeLayout.
func Datetime(value string) error {
	if _, err := time.Parse(DatetimeLayout, value); err != nil {
		return failf("Invalid datetime format. Use 'YYYY-MM-DD HH:MM:SS'")
	}
	return nil
}

// Product runs every field validator. Called at create time only; partial
// updates go through Update instead. Negative initial stock is rejected here
// even though the price check is the only negativity check the order path has.
func Product(p *domain.Product) error {
	if err := Text(p.ProductID, "Product ID"); err != nil {
		return err
	}
	if err := Text(p.ProductName, "Product name"); err != nil {
		return err
	}
	if err := Text(p.Category, "Category"); err != nil {
		return err
	}
	if err := Price(p.Price); err != nil {
		return err
	}
	if p.Quantity < 0 {
		return failf("Quantity cannot be negative")
	}
	return nil
}

// Order runs every field validator. Called at create time only.
func Order(o *domain.Order) error {
	if err := ID(o.OrderID); err != nil {
		return err
	}
	if err := ID(o.ProductID); err != nil {
		return err
	}
	if err := Text(o.ContactNumber, "Contact number"); err != nil {
		return err
	}
	if err := Text(o.ProductName, "Product name"); err != nil {
		return err
	}
	if err := ID(o.UserID); err != nil {
		return err
	}
	if err := Datetime(o.Datetime); err != nil {
		return err
	}
	if err := Price(o.TotalPrice); err != nil {
		return err
	}
	if err := Text(o.OrderStatus, "Status"); err != nil {
		return err
	}
	return nil
}

// InventoryEntry checks the composite key parts of a stock movement.
func InventoryEntry(e *domain.InventoryEntry) error {
	if err := ID(e.ProductID); err != nil {
		return err
	}
	return Datetime(e.Datetime)
}
