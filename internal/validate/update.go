package validate

import "strings"

// Field is one (name, value) assignment of a partial update.
type Field struct {
	Name  string
	Value any
}

// recognizedFields is the union of updatable fields across entity kinds, in
// the order assignments are built. An entity simply never receives fields it
// doesn't own.
var recognizedFields = []string{
	"product_name",
	"category",
	"brand_name",
	"price",
	"quantity",
	"order_status",
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Update validates a partial-update request: the target id must be non-empty
// and every present recognized field must pass its single-field validator.
// Absent fields are skipped, never defaulted.
func Update(id string, fields map[string]any) error {
	if strings.TrimSpace(id) == "" {
		return failf("ID must not be empty")
	}
	if v, ok := fields["product_name"]; ok {
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			return failf("Product name must not be empty")
		}
	}
	if v, ok := fields["category"]; ok {
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			return failf("Category must not be empty")
		}
	}
	if v, ok := fields["price"]; ok {
		n, isNum := toNumber(v)
		if !isNum {
			return failf("Price must be a valid decimal number")
		}
		if n < 0 {
			return failf("Price cannot be negative")
		}
	}
	if v, ok := fields["quantity"]; ok {
		if _, isNum := toNumber(v); !isNum {
			return failf("Quantity must be a number")
		}
	}
	if v, ok := fields["order_status"]; ok {
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			return failf("Status must not be empty")
		}
	}
	return nil
}

// UpdateSet builds the ordered field set for every recognized field present in
// fields. price, quantity and order_status use a presence check so 0 (and ""
// for status, caught by Update beforehand) are valid update values; the string
// fields use truthiness, so an intentional empty-string update is
// indistinguishable from "field absent". An empty result means nothing to
// update.
func UpdateSet(fields map[string]any) []Field {
	var set []Field
	for _, name := range recognizedFields {
		v, ok := fields[name]
		if !ok || v == nil {
			continue
		}
		switch name {
		case "product_name", "category", "brand_name":
			if s, isStr := v.(string); !isStr || s == "" {
				continue
			}
		}
		set = append(set, Field{Name: name, Value: v})
	}
	return set
}
