// Package woocommerce is a stub WooCommerce integration. Besides canned
// catalog and order data it carries the one computed stub: invoice totals
// from line items.
package woocommerce

import (
	"math"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// LineItem is one row of an invoice request.
type LineItem struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Invoice is the computed invoice.
type Invoice struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	TaxRate  float64    `json:"tax_rate"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	IssuedAt string     `json:"issued_at"`
}

// ListProducts returns a static catalog.
func ListProducts() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": 101, "name": "Ceramic Mug", "price": 14.50, "stock": 230, "status": "publish"},
		{"id": 102, "name": "Canvas Tote", "price": 22.00, "stock": 112, "status": "publish"},
		{"id": 103, "name": "Enamel Pin Set", "price": 9.99, "stock": 0, "status": "outofstock"},
		{"id": 104, "name": "Letterpress Notebook", "price": 18.75, "stock": 64, "status": "publish"},
	}
}

// ListOrders returns randomly fleshed-out orders, optionally filtered by status.
func ListOrders(status string) []map[string]interface{} {
	statuses := []string{"processing", "completed", "pending", "completed", "refunded"}
	orders := make([]map[string]interface{}, 0, len(statuses))
	for i, s := range statuses {
		if status != "" && s != status {
			continue
		}
		orders = append(orders, map[string]interface{}{
			"id":       1000 + i,
			"status":   s,
			"customer": mockdata.Pick("alice@example.com", "bob@example.com", "carol@example.com"),
			"total":    mockdata.Price(15, 250),
			"currency": "USD",
			"created":  mockdata.Timestamp(mockdata.Count(1, 240)),
		})
	}
	return orders
}

// CreateInvoice computes subtotal, tax and total from the line items.
// Amounts are rounded to cents at each aggregation step.
func CreateInvoice(items []LineItem, taxRate float64) (*Invoice, error) {
	if len(items) == 0 {
		return nil, errors.NewValidationError("invoice requires at least one line item", nil)
	}
	if taxRate < 0 || taxRate > 1 {
		return nil, errors.NewValidationError("tax rate must be between 0 and 1", nil).WithContext("tax_rate", taxRate)
	}

	subtotal := 0.0
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, errors.NewValidationError("line item quantity must be positive", nil).WithContext("index", i)
		}
		if item.UnitPrice < 0 {
			return nil, errors.NewValidationError("line item unit price cannot be negative", nil).WithContext("index", i)
		}
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * taxRate)

	return &Invoice{
		ID:       mockdata.ID("inv"),
		Items:    items,
		Subtotal: subtotal,
		TaxRate:  taxRate,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
		IssuedAt: mockdata.Timestamp(0),
	}, nil
}

// SalesReport fabricates aggregate numbers for a period.
func SalesReport(period string) map[string]interface{} {
	days := map[string]int{"day": 1, "week": 7, "month": 30}[period]
	if days == 0 {
		days = 7
	}
	gross := mockdata.Price(500, 5000) * float64(days)
	return map[string]interface{}{
		"period":       period,
		"orders":       mockdata.Count(5*days, 20*days),
		"gross_sales":  roundCents(gross),
		"net_sales":    roundCents(gross * 0.91),
		"top_product":  "Ceramic Mug",
		"generated_at": mockdata.Timestamp(0),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
