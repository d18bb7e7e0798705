package woocommerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

func TestListProducts(t *testing.T) {
	products := ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, "Ceramic Mug", products[0]["name"])
	assert.Equal(t, 14.50, products[0]["price"])
	assert.Equal(t, "outofstock", products[2]["status"])
}

func TestListOrders(t *testing.T) {
	orders := ListOrders("")
	require.Len(t, orders, 5)
	for _, order := range orders {
		assert.Contains(t, order, "customer")
		assert.Equal(t, "USD", order["currency"])
	}

	completed := ListOrders("completed")
	require.Len(t, completed, 2)
	for _, order := range completed {
		assert.Equal(t, "completed", order["status"])
	}
}

func TestCreateInvoiceTotals(t *testing.T) {
	items := []LineItem{
		{Product: "Ceramic Mug", Quantity: 3, UnitPrice: 14.50},
		{Product: "Canvas Tote", Quantity: 1, UnitPrice: 22.00},
	}

	invoice, err := CreateInvoice(items, 0.10)
	require.NoError(t, err)

	assert.Equal(t, 65.50, invoice.Subtotal)
	assert.Equal(t, 6.55, invoice.Tax)
	assert.Equal(t, 72.05, invoice.Total)
	assert.Equal(t, 0.10, invoice.TaxRate)
	assert.Len(t, invoice.Items, 2)
	assert.Contains(t, invoice.ID, "inv_")
}

func TestCreateInvoiceRounding(t *testing.T) {
	items := []LineItem{
		{Product: "Enamel Pin Set", Quantity: 3, UnitPrice: 9.99},
	}

	invoice, err := CreateInvoice(items, 0.0825)
	require.NoError(t, err)

	assert.Equal(t, 29.97, invoice.Subtotal)
	assert.Equal(t, 2.47, invoice.Tax)
	assert.Equal(t, 32.44, invoice.Total)
}

func TestCreateInvoiceValidation(t *testing.T) {
	_, err := CreateInvoice(nil, 0.08)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = CreateInvoice([]LineItem{{Product: "Mug", Quantity: 0, UnitPrice: 5}}, 0.08)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = CreateInvoice([]LineItem{{Product: "Mug", Quantity: 1, UnitPrice: -1}}, 0.08)
	require.Error(t, err)

	_, err = CreateInvoice([]LineItem{{Product: "Mug", Quantity: 1, UnitPrice: 5}}, 1.5)
	require.Error(t, err)
}

func TestSalesReport(t *testing.T) {
	report := SalesReport("month")
	assert.Equal(t, "month", report["period"])
	assert.Contains(t, report, "gross_sales")
	assert.Contains(t, report, "net_sales")

	fallback := SalesReport("quarter")
	assert.Equal(t, "quarter", fallback["period"])
}
