package woocommerce

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

const defaultTaxRate = 0.08

// Register wires the WooCommerce stub tools onto the server.
func Register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("list_products",
			mcp.WithDescription("List products in the store catalog"),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mockdata.JSONResult(ListProducts()), nil
		},
	)

	s.AddTool(
		mcp.NewTool("list_orders",
			mcp.WithDescription("List recent orders, optionally filtered by status"),
			mcp.WithString("status", mcp.Description("Order status filter, e.g. processing or completed")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			status := request.GetString("status", "")
			return mockdata.JSONResult(ListOrders(status)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("create_invoice",
			mcp.WithDescription("Create an invoice from line items and compute its totals"),
			mcp.WithArray("items", mcp.Required(),
				mcp.Description("Line items, each with product, quantity and unit_price"),
			),
			mcp.WithNumber("tax_rate", mcp.Description("Tax rate as a fraction, defaults to 0.08")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			raw, ok := request.GetArguments()["items"]
			if !ok {
				return mcp.NewToolResultError("items is required"), nil
			}
			encoded, err := json.Marshal(raw)
			if err != nil {
				return mcp.NewToolResultError("items must be an array of line items"), nil
			}
			var items []LineItem
			if err := json.Unmarshal(encoded, &items); err != nil {
				return mcp.NewToolResultError("items must be an array of line items"), nil
			}
			taxRate := request.GetFloat("tax_rate", defaultTaxRate)
			invoice, err := CreateInvoice(items, taxRate)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mockdata.JSONResult(invoice), nil
		},
	)

	s.AddTool(
		mcp.NewTool("get_sales_report",
			mcp.WithDescription("Get an aggregate sales report for a period"),
			mcp.WithString("period", mcp.Description("Report period: day, week or month, defaults to week")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			period := request.GetString("period", "week")
			return mockdata.JSONResult(SalesReport(period)), nil
		},
	)

	s.AddResource(
		mcp.NewResource("woocommerce://store", "Store overview",
			mcp.WithResourceDescription("Catalog and recent order summary"),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			overview := map[string]interface{}{
				"products": ListProducts(),
				"orders":   ListOrders(""),
			}
			data, err := json.MarshalIndent(overview, "", "  ")
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		},
	)
}
