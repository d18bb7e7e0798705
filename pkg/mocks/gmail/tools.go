package gmail

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// Register wires the Gmail stub tools and the inbox resource into the given
// MCP server.
func Register(s *server.MCPServer) {
	listEmailsTool := mcp.NewTool("list_emails",
		mcp.WithDescription("List recent emails from the inbox"),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of emails to return"),
		),
	)
	s.AddTool(listEmailsTool, handleListEmails)

	getEmailTool := mcp.NewTool("get_email",
		mcp.WithDescription("Fetch the full content of an email"),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("ID of the message"),
		),
	)
	s.AddTool(getEmailTool, handleGetEmail)

	sendEmailTool := mcp.NewTool("send_email",
		mcp.WithDescription("Send an email"),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient address"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Subject line"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Plain-text body"),
		),
	)
	s.AddTool(sendEmailTool, handleSendEmail)

	searchEmailsTool := mcp.NewTool("search_emails",
		mcp.WithDescription("Search the inbox by keyword"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
	)
	s.AddTool(searchEmailsTool, handleSearchEmails)

	inboxResource := mcp.NewResource(
		"gmail://inbox",
		"Gmail Inbox",
		mcp.WithResourceDescription("The mock inbox listing, as JSON"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(inboxResource, handleInboxResource)
}

func handleListEmails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxResults := request.GetInt("max_results", 10)
	emails := ListEmails(maxResults)
	return mockdata.JSONResult(map[string]interface{}{
		"emails": emails,
		"count":  len(emails),
	}), nil
}

func handleGetEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messageID, err := request.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	email := GetEmail(messageID)
	if email == nil {
		return mcp.NewToolResultError(fmt.Sprintf("message not found: %s", messageID)), nil
	}
	return mockdata.JSONResult(email), nil
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	to, err := request.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subject, err := request.RequireString("subject")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := request.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(SendEmail(to, subject, body)), nil
}

func handleSearchEmails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches := SearchEmails(query)
	return mockdata.JSONResult(map[string]interface{}{
		"query":   query,
		"matches": matches,
		"count":   len(matches),
	}), nil
}

func handleInboxResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(ListEmails(0), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inbox: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
