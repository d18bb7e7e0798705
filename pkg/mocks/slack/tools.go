package slack

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// Register wires the Slack stub tools and the workspace resource into the
// given MCP server.
func Register(s *server.MCPServer) {
	listChannelsTool := mcp.NewTool("list_channels",
		mcp.WithDescription("List channels in the Slack workspace"),
	)
	s.AddTool(listChannelsTool, handleListChannels)

	listUsersTool := mcp.NewTool("list_users",
		mcp.WithDescription("List members of the Slack workspace"),
	)
	s.AddTool(listUsersTool, handleListUsers)

	postMessageTool := mcp.NewTool("post_message",
		mcp.WithDescription("Post a message to a Slack channel"),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel ID or name"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Message text"),
		),
	)
	s.AddTool(postMessageTool, handlePostMessage)

	historyTool := mcp.NewTool("get_channel_history",
		mcp.WithDescription("Fetch recent messages from a channel"),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("Channel ID or name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of messages to return (default 5, max 20)"),
		),
	)
	s.AddTool(historyTool, handleChannelHistory)

	workspaceResource := mcp.NewResource(
		"slack://workspace",
		"Slack Workspace",
		mcp.WithResourceDescription("Channels and members of the mock workspace, as JSON"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(workspaceResource, handleWorkspaceResource)
}

func handleListChannels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channels := ListChannels()
	return mockdata.JSONResult(map[string]interface{}{
		"channels": channels,
		"count":    len(channels),
	}), nil
}

func handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	users := ListUsers()
	return mockdata.JSONResult(map[string]interface{}{
		"members": users,
		"count":   len(users),
	}), nil
}

func handlePostMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channel, err := request.RequireString("channel")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(PostMessage(channel, text)), nil
}

func handleChannelHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channel, err := request.RequireString("channel")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := request.GetInt("limit", 5)
	history := ChannelHistory(channel, limit)
	return mockdata.JSONResult(map[string]interface{}{
		"channel":  channel,
		"messages": history,
		"count":    len(history),
	}), nil
}

func handleWorkspaceResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	payload := map[string]interface{}{
		"channels": ListChannels(),
		"members":  ListUsers(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workspace: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
