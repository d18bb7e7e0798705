package discord

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// Register wires the Discord stub tools, the servers resource, and the
// announcement prompt into the given MCP server.
func Register(s *server.MCPServer) {
	listServersTool := mcp.NewTool("list_discord_servers",
		mcp.WithDescription("List the Discord servers the bot belongs to"),
	)
	s.AddTool(listServersTool, handleListServers)

	listChannelsTool := mcp.NewTool("list_channels",
		mcp.WithDescription("List channels in a Discord server"),
		mcp.WithString("server_id",
			mcp.Required(),
			mcp.Description("ID of the Discord server"),
		),
	)
	s.AddTool(listChannelsTool, handleListChannels)

	sendMessageTool := mcp.NewTool("send_message",
		mcp.WithDescription("Send a message to a Discord channel"),
		mcp.WithString("channel_id",
			mcp.Required(),
			mcp.Description("ID of the target channel"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Message content"),
		),
	)
	s.AddTool(sendMessageTool, handleSendMessage)

	getUserInfoTool := mcp.NewTool("get_user_info",
		mcp.WithDescription("Look up a Discord user profile"),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("ID of the user"),
		),
	)
	s.AddTool(getUserInfoTool, handleGetUserInfo)

	serversResource := mcp.NewResource(
		"discord://servers",
		"Discord Servers",
		mcp.WithResourceDescription("The servers the bot belongs to, as JSON"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(serversResource, handleServersResource)

	announcementPrompt := mcp.NewPrompt("compose_announcement",
		mcp.WithPromptDescription("Draft a server announcement in a consistent voice"),
		mcp.WithArgument("topic", mcp.ArgumentDescription("What the announcement is about"), mcp.RequiredArgument()),
		mcp.WithArgument("tone", mcp.ArgumentDescription("Tone of voice (formal, casual, hype)")),
	)
	s.AddPrompt(announcementPrompt, handleAnnouncementPrompt)
}

func handleListServers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mockdata.JSONResult(map[string]interface{}{
		"servers": ListServers(),
		"count":   len(ListServers()),
	}), nil
}

func handleListChannels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	serverID, err := request.RequireString("server_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(map[string]interface{}{
		"server_id": serverID,
		"channels":  ListChannels(serverID),
	}), nil
}

func handleSendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channelID, err := request.RequireString("channel_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(SendMessage(channelID, content)), nil
}

func handleGetUserInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(GetUserInfo(userID)), nil
}

func handleServersResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(ListServers(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal servers: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func handleAnnouncementPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := ""
	tone := "casual"
	if args := request.Params.Arguments; args != nil {
		if v, ok := args["topic"]; ok {
			topic = v
		}
		if v, ok := args["tone"]; ok && v != "" {
			tone = v
		}
	}

	text := fmt.Sprintf(
		"Write a %s Discord announcement about: %s.\n"+
			"Keep it under 200 words, open with an attention line, and end with a call to action.",
		tone, topic)

	return mcp.NewGetPromptResult("Discord announcement draft", []mcp.PromptMessage{
		{
			Role: mcp.RoleUser,
			Content: mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}), nil
}
