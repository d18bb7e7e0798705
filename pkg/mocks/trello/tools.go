package trello

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// Register wires the Trello stub tools and the boards resource into the
// given MCP server.
func Register(s *server.MCPServer) {
	listBoardsTool := mcp.NewTool("list_boards",
		mcp.WithDescription("List Trello boards visible to the account"),
	)
	s.AddTool(listBoardsTool, handleListBoards)

	listCardsTool := mcp.NewTool("list_cards",
		mcp.WithDescription("List cards on a board"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("ID of the board"),
		),
	)
	s.AddTool(listCardsTool, handleListCards)

	createCardTool := mcp.NewTool("create_card",
		mcp.WithDescription("Create a card in a list"),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("ID of the target list"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Card title"),
		),
		mcp.WithString("description",
			mcp.Description("Card description"),
		),
	)
	s.AddTool(createCardTool, handleCreateCard)

	moveCardTool := mcp.NewTool("move_card",
		mcp.WithDescription("Move a card to another list"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("ID of the card"),
		),
		mcp.WithString("target_list_id",
			mcp.Required(),
			mcp.Description("ID of the destination list"),
		),
	)
	s.AddTool(moveCardTool, handleMoveCard)

	boardsResource := mcp.NewResource(
		"trello://boards",
		"Trello Boards",
		mcp.WithResourceDescription("The mock boards, as JSON"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(boardsResource, handleBoardsResource)
}

func handleListBoards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boards := ListBoards()
	return mockdata.JSONResult(map[string]interface{}{
		"boards": boards,
		"count":  len(boards),
	}), nil
}

func handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := request.RequireString("board_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cards := ListCards(boardID)
	return mockdata.JSONResult(map[string]interface{}{
		"board_id": boardID,
		"cards":    cards,
		"count":    len(cards),
	}), nil
}

func handleCreateCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listID, err := request.RequireString("list_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description := request.GetString("description", "")
	return mockdata.JSONResult(CreateCard(listID, name, description)), nil
}

func handleMoveCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cardID, err := request.RequireString("card_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetListID, err := request.RequireString("target_list_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mockdata.JSONResult(MoveCard(cardID, targetListID)), nil
}

func handleBoardsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(ListBoards(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal boards: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
