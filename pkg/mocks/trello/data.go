// Package trello is a stub Trello integration with canned board data.
package trello

import (
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/mockdata"
)

// ListBoards returns three static boards.
func ListBoards() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":     "board_sprint",
			"name":   "Sprint Board",
			"lists":  []string{"Backlog", "In Progress", "Review", "Done"},
			"closed": false,
		},
		{
			"id":     "board_roadmap",
			"name":   "Product Roadmap",
			"lists":  []string{"Ideas", "Next Quarter", "Committed"},
			"closed": false,
		},
		{
			"id":     "board_archive",
			"name":   "2024 Archive",
			"lists":  []string{"Shipped"},
			"closed": true,
		},
	}
}

// ListCards fabricates cards for a board.
func ListCards(boardID string) []map[string]interface{} {
	titles := []string{
		"Fix stale PID handling",
		"Write onboarding doc",
		"Upgrade CI runners",
		"Spike: settings file migration",
	}
	cards := make([]map[string]interface{}, 0, len(titles))
	for i, title := range titles {
		cards = append(cards, map[string]interface{}{
			"id":       mockdata.ID("card"),
			"board_id": boardID,
			"name":     title,
			"list":     mockdata.Pick("Backlog", "In Progress", "Review"),
			"position": i,
			"due":      mockdata.Timestamp(-24 * (i + 1)), // due dates in the future
		})
	}
	return cards
}

// CreateCard pretends to create a card in a list.
func CreateCard(listID, name, description string) map[string]interface{} {
	return map[string]interface{}{
		"id":          mockdata.ID("card"),
		"list_id":     listID,
		"name":        name,
		"description": description,
		"created_at":  mockdata.Timestamp(0),
	}
}

// MoveCard pretends to move a card to another list.
func MoveCard(cardID, targetListID string) map[string]interface{} {
	return map[string]interface{}{
		"id":       cardID,
		"list_id":  targetListID,
		"moved":    true,
		"moved_at": mockdata.Timestamp(0),
	}
}
