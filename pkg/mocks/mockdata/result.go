package mockdata

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// JSONResult marshals a mock payload into a text tool result. Marshal
// failures become tool errors rather than Go errors so the MCP client always
// gets a response.
func JSONResult(payload interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to encode mock payload: " + err.Error())
	}
	return mcp.NewToolResultText(string(data))
}
