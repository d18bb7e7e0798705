package agent

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mark3labs/mcp-go/mcp"
)

// convertTools maps MCP tool definitions onto the Anthropic tool schema.
func convertTools(tools []mcp.Tool) []anthropic.ToolUnionParam {
	converted := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		param := anthropic.ToolParam{
			Name: tool.Name,
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: tool.InputSchema.Properties,
				Required:   tool.InputSchema.Required,
			},
		}
		if tool.Description != "" {
			param.Description = anthropic.String(tool.Description)
		}
		converted = append(converted, anthropic.ToolUnionParam{OfTool: &param})
	}
	return converted
}

// toolResultText flattens an MCP call result into plain text for the model.
func toolResultText(result *mcp.CallToolResult) string {
	text := ""
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			if text != "" {
				text += "\n"
			}
			text += tc.Text
		}
	}
	return text
}
