// Package agent relays a console conversation to an Anthropic model while
// exposing one stub integration's MCP tools. The stub server runs as a
// child process on stdio; every tool call the model makes is forwarded to
// it and the result fed back into the conversation.
package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

const (
	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "claude-sonnet-4-20250514"

	defaultMaxTokens = 2048
	maxToolRounds    = 10

	protocolVersion = "2024-11-05"
)

// Config describes one agent session.
type Config struct {
	Integration      string   `yaml:"integration"`
	ServerExecutable string   `yaml:"server_executable"`
	ServerArgs       []string `yaml:"server_args"`
	Model            string   `yaml:"model"`
	MaxTokens        int      `yaml:"max_tokens"`
	SystemPrompt     string   `yaml:"system_prompt"`
	APIKey           string   `yaml:"-"`
}

// Runner owns the stub server child process, the MCP session over its
// stdio, and the conversation history with the model.
type Runner struct {
	config    Config
	logger    logging.Logger
	llm       anthropic.Client
	mcpClient *client.Client
	tools     []anthropic.ToolUnionParam
	messages  []anthropic.MessageParam
}

// NewRunner spawns the stub server, initializes the MCP session and
// fetches the tool list. Close must be called to reap the child.
func NewRunner(config Config, logger logging.Logger) (*Runner, error) {
	if config.Integration == "" {
		return nil, errors.NewValidationError("integration name cannot be empty", nil)
	}
	if config.ServerExecutable == "" {
		return nil, errors.NewValidationError("server executable cannot be empty", nil)
	}
	if config.APIKey == "" {
		return nil, errors.NewValidationError("API key cannot be empty, set ANTHROPIC_API_KEY", nil)
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaultMaxTokens
	}

	mcpClient, err := client.NewStdioMCPClient(config.ServerExecutable, os.Environ(), config.ServerArgs...)
	if err != nil {
		return nil, errors.NewProcessError("failed to start stub server", err).WithContext("executable", config.ServerExecutable)
	}

	ctx := context.Background()

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = protocolVersion
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "mockhub-agent",
		Version: "1.0.0",
	}
	initResult, err := mcpClient.Initialize(ctx, initRequest)
	if err != nil {
		mcpClient.Close()
		return nil, errors.NewInternalError("MCP initialize failed", err).WithContext("integration", config.Integration)
	}
	logger.Infof("connected to stub server, name: %s, version: %s",
		initResult.ServerInfo.Name, initResult.ServerInfo.Version)

	toolsResult, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		mcpClient.Close()
		return nil, errors.NewInternalError("MCP tool listing failed", err).WithContext("integration", config.Integration)
	}
	logger.Infof("discovered tools, count: %d", len(toolsResult.Tools))

	return &Runner{
		config:    config,
		logger:    logger,
		llm:       anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		mcpClient: mcpClient,
		tools:     convertTools(toolsResult.Tools),
	}, nil
}

// Close shuts down the MCP session and the stub server child.
func (r *Runner) Close() error {
	return r.mcpClient.Close()
}

// ToolCount returns the number of tools exposed to the model.
func (r *Runner) ToolCount() int {
	return len(r.tools)
}

// Run reads user lines from in and writes model replies to out until EOF.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Connected to %s mock, %d tools available. Type a message, Ctrl-D to exit.\n",
		r.config.Integration, len(r.tools))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		reply, err := r.Turn(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, reply)
	}
	if err := scanner.Err(); err != nil {
		return errors.NewIOError("failed to read user input", err)
	}
	return nil
}

// Turn appends the user message to the history and drives the model until
// it stops asking for tools. Returns the final text reply.
func (r *Runner) Turn(ctx context.Context, userInput string) (string, error) {
	r.messages = append(r.messages, anthropic.NewUserMessage(anthropic.NewTextBlock(userInput)))

	var reply strings.Builder
	for round := 0; round < maxToolRounds; round++ {
		message, err := r.llm.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(r.config.Model),
			MaxTokens: int64(r.config.MaxTokens),
			System:    r.systemBlocks(),
			Messages:  r.messages,
			Tools:     r.tools,
		})
		if err != nil {
			return "", errors.NewInternalError("model request failed", err).WithContext("model", r.config.Model)
		}
		r.messages = append(r.messages, message.ToParam())

		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range message.Content {
			switch b := block.AsAny().(type) {
			case anthropic.TextBlock:
				if reply.Len() > 0 {
					reply.WriteString("\n")
				}
				reply.WriteString(b.Text)
			case anthropic.ToolUseBlock:
				result := r.callTool(ctx, b)
				toolResults = append(toolResults, result)
			}
		}

		if message.StopReason != anthropic.StopReasonToolUse {
			return reply.String(), nil
		}
		r.messages = append(r.messages, anthropic.NewUserMessage(toolResults...))
	}
	return reply.String(), errors.NewInternalError("model did not converge within tool round limit", nil).
		WithContext("rounds", maxToolRounds)
}

func (r *Runner) systemBlocks() []anthropic.TextBlockParam {
	prompt := r.config.SystemPrompt
	if prompt == "" {
		prompt = fmt.Sprintf("You are a helpful assistant with access to %s tools. "+
			"All data comes from a mock environment.", r.config.Integration)
	}
	return []anthropic.TextBlockParam{{Text: prompt}}
}

// callTool forwards one tool invocation to the stub server. Failures are
// reported to the model as error tool results rather than aborting the turn.
func (r *Runner) callTool(ctx context.Context, block anthropic.ToolUseBlock) anthropic.ContentBlockParamUnion {
	r.logger.Infof("tool call, name: %s, id: %s", block.Name, block.ID)

	var args map[string]interface{}
	if len(block.Input) > 0 {
		if err := json.Unmarshal(block.Input, &args); err != nil {
			r.logger.Warnf("failed to decode tool input, name: %s, error: %v", block.Name, err)
			return anthropic.NewToolResultBlock(block.ID, "invalid tool input: "+err.Error(), true)
		}
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = block.Name
	request.Params.Arguments = args

	result, err := r.mcpClient.CallTool(ctx, request)
	if err != nil {
		r.logger.Warnf("tool call failed, name: %s, error: %v", block.Name, err)
		return anthropic.NewToolResultBlock(block.ID, "tool call failed: "+err.Error(), true)
	}
	return anthropic.NewToolResultBlock(block.ID, toolResultText(result), result.IsError)
}
