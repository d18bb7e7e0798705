package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/mock-tools/mcp-mockhub/pkg/agent"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
	"github.com/mock-tools/mcp-mockhub/pkg/stubserver"
)

type flagOptions struct {
	Integration string `long:"integration" description:"integration to chat with: discord, gmail, slack, trello, woocommerce" required:"true"`
	ServerPath  string `long:"server" description:"path to the stub server executable" required:"true"`
	Model       string `long:"model" description:"model to use"`
	MaxTokens   int    `long:"max-tokens" description:"response token limit"`
	System      string `long:"system" description:"system prompt override"`
	LogLevel    string `long:"log-level" description:"log level: debug, info, warn, error" default:"warn"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	if !stubserver.IsKnown(opts.Integration) {
		fmt.Fprintf(os.Stderr, "Unknown integration %q, available: %v\n", opts.Integration, stubserver.Integrations())
		os.Exit(1)
	}

	zapLogger, sync, err := logging.NewZapLogger(logging.ZapConfig{
		Level:       opts.LogLevel,
		Development: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer sync()

	logger := logging.NewLogger(
		fmt.Sprintf("agent: %s , ", opts.Integration), logging.LogFuncs{
			Debugf: zapLogger.Debugf,
			Infof:  zapLogger.Infof,
			Warnf:  zapLogger.Warnf,
			Errorf: zapLogger.Errorf,
		})

	runner, err := agent.NewRunner(agent.Config{
		Integration:      opts.Integration,
		ServerExecutable: opts.ServerPath,
		ServerArgs:       []string{"--oneshot", "--log-level", opts.LogLevel},
		Model:            opts.Model,
		MaxTokens:        opts.MaxTokens,
		SystemPrompt:     opts.System,
		APIKey:           os.Getenv("ANTHROPIC_API_KEY"),
	}, logger)
	if err != nil {
		logger.Errorf("Failed to create agent: %v", err)
		os.Exit(1)
	}
	defer runner.Close()

	if err := runner.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Errorf("Agent session failed: %v", err)
		os.Exit(1)
	}
}
