// Package stubserver assembles per-integration MCP servers over stdio.
// Each integration contributes its tools, resources and prompts through
// a registration hook; the process manager treats the resulting binaries
// uniformly.
package stubserver

import (
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/discord"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/gmail"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/slack"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/trello"
	"github.com/mock-tools/mcp-mockhub/pkg/mocks/woocommerce"
)

const serverVersion = "1.0.0"

type registerFunc func(*server.MCPServer)

var integrations = map[string]registerFunc{
	"discord":     discord.Register,
	"gmail":       gmail.Register,
	"slack":       slack.Register,
	"trello":      trello.Register,
	"woocommerce": woocommerce.Register,
}

// Integrations returns the known integration names, sorted.
func Integrations() []string {
	names := make([]string, 0, len(integrations))
	for name := range integrations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is a registered integration.
func IsKnown(name string) bool {
	_, ok := integrations[name]
	return ok
}

// New builds the MCP server for the named integration.
func New(integration string) (*server.MCPServer, error) {
	register, ok := integrations[integration]
	if !ok {
		return nil, errors.NewNotFoundError("unknown integration", nil).WithContext("integration", integration)
	}

	s := server.NewMCPServer(
		integration+"-mock",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)
	register(s)
	return s, nil
}

// RunOptions controls how a stub server binary behaves.
type RunOptions struct {
	// IdleOnDisconnect keeps the process alive after the stdio client
	// disconnects, until SIGTERM or SIGINT. Spawned stub servers get their
	// stdin from /dev/null, so without this the binary would exit
	// immediately and there would be nothing to manage.
	IdleOnDisconnect bool
}

// RunStdio serves the integration over stdin/stdout until the client
// disconnects. Logs go to the provided logger, never to stdout.
func RunStdio(integration string, options RunOptions, logger logging.Logger) error {
	s, err := New(integration)
	if err != nil {
		return err
	}

	logger.Infof("serving integration over stdio, integration: %s", integration)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ServeStdio(s)
	}()

	if options.IdleOnDisconnect {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-signals:
			logger.Infof("received signal, integration: %s, signal: %v", integration, sig)
			return nil
		case err := <-serveErr:
			if err != nil {
				return errors.NewInternalError("stdio transport failed", err).WithContext("integration", integration)
			}
			logger.Infof("stdio client disconnected, idling until signalled, integration: %s", integration)
			sig := <-signals
			logger.Infof("received signal, integration: %s, signal: %v", integration, sig)
			return nil
		}
	}

	if err := <-serveErr; err != nil {
		return errors.NewInternalError("stdio transport failed", err).WithContext("integration", integration)
	}
	return nil
}
