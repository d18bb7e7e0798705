package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/mock-tools/mcp-mockhub/pkg/logging"
	"github.com/mock-tools/mcp-mockhub/pkg/stubserver"
)

const integration = "woocommerce"

type flagOptions struct {
	LogLevel string `long:"log-level" description:"log level: debug, info, warn, error" default:"info"`
	Oneshot  bool   `long:"oneshot" description:"exit when the stdio client disconnects instead of idling"`
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

	zapLogger, sync, err := logging.NewZapLogger(logging.ZapConfig{Level: opts.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer sync()

	logger := logging.NewLogger(
		fmt.Sprintf("server: %s , ", integration), logging.LogFuncs{
			Debugf: zapLogger.Debugf,
			Infof:  zapLogger.Infof,
			Warnf:  zapLogger.Warnf,
			Errorf: zapLogger.Errorf,
		})

	options := stubserver.RunOptions{IdleOnDisconnect: !opts.Oneshot}
	if err := stubserver.RunStdio(integration, options, logger); err != nil {
		logger.Errorf("Server failed: %v", err)
		os.Exit(1)
	}
}
