package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/mock-tools/mcp-mockhub/pkg/logging"
	"github.com/mock-tools/mcp-mockhub/pkg/manager"
	"github.com/mock-tools/mcp-mockhub/pkg/monitoring"
	"github.com/mock-tools/mcp-mockhub/pkg/settings"
)

type globalOptions struct {
	ConfigPath string `long:"config" description:"path to the manager configuration file"`
	LogLevel   string `long:"log-level" description:"log level: debug, info, warn, error" default:"info"`
}

type app struct {
	opts   globalOptions
	logger logging.Logger
}

func (a *app) newManager() (*manager.Manager, error) {
	var config *manager.Config
	var err error
	if a.opts.ConfigPath != "" {
		config, err = manager.LoadConfigFromFile(a.opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	} else {
		config = manager.DefaultConfig()
	}
	return manager.NewManager(config, a.logger)
}

type startCommand struct {
	app *app
	All bool `long:"all" description:"start every configured server"`
}

func (c *startCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}
	if c.All {
		results, err := m.StartAll()
		for _, result := range results {
			printStartResult(result)
		}
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("server name required, or use --all")
	}
	for _, name := range args {
		result, err := m.Start(name)
		if err != nil {
			return err
		}
		printStartResult(*result)
	}
	return nil
}

type stopCommand struct {
	app *app
	All bool `long:"all" description:"stop every configured server"`
}

func (c *stopCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}
	if c.All {
		results, err := m.StopAll()
		for _, result := range results {
			printStopResult(result)
		}
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("server name required, or use --all")
	}
	for _, name := range args {
		result, err := m.Stop(name)
		if err != nil {
			return err
		}
		printStopResult(*result)
	}
	return nil
}

type restartCommand struct {
	app *app
}

func (c *restartCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("server name required")
	}
	m, err := c.app.newManager()
	if err != nil {
		return err
	}
	for _, name := range args {
		result, err := m.Restart(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: restarted, pid %d\n", result.Name, result.PID)
	}
	return nil
}

type statusCommand struct {
	app *app
}

func (c *statusCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}

	var statuses []monitoring.ServerStatus
	if len(args) == 0 {
		statuses, err = m.StatusAll()
		if err != nil {
			return err
		}
	} else {
		for _, name := range args {
			status, err := m.Status(name)
			if err != nil {
				return err
			}
			statuses = append(statuses, *status)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE\tPID\tCPU%\tRSS\tUPTIME")
	for _, status := range statuses {
		pid, cpu, rss, uptime := "-", "-", "-", "-"
		if status.State != monitoring.ServerStateStopped {
			pid = fmt.Sprintf("%d", status.PID)
		}
		if status.Usage != nil {
			cpu = fmt.Sprintf("%.1f", status.Usage.CPUPercent)
			rss = formatBytes(status.Usage.MemoryRSS)
			uptime = status.Usage.Uptime.Round(time.Second).String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", status.Name, status.State, pid, cpu, rss, uptime)
	}
	return w.Flush()
}

type listCommand struct {
	app *app
}

func (c *listCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}
	for _, config := range m.ServerConfigs() {
		fmt.Printf("%s\t%s\n", config.Name, config.Executable)
	}
	return nil
}

type pruneCommand struct {
	app *app
}

func (c *pruneCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}
	pruned, err := m.Prune()
	if err != nil {
		return err
	}
	if len(pruned) == 0 {
		fmt.Println("registry is clean")
		return nil
	}
	for _, name := range pruned {
		fmt.Printf("%s: stale entry removed\n", name)
	}
	return nil
}

type integrateCommand struct {
	app      *app
	Settings string `long:"settings" description:"path to the host tool settings file" required:"true"`
	Remove   bool   `long:"remove" description:"remove the named servers instead of adding them"`
}

func (c *integrateCommand) Execute(args []string) error {
	m, err := c.app.newManager()
	if err != nil {
		return err
	}

	if c.Remove {
		names := args
		if len(names) == 0 {
			names = m.ServerNames()
		}
		removed, err := settings.Remove(c.Settings, names, c.app.logger)
		if err != nil {
			return err
		}
		if len(removed) == 0 {
			fmt.Println("nothing to remove")
			return nil
		}
		for _, name := range removed {
			fmt.Printf("%s: removed from %s\n", name, c.Settings)
		}
		return nil
	}

	wanted := make(map[string]bool, len(args))
	for _, name := range args {
		wanted[name] = true
	}

	var entries []settings.ServerEntry
	for _, config := range m.ServerConfigs() {
		if len(wanted) > 0 && !wanted[config.Name] {
			continue
		}
		executable, err := filepath.Abs(config.Executable)
		if err != nil {
			executable = config.Executable
		}
		entry := settings.ServerEntry{
			Name:    config.Name,
			Command: executable,
			Args:    config.Args,
		}
		if len(config.Environment) > 0 {
			entry.Environment = environmentMap(config.Environment)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no matching servers to integrate")
	}

	if err := settings.Integrate(c.Settings, entries, c.app.logger); err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s: added to %s\n", entry.Name, c.Settings)
	}
	return nil
}

func environmentMap(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		for i := 0; i < len(pair); i++ {
			if pair[i] == '=' {
				env[pair[:i]] = pair[i+1:]
				break
			}
		}
	}
	return env
}

func printStartResult(result manager.StartResult) {
	if result.AlreadyRunning {
		fmt.Printf("%s: already running, pid %d\n", result.Name, result.PID)
		return
	}
	fmt.Printf("%s: started, pid %d\n", result.Name, result.PID)
}

func printStopResult(result manager.StopResult) {
	if result.WasRunning {
		fmt.Printf("%s: stopped\n", result.Name)
		return
	}
	fmt.Printf("%s: was not running\n", result.Name)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(b)/float64(div), "KMG"[exp])
}

func main() {
	a := &app{}
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)

	parser.AddCommand("start", "Start stub servers", "Start one or more stub servers in the background.", &startCommand{app: a})
	parser.AddCommand("stop", "Stop stub servers", "Stop one or more running stub servers.", &stopCommand{app: a})
	parser.AddCommand("restart", "Restart stub servers", "Stop and start stub servers.", &restartCommand{app: a})
	parser.AddCommand("status", "Show server status", "Show liveness and resource usage for servers.", &statusCommand{app: a})
	parser.AddCommand("list", "List configured servers", "List the servers known to the manager.", &listCommand{app: a})
	parser.AddCommand("prune", "Remove stale registry entries", "Drop registry entries whose processes are dead.", &pruneCommand{app: a})
	parser.AddCommand("integrate", "Edit host tool settings", "Add or remove stub servers in a host tool settings file.", &integrateCommand{app: a})

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		zapLogger, sync, err := logging.NewZapLogger(logging.ZapConfig{
			Level:       a.opts.LogLevel,
			Development: true,
		})
		if err != nil {
			return err
		}
		defer sync()
		a.logger = logging.NewLogger("module: mockhubctl , ", logging.LogFuncs{
			Debugf: zapLogger.Debugf,
			Infof:  zapLogger.Infof,
			Warnf:  zapLogger.Warnf,
			Errorf: zapLogger.Errorf,
		})
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
