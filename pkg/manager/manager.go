package manager

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
	"github.com/mock-tools/mcp-mockhub/pkg/monitoring"
	"github.com/mock-tools/mcp-mockhub/pkg/process"
	"github.com/mock-tools/mcp-mockhub/pkg/registry"
)

// StartResult reports the outcome of a start request.
type StartResult struct {
	Name           string
	PID            int
	AlreadyRunning bool
}

// StopResult reports the outcome of a stop request.
type StopResult struct {
	Name       string
	WasRunning bool
}

// spawnFunc, terminateFunc and probeFunc mirror the pkg/process entry points;
// tests substitute them.
type spawnFunc func(config process.SpawnConfig, name string, logger logging.Logger) (int, error)
type terminateFunc func(pid int, timeout time.Duration, logger logging.Logger) error
type probeFunc func(pid int) (bool, error)

// Manager supervises the stub server processes. It is single-threaded and
// sequential: every operation loads the registry, acts, and saves it back.
type Manager struct {
	config  *Config
	servers map[string]ServerConfig
	logger  logging.Logger
	monitor monitoring.ResourceMonitor

	spawn     spawnFunc
	terminate terminateFunc
	probe     probeFunc
}

// NewManager builds a Manager from configuration. Servers explicitly listed in
// the config take precedence over binaries discovered in the server directory.
func NewManager(config *Config, logger logging.Logger) (*Manager, error) {
	if config == nil {
		return nil, errors.NewValidationError("configuration cannot be nil", nil)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	m := &Manager{
		config:    config,
		servers:   make(map[string]ServerConfig),
		logger:    logger,
		monitor:   monitoring.NewResourceMonitor(logger),
		spawn:     process.Spawn,
		terminate: process.Terminate,
		probe:     process.IsRunning,
	}

	if config.Manager.ServerDirectory != "" {
		discovered, err := DiscoverServers(config.Manager.ServerDirectory, logger)
		if err != nil {
			return nil, err
		}
		for _, server := range discovered {
			m.servers[server.Name] = server
		}
	}

	for _, server := range config.Servers {
		if server.Enabled != nil && !*server.Enabled {
			logger.Infof("Skipping disabled server, name: %s", server.Name)
			delete(m.servers, server.Name)
			continue
		}
		m.servers[server.Name] = server
	}

	return m, nil
}

// ServerNames returns the names of all known servers in sorted order.
func (m *Manager) ServerNames() []string {
	names := make([]string, 0, len(m.servers))
	for name := range m.servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServerConfigs returns the configurations of all known servers, sorted by name.
func (m *Manager) ServerConfigs() []ServerConfig {
	configs := make([]ServerConfig, 0, len(m.servers))
	for _, name := range m.ServerNames() {
		configs = append(configs, m.servers[name])
	}
	return configs
}

// Start launches the named server unless its registered PID is still alive.
func (m *Manager) Start(name string) (*StartResult, error) {
	server, ok := m.servers[name]
	if !ok {
		return nil, errors.NewNotFoundError("server is not configured", nil).WithContext("server", name)
	}

	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	if entry, ok := reg.Get(name); ok {
		alive, probeErr := m.probe(entry.PID)
		if probeErr != nil {
			m.logger.Warnf("Liveness probe failed, server: %s, pid: %d, error: %v", name, entry.PID, probeErr)
		}
		if alive {
			m.logger.Infof("Server already running, name: %s, pid: %d", name, entry.PID)
			return &StartResult{Name: name, PID: entry.PID, AlreadyRunning: true}, nil
		}
		m.logger.Infof("Removing stale registry entry before start, server: %s, pid: %d", name, entry.PID)
		reg.Remove(name)
	}

	spawnConfig := process.SpawnConfig{
		ExecutablePath: server.Executable,
		Args:           server.Args,
		Environment:    server.Environment,
		LogFilePath:    filepath.Join(m.config.Manager.LogDirectory, name+".log"),
	}

	pid, err := m.spawn(spawnConfig, name, m.logger)
	if err != nil {
		return nil, errors.NewProcessError(fmt.Sprintf("failed to start server %s", name), err)
	}

	reg.Put(name, registry.Entry{
		PID:        pid,
		Executable: server.Executable,
		StartedAt:  time.Now().UTC(),
	})
	if err := reg.Save(); err != nil {
		return nil, err
	}

	return &StartResult{Name: name, PID: pid}, nil
}

// Stop terminates the named server. A dead or unregistered server is not an
// error: the stale entry is removed and WasRunning is false.
func (m *Manager) Stop(name string) (*StopResult, error) {
	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	entry, registered := reg.Get(name)

	// A server may have been removed from config while still registered;
	// allow stopping anything the registry knows about.
	if _, configured := m.servers[name]; !configured && !registered {
		return nil, errors.NewNotFoundError("server is not configured", nil).WithContext("server", name)
	}

	if !registered {
		m.logger.Infof("Server not running, name: %s", name)
		return &StopResult{Name: name}, nil
	}

	alive, probeErr := m.probe(entry.PID)
	if probeErr != nil {
		m.logger.Warnf("Liveness probe failed, server: %s, pid: %d, error: %v", name, entry.PID, probeErr)
	}

	if alive {
		if err := m.terminate(entry.PID, m.config.Manager.StopTimeout, m.logger); err != nil {
			return nil, errors.NewProcessError(fmt.Sprintf("failed to stop server %s", name), err).WithContext("pid", entry.PID)
		}
	} else {
		m.logger.Infof("Server already dead, removing stale entry, name: %s, pid: %d", name, entry.PID)
	}

	reg.Remove(name)
	if err := reg.Save(); err != nil {
		return nil, err
	}

	return &StopResult{Name: name, WasRunning: alive}, nil
}

// Restart stops then starts the named server.
func (m *Manager) Restart(name string) (*StartResult, error) {
	if _, err := m.Stop(name); err != nil {
		return nil, err
	}
	return m.Start(name)
}

// StartAll starts every known server, continuing past individual failures.
func (m *Manager) StartAll() ([]StartResult, error) {
	var results []StartResult
	var firstErr error
	for _, name := range m.ServerNames() {
		result, err := m.Start(name)
		if err != nil {
			m.logger.Errorf("Failed to start server, name: %s, error: %v", name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, *result)
	}
	return results, firstErr
}

// StopAll stops every registered server, continuing past individual failures.
func (m *Manager) StopAll() ([]StopResult, error) {
	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	var results []StopResult
	var firstErr error
	for _, name := range reg.Names() {
		result, err := m.Stop(name)
		if err != nil {
			m.logger.Errorf("Failed to stop server, name: %s, error: %v", name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, *result)
	}
	return results, firstErr
}

// Status reports liveness and resource usage for the named server.
func (m *Manager) Status(name string) (*monitoring.ServerStatus, error) {
	if _, ok := m.servers[name]; !ok {
		return nil, errors.NewNotFoundError("server is not configured", nil).WithContext("server", name)
	}

	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	return m.statusOf(name, reg), nil
}

// StatusAll reports the status of every known server plus any registry
// entries for servers no longer configured.
func (m *Manager) StatusAll() ([]monitoring.ServerStatus, error) {
	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	names := m.ServerNames()
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for _, name := range reg.Names() {
		if !known[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	statuses := make([]monitoring.ServerStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, *m.statusOf(name, reg))
	}
	return statuses, nil
}

// Prune removes registry entries whose processes are gone and returns the
// names that were dropped.
func (m *Manager) Prune() ([]string, error) {
	reg, err := m.loadRegistry()
	if err != nil {
		return nil, err
	}

	pruned := reg.Prune(registry.LivenessProbe(m.probe))
	if len(pruned) > 0 {
		if err := reg.Save(); err != nil {
			return nil, err
		}
	}
	return pruned, nil
}

func (m *Manager) statusOf(name string, reg *registry.Registry) *monitoring.ServerStatus {
	status := &monitoring.ServerStatus{
		Name:  name,
		State: monitoring.ServerStateStopped,
	}

	entry, ok := reg.Get(name)
	if !ok {
		return status
	}

	status.PID = entry.PID
	status.StartedAt = entry.StartedAt

	alive, err := m.probe(entry.PID)
	if err != nil {
		m.logger.Warnf("Liveness probe failed, server: %s, pid: %d, error: %v", name, entry.PID, err)
	}
	if !alive {
		status.State = monitoring.ServerStateStale
		return status
	}

	status.State = monitoring.ServerStateRunning
	usage, err := m.monitor.GetProcessUsage(entry.PID)
	if err != nil {
		m.logger.Debugf("Resource usage unavailable, server: %s, pid: %d, error: %v", name, entry.PID, err)
	} else {
		status.Usage = usage
	}
	return status
}

func (m *Manager) loadRegistry() (*registry.Registry, error) {
	return registry.Load(m.config.Manager.RegistryPath, m.logger)
}
