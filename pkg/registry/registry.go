package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

// Entry records a managed server process.
type Entry struct {
	PID        int       `json:"pid"`
	Executable string    `json:"executable"`
	StartedAt  time.Time `json:"started_at"`
}

// LivenessProbe reports whether the process with the given PID is alive.
type LivenessProbe func(pid int) (bool, error)

// Registry is the on-disk JSON map from server name to process entry.
// It is loaded fresh for every manager operation; the manager is sequential,
// so no file locking is done.
type Registry struct {
	path    string
	entries map[string]Entry
	logger  logging.Logger
}

// Load reads the registry file. A missing file yields an empty registry.
func Load(path string, logger logging.Logger) (*Registry, error) {
	r := &Registry{
		path:    path,
		entries: make(map[string]Entry),
		logger:  logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("Registry file not found, starting empty, path: %s", path)
			return r, nil
		}
		return nil, errors.NewIOError("failed to read registry file", err).WithContext("path", path)
	}

	if err := json.Unmarshal(data, &r.entries); err != nil {
		return nil, errors.NewValidationError("registry file is not valid JSON", err).WithContext("path", path)
	}

	logger.Debugf("Registry loaded, path: %s, entries: %d", path, len(r.entries))
	return r, nil
}

// Save writes the registry atomically: temp file in the same directory, then
// rename over the target.
func (r *Registry) Save() error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIOError("failed to create registry directory", err).WithContext("directory", dir)
	}

	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return errors.NewInternalError("failed to marshal registry", err)
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return errors.NewIOError("failed to create temporary registry file", err).WithContext("directory", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewIOError("failed to write temporary registry file", err).WithContext("path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("failed to close temporary registry file", err).WithContext("path", tmpName)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError("failed to replace registry file", err).WithContext("path", r.path)
	}

	r.logger.Debugf("Registry saved, path: %s, entries: %d", r.path, len(r.entries))
	return nil
}

// Put records a server entry. The caller is expected to Save afterwards.
func (r *Registry) Put(name string, entry Entry) {
	r.entries[name] = entry
}

// Get returns the entry for a server name.
func (r *Registry) Get(name string) (Entry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// Remove drops the entry for a server name. Removing an absent name is a no-op.
func (r *Registry) Remove(name string) {
	delete(r.entries, name)
}

// Names returns the registered server names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered servers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Prune removes entries whose PID is no longer alive and returns the names
// that were dropped. Probe errors are treated as "not alive": a PID we cannot
// inspect is not a process we are managing.
func (r *Registry) Prune(probe LivenessProbe) []string {
	var pruned []string
	for name, entry := range r.entries {
		alive, err := probe(entry.PID)
		if err != nil {
			r.logger.Warnf("Liveness probe failed, server: %s, pid: %d, error: %v", name, entry.PID, err)
		}
		if !alive {
			r.logger.Infof("Pruning stale registry entry, server: %s, pid: %d", name, entry.PID)
			delete(r.entries, name)
			pruned = append(pruned, name)
		}
	}
	sort.Strings(pruned)
	return pruned
}
