package monitoring

import (
	"time"
)

// ServerState is the liveness classification reported by status checks.
type ServerState string

const (
	// ServerStateRunning means the registered PID is alive.
	ServerStateRunning ServerState = "running"

	// ServerStateStopped means there is no registry entry for the server.
	ServerStateStopped ServerState = "stopped"

	// ServerStateStale means a registry entry exists but its PID is dead.
	ServerStateStale ServerState = "stale"
)

// ServerStatus combines registry bookkeeping with a live probe result.
type ServerStatus struct {
	Name      string         `json:"name"`
	State     ServerState    `json:"state"`
	PID       int            `json:"pid,omitempty"`
	StartedAt time.Time      `json:"started_at,omitempty"`
	Usage     *ResourceUsage `json:"usage,omitempty"`
}
