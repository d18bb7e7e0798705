package monitoring

import (
	"time"

	gopsutilprocess "github.com/shirou/gopsutil/v3/process"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

// ResourceUsage is a point-in-time snapshot of a server process.
type ResourceUsage struct {
	PID        int           `json:"pid"`
	CPUPercent float64       `json:"cpu_percent"`
	MemoryRSS  uint64        `json:"memory_rss"`
	Uptime     time.Duration `json:"uptime"`
	Cmdline    string        `json:"cmdline,omitempty"`
}

// ResourceMonitor inspects running processes. Implemented on gopsutil;
// replaced by a stub in tests.
type ResourceMonitor interface {
	GetProcessUsage(pid int) (*ResourceUsage, error)
}

type gopsutilMonitor struct {
	logger logging.Logger
}

// NewResourceMonitor returns the gopsutil-backed ResourceMonitor.
func NewResourceMonitor(logger logging.Logger) ResourceMonitor {
	return &gopsutilMonitor{logger: logger}
}

func (m *gopsutilMonitor) GetProcessUsage(pid int) (*ResourceUsage, error) {
	proc, err := gopsutilprocess.NewProcess(int32(pid))
	if err != nil {
		return nil, errors.NewProcessError("process not found", err).WithContext("pid", pid)
	}

	usage := &ResourceUsage{PID: pid}

	if cpu, err := proc.CPUPercent(); err == nil {
		usage.CPUPercent = cpu
	} else {
		m.logger.Debugf("CPU usage unavailable, pid: %d, error: %v", pid, err)
	}

	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		usage.MemoryRSS = mem.RSS
	} else if err != nil {
		m.logger.Debugf("Memory usage unavailable, pid: %d, error: %v", pid, err)
	}

	if createTime, err := proc.CreateTime(); err == nil {
		started := time.UnixMilli(createTime)
		usage.Uptime = time.Since(started).Truncate(time.Second)
	}

	if cmdline, err := proc.Cmdline(); err == nil {
		usage.Cmdline = cmdline
	}

	return usage, nil
}
