package health

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats is a point-in-time view of the machine the server runs on.
// Fields the platform cannot report are left nil.
type HostStats struct {
	CPUCores      int      `json:"cpu_cores"`
	Load1         *float64 `json:"load_1,omitempty"`
	Load5         *float64 `json:"load_5,omitempty"`
	MemoryUsedPct *float64 `json:"memory_used_pct,omitempty"`
	MemoryTotalMB *uint64  `json:"memory_total_mb,omitempty"`
}

type hostProbe struct {
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
	getCPUCores func() int
}

func newHostProbe() hostProbe {
	return hostProbe{
		getLoadAvg:  load.AvgWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
		getCPUCores: runtime.NumCPU,
	}
}

func (p hostProbe) collect(ctx context.Context) HostStats {
	stats := HostStats{CPUCores: p.getCPUCores()}

	if avg, err := p.getLoadAvg(ctx); err == nil && avg != nil {
		stats.Load1 = &avg.Load1
		stats.Load5 = &avg.Load5
	}
	if vm, err := p.getMemStats(ctx); err == nil && vm != nil {
		total := vm.Total / 1024 / 1024
		stats.MemoryUsedPct = &vm.UsedPercent
		stats.MemoryTotalMB = &total
	}
	return stats
}
