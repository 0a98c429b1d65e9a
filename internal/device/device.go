package device

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info describes the machine the booster runs on. It is shown on the profile
// screen only; simulated telemetry never reads from it.
type Info struct {
	Hostname    string
	Platform    string
	Kernel      string
	CPUModel    string
	CPUCores    int
	MemoryTotal uint64
	Uptime      time.Duration
}

func (i Info) Summary() []string {
	lines := []string{
		"Host: " + orNA(i.Hostname),
		"OS: " + orNA(i.Platform),
	}
	if i.Kernel != "" {
		lines = append(lines, "Kernel: "+i.Kernel)
	}
	cpuLine := "CPU: " + orNA(i.CPUModel)
	if i.CPUCores > 0 {
		cpuLine += fmt.Sprintf(" (%d cores)", i.CPUCores)
	}
	lines = append(lines, cpuLine)
	if i.MemoryTotal > 0 {
		lines = append(lines, "Memory: "+humanize.IBytes(i.MemoryTotal))
	}
	if i.Uptime > 0 {
		lines = append(lines, "Up since: "+humanize.Time(time.Now().Add(-i.Uptime)))
	}
	return lines
}

// Probe reads host information. Partial results are returned alongside the
// first error encountered.
func Probe(ctx context.Context) (Info, error) {
	info := Info{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		CPUCores: runtime.NumCPU(),
	}
	var firstErr error
	keep := func(err error, what string) {
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("probe %s: %w", what, err)
		}
	}

	hostInfo, err := host.InfoWithContext(ctx)
	keep(err, "host")
	if hostInfo != nil {
		info.Hostname = hostInfo.Hostname
		if platform := strings.TrimSpace(hostInfo.Platform + " " + hostInfo.PlatformVersion); platform != "" {
			info.Platform = platform
		}
		info.Kernel = hostInfo.KernelVersion
		info.Uptime = time.Duration(hostInfo.Uptime) * time.Second
	}

	cpus, err := cpu.InfoWithContext(ctx)
	keep(err, "cpu")
	if len(cpus) > 0 {
		info.CPUModel = strings.TrimSpace(cpus[0].ModelName)
	}
	if cores, err := cpu.CountsWithContext(ctx, true); err == nil && cores > 0 {
		info.CPUCores = cores
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	keep(err, "memory")
	if vm != nil {
		info.MemoryTotal = vm.Total
	}
	return info, firstErr
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "n/a"
	}
	return value
}
