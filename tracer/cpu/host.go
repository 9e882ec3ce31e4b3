package cpu

import (
	"errors"
	"sync"

	hostcpu "github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Information about the machine the cpu tracers run on.
type HostInfo struct {
	Model        string
	LogicalCores int
	ClockGHz     float64
	TotalMemGB   uint64
}

var (
	hostInfoOnce sync.Once
	hostInfo     HostInfo
	hostInfoErr  error
)

// Query the host cpu model, clock speed and memory. The result is cached
// after the first call.
func GetHostInfo() (HostInfo, error) {
	hostInfoOnce.Do(func() {
		hostInfo, hostInfoErr = queryHostInfo()
	})
	return hostInfo, hostInfoErr
}

func queryHostInfo() (HostInfo, error) {
	cpuInfo, err := hostcpu.Info()
	if err != nil {
		return HostInfo{}, err
	}
	if len(cpuInfo) == 0 {
		return HostInfo{}, errors.New("cpu: no host cpu information available")
	}

	info := HostInfo{
		Model:    cpuInfo[0].ModelName,
		ClockGHz: cpuInfo[0].Mhz / 1000,
	}

	if info.LogicalCores, err = hostcpu.Counts(true); err != nil {
		return HostInfo{}, err
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return HostInfo{}, err
	}
	info.TotalMemGB = memInfo.Total / (1024 * 1024 * 1024)

	return info, nil
}
