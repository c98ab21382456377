package core

import (
	"os"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SysInfo is a one-shot system summary for the interactive banner.
// Fields that could not be collected stay at their zero value.
type SysInfo struct {
	Hostname        string
	OS              string
	RAMTotal        uint64
	RAMUsedPercent  float64
	SystemDrive     string
	DiskFree        uint64
	DiskUsedPercent float64
}

// CollectSysInfo gathers the banner snapshot. Collection is best effort:
// a failing probe leaves its fields empty rather than failing the banner.
func CollectSysInfo() SysInfo {
	info := SysInfo{OS: WindowsVersionString()}

	if h, err := host.Info(); err == nil {
		info.Hostname = h.Hostname
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMTotal = vm.Total
		info.RAMUsedPercent = vm.UsedPercent
	}

	drive := os.Getenv("SYSTEMDRIVE")
	if drive == "" {
		drive = "C:"
	}
	info.SystemDrive = drive
	if du, err := disk.Usage(drive + `\`); err == nil {
		info.DiskFree = du.Free
		info.DiskUsedPercent = du.UsedPercent
	}

	return info
}
