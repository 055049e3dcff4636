package server

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SystemInfo describes the host renders run on
type SystemInfo struct {
	CPUModel     string  `json:"cpuModel"`
	CPUMhz       float64 `json:"cpuMhz"`
	LogicalCores int     `json:"logicalCores"`
	TotalMemory  uint64  `json:"totalMemory"`
	UsedPercent  float64 `json:"usedPercent"`
	GoVersion    string  `json:"goVersion"`
}

// getSystemInfo reports what it can; fields the host refuses to expose stay zero
func getSystemInfo() SystemInfo {
	info := SystemInfo{
		LogicalCores: runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.CPUMhz = cpuInfo[0].Mhz
	}
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		info.LogicalCores = counts
	}
	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = memInfo.Total
		info.UsedPercent = memInfo.UsedPercent
	}

	return info
}

func (s *Server) handleSystem(c echo.Context) error {
	return c.JSON(http.StatusOK, getSystemInfo())
}
