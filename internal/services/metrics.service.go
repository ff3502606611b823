package services

import (
	"context"
	"errors"
	"math"

	"sysinfo-api/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrNoCPUInfo is returned when the platform reports no processors at all.
var ErrNoCPUInfo = errors.New("no cpu information available")

var cpuManufacturers = map[string]string{
	"GenuineIntel": "Intel",
	"AuthenticAMD": "AMD",
	"CentaurHauls": "VIA",
	"HygonGenuine": "Hygon",
}

// CPU returns processor identity for the first socket
func (p *HostProvider) CPU(ctx context.Context) (models.CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return models.CPU{}, err
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return models.CPU{}, err
	}

	// Physical core count is not available everywhere; fall back to logical.
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil || physical == 0 {
		physical = logical
	}

	return toCPU(infos, logical, physical)
}

func toCPU(infos []cpu.InfoStat, logical, physical int) (models.CPU, error) {
	if len(infos) == 0 {
		return models.CPU{}, ErrNoCPUInfo
	}
	info := infos[0]

	manufacturer, ok := cpuManufacturers[info.VendorID]
	if !ok {
		manufacturer = info.VendorID
	}

	return models.CPU{
		Manufacturer:  manufacturer,
		Brand:         info.ModelName,
		Vendor:        info.VendorID,
		Family:        info.Family,
		Model:         info.Model,
		Stepping:      info.Stepping,
		Speed:         roundTo(info.Mhz/1000, 2),
		Cores:         logical,
		PhysicalCores: physical,
		Cache:         info.CacheSize,
		Flags:         info.Flags,
	}, nil
}

// Mem returns virtual and swap memory counters
func (p *HostProvider) Mem(ctx context.Context) (models.Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.Memory{}, err
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return models.Memory{}, err
	}
	return toMemory(vm, swap), nil
}

func toMemory(vm *mem.VirtualMemoryStat, swap *mem.SwapMemoryStat) models.Memory {
	return models.Memory{
		Total:     vm.Total,
		Free:      vm.Free,
		Used:      vm.Used,
		Active:    vm.Active,
		Available: vm.Available,
		SwapTotal: swap.Total,
		SwapUsed:  swap.Used,
		SwapFree:  swap.Free,
	}
}

// OSInfo returns platform and distribution details
func (p *HostProvider) OSInfo(ctx context.Context) (models.OS, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return models.OS{}, err
	}
	return toOS(info), nil
}

func toOS(info *host.InfoStat) models.OS {
	return models.OS{
		Platform:       info.OS,
		Distro:         info.Platform,
		Release:        info.PlatformVersion,
		PlatformFamily: info.PlatformFamily,
		Kernel:         info.KernelVersion,
		Arch:           info.KernelArch,
		Hostname:       info.Hostname,
		Uptime:         info.Uptime,
		BootTime:       info.BootTime,
	}
}

// CurrentLoad returns the load average and instantaneous CPU usage.
// Percentages are computed against the previous call (interval 0), so
// they never block the request.
func (p *HostProvider) CurrentLoad(ctx context.Context) (models.CurrentLoad, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return models.CurrentLoad{}, err
	}

	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return models.CurrentLoad{}, err
	}

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return models.CurrentLoad{}, err
	}

	return toCurrentLoad(avg, total, perCore), nil
}

func toCurrentLoad(avg *load.AvgStat, total, perCore []float64) models.CurrentLoad {
	cl := models.CurrentLoad{AvgLoad: avg.Load1}
	if len(total) > 0 {
		cl.CurrentLoad = total[0]
	}
	for _, pct := range perCore {
		cl.CPUs = append(cl.CPUs, models.CPULoad{Load: pct})
	}
	return cl
}

// roundTo rounds a float64 to n decimal places.
func roundTo(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
