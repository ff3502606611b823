package services

import (
	"context"

	"sysinfo-api/internal/models"
)

// Provider answers the eight independent system-information queries.
// Implementations must be safe for concurrent use.
type Provider interface {
	CPU(ctx context.Context) (models.CPU, error)
	System(ctx context.Context) (models.System, error)
	Mem(ctx context.Context) (models.Memory, error)
	OSInfo(ctx context.Context) (models.OS, error)
	CurrentLoad(ctx context.Context) (models.CurrentLoad, error)
	Processes(ctx context.Context) (models.Processes, error)
	DiskLayout(ctx context.Context) ([]models.DiskLayout, error)
	NetworkInterfaces(ctx context.Context) ([]models.NetworkInterface, error)
}

// HostProvider reads facts about the local host through gopsutil and ghw.
type HostProvider struct{}

// NewHostProvider creates a provider for the machine the process runs on
func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

var _ Provider = (*HostProvider)(nil)
