package services

import (
	"context"

	"sysinfo-api/internal/models"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/jaypipes/ghw/pkg/product"
	"github.com/shirou/gopsutil/v3/host"
)

// System returns DMI product information for the machine
func (p *HostProvider) System(ctx context.Context) (models.System, error) {
	info, err := ghw.Product(ghw.WithDisableWarnings())
	if err != nil {
		return models.System{}, err
	}

	// Virtualization detection is best effort
	virtSystem, role, err := host.VirtualizationWithContext(ctx)
	if err != nil {
		virtSystem, role = "", ""
	}

	return toSystem(info, virtSystem, role), nil
}

func toSystem(info *product.Info, virtSystem, role string) models.System {
	sys := models.System{
		Manufacturer: info.Vendor,
		Model:        info.Name,
		Version:      info.Version,
		Serial:       info.SerialNumber,
		UUID:         info.UUID,
		SKU:          info.SKU,
		Virtual:      role == "guest",
	}
	if sys.Virtual {
		sys.VirtualHost = virtSystem
	}
	return sys
}

// DiskLayout returns the physical block devices
func (p *HostProvider) DiskLayout(ctx context.Context) ([]models.DiskLayout, error) {
	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}
	return toDiskLayout(info.Disks), nil
}

func toDiskLayout(disks []*block.Disk) []models.DiskLayout {
	layout := make([]models.DiskLayout, 0, len(disks))
	for _, d := range disks {
		layout = append(layout, models.DiskLayout{
			Device:        "/dev/" + d.Name,
			Type:          d.DriveType.String(),
			Name:          d.Model,
			Vendor:        d.Vendor,
			Size:          d.SizeBytes,
			SerialNum:     d.SerialNumber,
			InterfaceType: d.StorageController.String(),
			Removable:     d.IsRemovable,
		})
	}
	return layout
}
