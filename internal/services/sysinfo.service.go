package services

import (
	"context"
	"fmt"
	"sync"

	"sysinfo-api/internal/models"

	"golang.org/x/sync/errgroup"
)

// SysinfoCollector assembles a SystemInformation snapshot from a Provider
type SysinfoCollector struct {
	provider Provider
}

// NewSysinfoCollector creates a collector backed by the given provider
func NewSysinfoCollector(provider Provider) *SysinfoCollector {
	return &SysinfoCollector{provider: provider}
}

// firstFailure keeps the first error reported by any query
type firstFailure struct {
	mu  sync.Mutex
	err error
}

func (f *firstFailure) record(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
}

func (f *firstFailure) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Collect runs all eight provider queries concurrently and returns the
// aggregate once every query has succeeded. The first query error is
// returned as is, without waiting for the remaining queries; they observe
// a cancelled context and their results are discarded.
func (s *SysinfoCollector) Collect(ctx context.Context) (*models.SystemInformation, error) {
	g, gctx := errgroup.WithContext(ctx)
	failure := &firstFailure{}

	var (
		cpu         models.CPU
		system      models.System
		mem         models.Memory
		osInfo      models.OS
		currentLoad models.CurrentLoad
		processes   models.Processes
		diskLayout  []models.DiskLayout
		netIfaces   []models.NetworkInterface
	)

	run := func(name string, query func(context.Context) error) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s query panicked: %v", name, r)
				}
				if err != nil {
					failure.record(err)
				}
			}()
			return query(gctx)
		})
	}

	run("cpu", func(ctx context.Context) (err error) { cpu, err = s.provider.CPU(ctx); return })
	run("system", func(ctx context.Context) (err error) { system, err = s.provider.System(ctx); return })
	run("mem", func(ctx context.Context) (err error) { mem, err = s.provider.Mem(ctx); return })
	run("osInfo", func(ctx context.Context) (err error) { osInfo, err = s.provider.OSInfo(ctx); return })
	run("currentLoad", func(ctx context.Context) (err error) { currentLoad, err = s.provider.CurrentLoad(ctx); return })
	run("processes", func(ctx context.Context) (err error) { processes, err = s.provider.Processes(ctx); return })
	run("diskLayout", func(ctx context.Context) (err error) { diskLayout, err = s.provider.DiskLayout(ctx); return })
	run("networkInterfaces", func(ctx context.Context) (err error) { netIfaces, err = s.provider.NetworkInterfaces(ctx); return })

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
	case <-gctx.Done():
		// gctx is also cancelled by a successful Wait, so only bail out
		// early when a query actually failed or the caller went away.
		if err := failure.get(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := <-done; err != nil {
			return nil, err
		}
	}

	return &models.SystemInformation{
		CPU:               cpu,
		System:            system,
		Mem:               mem,
		OS:                osInfo,
		CurrentLoad:       currentLoad,
		Processes:         processes,
		DiskLayout:        diskLayout,
		NetworkInterfaces: netIfaces,
	}, nil
}
