package services

import (
	"context"

	"sysinfo-api/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

// Processes counts processes by scheduler state
func (p *HostProvider) Processes(ctx context.Context) (models.Processes, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return models.Processes{}, err
	}

	states := make([][]string, 0, len(procs))
	for _, proc := range procs {
		// A process may exit between listing and inspection; it still
		// counts towards the total as unknown.
		status, err := proc.StatusWithContext(ctx)
		if err != nil {
			states = append(states, nil)
			continue
		}
		states = append(states, status)
	}

	return countProcessStates(states), nil
}

func countProcessStates(states [][]string) models.Processes {
	counts := models.Processes{All: len(states)}
	for _, status := range states {
		if len(status) == 0 {
			counts.Unknown++
			continue
		}
		switch status[0] {
		case process.Running:
			counts.Running++
		case process.Blocked, process.Wait, process.Lock:
			counts.Blocked++
		case process.Sleep, process.Idle:
			counts.Sleeping++
		default:
			counts.Unknown++
		}
	}
	return counts
}
