package schedulers

import (
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"fcfs-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs the batch non-preemptively in arrival order. Processes
// that arrive at the same time run in the order they were given. The caller's slice is left
// untouched; the result holds one report per process in scheduling order.
func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.Report, error) {
	if err := validate(processes); err != nil {
		return nil, err
	}

	// sort jobs by arrival time
	queue := make([]core.Process, len(processes))
	copy(queue, processes)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].ArrivalTime < queue[j].ArrivalTime
	})

	reports := make([]core.Report, 0, len(queue))
	clock := queue[0].ArrivalTime
	for _, process := range queue {
		process.ResponseTime = max(clock, process.ArrivalTime)
		if process.BurstTime > math.MaxInt-process.ResponseTime {
			return nil, &InvalidProcessError{ProcessID: process.ID, Field: "finish_time", Value: process.ResponseTime}
		}
		process.FinishTime = process.ResponseTime + process.BurstTime
		clock = process.FinishTime
		process.TurnAroundTime = process.FinishTime - process.ArrivalTime
		process.WaitingTime = process.TurnAroundTime - process.BurstTime

		log.WithFields(log.Fields{
			"pid":    process.ID,
			"start":  process.ResponseTime,
			"finish": process.FinishTime,
		}).Debug("process scheduled")
		reports = append(reports, process.Report())
	}

	return reports, nil
}

func validate(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	for _, process := range processes {
		if process.ArrivalTime < 0 {
			return &InvalidProcessError{ProcessID: process.ID, Field: "arrival_time", Value: process.ArrivalTime}
		}
		if process.BurstTime <= 0 {
			return &InvalidProcessError{ProcessID: process.ID, Field: "burst_time", Value: process.BurstTime}
		}
	}
	return nil
}
