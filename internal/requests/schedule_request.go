package requests

import "fcfs-simulator/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

func (r ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime))
	}
	return processes
}
