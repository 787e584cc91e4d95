package core

// Unset marks a computed field the scheduler has not filled in yet.
const Unset = -1

// Process is one schedulable unit. Identity, arrival and burst are set by the caller,
// the remaining fields are owned by the scheduler.
type Process struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	ResponseTime   int
	FinishTime     int
	TurnAroundTime int
	WaitingTime    int
}

func NewProcess(id, arrivalTime, burstTime int) Process {
	return Process{
		ID:             id,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		ResponseTime:   Unset,
		FinishTime:     Unset,
		TurnAroundTime: Unset,
		WaitingTime:    Unset,
	}
}

func (p Process) Report() Report {
	return Report{
		ProcessID:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		FinishTime:     p.FinishTime,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnAroundTime,
		WaitingTime:    p.WaitingTime,
	}
}

// CpuMetric summarizes how the simulated cpu spent a scheduled batch.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu expects reports in scheduling order.
func MeasureCpu(reports []Report) CpuMetric {
	if len(reports) == 0 {
		return CpuMetric{}
	}

	var utilizationTime int
	for _, report := range reports {
		utilizationTime += report.BurstTime
	}
	totalTime := reports[len(reports)-1].FinishTime - reports[0].ArrivalTime

	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}
