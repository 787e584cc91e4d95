package schedulers

import (
	"fcfs-simulator/internal/core"
	"fcfs-simulator/internal/responses"
	"fcfs-simulator/internal/util"
)

// Analyze aggregates scheduled reports into the response served by the api and the json output.
func Analyze(reports []core.Report) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(reports))
	for _, report := range reports {
		details = append(details, generateProcessDetails(report))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(reports)
	cpuMetric := core.MeasureCpu(reports)

	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(reports)) / float64(cpuMetric.TotalTime)
	}
	return responses.ScheduleResponse{
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               details,
	}
}

func generateProcessDetails(report core.Report) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      report.ProcessID,
		ArrivalTime:    report.ArrivalTime,
		BurstTime:      report.BurstTime,
		FinishTime:     report.FinishTime,
		ResponseTime:   report.ResponseTime,
		TurnAroundTime: report.TurnAroundTime,
		WaitingTime:    report.WaitingTime,
	}
}
