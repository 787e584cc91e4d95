package util

import "fcfs-simulator/internal/core"

// CalculateAverage returns zeros for an empty batch.
func CalculateAverage(reports []core.Report) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(reports) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, report := range reports {
		waitingTimeSum += report.WaitingTime
		responseTimeSum += report.ResponseTime
		turnAroundTimeSum += report.TurnAroundTime
	}

	count := float64(len(reports))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTurnAroundTime = float64(turnAroundTimeSum) / count
	return
}
