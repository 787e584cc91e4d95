package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcfs-simulator/internal/core"
)

func TestAnalyze_ReferenceBatch(t *testing.T) {
	reports, err := ScheduleFirstComeFirstServe(referenceBatch())
	require.NoError(t, err)

	response := Analyze(reports)

	assert.Equal(t, 25, response.TotalTime)
	assert.Equal(t, 0, response.IdleTime)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 4.0/25.0, response.CpuThroughput, 1e-9)
	assert.InDelta(t, 37.0/4.0, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 44.0/4.0, response.AverageResponseTime, 1e-9)
	assert.InDelta(t, 62.0/4.0, response.AverageTurnAroundTime, 1e-9)
	require.Len(t, response.Details, 4)
	assert.Equal(t, 4, response.Details[3].ProcessId)
	assert.Equal(t, 18, response.Details[3].WaitingTime)
}

func TestAnalyze_IdleTime(t *testing.T) {
	reports, err := ScheduleFirstComeFirstServe([]core.Process{
		core.NewProcess(1, 2, 3),
		core.NewProcess(2, 10, 5),
	})
	require.NoError(t, err)

	response := Analyze(reports)

	assert.Equal(t, 13, response.TotalTime)
	assert.Equal(t, 5, response.IdleTime)
	assert.InDelta(t, 8.0/13.0, response.CpuUtilization, 1e-9)
}

func TestAnalyze_Empty(t *testing.T) {
	response := Analyze(nil)

	assert.Zero(t, response.TotalTime)
	assert.Zero(t, response.CpuUtilization)
	assert.Empty(t, response.Details)
}
