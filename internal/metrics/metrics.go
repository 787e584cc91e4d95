package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"fcfs-simulator/internal/responses"
)

type Recorder struct {
	batchesScheduled   prometheus.Counter
	processesScheduled prometheus.Counter
	scheduleErrors     *prometheus.CounterVec
	averageWaitingTime prometheus.Histogram
}

func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		batchesScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fcfs_batches_scheduled_total",
			Help: "Number of batches scheduled successfully.",
		}),
		processesScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fcfs_processes_scheduled_total",
			Help: "Number of processes across all scheduled batches.",
		}),
		scheduleErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fcfs_schedule_errors_total",
			Help: "Number of batches rejected by the scheduler.",
		}, []string{"reason"}),
		averageWaitingTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fcfs_batch_waiting_time",
			Help:    "Average waiting time of a scheduled batch, in simulation time units.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	for _, c := range []prometheus.Collector{r.batchesScheduled, r.processesScheduled, r.scheduleErrors, r.averageWaitingTime} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveBatch(response responses.ScheduleResponse) {
	r.batchesScheduled.Inc()
	r.processesScheduled.Add(float64(len(response.Details)))
	r.averageWaitingTime.Observe(response.AverageWaitingTime)
}

func (r *Recorder) ObserveError(reason string) {
	r.scheduleErrors.WithLabelValues(reason).Inc()
}
