package core

// Column labels of a Report, in table order.
const (
	ColumnProcess        = "Process"
	ColumnArrivalTime    = "A.T"
	ColumnBurstTime      = "B.T"
	ColumnFinishTime     = "F.T"
	ColumnResponseTime   = "R.T"
	ColumnTurnAroundTime = "T.A.T"
	ColumnWaitingTime    = "W.T"
)

var Columns = []string{
	ColumnProcess,
	ColumnArrivalTime,
	ColumnBurstTime,
	ColumnFinishTime,
	ColumnResponseTime,
	ColumnTurnAroundTime,
	ColumnWaitingTime,
}

// Report is a read-only snapshot of a scheduled process.
type Report struct {
	ProcessID      int `json:"process_id" yaml:"process_id"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	FinishTime     int `json:"finish_time" yaml:"finish_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
}

// Values returns the report fields in the order of Columns.
func (r Report) Values() []int {
	return []int{
		r.ProcessID,
		r.ArrivalTime,
		r.BurstTime,
		r.FinishTime,
		r.ResponseTime,
		r.TurnAroundTime,
		r.WaitingTime,
	}
}

func (r Report) Get(column string) (int, bool) {
	switch column {
	case ColumnProcess:
		return r.ProcessID, true
	case ColumnArrivalTime:
		return r.ArrivalTime, true
	case ColumnBurstTime:
		return r.BurstTime, true
	case ColumnFinishTime:
		return r.FinishTime, true
	case ColumnResponseTime:
		return r.ResponseTime, true
	case ColumnTurnAroundTime:
		return r.TurnAroundTime, true
	case ColumnWaitingTime:
		return r.WaitingTime, true
	}
	return 0, false
}
