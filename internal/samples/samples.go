// Package samples holds the batches the simulator runs when none are supplied, and reads
// batch files.
package samples

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fcfs-simulator/internal/core"
)

type Job struct {
	ID          int `yaml:"id"`
	ArrivalTime int `yaml:"arrival_time"`
	BurstTime   int `yaml:"burst_time"`
}

type Batch struct {
	Name      string `yaml:"name"`
	Processes []Job  `yaml:"processes"`
}

type batchFile struct {
	Batches []Batch `yaml:"batches"`
}

// ToProcesses returns fresh, unscheduled processes on every call.
func (b Batch) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(b.Processes))
	for _, job := range b.Processes {
		processes = append(processes, core.NewProcess(job.ID, job.ArrivalTime, job.BurstTime))
	}
	return processes
}

func Default() []Batch {
	return []Batch{
		{Name: "q1", Processes: []Job{{1, 0, 9}, {2, 1, 4}, {3, 2, 9}, {4, 4, 3}}},
		{Name: "q2", Processes: []Job{{1, 0, 20}, {2, 15, 25}, {3, 30, 10}, {4, 45, 15}}},
		{Name: "q3", Processes: []Job{{1, 0, 8}, {2, 1, 4}, {3, 2, 9}, {4, 3, 5}}},
	}
}

// Load reads batches from a yaml file. Timing is validated by the scheduler, not here.
func Load(path string) ([]Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]Batch, error) {
	var file batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(file.Batches) == 0 {
		return nil, errors.New("batch file defines no batches")
	}
	for i, batch := range file.Batches {
		if batch.Name == "" {
			file.Batches[i].Name = fmt.Sprintf("batch-%d", i+1)
		}
		if len(batch.Processes) == 0 {
			return nil, fmt.Errorf("batch %q has no processes", file.Batches[i].Name)
		}
	}
	return file.Batches, nil
}
