package monitoring

import (
	"slices"
	"strings"
	"sync"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric describes a single registered metric.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// Sample is the value of a metric at the time of a snapshot.
type Sample struct {
	Metric
	Value float64
}

// Stats stores registered metrics and their current values.
type Stats struct {
	metrics map[string]Metric
	values  map[string]float64
	mu      sync.RWMutex
}

func NewStats() *Stats {
	return &Stats{
		metrics: make(map[string]Metric),
		values:  make(map[string]float64),
	}
}

// Register adds a metric. Registering a name again replaces its description and
// type but keeps its value.
func (s *Stats) Register(metric Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics[metric.Name] = metric
}

// Inc adds delta to a counter. Unknown names and gauges are ignored.
func (s *Stats) Inc(name string, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if metric, ok := s.metrics[name]; ok && metric.Type == Counter {
		s.values[name] += delta
	}
}

// Set sets a gauge. Unknown names and counters are ignored.
func (s *Stats) Set(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if metric, ok := s.metrics[name]; ok && metric.Type == Gauge {
		s.values[name] = value
	}
}

// Value returns the current value of a metric.
func (s *Stats) Value(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name]
}

// Snapshot returns every registered metric with its value, sorted by name.
func (s *Stats) Snapshot() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Sample, 0, len(s.metrics))
	for name, metric := range s.metrics {
		result = append(result, Sample{Metric: metric, Value: s.values[name]})
	}
	slices.SortFunc(result, func(a, b Sample) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}
