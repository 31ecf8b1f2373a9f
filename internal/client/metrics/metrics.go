// Package metrics counts the outcome of the client's data operations.
package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation names.
const (
	OpLoad   = "load"
	OpSeed   = "seed"
	OpAdd    = "add"
	OpEdit   = "edit"
	OpDelete = "delete"
	OpReset  = "reset"
)

// Recorder keeps per-operation success/error counters on its own registry
// so independent clients (and tests) do not share state.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gophusers",
		Name:      "operations_total",
		Help:      "Data operations by name and result.",
	}, []string{"operation", "result"})
	reg.MustRegister(ops)
	return &Recorder{registry: reg, operations: ops}
}

// Observe counts one run of operation. A nil error counts as success.
func (r *Recorder) Observe(operation string, err error) {
	if r == nil || operation == "" {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.operations.WithLabelValues(operation, result).Inc()
}

// Counter exposes a single counter, mostly for tests.
func (r *Recorder) Counter(operation, result string) prometheus.Counter {
	return r.operations.WithLabelValues(operation, result)
}

// WriteTo prints every non-zero counter as "operation result value", sorted.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return 0, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			lines = append(lines, fmt.Sprintf("%-8s %-8s %.0f",
				labels["operation"], labels["result"], m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	var total int64
	for _, l := range lines {
		n, err := fmt.Fprintln(w, l)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
