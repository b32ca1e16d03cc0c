package input

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const defaultLatencySamples = 512

// Metrics counts session outcomes and command latencies.
// All methods are safe for concurrent use.
type Metrics struct {
	keysTotal        atomic.Uint64
	resolved         atomic.Uint64
	noMatches        atomic.Uint64
	cancellations    atomic.Uint64
	commandErrors    atomic.Uint64
	repeats          atomic.Uint64
	typed            atomic.Uint64
	hookConsumptions atomic.Uint64
	registrySwaps    atomic.Uint64

	mu         sync.Mutex
	latencies  []time.Duration
	latencyIdx int

	peakLatency atomic.Int64
	startTime   time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies: make([]time.Duration, defaultLatencySamples),
		startTime: time.Now(),
	}
}

// RecordKey counts one key fed to the session.
func (m *Metrics) RecordKey() { m.keysTotal.Add(1) }

// RecordNoMatch counts a key sequence with no binding.
func (m *Metrics) RecordNoMatch() { m.noMatches.Add(1) }

// RecordCancel counts an Escape cancellation.
func (m *Metrics) RecordCancel() { m.cancellations.Add(1) }

// RecordRepeat counts a dot-repeat.
func (m *Metrics) RecordRepeat() { m.repeats.Add(1) }

// RecordTyped counts a key inserted as text.
func (m *Metrics) RecordTyped() { m.typed.Add(1) }

// RecordHookConsumption counts a key or command consumed by a hook.
func (m *Metrics) RecordHookConsumption() { m.hookConsumptions.Add(1) }

// RecordRegistrySwap counts an adopted registry replacement.
func (m *Metrics) RecordRegistrySwap() { m.registrySwaps.Add(1) }

// RecordCommand records an executed command with its latency.
func (m *Metrics) RecordCommand(latency time.Duration, err error) {
	m.resolved.Add(1)
	if err != nil {
		m.commandErrors.Add(1)
	}

	ns := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if ns <= current || m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % len(m.latencies)
	m.mu.Unlock()
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeysTotal        uint64
	Resolved         uint64
	NoMatches        uint64
	Cancellations    uint64
	CommandErrors    uint64
	Repeats          uint64
	Typed            uint64
	HookConsumptions uint64
	RegistrySwaps    uint64

	AvgCommandLatency  time.Duration
	P99CommandLatency  time.Duration
	PeakCommandLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	latencies := append([]time.Duration(nil), m.latencies...)
	start := m.startTime
	m.mu.Unlock()

	snap := MetricsSnapshot{
		KeysTotal:          m.keysTotal.Load(),
		Resolved:           m.resolved.Load(),
		NoMatches:          m.noMatches.Load(),
		Cancellations:      m.cancellations.Load(),
		CommandErrors:      m.commandErrors.Load(),
		Repeats:            m.repeats.Load(),
		Typed:              m.typed.Load(),
		HookConsumptions:   m.hookConsumptions.Load(),
		RegistrySwaps:      m.registrySwaps.Load(),
		PeakCommandLatency: time.Duration(m.peakLatency.Load()),
		Uptime:             time.Since(start),
	}
	snap.AvgCommandLatency, snap.P99CommandLatency = latencyStats(latencies)
	return snap
}

// latencyStats computes the average and p99 of the recorded samples.
func latencyStats(latencies []time.Duration) (avg, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(latencies))
	var sum time.Duration
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
			sum += l
		}
	}
	if len(valid) == 0 {
		return 0, 0
	}
	avg = sum / time.Duration(len(valid))

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	return avg, valid[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	for _, c := range []*atomic.Uint64{
		&m.keysTotal, &m.resolved, &m.noMatches, &m.cancellations, &m.commandErrors,
		&m.repeats, &m.typed, &m.hookConsumptions, &m.registrySwaps,
	} {
		c.Store(0)
	}
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, len(m.latencies))
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
