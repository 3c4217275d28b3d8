package telemetry

import (
	"log/slog"
	"time"
)

// PerfCollector tracks tick durations over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int
	tickStart   time.Time
}

// NewPerfCollector creates a performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second
// at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	p.samples[p.writeIndex] = time.Since(p.tickStart)
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated timing statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	TicksPerSecond  float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{}
	}

	var total, minTick, maxTick time.Duration
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s
		if i == 0 || s < minTick {
			minTick = s
		}
		if s > maxTick {
			maxTick = s
		}
	}

	avg := total / time.Duration(p.sampleCount)

	var tps float64
	if avg > 0 {
		tps = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		AvgTickDuration: avg,
		MinTickDuration: minTick,
		MaxTickDuration: maxTick,
		TicksPerSecond:  tps,
	}
}

// Log writes the current window stats via slog.
func (p *PerfCollector) Log(tick int32) {
	stats := p.Stats()
	slog.Info("tick timing",
		"tick", tick,
		"avg", stats.AvgTickDuration.Round(time.Microsecond).String(),
		"min", stats.MinTickDuration.Round(time.Microsecond).String(),
		"max", stats.MaxTickDuration.Round(time.Microsecond).String(),
		"ticks_per_second", int(stats.TicksPerSecond),
	)
}
