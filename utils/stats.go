package utils

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// MarshalLogObject lets the stats be logged with zap.Object
func (s *Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("generations", s.TotalGenerations)
	enc.AddFloat64("gen_per_sec", s.GenerationsPerSecond)
	enc.AddFloat64("avg_population", s.AveragePopulation)
	enc.AddInt("peak_population", s.PeakPopulation)
	enc.AddDuration("runtime", time.Since(s.StartTime))
	return nil
}

var _ zapcore.ObjectMarshaler = (*Stats)(nil)

// Field wraps the stats as a zap field
func (s *Stats) Field() zap.Field {
	return zap.Object("stats", s)
}
