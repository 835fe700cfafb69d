package utils

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stats for performance monitoring, exported as Prometheus metrics
type Stats struct {
	StartTime         time.Time
	TotalGenerations  int
	AveragePopulation float64

	registry     *prometheus.Registry
	generations  prometheus.Counter
	livingCells  prometheus.Gauge
	tickDuration prometheus.Histogram
}

func NewStats() *Stats {
	s := &Stats{
		StartTime: time.Now(),
		registry:  prometheus.NewRegistry(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "torus_life_generations_total",
			Help: "Total number of generations advanced",
		}),
		livingCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torus_life_living_cells",
			Help: "Number of living cells in the current generation",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "torus_life_tick_duration_seconds",
			Help:    "Time spent computing one generation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	s.registry.MustRegister(s.generations, s.livingCells, s.tickDuration)
	return s
}

// Observe records one completed generation
func (s *Stats) Observe(population int, tick time.Duration) {
	s.TotalGenerations++
	s.generations.Inc()
	s.livingCells.Set(float64(population))
	s.tickDuration.Observe(tick.Seconds())

	// Simple moving average for population
	if s.TotalGenerations == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// SetPopulation records the population without counting a generation
func (s *Stats) SetPopulation(population int) {
	s.livingCells.Set(float64(population))
}

// Registry exposes the collectors for gathering
func (s *Stats) Registry() *prometheus.Registry { return s.registry }

// Handler serves the collectors in the Prometheus exposition format
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
