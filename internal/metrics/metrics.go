package metrics

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation kinds used as the "kind" label.
const (
	KindSpeech  = "speech"
	KindChat    = "chat"
	KindRewrite = "rewrite"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speechwriter_generations_total",
		Help: "Text generation calls by kind and outcome.",
	}, []string{"kind", "status"})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "speechwriter_generation_duration_seconds",
		Help:    "Time spent waiting on the generation API.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"kind"})

	SpeechesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "speechwriter_speeches_created_total",
		Help: "Speech rows successfully written to the database.",
	})

	SpeechesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "speechwriter_speeches_total",
		Help: "Total number of speeches in the database.",
	})

	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "speechwriter_users_total",
		Help: "Total number of users in the database.",
	})
)

// Counter reports a row count.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// RefreshTotals sets the total gauges from users and speeches, then again on
// every tick of interval until ctx is done.
func RefreshTotals(ctx context.Context, interval time.Duration, users, speeches Counter) {
	refresh := func() {
		if n, err := users.Count(ctx); err != nil {
			log.Printf("metrics: count users: %v", err)
		} else {
			UsersTotal.Set(float64(n))
		}
		if n, err := speeches.Count(ctx); err != nil {
			log.Printf("metrics: count speeches: %v", err)
		} else {
			SpeechesTotal.Set(float64(n))
		}
	}

	refresh()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
