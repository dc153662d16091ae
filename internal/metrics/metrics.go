// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joestump/joe-photos/internal/domain"
)

var (
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joephotos_mutations_total",
		Help: "Library mutations by operation and result (ok, rejected, persist_failed).",
	}, []string{"op", "result"})

	PersistErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "joephotos_persist_errors_total",
		Help: "Album store writes that failed.",
	})

	PersistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "joephotos_persist_duration_seconds",
		Help:    "Time to write the album collection to its store.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	})

	AlbumsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "joephotos_albums_total",
		Help: "Number of albums in the library.",
	})

	PhotosTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "joephotos_photos_total",
		Help: "Number of photos across all albums.",
	})
)

// SetCollectionSize refreshes the album and photo gauges.
func SetCollectionSize(albums []*domain.Album) {
	photos := 0
	for _, a := range albums {
		photos += a.PhotoCount()
	}
	AlbumsTotal.Set(float64(len(albums)))
	PhotosTotal.Set(float64(photos))
}
