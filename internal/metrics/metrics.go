// Package metrics records what a molcheck run did as Prometheus metrics.
// The command is short-lived, so instead of serving them it writes them
// in the text exposition format, ready for the node exporter textfile
// collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rmera/molcheck"
)

// Recorder holds the metrics of one run on its own registry.
type Recorder struct {
	reg *prometheus.Registry

	validations        *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	atomsExtracted     prometheus.Counter
	bondsInferred      prometheus.Counter
	extractionDuration prometheus.Histogram
}

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		validations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molcheck_validations_total",
				Help: "Total number of validated files",
			},
			[]string{"format", "valid"},
		),
		validationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "molcheck_validation_duration_seconds",
				Help:    "Time taken to read and validate one file",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{"format"},
		),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "molcheck_cache_hits_total",
			Help: "Validations answered from the result cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "molcheck_cache_misses_total",
			Help: "Validations that had to run a validator",
		}),
		atomsExtracted: f.NewCounter(prometheus.CounterOpts{
			Name: "molcheck_atoms_extracted_total",
			Help: "Atoms read from PDB records",
		}),
		bondsInferred: f.NewCounter(prometheus.CounterOpts{
			Name: "molcheck_bonds_inferred_total",
			Help: "Bonds inferred from interatomic distances",
		}),
		extractionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "molcheck_extraction_duration_seconds",
			Help:    "Time taken to extract a structure",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordValidation records the verdict for one file.
func (m *Recorder) RecordValidation(format molcheck.Format, valid bool, duration time.Duration) {
	m.validations.WithLabelValues(format.String(), strconv.FormatBool(valid)).Inc()
	m.validationDuration.WithLabelValues(format.String()).Observe(duration.Seconds())
}

// RecordCache adds the hits and misses of a result cache.
func (m *Recorder) RecordCache(hits, misses int) {
	m.cacheHits.Add(float64(hits))
	m.cacheMisses.Add(float64(misses))
}

// RecordExtraction records one extracted structure.
func (m *Recorder) RecordExtraction(S *molcheck.StructureData, duration time.Duration) {
	m.atomsExtracted.Add(float64(S.AtomCount()))
	m.bondsInferred.Add(float64(S.BondCount()))
	m.extractionDuration.Observe(duration.Seconds())
}

// Registry returns the registry holding the metrics.
func (m *Recorder) Registry() *prometheus.Registry {
	return m.reg
}

// WriteFile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (m *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
