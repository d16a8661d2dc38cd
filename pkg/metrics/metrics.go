// Copyright 2025 Distributions Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics holds the process-local prometheus registry and the
// variate-generation metric families.
package metrics

import (
	"context"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var registerer = prometheus.NewRegistry()

var (
	VariatesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variates_generated",
			Help: "Number of random variates drawn, by distribution.",
		},
		[]string{"distribution"},
	)

	VariatesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variates_written",
			Help: "Number of variates flushed to the output sink.",
		},
		[]string{"sink"},
	)

	GenerationTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_time",
			Help:    "Time taken to draw one batch of variates, in microseconds.",
			Buckets: []float64{1, 10, 100, 500, 1000, 5000, 10000, 100000, 1000000},
		},
		[]string{"distribution"},
	)

	DistgenInformation = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "distgen_information",
			Help: "Static run configuration values.",
		},
		[]string{"name"},
	)
)

func init() {
	registerer.MustRegister(
		VariatesGenerated,
		VariatesWritten,
		GenerationTime,
		DistgenInformation,
	)

	registerer.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			ReportErrors: true,
			PidFn: func() (int, error) {
				return os.Getpid(), nil
			},
		}),
		collectors.NewBuildInfoCollector(),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "go_goroutines_count",
			Help: "Number of goroutines currently active.",
		}, func() float64 {
			return float64(runtime.NumGoroutine())
		}),
	)
}

// StartMetricsServer serves /metrics on bind until ctx is done. An empty
// bind disables the server.
func StartMetricsServer(ctx context.Context, bind string, logger *zap.Logger) {
	if bind == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(registerer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          registerer,
			OfferedCompressions: []promhttp.Compression{
				promhttp.Zstd,
				promhttp.Gzip,
				promhttp.Identity,
			},
		}),
	))

	server := &http.Server{
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		WriteTimeout: 1 * time.Minute,
		Handler:      mux,
		Addr:         bind,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start metrics server", zap.String("bind", bind), zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}()
}

// GenerationTimer times one sampling batch for a distribution.
type GenerationTimer struct {
	start    time.Time
	observer prometheus.Observer
}

func StartGenerationTimer(distribution string) GenerationTimer {
	return GenerationTimer{
		start:    time.Now(),
		observer: GenerationTime.WithLabelValues(distribution),
	}
}

func (g GenerationTimer) Record() {
	g.observer.Observe(float64(time.Since(g.start).Microseconds()))
}
