// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/meiliops/indexctl/client"
	"github.com/meiliops/indexctl/config"
)

var (
	// lastFetchTimestampGauge tracks when the settings document was last read
	lastFetchTimestampGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexctl_last_fetch_timestamp",
			Help: "Unix timestamp of the last successful settings fetch",
		},
	)

	// fetchErrorsCounter counts failed settings fetches
	fetchErrorsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "indexctl_fetch_errors_total",
			Help: "Number of failed settings fetches",
		},
	)

	// maxTotalHitsGauge exports the resolved pagination limit
	maxTotalHitsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexctl_settings_max_total_hits",
			Help: "Resolved pagination.maxTotalHits of the watched index",
		},
	)

	// maxValuesPerFacetGauge exports the resolved faceting limit
	maxValuesPerFacetGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexctl_settings_max_values_per_facet",
			Help: "Resolved faceting.maxValuesPerFacet of the watched index",
		},
	)

	// typoToleranceEnabledGauge exports the resolved typo-tolerance flag
	typoToleranceEnabledGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexctl_settings_typo_tolerance_enabled",
			Help: "Whether typo tolerance is enabled (1) or not (0) on the watched index",
		},
	)
)

type watcher struct {
	idx      *client.Index
	interval time.Duration

	lastFetch atomic.Int64
}

// runWatch periodically reads the settings document and exposes it as
// Prometheus metrics until the process is interrupted.
func runWatch(cfg *config.Config, reg *prometheus.Registry, idx *client.Index) error {
	if cfg.Metrics.GoEnabled {
		reg.MustRegister(collectors.NewGoCollector())
	}
	if cfg.Metrics.ProcessEnabled {
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	reg.MustRegister(
		lastFetchTimestampGauge,
		fetchErrorsCounter,
		maxTotalHitsGauge,
		maxValuesPerFacetGauge,
		typoToleranceEnabledGauge,
	)

	w := &watcher{idx: idx, interval: cfg.Watch.Interval}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.loop(ctx)

	mux := http.NewServeMux()
	mux.Handle(cfg.Watch.TelemetryPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/readyz", func(rw http.ResponseWriter, r *http.Request) {
		if w.isHealthy() {
			rw.WriteHeader(http.StatusOK)
			rw.Write([]byte("ready\n"))
		} else {
			rw.WriteHeader(http.StatusServiceUnavailable)
			rw.Write([]byte("not ready\n"))
		}
	})

	log.Infof("Watching settings of index %q every %v", w.idx.UID(), w.interval)
	log.Infof("Listening for %s on %s", cfg.Watch.TelemetryPath, cfg.Watch.ListenAddress)
	return http.ListenAndServe(cfg.Watch.ListenAddress, mux)
}

func (w *watcher) loop(ctx context.Context) {
	w.fetch(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.fetch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *watcher) fetch(ctx context.Context) {
	s, err := w.idx.GetSettings(ctx)
	if err != nil {
		log.Errorln(err)
		fetchErrorsCounter.Inc()
		return
	}

	w.lastFetch.Store(time.Now().Unix())
	lastFetchTimestampGauge.SetToCurrentTime()

	if s.Pagination != nil {
		maxTotalHitsGauge.Set(float64(s.Pagination.MaxTotalHits))
	}
	if s.Faceting != nil {
		maxValuesPerFacetGauge.Set(float64(s.Faceting.MaxValuesPerFacet))
	}
	if s.TypoTolerance != nil {
		if enabled, ok := s.TypoTolerance.Enabled.Get(); ok {
			v := 0.0
			if enabled {
				v = 1
			}
			typoToleranceEnabledGauge.Set(v)
		}
	}

	log.Debugf("fetched settings of index %q", w.idx.UID())
}

// isHealthy reports whether a fetch succeeded within the last three
// intervals.
func (w *watcher) isHealthy() bool {
	last := w.lastFetch.Load()
	if last == 0 {
		return false
	}
	return time.Since(time.Unix(last, 0)) <= 3*w.interval
}
