// SPDX-License-Identifier: LGPL-3.0-or-later

package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// instrumentTransport wraps next with request count and duration metrics
func instrumentTransport(reg prometheus.Registerer, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexctl_client_requests_total",
			Help: "Number of requests sent to the search-index service",
		},
		[]string{"code", "method"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indexctl_client_request_duration_seconds",
			Help:    "Duration of requests sent to the search-index service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	reg.MustRegister(requests, duration)

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, next))
}
