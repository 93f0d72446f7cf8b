package dhcpc

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metrics    = prometheus.NewRegistry()
	startTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ifdhcp_client_start_total",
		Help: "The total number of successful client starts",
	}, []string{"version"})
	stopTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ifdhcp_client_stop_total",
		Help: "The total number of successful client stops",
	}, []string{"version"})
	errorTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ifdhcp_client_error_total",
		Help: "The total number of failed client operations",
	}, []string{"version", "kind"})
	runningGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ifdhcp_client_running",
		Help: "The number of clients in running state",
	}, []string{"version"})
)

func Metrics() *prometheus.Registry {
	return metrics
}

func init() {
	metrics.MustRegister(startTotal, stopTotal, errorTotal, runningGauge)
}
