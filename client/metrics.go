package client

import (
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "health_journal_client",
		Name:      "requests_total",
		Help:      "SDK requests by method, route and status code; transport failures use status=\"error\".",
	},
	[]string{"method", "route", "status"},
)

func observe(method, route string, resp *resty.Response, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode())
	}
	requestsTotal.WithLabelValues(method, route, status).Inc()
}
