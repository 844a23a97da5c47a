package middleware

import (
	"expvar"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
)

var (
	totalRequestsReceived           = expvar.NewInt("total_requests_received")
	totalResponsesSent              = expvar.NewInt("total_responses_sent")
	totalProcessingTimeMicroseconds = expvar.NewInt("total_processing_time_us")
	totalResponsesSentByStatus      = expvar.NewMap("total_responses_sent_by_status")
)

// Metrics middleware, expose counter via expvar di /debug/vars
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			totalRequestsReceived.Add(1)

			metrics := httpsnoop.CaptureMetrics(next, w, r)

			totalResponsesSent.Add(1)
			totalProcessingTimeMicroseconds.Add(metrics.Duration.Microseconds())
			totalResponsesSentByStatus.Add(strconv.Itoa(metrics.Code), 1)
		})
	}
}
