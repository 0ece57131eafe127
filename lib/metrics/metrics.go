package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultSuccess  = "success"
	ResultFailure  = "failure"
)

var (
	// submitted responses, result: accepted/rejected
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fntp_assessment_submissions_total",
			Help: "Total number of submitted assessment responses",
		},
		[]string{"result"},
	)

	CompletedAssessments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fntp_assessments_completed_total",
			Help: "Total number of completed assessments",
		},
		[]string{"template"},
	)

	RedFlags = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fntp_red_flags_total",
			Help: "Total number of raised red flags",
		},
		[]string{"question_id"},
	)

	// AI analysis runs, kind: assessment/document
	Analyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fntp_ai_analyses_total",
			Help: "Total number of AI analysis runs",
		},
		[]string{"kind", "result"},
	)

	WebsocketSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fntp_ws_subscribers_current",
			Help: "Current number of websocket progress subscribers",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fntp_http_request_duration_seconds",
			Help:    "Time spent processing api requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
