package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "feeder_"

// Label values for the result labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"

	PollDelivered = "delivered"
	PollEmpty     = "empty"
	PollError     = "error"
)

var (
	registerOnce sync.Once

	commandsEnqueued *prometheus.CounterVec
	commandPolls     *prometheus.CounterVec
	scheduledFeeds   prometheus.Counter

	ingestTotal   *prometheus.CounterVec
	ingestLatency *prometheus.HistogramVec
)

// Init registers the feeder metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		commandsEnqueued = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "commands_enqueued_total",
				Help: "Total commands enqueued by kind",
			},
			[]string{"kind"},
		)
		commandPolls = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "command_polls_total",
				Help: "Total device polls by result",
			},
			[]string{"result"},
		)
		scheduledFeeds = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "scheduled_feeds_total",
				Help: "Total feed commands enqueued by the schedule evaluator",
			},
		)
		ingestTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_total",
				Help: "Total telemetry rows ingested by type and result",
			},
			[]string{"type", "result"},
		)
		ingestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_latency_seconds",
				Help:    "Telemetry ingest latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		)

		prometheus.MustRegister(
			commandsEnqueued,
			commandPolls,
			scheduledFeeds,
			ingestTotal,
			ingestLatency,
		)
	})
}

// IncCommandEnqueued increments the enqueue counter for kind.
func IncCommandEnqueued(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	if commandsEnqueued != nil {
		commandsEnqueued.WithLabelValues(kind).Inc()
	}
}

func IncCommandPoll(result string) {
	if commandPolls != nil {
		commandPolls.WithLabelValues(result).Inc()
	}
}

func IncScheduledFeed() {
	if scheduledFeeds != nil {
		scheduledFeeds.Inc()
	}
}

// ObserveIngest records one telemetry append.
func ObserveIngest(kind, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if ingestTotal != nil {
		ingestTotal.WithLabelValues(kind, result).Inc()
	}
	if ingestLatency != nil {
		ingestLatency.WithLabelValues(kind).Observe(duration.Seconds())
	}
}
