package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-eventmanager/pkg/interfaces"
)

// Collector 事件总线指标收集器
type Collector struct {
	published      *prometheus.CounterVec
	invoked        *prometheus.CounterVec
	shortCircuited *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	actions        *prometheus.CounterVec
	receivers      prometheus.Gauge
}

var (
	_ pkgif.Observer       = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// NewCollector 创建收集器
func NewCollector(namespace, subsystem string) *Collector {
	return &Collector{
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "published_total",
			Help:      "Number of published events by event type.",
		}, []string{"event_type"}),
		invoked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handlers_invoked_total",
			Help:      "Number of handler invocations by event type.",
		}, []string{"event_type"}),
		shortCircuited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "short_circuited_total",
			Help:      "Number of publishes stopped early because a handler marked the event handled.",
		}, []string{"event_type"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "publish_duration_seconds",
			Help:      "Wall time of a publish call including deferred actions.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"event_type"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "actions_executed_total",
			Help:      "Number of deferred actions executed by queue.",
		}, []string{"queue"}),
		receivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_receivers",
			Help:      "Number of receivers with at least one subscription.",
		}),
	}
}

// ============================================================================
// pkgif.Observer 实现
// ============================================================================

// ObservePublish 实现 Observer
func (c *Collector) ObservePublish(eventType string, invoked int, handled bool, elapsed time.Duration) {
	c.published.WithLabelValues(eventType).Inc()
	if invoked > 0 {
		c.invoked.WithLabelValues(eventType).Add(float64(invoked))
	}
	if handled {
		c.shortCircuited.WithLabelValues(eventType).Inc()
	}
	c.duration.WithLabelValues(eventType).Observe(elapsed.Seconds())
}

// ObserveActions 实现 Observer
func (c *Collector) ObserveActions(queue pkgif.ActionQueue, executed int) {
	c.actions.WithLabelValues(string(queue)).Add(float64(executed))
}

// ObserveReceivers 实现 Observer
func (c *Collector) ObserveReceivers(active int) {
	c.receivers.Set(float64(active))
}

// ============================================================================
// prometheus.Collector 实现
// ============================================================================

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.published.Describe(ch)
	c.invoked.Describe(ch)
	c.shortCircuited.Describe(ch)
	c.duration.Describe(ch)
	c.actions.Describe(ch)
	c.receivers.Describe(ch)
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.published.Collect(ch)
	c.invoked.Collect(ch)
	c.shortCircuited.Collect(ch)
	c.duration.Collect(ch)
	c.actions.Collect(ch)
	c.receivers.Collect(ch)
}
