package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "registry"

type Metrics struct {
	registry *prometheus.Registry

	Verdicts        *prometheus.CounterVec   // 验证结果：valid / invalid / not_found / error
	Badges          *prometheus.CounterVec   // 徽章渲染结果
	QRCodes         *prometheus.CounterVec   // 二维码来源：render / cache
	RequestDuration *prometheus.HistogramVec // 请求耗时，按路由模板统计
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_verdicts_total",
			Help:      "Verification lookups by outcome",
		}, []string{"outcome"}),
		Badges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badge_renders_total",
			Help:      "Badge renders by outcome",
		}, []string{"outcome"}),
		QRCodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "qr_renders_total",
			Help:      "QR code responses by source",
		}, []string{"source"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
