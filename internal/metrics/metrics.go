package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"detouradmin/internal/stats"
)

var (
	waitlistDesc = prometheus.NewDesc(
		"detouradmin_waitlist_total",
		"Waitlist entries",
		nil, nil,
	)
	usersDesc = prometheus.NewDesc(
		"detouradmin_users_total",
		"Registered app users",
		nil, nil,
	)
	poisDesc = prometheus.NewDesc(
		"detouradmin_verified_pois_total",
		"Published points of interest",
		nil, nil,
	)
	reviewsDesc = prometheus.NewDesc(
		"detouradmin_reviews_total",
		"POI reviews",
		nil, nil,
	)
	pendingDesc = prometheus.NewDesc(
		"detouradmin_moderation_pending",
		"Proposals awaiting a decision",
		nil, nil,
	)
	newSignupsDesc = prometheus.NewDesc(
		"detouradmin_new_records_24h",
		"Records created in the last 24 hours by collection",
		[]string{"collection"},
		nil,
	)
	distanceDesc = prometheus.NewDesc(
		"detouradmin_user_distance_km_total",
		"Sum of tracked user distance in kilometres",
		nil, nil,
	)
	approvedDesc = prometheus.NewDesc(
		"detouradmin_moderation_approved_total",
		"Approved proposals by type",
		[]string{"type"},
		nil,
	)
)

// DashboardCollector is a custom Prometheus collector that exports the
// stats snapshot on each scrape.
type DashboardCollector struct {
	svc stats.Service
}

// Describe sends the metric descriptors to the channel.
func (c *DashboardCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- waitlistDesc
	ch <- usersDesc
	ch <- poisDesc
	ch <- reviewsDesc
	ch <- pendingDesc
	ch <- newSignupsDesc
	ch <- distanceDesc
	ch <- approvedDesc
}

// Collect reads the cached summary and emits it as gauges.
func (c *DashboardCollector) Collect(ch chan<- prometheus.Metric) {
	s, err := c.svc.Snapshot(context.Background())
	if err != nil {
		slog.Error("failed to collect dashboard metrics", "error", err)
		return
	}

	gauge := func(desc *prometheus.Desc, v int64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(v), labels...)
	}

	gauge(waitlistDesc, s.WaitlistCount)
	gauge(usersDesc, s.UserCount)
	gauge(poisDesc, s.PoiCount)
	gauge(reviewsDesc, s.ReviewCount)
	gauge(pendingDesc, s.PendingCount)
	gauge(newSignupsDesc, s.WaitlistNew24h, "waitlist")
	gauge(newSignupsDesc, s.UsersNew24h, "users")
	gauge(distanceDesc, s.TotalDistanceKm)
	gauge(approvedDesc, s.ApprovedNewPoi, "new_poi")
	gauge(approvedDesc, s.ApprovedEditPoi, "edit_poi")
}

var initOnce sync.Once

// Init registers the dashboard collector. Must be called once at startup.
func Init(svc stats.Service) {
	initOnce.Do(func() {
		prometheus.MustRegister(&DashboardCollector{svc: svc})
	})
}
