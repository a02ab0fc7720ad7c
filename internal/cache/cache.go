package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

var periods = []fitness.ReportPeriod{
	fitness.ReportWeekly,
	fitness.ReportMonthly,
	fitness.ReportFull,
}

// ReportCache keeps rendered report summaries per user and period. Entries
// are dropped whenever the user's workouts change.
type ReportCache struct {
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewReportCache(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *ReportCache {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	return &ReportCache{
		cache:          freecache.NewCache(sizeMB * megabyte),
		ttlSeconds:     int(ttl.Seconds()),
		metricsManager: metricsManager,
	}
}

func key(userID int, period fitness.ReportPeriod) []byte {
	return []byte(fmt.Sprintf("report::%d::%s", userID, period))
}

func (c *ReportCache) Get(userID int, period fitness.ReportPeriod) (*fitness.Report, bool) {
	reportBytes, err := c.cache.Get(key(userID, period))
	if err != nil {
		c.metricsManager.CounterReportCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	var report fitness.Report
	if err := json.Unmarshal(reportBytes, &report); err != nil {
		log.Errorf("unmarshal cached %s report for user %d: %s", period, userID, err)
		c.cache.Del(key(userID, period))
		c.metricsManager.CounterReportCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	c.metricsManager.CounterReportCache.WithLabelValues("hit").Inc()
	return &report, true
}

func (c *ReportCache) Set(userID int, period fitness.ReportPeriod, report fitness.Report) {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		log.Errorf("marshal %s report for user %d: %s", period, userID, err)
		return
	}
	if err := c.cache.Set(key(userID, period), reportBytes, c.ttlSeconds); err != nil {
		log.Errorf("cache %s report for user %d: %s", period, userID, err)
	}
}

func (c *ReportCache) InvalidateUser(userID int) {
	for _, period := range periods {
		c.cache.Del(key(userID, period))
	}
}
