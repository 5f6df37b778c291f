package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yayayum_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yayayum_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// StoreFaults counts codec and store faults surfaced by the entity store.
	StoreFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yayayum_store_faults_total",
		Help: "Entity store faults by error kind and resource",
	}, []string{"kind", "resource"})
)

const queryStartKey = "yayayum:query_start"

// RegisterQueryMetrics installs GORM callbacks that observe the latency of
// every create, query, update, delete and raw statement on db.
func RegisterQueryMetrics(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		operation := h.operation
		if err := h.before("metrics:before_"+operation, func(tx *gorm.DB) {
			tx.InstanceSet(queryStartKey, time.Now())
		}); err != nil {
			return err
		}
		if err := h.after("metrics:after_"+operation, func(tx *gorm.DB) {
			observeQuery(tx, operation)
		}); err != nil {
			return err
		}
	}
	return nil
}

func observeQuery(tx *gorm.DB, operation string) {
	v, ok := tx.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := "unknown"
	if tx.Statement != nil && tx.Statement.Table != "" {
		table = tx.Statement.Table
	}
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
