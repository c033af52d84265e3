package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the business gauges periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gauges := []struct {
		table string
		where []interface{}
		set   func(int64)
	}{
		{table: "threads", set: c.metrics.SetThreadsTotal},
		{table: "comments", set: c.metrics.SetCommentsTotal},
		{table: "users", set: c.metrics.SetUsersTotal},
		{table: "reports", where: []interface{}{"status = ?", "unhandled"}, set: c.metrics.SetReportsUnhandled},
	}

	for _, g := range gauges {
		var count int64
		q := c.db.WithContext(ctx).Table(g.table)
		if len(g.where) > 0 {
			q = q.Where(g.where[0], g.where[1:]...)
		}
		if err := q.Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows for metrics",
				zap.String("table", g.table),
				zap.Error(err),
			)
			continue
		}
		g.set(count)
	}

	// Connection pool stats piggyback on the same tick
	if sqlDB, err := c.db.DB(); err == nil {
		c.metrics.UpdateDBStats(sqlDB.Stats())
	}
}
