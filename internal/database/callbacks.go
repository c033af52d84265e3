package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query, create, update and delete per table.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	register := func(kind string, before, after func(name string, fn func(*gorm.DB)) error) {
		before("metrics:"+kind+"_before", func(db *gorm.DB) {
			db.InstanceSet("query_start_time", time.Now())
		})
		after("metrics:"+kind+"_after", func(db *gorm.DB) {
			startTime, ok := db.InstanceGet("query_start_time")
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(kind, table, time.Since(startTime.(time.Time)), db.Error)
		})
	}

	register("select", db.Callback().Query().Before("gorm:query").Register, db.Callback().Query().After("gorm:query").Register)
	register("insert", db.Callback().Create().Before("gorm:create").Register, db.Callback().Create().After("gorm:create").Register)
	register("update", db.Callback().Update().Before("gorm:update").Register, db.Callback().Update().After("gorm:update").Register)
	register("delete", db.Callback().Delete().Before("gorm:delete").Register, db.Callback().Delete().After("gorm:delete").Register)
}
