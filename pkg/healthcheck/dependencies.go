package healthcheck

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DatabaseChecker checks database connectivity through a GORM handle
type DatabaseChecker struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewDatabaseChecker creates a database health checker
func NewDatabaseChecker(db *gorm.DB) *DatabaseChecker {
	return &DatabaseChecker{
		db:      db,
		timeout: 3 * time.Second,
	}
}

// Check pings the underlying connection pool
func (c *DatabaseChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{
		Status:      StatusHealthy,
		LastChecked: start,
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sqlDB, err := c.db.DB()
	if err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
		check.Duration = time.Since(start)
		return check
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
	}

	check.Duration = time.Since(start)
	return check
}
