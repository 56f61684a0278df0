package storage

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DefaultConnectRetries = 5
	DefaultConnectDelay   = 5 * time.Second
)

// Gateway persists interactions in Postgres.
type Gateway struct {
	db *gorm.DB
}

// Open brings up the gateway with a bounded retry loop. One attempt is
// connect plus schema ensure: a migrate failure consumes the attempt the
// same way a refused connection does. Attempts are sequential with an
// unconditional fixed delay between them; exhausting the budget returns
// the last error and the process must not start its message loop.
func Open(dsn string, retries int, delay time.Duration) (*Gateway, error) {
	db, err := connectWithRetry(func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&Interaction{}); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		return db, nil
	}, retries, delay)
	if err != nil {
		return nil, err
	}
	log.Printf("database initialized")

	return &Gateway{db: db}, nil
}

func connectWithRetry(attempt func() (*gorm.DB, error), retries int, delay time.Duration) (*gorm.DB, error) {
	if retries <= 0 {
		retries = DefaultConnectRetries
	}
	for n := 1; ; n++ {
		db, err := attempt()
		if err == nil {
			log.Printf("database initialization succeeded (attempt %d)", n)
			return db, nil
		}
		if n >= retries {
			return nil, fmt.Errorf("failed to initialize database after %d attempts: %w", retries, err)
		}
		log.Printf("database initialization attempt %d failed: %v", n, err)
		time.Sleep(delay)
	}
}

func (g *Gateway) AppendInteraction(interaction Interaction) error {
	if err := g.db.Create(&interaction).Error; err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}

// Stats aggregates interactions for the calendar day containing t (in t's
// location). Used by the daily report only; the command pipeline never reads.
func (g *Gateway) Stats(t time.Time) (DayStats, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24 * time.Hour)

	stats := DayStats{
		Date:     start.Format("2006-01-02"),
		BySource: make(map[string]int64),
	}

	err := g.db.Model(&Interaction{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&stats.Total).Error
	if err != nil {
		return DayStats{}, fmt.Errorf("failed to count interactions: %w", err)
	}

	err = g.db.Model(&Interaction{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Distinct("user_id").
		Count(&stats.UniqueUsers).Error
	if err != nil {
		return DayStats{}, fmt.Errorf("failed to count unique users: %w", err)
	}

	var rows []struct {
		Source string
		N      int64
	}
	err = g.db.Model(&Interaction{}).
		Select("source, count(*) as n").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return DayStats{}, fmt.Errorf("failed to group interactions by source: %w", err)
	}
	for _, r := range rows {
		stats.BySource[r.Source] = r.N
	}

	return stats, nil
}
