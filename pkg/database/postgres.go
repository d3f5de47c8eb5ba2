package database

import (
	"fmt"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ActiveSlotIndex is the backstop for the booking guard: two reservations
// that still hold a table can never share the same table, date and start time.
const ActiveSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_reservation_active_slot
	ON reservations (table_id, date, time_slot)
	WHERE status <> 'Cancelled'
`

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Table{}, &models.Reservation{}); err != nil {
		return err
	}
	if err := db.Exec(ActiveSlotIndex).Error; err != nil {
		return fmt.Errorf("create active slot index: %w", err)
	}
	return nil
}
