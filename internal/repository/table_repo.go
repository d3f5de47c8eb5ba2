package repository

import (
	"context"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TableRepository interface {
	FindAll(ctx context.Context) ([]models.Table, error)
	FindByID(ctx context.Context, id uint) (*models.Table, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Table, error)
	FindByMinCapacity(ctx context.Context, guests int) ([]models.Table, error)
	// CreateIfAbsent inserts the table unless one with the same number exists.
	CreateIfAbsent(ctx context.Context, table *models.Table) (bool, error)
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) FindAll(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Order("table_number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	models.SortByNumber(tables)
	return tables, nil
}

func (r *tableRepository) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// FindByIDForUpdate acquires a row-level lock on the table within the current transaction.
func (r *tableRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) FindByMinCapacity(ctx context.Context, guests int) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.WithContext(ctx).
		Where("capacity >= ?", guests).
		Order("capacity ASC, table_number ASC").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	models.SortByFit(tables)
	return tables, nil
}

func (r *tableRepository) CreateIfAbsent(ctx context.Context, table *models.Table) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "table_number"}},
			DoNothing: true,
		}).
		Create(table)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
