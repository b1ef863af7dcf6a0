package sources

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// PostgresSource reads the products table directly, for deployments that
// point the service at the database behind the hosted backend.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) ListWindow(ctx context.Context, offset, limit int) ([]models.Product, error) {
	var rows []models.Product
	err := s.db.WithContext(ctx).
		Order("sort_order ASC NULLS LAST, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return rows, nil
}

func (s *PostgresSource) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var rows []models.Product
	err := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
