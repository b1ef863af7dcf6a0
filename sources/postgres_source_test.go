package sources

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockSource(t *testing.T) (*PostgresSource, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewPostgresSource(db), mock
}

func TestPostgresSourceListWindow(t *testing.T) {
	src, mock := newMockSource(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "archived", "sort_order"}).
		AddRow("1", "Мука", 950.0, false, 1).
		AddRow("2", "Сахар", nil, true, nil)
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY sort_order ASC NULLS LAST`).
		WillReturnRows(rows)

	got, err := src.ListWindow(context.Background(), 0, 1000)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Мука", got[0].Name)
	assert.Nil(t, got[1].Price)
	assert.True(t, got[1].Archived)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSourceGetBySlugMissReturnsNil(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug =`).
		WithArgs("net-takogo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := src.GetBySlug(context.Background(), "net-takogo")

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSourceGetBySlugHit(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug =`).
		WithArgs("muka-0198d123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow("1", "Мука", "muka-0198d123"))

	got, err := src.GetBySlug(context.Background(), "muka-0198d123")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
