package specs

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestAggregateForCategoryBuildsGroups(t *testing.T) {
	db, mock := newMockGorm(t)

	rows := sqlmock.NewRows([]string{"specifications"}).
		AddRow([]byte(`[{"key":"Tárhely","value":"128 GB","type":"text"},{"key":"5G","value":true,"type":"boolean"}]`)).
		AddRow([]byte(`[{"key":"Tárhely","value":"256 GB","type":"text"},{"key":"5G","value":false,"type":"boolean"}]`)).
		AddRow(nil)

	// Archived products must never feed the aggregation.
	mock.ExpectQuery(`SELECT p\.specifications(?s:.+)FROM products p(?s:.+)WHERE p\.status != 'Archived'`).
		WillReturnRows(rows)

	groups := AggregateForCategory(context.Background(), db, "")
	require.Len(t, groups, 1)

	f := findFilter(t, groups, "Tárhely")
	assert.Equal(t, FilterRange, f.Type)
	assert.Equal(t, 128.0, *f.Min)
	assert.Equal(t, 256.0, *f.Max)

	b := findFilter(t, groups, "5G")
	assert.Equal(t, 1, b.BooleanCount.True)
	assert.Equal(t, 1, b.BooleanCount.False)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateForCategoryScopesByCategory(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery(`sub_category_id IN`).
		WithArgs("Telefonok", "Telefonok").
		WillReturnRows(sqlmock.NewRows([]string{"specifications"}))

	groups := AggregateForCategory(context.Background(), db, "Telefonok")
	assert.Empty(t, groups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateForCategoryDegradesToEmptyOnError(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery(`SELECT p.specifications`).
		WillReturnError(errors.New("connection refused"))

	groups := AggregateForCategory(context.Background(), db, "")
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
