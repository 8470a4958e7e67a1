package filter_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	spec_cache "github.com/kon1973/nexu-webshop-sub001/cache"
	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	config.DB = db
	spec_cache.Invalidate()
	t.Cleanup(func() {
		config.DB = nil
		spec_cache.Invalidate()
		sqlDB.Close()
	})
	return mock
}

func performRequest(url string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/products/spec-filters", GetSpecificationFilters)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetSpecificationFiltersBuildsGroups(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"specifications"}).
		AddRow([]byte(`[{"key":"Kijelző","type":"header"},{"key":"Méret","value":"6,1 hüvelyk","type":"text"},{"key":"NFC","value":true,"type":"boolean"}]`)).
		AddRow([]byte(`[{"key":"Kijelző","type":"header"},{"key":"Méret","value":"6,7 hüvelyk","type":"text"},{"key":"NFC","value":false,"type":"boolean"}]`))
	mock.ExpectQuery(`SELECT p\.specifications(?s:.+)FROM products p`).WillReturnRows(rows)

	w := performRequest("/store/products/spec-filters")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string        `json:"message"`
		Data    []specs.Group `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Specification filters fetched", body.Message)
	require.Len(t, body.Data, 1)

	group := body.Data[0]
	require.NotNil(t, group.Header)
	assert.Equal(t, "Kijelző", *group.Header)
	require.Len(t, group.Specs, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSpecificationFiltersServedFromCache(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"specifications"}).
		AddRow([]byte(`[{"key":"Szín","value":"Fekete","type":"text"},{"key":"Szín","value":"Fehér","type":"text"}]`))
	mock.ExpectQuery(`SELECT p\.specifications(?s:.+)FROM products p`).WillReturnRows(rows)

	first := performRequest("/store/products/spec-filters")
	assert.Equal(t, http.StatusOK, first.Code)

	// Second request must not touch the database.
	second := performRequest("/store/products/spec-filters")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSpecificationFiltersErrorDegradesToEmpty(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT p\.specifications(?s:.+)FROM products p`).
		WillReturnError(assert.AnError)

	w := performRequest("/store/products/spec-filters")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []specs.Group `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
