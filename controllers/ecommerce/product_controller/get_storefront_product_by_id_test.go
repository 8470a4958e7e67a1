package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
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
	t.Cleanup(func() {
		config.DB = nil
		sqlDB.Close()
	})
	return mock
}

func TestGetStorefrontProductByIDIncrementsViewsInSQL(t *testing.T) {
	mock := newMockDB(t)

	productID := uuid.Must(uuid.NewV7())
	subCategoryID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	productRows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url", "sub_category_id",
		"status", "tags", "specifications", "attributes", "variants", "views",
		"created_at", "updated_at",
	}).AddRow(
		productID.String(), "Nexu Phone X2", "Vékony ház, erős akkumulátor.", 129990.0, "",
		subCategoryID.String(), "Active", []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
		41, now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).WillReturnRows(productRows)

	categoryRows := sqlmock.NewRows([]string{"id", "name", "description", "status"}).
		AddRow(subCategoryID.String(), "Telefonok", "Okostelefonok", "Active")
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE`).WillReturnRows(categoryRows)

	// The counter must bump in SQL; a literal computed from the read
	// would lose concurrent views.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "views"=COALESCE\(views, 0\) \+ 1 WHERE id = \$1`).
		WithArgs(productID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/products/:id", GetStorefrontProductByID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/products/"+productID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.StorefrontProductDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Nexu Phone X2", body.Data.Name)
	assert.Equal(t, 42, body.Data.Views)
	assert.Equal(t, "Telefonok", body.Data.CategoryName)

	assert.NoError(t, mock.ExpectationsWereMet())
}
