package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjakusa/salonpro-manager/internal/repository/sqlite"
	catalogService "github.com/Benjakusa/salonpro-manager/internal/service/catalog"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	engine := gin.New()
	NewHandler(catalogService.NewService(sqlite.NewServiceRepository(db))).
		RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func post(t *testing.T, engine *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/services", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateService(t *testing.T) {
	engine := newEngine(t)

	w := post(t, engine, gin.H{
		"name":             "Haircut",
		"duration_minutes": 45,
		"price":            "50.00",
		"category":         "Haircut",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateFreeService(t *testing.T) {
	engine := newEngine(t)

	// Complimentary offerings carry a zero price.
	w := post(t, engine, gin.H{
		"name":             "Fringe Trim",
		"duration_minutes": 10,
		"price":            "0",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateServiceNegativePriceRejected(t *testing.T) {
	engine := newEngine(t)

	w := post(t, engine, gin.H{
		"name":             "Haircut",
		"duration_minutes": 45,
		"price":            "-5",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestCreateServiceDuplicateNameIs409(t *testing.T) {
	engine := newEngine(t)

	body := gin.H{"name": "Haircut", "duration_minutes": 45, "price": "50.00"}
	w := post(t, engine, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = post(t, engine, body)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}
