package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Benjakusa/salonpro-manager/internal/model"
	"github.com/Benjakusa/salonpro-manager/internal/repository/sqlite"
	"github.com/Benjakusa/salonpro-manager/internal/service/scheduling"
)

type fixture struct {
	engine *gin.Engine

	client  *model.Client
	stylist *model.Stylist
	haircut *model.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clients := sqlite.NewClientRepository(db)
	stylists := sqlite.NewStylistRepository(db)
	services := sqlite.NewServiceRepository(db)
	appointments := sqlite.NewAppointmentRepository(db)
	scheduler := scheduling.NewService(appointments, clients, stylists, services, nil)

	engine := gin.New()
	NewHandler(scheduler).RegisterRoutes(engine.Group("/api/v1"))

	f := &fixture{
		engine:  engine,
		client:  &model.Client{FirstName: "Alice", LastName: "Nguyen", Phone: "5550001111"},
		stylist: &model.Stylist{FirstName: "Maria", LastName: "Santos", Phone: "5551112222", Email: "maria@salonpro.example"},
		haircut: &model.Service{Name: "Haircut", DurationMinutes: 60, Price: decimal.RequireFromString("50.00")},
	}

	ctx := context.Background()
	require.NoError(t, clients.Create(ctx, f.client))
	require.NoError(t, stylists.Create(ctx, f.stylist))
	require.NoError(t, services.Create(ctx, f.haircut))
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) createBody(start time.Time) gin.H {
	return gin.H{
		"client_id":  f.client.ID,
		"stylist_id": f.stylist.ID,
		"service_id": f.haircut.ID,
		"start_time": start.Format(time.RFC3339),
	}
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	return data
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	w := f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(start))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "scheduled", data["status"])
	assert.Equal(t, float64(60), data["duration_minutes"])

	price, err := decimal.NewFromString(data["total_price"].(string))
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(50)))
}

func TestCreateAppointmentConflictIs409(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	w := f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(start))
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(start.Add(30*time.Minute)))
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestCreateAppointmentMissingFieldsIs400(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/appointments", gin.H{"client_id": f.client.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownAppointmentIs404(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/appointments/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/appointments/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelAndStatusRoutes(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	w := f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(start))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w)["id"].(string)

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%s/status", id), gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%s/cancel", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeData(t, w)["status"])

	// Cancelling again stays 200 and cancelled.
	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%s/cancel", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeData(t, w)["status"])
}

func TestListByDateWindow(t *testing.T) {
	f := newFixture(t)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	w := f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(day.Add(10*time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code)
	w = f.do(t, http.MethodPost, "/api/v1/appointments", f.createBody(day.AddDate(0, 0, 1)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/appointments?date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)

	w = f.do(t, http.MethodGet, "/api/v1/appointments?date=March-10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
