package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autotoll/tollway/internal/pkg/models"
	"github.com/autotoll/tollway/internal/utils"
	"github.com/autotoll/tollway/services/collector/mocks"
	"github.com/autotoll/tollway/services/collector/usecase"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpdateContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/update_location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdateLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	vehicleID := uuid.New()
	reading := &models.PositionReading{
		ID:         uuid.New(),
		VehicleID:  vehicleID.String(),
		Latitude:   -6.175392,
		Longitude:  106.827153,
		Geohash:    "qqguwtqhh",
		RecordedAt: time.Now(),
	}
	mockUC.EXPECT().
		RecordPosition(gomock.Any(), vehicleID.String(), models.UpdateLocationRequest{
			Latitude:  -6.175392,
			Longitude: 106.827153,
		}).
		Return(reading, nil)

	e := echo.New()
	c, rec := newUpdateContext(e, `{"latitude":-6.175392,"longitude":106.827153}`)
	c.Set("vehicle_id", vehicleID)

	require.NoError(t, handler.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Location updated", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestUpdateLocation_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	e := echo.New()
	c, rec := newUpdateContext(e, `{"latitude":1,"longitude":2}`)

	require.NoError(t, handler.UpdateLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestUpdateLocation_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	e := echo.New()
	c, rec := newUpdateContext(e, `{"latitude":"not-a-number"}`)
	c.Set("vehicle_id", uuid.New())

	require.NoError(t, handler.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateLocation_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().
		RecordPosition(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, usecase.ErrInvalidLatitude)

	e := echo.New()
	c, rec := newUpdateContext(e, `{"latitude":95,"longitude":2}`)
	c.Set("vehicle_id", uuid.New())

	require.NoError(t, handler.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, usecase.ErrInvalidLatitude.Error(), resp.Message)
}

func TestUpdateLocation_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().
		RecordPosition(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis connection refused"))

	e := echo.New()
	c, rec := newUpdateContext(e, `{"latitude":1,"longitude":2}`)
	c.Set("vehicle_id", uuid.New())

	require.NoError(t, handler.UpdateLocation(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Failed to record position", resp.Message)
}

func TestGetVehicleLocation_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().
		GetVehicleLocation(gomock.Any(), "vehicle-123").
		DoAndReturn(func(_ context.Context, _ string) (*models.Position, error) {
			return &models.Position{Latitude: 1.5, Longitude: 2.5, CapturedAt: time.Now()}, nil
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/internal/vehicles/:id/location")
	c.SetParamNames("id")
	c.SetParamValues("vehicle-123")

	require.NoError(t, handler.GetVehicleLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetVehicleLocation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCollectorUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().
		GetVehicleLocation(gomock.Any(), "ghost").
		Return(nil, errors.New("no location data found for vehicle ghost"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/internal/vehicles/:id/location")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	require.NoError(t, handler.GetVehicleLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
