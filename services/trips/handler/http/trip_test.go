package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestTripHandler_CreateTrip_RoundsFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in models.CreateTripInput) (*models.Trip, error) {
			assert.Equal(t, int64(1501), in.Fee)
			assert.Equal(t, "rider", in.UserID)
			return &models.Trip{ID: "t1", UserID: in.UserID, Fee: in.Fee, Status: models.TripOngoing}, nil
		})

	c, rec := newRequest(http.MethodPost, "/trips",
		`{"userId":"rider","pickup":"A","destination":"B","fee":1500.6}`)

	require.NoError(t, NewTripHandler(mockUC).CreateTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"t1"`)
}

func TestTripHandler_CreateTrip_OversizedFeeSaturates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in models.CreateTripInput) (*models.Trip, error) {
			assert.Equal(t, ledger.MaxAmount+1, in.Fee)
			return nil, apperror.Invalid("fee is too large")
		})

	c, rec := newRequest(http.MethodPost, "/trips",
		`{"userId":"rider","pickup":"A","destination":"B","fee":1e30}`)

	require.NoError(t, NewTripHandler(mockUC).CreateTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripHandler_EndTrip(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockTripUC)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Settled with split",
			body: `{"fee":1500,"paymentMethod":"WALLET"}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				fee := int64(1500)
				method := models.PaymentWallet
				uc.EXPECT().EndTrip(gomock.Any(), "t1", models.EndTripInput{Fee: &fee, PaymentMethod: &method}).
					Return(&models.EndTripResult{
						Trip:       &models.Trip{ID: "t1", Status: models.TripCompleted, Fee: 1500},
						Settlement: &models.Settlement{Amount: 1500, Payout: 1350, Commission: 150},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payout":1350`,
		},
		{
			name: "Negative fee clamped and unknown method ignored",
			body: `{"fee":-20,"paymentMethod":"card"}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				fee := int64(0)
				uc.EXPECT().EndTrip(gomock.Any(), "t1", models.EndTripInput{Fee: &fee}).
					Return(&models.EndTripResult{Trip: &models.Trip{ID: "t1", Status: models.TripCompleted}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"completed"`,
		},
		{
			name: "Insufficient funds",
			body: `{}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().EndTrip(gomock.Any(), "t1", models.EndTripInput{}).
					Return(nil, apperror.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"insufficient_funds"`,
		},
		{
			name: "Unknown trip",
			body: `{}`,
			mockSetup: func(uc *mocks.MockTripUC) {
				uc.EXPECT().EndTrip(gomock.Any(), "t1", gomock.Any()).Return(nil, apperror.ErrTripNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not_found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTripUC(ctrl)
			tt.mockSetup(mockUC)

			c, rec := newRequest(http.MethodPost, "/trips/t1/end", tt.body)

			require.NoError(t, NewTripHandler(mockUC).EndTrip(withID(c, "t1")))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestTripHandler_EndTrip_OmitsSplitWhenNothingSettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().EndTrip(gomock.Any(), "t1", gomock.Any()).
		Return(&models.EndTripResult{Trip: &models.Trip{ID: "t1", Status: models.TripCompleted}}, nil)

	c, rec := newRequest(http.MethodPost, "/trips/t1/end", `{}`)

	require.NoError(t, NewTripHandler(mockUC).EndTrip(withID(c, "t1")))
	assert.NotContains(t, rec.Body.String(), "payout")
	assert.NotContains(t, rec.Body.String(), "commission")
}

func TestTripHandler_RateTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().RateTrip(gomock.Any(), "t1", 5).Return(nil)
	mockUC.EXPECT().RateTrip(gomock.Any(), "t1", 3).Return(apperror.ErrTripAlreadyRated)
	handler := NewTripHandler(mockUC)

	c, rec := newRequest(http.MethodPost, "/trips/t1/rate", `{"stars":5}`)
	require.NoError(t, handler.RateTrip(withID(c, "t1")))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	c, rec = newRequest(http.MethodPost, "/trips/t1/rate", `{"stars":3}`)
	require.NoError(t, handler.RateTrip(withID(c, "t1")))
	assert.Equal(t, http.StatusConflict, rec.Code)

	c, rec = newRequest(http.MethodPost, "/trips/t1/rate", `{"stars":"five"}`)
	require.NoError(t, handler.RateTrip(withID(c, "t1")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripHandler_ListTripsByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().ListTripsByUser(gomock.Any(), "rider").
		Return([]*models.Trip{{ID: "t2"}, {ID: "t1"}}, nil)

	c, rec := newRequest(http.MethodGet, "/trips/rider", "")

	require.NoError(t, NewTripHandler(mockUC).ListTripsByUser(withID(c, "rider")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trips":[`)
}

func TestTripHandler_RecordLocation_RequiresCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, rec := newRequest(http.MethodPost, "/trips/t1/location", `{"lat":6.5}`)

	require.NoError(t, NewTripHandler(mocks.NewMockTripUC(ctrl)).RecordLocation(withID(c, "t1")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripHandler_GetSharedTrack_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().GetSharedTrack(gomock.Any(), "t1", "bad").Return(nil, apperror.ErrInvalidTrackingKey)

	c, rec := newRequest(http.MethodGet, "/track/t1?t=bad", "")

	require.NoError(t, NewTripHandler(mockUC).GetSharedTrack(withID(c, "t1")))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTripHandler_AverageCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	average := int64(1501)
	mockUC := mocks.NewMockTripUC(ctrl)
	mockUC.EXPECT().AverageCost(gomock.Any(), "lekki", "vi").
		Return(&models.CostSummary{Average: &average, Count: 2}, nil)

	c, rec := newRequest(http.MethodGet, "/trips/average-cost?from=lekki&to=vi", "")

	require.NoError(t, NewTripHandler(mockUC).AverageCost(c))
	assert.JSONEq(t, `{"average":1501,"count":2}`, rec.Body.String())
}
