package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/wallet/mocks"
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

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWalletHandler_Transfer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockWalletUC)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: `{"fromId":"A","toId":"B","amount":500}`,
			mockSetup: func(uc *mocks.MockWalletUC) {
				uc.EXPECT().Transfer(gomock.Any(), "A", "B", int64(500)).
					Return(&models.LedgerEntry{ID: "e1", Amount: 500, Kind: models.EntryTransfer}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"fromId":"A","toId":"B","amount":500}`,
			mockSetup: func(uc *mocks.MockWalletUC) {
				uc.EXPECT().Transfer(gomock.Any(), "A", "B", int64(500)).
					Return(nil, fmt.Errorf("transfer from A: %w", apperror.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "insufficient_funds",
		},
		{
			name:           "Fractional amount rejected",
			body:           `{"fromId":"A","toId":"B","amount":10.5}`,
			mockSetup:      func(uc *mocks.MockWalletUC) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_argument",
		},
		{
			name: "Invalid amount",
			body: `{"fromId":"A","toId":"B","amount":0}`,
			mockSetup: func(uc *mocks.MockWalletUC) {
				uc.EXPECT().Transfer(gomock.Any(), "A", "B", int64(0)).Return(nil, apperror.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockWalletUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewWalletHandler(mockUC)

			c, rec := newRequest(http.MethodPost, "/wallet/transfer", tt.body)

			require.NoError(t, handler.Transfer(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			body := decode(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, "Transfer successful", body["message"])
			}
		})
	}
}

func TestWalletHandler_Deduct_WithDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().Deduct(gomock.Any(), ledger.DeductInput{
		AccountID: "rider", Amount: 1500, TripID: "t1", DriverID: "d1", Note: "fare",
	}).Return(&ledger.DeductResult{
		Account:    &models.Account{ID: "rider", WalletBalance: 8500},
		Settlement: &models.Settlement{Amount: 1500, Payout: 1350, Commission: 150},
	}, nil)

	c, rec := newRequest(http.MethodPost, "/wallet/deduct",
		`{"userId":"rider","amount":1500,"tripId":"t1","driverId":"d1","note":"fare"}`)

	require.NoError(t, NewWalletHandler(mockUC).Deduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Deduction successful","balance":8500,"payout":1350,"commission":150}`, rec.Body.String())
}

func TestWalletHandler_Deduct_WithoutDriverOmitsSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().Deduct(gomock.Any(), gomock.Any()).
		Return(&ledger.DeductResult{Account: &models.Account{ID: "rider", WalletBalance: 100}}, nil)

	c, rec := newRequest(http.MethodPost, "/wallet/deduct", `{"userId":"rider","amount":50}`)

	require.NoError(t, NewWalletHandler(mockUC).Deduct(c))
	assert.JSONEq(t, `{"message":"Deduction successful","balance":100}`, rec.Body.String())
}

func TestWalletHandler_TopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().TopUp(gomock.Any(), "rider", int64(2000)).
		Return(&models.Account{ID: "rider", WalletBalance: 2000}, nil)

	c, rec := newRequest(http.MethodPost, "/wallet/topup", `{"userId":"rider","amount":2000}`)

	require.NoError(t, NewWalletHandler(mockUC).TopUp(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2000), decode(t, rec)["balance"])
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().ListTransactions(gomock.Any(), "rider", 10).
		Return([]*models.LedgerEntry{{ID: "e2"}, {ID: "e1"}}, nil)

	c, rec := newRequest(http.MethodGet, "/wallet/transactions/rider?limit=10", "")
	c.SetParamNames("userId")
	c.SetParamValues("rider")

	require.NoError(t, NewWalletHandler(mockUC).ListTransactions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	transactions := decode(t, rec)["transactions"].([]interface{})
	assert.Len(t, transactions, 2)
}

func TestWalletHandler_ListTransactions_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, rec := newRequest(http.MethodGet, "/wallet/transactions/rider?limit=abc", "")
	c.SetParamNames("userId")
	c.SetParamValues("rider")

	require.NoError(t, NewWalletHandler(mocks.NewMockWalletUC(ctrl)).ListTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWalletHandler_GetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().GetAccount(gomock.Any(), "ghost").Return(nil, apperror.ErrAccountNotFound)

	c, rec := newRequest(http.MethodGet, "/wallet/ghost", "")
	c.SetParamNames("userId")
	c.SetParamValues("ghost")

	require.NoError(t, NewWalletHandler(mockUC).GetAccount(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWalletHandler_OpenAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().OpenAccount(gomock.Any(), "d1", models.RoleDriver).
		Return(&models.Account{ID: "d1", Role: models.RoleDriver}, nil)

	c, rec := newRequest(http.MethodPost, "/wallet/accounts", `{"userId":"d1","role":"driver"}`)

	require.NoError(t, NewWalletHandler(mockUC).OpenAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	account := decode(t, rec)["account"].(map[string]interface{})
	assert.Equal(t, "driver", account["role"])
}
