package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/operator"
	"github.com/carson-networks/budget-bloom/internal/service"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Date:     "2024-03-05",
			Amount:   "1000.00",
			IsIncome: true,
			Note:     "salary",
		},
	}

	tx, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 5}, tx.Date)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1000")))
	assert.True(t, tx.IsIncome)
	assert.Equal(t, "salary", tx.Note)
}

func TestParseCreateTransactionInput_ZeroAmount(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{Date: "2024-03-05", Amount: "0"},
	}

	tx, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, tx.Amount.IsZero())
	assert.False(t, tx.IsIncome)
}

func TestParseCreateTransactionInput_Invalid(t *testing.T) {
	cases := map[string]CreateTransactionBody{
		"negative amount":  {Date: "2024-03-05", Amount: "-1"},
		"malformed amount": {Date: "2024-03-05", Amount: "ten"},
		"nonexistent date": {Date: "2024-02-30", Amount: "1"},
		"unparseable date": {Date: "03/05/2024", Amount: "1"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body})
			assert.Error(t, err)
		})
	}
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Date == civil.Date{Year: 2024, Month: 3, Day: 10} &&
			tx.Amount.Equal(decimal.RequireFromString("200")) &&
			!tx.IsIncome &&
			tx.Note == "rent"
	})).Return(txID, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:   "2024-03-10",
		Amount: "200",
		Note:   "rent",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"isIncome": true,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_MalformedDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"date" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:   "not-a-date",
		Amount: "10.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"not-a-decimal", "-5.00"} {
		t.Run(amount, func(t *testing.T) {
			mockSvc := new(mockTransactionService)

			// Amount has no Huma format tag, so parseCreateTransactionInput
			// handles validation and returns 400.
			resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
				Date:   "2024-03-10",
				Amount: amount,
			})

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			mockSvc.AssertNotCalled(t, "CreateTransaction")
		})
	}
}

func TestHTTP_CreateTransaction_ValidationErrorFromService(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("%w: rejected", ledger.ErrInvalidAmount))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:   "2024-03-10",
		Amount: "10.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_OperatorStopped(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, operator.ErrStopped)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:   "2024-03-10",
		Amount: "10.00",
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("queue full"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Date:   "2024-03-10",
		Amount: "10.00",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
