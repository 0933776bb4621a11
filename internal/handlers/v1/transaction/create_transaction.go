package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
	"github.com/carson-networks/budget-bloom/internal/operator"
	"github.com/carson-networks/budget-bloom/internal/service"
)

// CreateTransactionBody is the request body for logging a transaction.
type CreateTransactionBody struct {
	Date     string `json:"date" required:"true" format:"date" doc:"Calendar date, YYYY-MM-DD"`
	Amount   string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	IsIncome bool   `json:"isIncome" doc:"True for income, false for an expense"`
	Note     string `json:"note,omitempty" maxLength:"200" doc:"Free-form note"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the new transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for logging transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, tx service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Log transaction",
		Description:   "Logs a dated income or expense.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	date, err := ledger.ParseDate(input.Body.Date)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	amount, err := ledger.ParseAmount(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return service.Transaction{
		Date:     date,
		Amount:   amount,
		IsIncome: input.Body.IsIncome,
		Note:     input.Body.Note,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	logData := logging.GetLogData(ctx)
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, tx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidDate):
			return nil, huma.NewError(http.StatusBadRequest, "invalid transaction", err)
		case errors.Is(err, operator.ErrStopped):
			return nil, huma.NewError(http.StatusServiceUnavailable, "server is shutting down", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
