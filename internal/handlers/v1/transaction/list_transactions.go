package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
	"github.com/carson-networks/budget-bloom/internal/service"
)

// ListTransactionsCursor is the opaque-to-clients paging state. It repeats the
// month filter of the first page so later pages list the same month.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Offset of the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"RFC3339 (nanosecond) creation time of the newest row on the first page"`
	Year            int    `json:"year,omitempty" doc:"Year of the month filter"`
	Month           int    `json:"month,omitempty" minimum:"0" maximum:"12" doc:"Month of the month filter, 0 when unfiltered"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Year   string                  `json:"year,omitempty" doc:"Restrict to one month: year as entered, e.g. 2024"`
	Month  int                     `json:"month,omitempty" doc:"Restrict to one month: month number, 1 to 12"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response; overrides year and month"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, month *ledger.MonthKey, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns logged transactions, newest first, optionally restricted to one month. Pages with a cursor.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseMonthFilter reads the optional (year, month) filter. Both empty means
// no filter; a year without a month is rejected.
func parseMonthFilter(yearText string, month int) (*ledger.MonthKey, error) {
	if yearText == "" && month == 0 {
		return nil, nil
	}
	year, err := ledger.ParseYear(yearText)
	if err != nil {
		return nil, err
	}
	key, err := ledger.NewMonthKey(year, month)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// parseListTransactionsInput parses and validates the API input. With a
// cursor, the month filter, limit and maxCreationTime all come from it.
func parseListTransactionsInput(input *ListTransactionsInput) (*ledger.MonthKey, *service.TransactionCursor, error) {
	body := input.Body
	if body.Cursor == nil {
		month, err := parseMonthFilter(body.Year, body.Month)
		if err != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid month filter", err)
		}
		return month, nil, nil
	}

	if body.Cursor.Position < 0 {
		return nil, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, err := time.Parse(time.RFC3339Nano, body.Cursor.MaxCreationTime)
	if err != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}

	cursor := &service.TransactionCursor{
		Position:        body.Cursor.Position,
		Limit:           body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
	}
	if body.Cursor.Month != 0 {
		key, err := ledger.NewMonthKey(body.Cursor.Year, body.Cursor.Month)
		if err != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid cursor month", err)
		}
		cursor.Month = &key
	}
	return cursor.Month, cursor, nil
}

func newTransactionResponse(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Date:      tx.Date.String(),
		Amount:    tx.Amount.StringFixed(2),
		IsIncome:  tx.IsIncome,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339Nano),
	}
}

func newCursorResponse(cursor *service.TransactionCursor) *ListTransactionsCursor {
	if cursor == nil {
		return nil
	}
	resp := &ListTransactionsCursor{
		Position:        cursor.Position,
		Limit:           cursor.Limit,
		MaxCreationTime: cursor.MaxCreationTime.Format(time.RFC3339Nano),
	}
	if cursor.Month != nil {
		resp.Year = cursor.Month.Year
		resp.Month = int(cursor.Month.Month)
	}
	return resp
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	month, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		if month != nil {
			logData.AddData("month", month.String())
		}
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, month, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
		NextCursor:   newCursorResponse(nextCursor),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = newTransactionResponse(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
