package month

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
)

// GetSummaryOutput is the Huma output for a month summary.
type GetSummaryOutput struct {
	Body MonthSummary
}

// monthSummarizer is the interface for month totals.
type monthSummarizer interface {
	GetMonthSummary(ctx context.Context, year, month int) (ledger.Summary, error)
}

// GetSummaryHandler handles GET /v1/ledger/{year}/{month}/summary.
type GetSummaryHandler struct {
	LedgerService monthSummarizer
}

func NewGetSummaryHandler(svc monthSummarizer) *GetSummaryHandler {
	return &GetSummaryHandler{LedgerService: svc}
}

// Register registers the month summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-month-summary",
		Method:      http.MethodGet,
		Path:        "/v1/ledger/{year}/{month}/summary",
		Summary:     "Month summary",
		Description: "Returns total income, total expenses and net for one month.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *MonthPathInput) (*GetSummaryOutput, error) {
	key, err := parseMonthPath(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("month", key.String())
		stopTimer = logData.AddTiming("aggregateMs")
	}
	summary, err := h.LedgerService.GetMonthSummary(ctx, key.Year, int(key.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidMonth) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize month", err)
	}

	return &GetSummaryOutput{Body: NewMonthSummary(key, summary)}, nil
}
