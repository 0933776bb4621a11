package month

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/ledger"
)

// GetGridOutput is the Huma output for a month grid.
type GetGridOutput struct {
	Body MonthGrid
}

// monthGridder is the interface for month layouts.
type monthGridder interface {
	GetMonthGrid(ctx context.Context, year, month int) (ledger.Grid, error)
}

// GetGridHandler handles GET /v1/ledger/{year}/{month}/grid.
type GetGridHandler struct {
	LedgerService monthGridder
}

func NewGetGridHandler(svc monthGridder) *GetGridHandler {
	return &GetGridHandler{LedgerService: svc}
}

// Register registers the month grid endpoint with the Huma API.
func (h *GetGridHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-month-grid",
		Method:      http.MethodGet,
		Path:        "/v1/ledger/{year}/{month}/grid",
		Summary:     "Month grid",
		Description: "Returns the weekday-aligned calendar layout of one month.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func (h *GetGridHandler) handle(ctx context.Context, input *MonthPathInput) (*GetGridOutput, error) {
	key, err := parseMonthPath(input)
	if err != nil {
		return nil, err
	}

	grid, err := h.LedgerService.GetMonthGrid(ctx, key.Year, int(key.Month))
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidMonth) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to lay out month", err)
	}

	return &GetGridOutput{Body: NewMonthGrid(grid)}, nil
}
