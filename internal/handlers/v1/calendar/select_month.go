package calendar

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
)

// SelectMonthBody is the request body for changing the selected month.
// Year is the raw text of the year field.
type SelectMonthBody struct {
	Month int    `json:"month" doc:"Month number, 1 to 12"`
	Year  string `json:"year" doc:"Year as entered, e.g. 2024"`
}

// SelectMonthInput is the Huma input for changing the selected month.
type SelectMonthInput struct {
	Body SelectMonthBody
}

// SelectMonthOutput is the Huma output for changing the selected month.
type SelectMonthOutput struct {
	Body CalendarView
}

// SelectMonthHandler handles PUT /v1/calendar/selection.
type SelectMonthHandler struct {
	Calendar calendarState
}

func NewSelectMonthHandler(state calendarState) *SelectMonthHandler {
	return &SelectMonthHandler{Calendar: state}
}

// Register registers the month selection endpoint with the Huma API.
func (h *SelectMonthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "select-month",
		Method:      http.MethodPut,
		Path:        "/v1/calendar/selection",
		Summary:     "Select month",
		Description: "Selects the month shown by the calendar and returns its view. A rejected selection leaves the current one unchanged.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

func (h *SelectMonthHandler) handle(ctx context.Context, input *SelectMonthInput) (*SelectMonthOutput, error) {
	view, err := h.Calendar.SelectView(ctx, input.Body.Month, input.Body.Year)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidYearFormat):
			return nil, huma.NewError(http.StatusBadRequest, "invalid year", err)
		case errors.Is(err, ledger.ErrInvalidMonth):
			return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build calendar view", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("month", view.Key.String())
	}

	return &SelectMonthOutput{Body: NewCalendarView(view)}, nil
}
