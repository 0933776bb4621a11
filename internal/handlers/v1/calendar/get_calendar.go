package calendar

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/logging"
)

// GetCalendarOutput is the Huma output for the calendar view.
type GetCalendarOutput struct {
	Body CalendarView
}

// GetCalendarHandler handles GET /v1/calendar.
type GetCalendarHandler struct {
	Calendar calendarState
}

func NewGetCalendarHandler(state calendarState) *GetCalendarHandler {
	return &GetCalendarHandler{Calendar: state}
}

// Register registers the calendar view endpoint with the Huma API.
func (h *GetCalendarHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-calendar",
		Method:      http.MethodGet,
		Path:        "/v1/calendar",
		Summary:     "Calendar view",
		Description: "Returns totals, grid and per-day activity for the selected month.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

func (h *GetCalendarHandler) handle(ctx context.Context, _ *struct{}) (*GetCalendarOutput, error) {
	var stopTimer func()
	logData := logging.GetLogData(ctx)
	if logData != nil {
		stopTimer = logData.AddTiming("monthViewMs")
	}
	view, err := h.Calendar.View(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build calendar view", err)
	}

	return &GetCalendarOutput{Body: NewCalendarView(view)}, nil
}
