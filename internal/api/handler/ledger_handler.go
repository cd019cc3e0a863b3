package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/asglabs/mission-control/internal/api/metrics"
	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
	"github.com/asglabs/mission-control/internal/infrastructure/notify"
)

// LedgerHandler handles HTTP requests for time-entry operations.
type LedgerHandler struct {
	service ports.LedgerService
	hub     *notify.Hub
}

func NewLedgerHandler(service ports.LedgerService, hub *notify.Hub) *LedgerHandler {
	return &LedgerHandler{service: service, hub: hub}
}

// --- Request / Response types ---

type createEntryRequest struct {
	ClientID    string  `json:"client_id" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,oneof=unbilled billed"`
}

type updateEntryRequest struct {
	Status string `json:"status" validate:"required,oneof=unbilled billed"`
}

type listEntriesResponse struct {
	Entries []domain.TimeEntry `json:"entries"`
}

// List handles GET /v1/entries.
//
// @Summary      List all time entries, newest first
// @Tags         entries
// @Produce      json
// @Success      200  {object}  listEntriesResponse
// @Router       /v1/entries [get]
func (h *LedgerHandler) List(c echo.Context) error {
	entries := h.service.List(c.Request().Context())

	// Display order: date descending, creation time descending within a day.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt > entries[j].CreatedAt
	})

	return c.JSON(http.StatusOK, listEntriesResponse{Entries: entries})
}

// Create handles POST /v1/entries.
//
// @Summary      Append a time entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body      createEntryRequest  true  "Entry details"
// @Success      201   {object}  domain.TimeEntry
// @Failure      400   {object}  map[string]string
// @Router       /v1/entries [post]
func (h *LedgerHandler) Create(c echo.Context) error {
	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, ok := domain.ClientByID(req.ClientID); !ok {
		return domain.ErrUnknownClient
	}

	status := domain.StatusUnbilled
	if req.Status != "" {
		status = domain.EntryStatus(req.Status)
	}

	entry, err := h.service.Append(c.Request().Context(), ports.AppendEntryInput{
		ClientID:    req.ClientID,
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		return err
	}

	metrics.EntriesAppendedTotal.WithLabelValues("manual").Inc()
	return c.JSON(http.StatusCreated, entry)
}

// UpdateStatus handles PATCH /v1/entries/:id.
//
// @Summary      Change an entry's billing status
// @Tags         entries
// @Accept       json
// @Param        id    path  string              true  "Entry id"
// @Param        body  body  updateEntryRequest  true  "New status"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/entries/{id} [patch]
func (h *LedgerHandler) UpdateStatus(c echo.Context) error {
	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.EntryStatus(req.Status)
	if err := h.service.Update(c.Request().Context(), c.Param("id"), ports.EntryPatch{Status: &status}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/entries/:id. Unknown ids are a no-op.
//
// @Summary      Delete a time entry
// @Tags         entries
// @Param        id  path  string  true  "Entry id"
// @Success      204
// @Router       /v1/entries/{id} [delete]
func (h *LedgerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Aggregate handles GET /v1/entries/aggregate.
//
// @Summary      Sum hours per client, split billed/unbilled
// @Tags         entries
// @Produce      json
// @Success      200  {object}  map[string]domain.Hours
// @Router       /v1/entries/aggregate [get]
func (h *LedgerHandler) Aggregate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AggregateByClient(c.Request().Context()))
}

// Updates handles GET /v1/entries/updates — a server-sent event feed that
// emits an empty object whenever the ledger changes. The payload carries no
// data; subscribers refetch on receipt.
//
// @Summary      Subscribe to ledger change notifications
// @Tags         entries
// @Produce      text/event-stream
// @Success      200
// @Router       /v1/entries/updates [get]
func (h *LedgerHandler) Updates(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			if _, err := fmt.Fprint(res, "data: {}\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
