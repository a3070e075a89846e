// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
	"github.com/pantrio/v1/internal/ports/inbound"
	"github.com/pantrio/v1/pkg/errors"
	"go.uber.org/zap"
)

// dateLayout is the wire format for expiry dates. Expiry is a calendar
// date, not an instant.
const dateLayout = "2006-01-02"

// APIHandlers handles REST API requests
type APIHandlers struct {
	pantryService inbound.PantryService
	validate      *validator.Validate
	logger        *zap.Logger
	version       string
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	pantryService inbound.PantryService,
	logger *zap.Logger,
	version string,
) *APIHandlers {
	return &APIHandlers{
		pantryService: pantryService,
		validate:      validator.New(),
		logger:        logger,
		version:       version,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Request payloads

type createItemRequest struct {
	Name              string   `json:"name" validate:"required"`
	Quantity          *float64 `json:"quantity" validate:"required,gte=0"`
	Unit              string   `json:"unit"`
	Category          string   `json:"category"`
	ExpiryDate        *string  `json:"expiry_date"`
	LowStockThreshold *float64 `json:"low_stock_threshold" validate:"omitempty,gte=0"`
	EstimatedPrice    *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
	Priority          string   `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type updateItemRequest struct {
	Name              *string  `json:"name"`
	Quantity          *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit              *string  `json:"unit"`
	Category          *string  `json:"category"`
	ExpiryDate        *string  `json:"expiry_date"`
	LowStockThreshold *float64 `json:"low_stock_threshold" validate:"omitempty,gte=0"`
	EstimatedPrice    *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
	Priority          *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type adjustQuantityRequest struct {
	Delta *float64 `json:"delta" validate:"required"`
}

// ListItems handles GET /api/v1/{pantry|shopping}/items
func (h *APIHandlers) ListItems(kind pantry.ItemKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseItemQuery(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		list, svcErr := h.pantryService.QueryItems(r.Context(), kind, query)
		if svcErr != nil {
			h.writeError(w, r, svcErr)
			return
		}

		h.writeJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    list,
		})
	}
}

// CreateItem handles POST /api/v1/{pantry|shopping}/items
func (h *APIHandlers) CreateItem(kind pantry.ItemKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, r, errors.NewBadRequestError("Invalid JSON payload"))
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.writeError(w, r, errors.NewValidationError(err.Error()))
			return
		}

		expiry, err := parseExpiryDate(req.ExpiryDate)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		dto, svcErr := h.pantryService.AddItem(r.Context(), inbound.AddItemCommand{
			Kind:              kind,
			Name:              req.Name,
			Quantity:          req.Quantity,
			Unit:              pantry.Unit(req.Unit),
			Category:          req.Category,
			ExpiryDate:        expiry,
			LowStockThreshold: req.LowStockThreshold,
			EstimatedPrice:    req.EstimatedPrice,
			Priority:          pantry.Priority(req.Priority),
		})
		if svcErr != nil {
			h.writeError(w, r, svcErr)
			return
		}

		h.writeJSON(w, http.StatusCreated, APIResponse{
			Success: true,
			Data:    dto,
			Message: "Item created successfully",
		})
	}
}

// GetItem handles GET /api/v1/{pantry|shopping}/items/{id}
func (h *APIHandlers) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseItemID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dto, svcErr := h.pantryService.GetItemByID(r.Context(), itemID)
	if svcErr != nil {
		h.writeError(w, r, svcErr)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// UpdateItem handles PUT /api/v1/{pantry|shopping}/items/{id}
func (h *APIHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseItemID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cmd := inbound.UpdateItemCommand{
		ItemID:            itemID,
		Name:              req.Name,
		Quantity:          req.Quantity,
		Category:          req.Category,
		ExpiryDate:        expiry,
		LowStockThreshold: req.LowStockThreshold,
		EstimatedPrice:    req.EstimatedPrice,
	}
	if req.Unit != nil {
		unit := pantry.Unit(*req.Unit)
		cmd.Unit = &unit
	}
	if req.Priority != nil {
		priority := pantry.Priority(*req.Priority)
		cmd.Priority = &priority
	}

	dto, svcErr := h.pantryService.UpdateItem(r.Context(), cmd)
	if svcErr != nil {
		h.writeError(w, r, svcErr)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Item updated successfully",
	})
}

// AdjustQuantity handles POST /api/v1/{pantry|shopping}/items/{id}/quantity
func (h *APIHandlers) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseItemID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req adjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	dto, svcErr := h.pantryService.AdjustQuantity(r.Context(), itemID, *req.Delta)
	if svcErr != nil {
		h.writeError(w, r, svcErr)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// ToggleItem handles POST /api/v1/shopping/items/{id}/toggle
func (h *APIHandlers) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseItemID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dto, svcErr := h.pantryService.ToggleChecked(r.Context(), itemID)
	if svcErr != nil {
		h.writeError(w, r, svcErr)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// DeleteItem handles DELETE /api/v1/{pantry|shopping}/items/{id}
func (h *APIHandlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseItemID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if svcErr := h.pantryService.RemoveItem(r.Context(), itemID); svcErr != nil {
		h.writeError(w, r, svcErr)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// GetStats handles GET /api/v1/{pantry|shopping}/stats
func (h *APIHandlers) GetStats(kind pantry.ItemKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.pantryService.GetStats(r.Context(), kind)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		h.writeJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    stats,
		})
	}
}

// HealthCheck handles GET /api/v1/health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   h.version,
		},
		Message: "Service is healthy",
	})
}

// Helpers

func parseItemID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid item id")
	}
	return id, nil
}

func parseExpiryDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, errors.NewValidationError("expiry_date must be formatted as YYYY-MM-DD")
	}
	return &parsed, nil
}

// parseItemQuery maps the list endpoint's query string onto a view
// request. Unknown sort keys fall through to the engine's name default.
func parseItemQuery(r *http.Request) (inbound.ItemQuery, error) {
	params := r.URL.Query()

	query := inbound.ItemQuery{
		SearchText:       params.Get("search"),
		Category:         params.Get("category"),
		LowStockOnly:     params.Get("low_stock") == "true",
		ExpiringSoonOnly: params.Get("expiring_soon") == "true",
		SortKey:          pantry.SortKey(params.Get("sort")),
	}

	if asOf := params.Get("as_of"); asOf != "" {
		ref, err := time.Parse(dateLayout, asOf)
		if err != nil {
			return inbound.ItemQuery{}, errors.NewValidationError("as_of must be formatted as YYYY-MM-DD")
		}
		query.ReferenceDate = ref
	}

	return query, nil
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors to the API error envelope
func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
