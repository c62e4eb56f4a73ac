package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/seasideseafood/storefront/internal/storefront/app"
	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"github.com/seasideseafood/storefront/internal/storefront/ports"
)

// Handler exposes HTTP endpoints for the catalog, the cart and the checkout
// flow.
type Handler struct {
	service *app.Service
}

// NewHandler constructs a Handler.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// Register binds the storefront handlers to the provided ServeMux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/v1/catalog", h.handleCatalog)
	mux.HandleFunc("/v1/cart", h.handleCart)
	mux.HandleFunc("/v1/cart/items", h.handleCartItems)
	mux.HandleFunc("/v1/cart/items/", h.handleCartItemByID)
	mux.HandleFunc("/v1/checkout", h.handleCheckout)
	mux.HandleFunc("/v1/checkout/", h.handleCheckoutStep)
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items, err := h.service.Catalog(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.service.Cart())
	case http.MethodDelete:
		h.service.ClearCart(r.Context())
		writeJSON(w, http.StatusOK, h.service.Cart())
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type cartItemRequest struct {
	ItemID     string  `json:"item_id"`
	QuantityKG float64 `json:"quantity_kg"`
	Option     string  `json:"option"`
}

func (h *Handler) handleCartItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var payload cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	line, err := h.service.AddToCart(r.Context(), payload.ItemID, payload.QuantityKG, domain.PreparationOption(payload.Option))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"line": line, "cart": h.service.Cart()})
}

func (h *Handler) handleCartItemByID(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/cart/items/"), "/")
	if id == "" {
		writeError(w, http.StatusNotFound, "line item not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var payload cartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		if err := h.service.UpdateCartLine(r.Context(), id, payload.QuantityKG, domain.PreparationOption(payload.Option)); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h.service.Cart())
	case http.MethodDelete:
		h.service.RemoveCartLine(r.Context(), id)
		writeJSON(w, http.StatusOK, h.service.Cart())
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		view, err := h.service.Checkout()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"checkout": view})
	case http.MethodDelete:
		if err := h.service.AbortCheckout(r.Context()); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "aborted"})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleCheckoutStep(w http.ResponseWriter, r *http.Request) {
	step := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/checkout/"), "/")

	if step == "delivery" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		status := h.service.Delivery()
		if status == nil {
			writeError(w, http.StatusNotFound, "no order has been placed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"delivery": status})
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch step {
	case "single":
		h.startSingle(w, r)
	case "cart":
		h.startCart(w, r)
	case "quantity":
		h.adjustQuantity(w, r)
	case "quantity/confirm":
		h.respondStep(w)(h.service.ConfirmQuantity())
	case "details":
		h.submitDetails(w, r)
	case "preparation":
		h.choosePreparation(w, r)
	case "payment":
		h.choosePayment(w, r)
	case "confirm":
		h.confirm(w, r)
	default:
		writeError(w, http.StatusNotFound, "unknown checkout step")
	}
}

func (h *Handler) startSingle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	h.respondStep(w)(h.service.StartSingleItemCheckout(r.Context(), payload.ItemID))
}

func (h *Handler) startCart(w http.ResponseWriter, r *http.Request) {
	h.respondStep(w)(h.service.StartCartCheckout(r.Context()))
}

func (h *Handler) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if payload.Direction != "up" && payload.Direction != "down" {
		writeError(w, http.StatusBadRequest, `direction must be "up" or "down"`)
		return
	}
	h.respondStep(w)(h.service.AdjustQuantity(payload.Direction == "up"))
}

func (h *Handler) submitDetails(w http.ResponseWriter, r *http.Request) {
	var payload domain.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	h.respondStep(w)(h.service.SubmitDetails(payload))
}

func (h *Handler) choosePreparation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Option string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	h.respondStep(w)(h.service.ChoosePreparation(domain.PreparationOption(payload.Option)))
}

func (h *Handler) choosePayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	method, err := domain.ParsePaymentMethod(payload.Method)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	h.respondStep(w)(h.service.ChoosePayment(method))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.ConfirmCheckout(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order":                order,
		"payment_instructions": order.Payment.Instructions(),
	})
}

func (h *Handler) respondStep(w http.ResponseWriter) func(*app.CheckoutView, error) {
	return func(view *app.CheckoutView, err error) {
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"checkout": view})
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, app.ErrNoActiveCheckout):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, app.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
