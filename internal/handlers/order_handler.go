package handlers

import (
	"net/http"
	"os"

	"shopBack/internal/models"
	"shopBack/internal/services"
)

type OrderHandler struct {
	Service *services.OrderService
	Auth    *Authenticator
}

// OrderAccess is the single entry point for /orders/:id. The check order is
// fixed: method gate, OPTIONS short-circuit, identifier presence, then
// authentication, then resolution and delegation. Authorization always runs
// before a body is serialized, so an unauthorized caller can never observe
// order fields.
func (h *OrderHandler) OrderAccess(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		setOrderCORS(w)
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet, http.MethodPut, http.MethodDelete:
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE, OPTIONS")
		writeJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	setOrderCORS(w)

	raw := getParam(r, "id")
	if raw == "" {
		writeJSONError(w, "missing order identifier", http.StatusBadRequest)
		return
	}

	principal, ok := h.Auth.Authenticate(r)
	if !ok {
		writeJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ref := services.ResolveOrderRef(raw)

	switch r.Method {
	case http.MethodGet:
		h.getOrder(w, r, principal, ref)
	case http.MethodPut:
		h.updateOrder(w, r, principal, ref)
	case http.MethodDelete:
		h.deleteOrder(w, r, principal, ref)
	}
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request, p models.Principal, ref models.OrderRef) {
	order, err := h.Service.GetOrder(r.Context(), p, ref)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request, p models.Principal, ref models.OrderRef) {
	upd, err := services.DecodeOrderUpdate(r.Body)
	if err != nil {
		writeJSONError(w, "Invalid update data", http.StatusBadRequest)
		return
	}

	order, err := h.Service.UpdateOrder(r.Context(), p, ref, upd)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request, p models.Principal, ref models.OrderRef) {
	if err := h.Service.DeleteOrder(r.Context(), p, ref); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListMyOrders serves the authenticated caller's own orders. The JWT
// middleware has already attached user_id to the context.
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		writeJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	orders, err := h.Service.ListUserOrders(r.Context(), userID)
	if err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListOrders is the admin listing with an optional ?status= filter.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !models.IsOrderStatus(status) {
		writeJSONError(w, "unknown status filter", http.StatusBadRequest)
		return
	}
	orders, err := h.Service.ListOrders(r.Context(), status)
	if err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// The exact origin is a deployment concern; default to the wildcard.
var corsAllowOrigin = func() string {
	if v := os.Getenv("CORS_ALLOW_ORIGIN"); v != "" {
		return v
	}
	return "*"
}()

func setOrderCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET,PUT,DELETE,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
