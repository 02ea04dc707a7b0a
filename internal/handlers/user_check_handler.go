package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"regexp"
	"strings"

	"shopBack/internal/services"
)

type UserCheckHandler struct {
	Service *services.UserCheckService
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// CheckPhone answers whether a phone number is already registered.
func (h *UserCheckHandler) CheckPhone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid body", http.StatusBadRequest)
		return
	}

	phone := strings.ReplaceAll(strings.TrimSpace(req.Phone), " ", "")
	if phone == "" || !phonePattern.MatchString(phone) {
		writeJSONError(w, "invalid phone format", http.StatusBadRequest)
		return
	}

	exists, err := h.Service.PhoneExists(r.Context(), phone)
	if err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// CheckEmail serves two shapes depending on the requested action:
// "signup" answers availability, "lookup" answers existence plus whether
// the account has contact info on file.
func (h *UserCheckHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid body", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeJSONError(w, "email is required", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		writeJSONError(w, "invalid email format", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "signup":
		available, err := h.Service.EmailAvailable(r.Context(), email)
		if err != nil {
			writeJSONError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"available": available})
	case "lookup":
		exists, hasContactInfo, err := h.Service.EmailLookup(r.Context(), email)
		if err != nil {
			writeJSONError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"exists": exists, "hasContactInfo": hasContactInfo})
	default:
		writeJSONError(w, "unknown action", http.StatusBadRequest)
	}
}
