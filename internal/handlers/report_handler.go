package handlers

import (
	"net/http"
	"time"

	"shopBack/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Dashboard(r.Context())
	if err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// SalesReport streams a CSV download. The optional from/to query parameters
// take YYYY-MM-DD dates; the default window is the last 30 days.
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeJSONError(w, "invalid from date", http.StatusBadRequest)
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeJSONError(w, "invalid to date", http.StatusBadRequest)
			return
		}
		// inclusive end of day
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	if from.After(to) {
		writeJSONError(w, "from is after to", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_report.csv"`)
	if err := h.Service.WriteSalesCSV(r.Context(), w, from, to); err != nil {
		// headers may already be out; log-and-abort is all that is left
		http.Error(w, "report failed", http.StatusInternalServerError)
	}
}
