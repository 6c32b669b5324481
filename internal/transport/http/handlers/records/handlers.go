package recordshandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"simgaji/internal/domain/payroll"
	"simgaji/internal/excel"
	"simgaji/internal/transport/http/api"
	"simgaji/internal/transport/http/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Store *payroll.Store
}

func NewHandler(store *payroll.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/years", h.handleYears)
		r.Get("/stats", h.handleStats)
		r.Get("/export", h.handleExport)
		r.Get("/template", h.handleTemplate)
		r.Post("/import", h.handleImport)
		r.Post("/bulk-delete", h.handleBulkDelete)
		r.Get("/{recordID}", h.handleGet)
		r.Put("/{recordID}", h.handleUpdate)
		r.Delete("/{recordID}", h.handleDelete)
		r.Get("/{recordID}/payslip", h.handlePayslip)
	})
}

// filterFromQuery maps the list/export query parameters onto a filter.
func filterFromQuery(r *http.Request) payroll.Filter {
	query := r.URL.Query()
	filter := payroll.Filter{
		Month:    query.Get("bulan"),
		DateFrom: query.Get("from"),
		DateTo:   query.Get("to"),
		Search:   query.Get("q"),
	}
	if year, err := strconv.Atoi(query.Get("tahun")); err == nil {
		filter.Year = year
	}
	if category := query.Get("golongan"); category != "" && category != payroll.CategoryAll {
		filter.Category = payroll.ParseCategoryLabel(category)
	}
	return filter
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	records := payroll.ApplyFilter(h.Store.ListAll(), filterFromQuery(r))
	api.Success(w, records, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input payroll.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}
	if issues := payroll.Validate(input); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": issues}, requestID)
		return
	}

	record, err := h.Store.Create(input)
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("create record failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist record", requestID)
		return
	}
	api.Created(w, record, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record := h.Store.GetByID(chi.URLParam(r, "recordID"))
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	recordID := chi.URLParam(r, "recordID")

	var update payroll.RecordUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}

	existing := h.Store.GetByID(recordID)
	if existing == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", requestID)
		return
	}
	if issues := payroll.Validate(update.Merge(existing.Input())); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": issues}, requestID)
		return
	}

	record, err := h.Store.Update(recordID, update)
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("update record failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist record", requestID)
		return
	}
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	removed, err := h.Store.Remove(chi.URLParam(r, "recordID"))
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("delete record failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to delete record", requestID)
		return
	}
	if !removed {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", requestID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, requestID)
}

type bulkDeletePayload struct {
	IDs []string `json:"ids"`
}

func (h *Handler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload bulkDeletePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}
	if len(payload.IDs) == 0 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "ids must not be empty", requestID)
		return
	}

	if _, err := h.Store.RemoveBulk(payload.IDs); err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("bulk delete failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to delete records", requestID)
		return
	}
	api.Success(w, map[string]any{"deleted": true, "requested": len(payload.IDs)}, requestID)
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	file, _, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "multipart field \"file\" is required", requestID)
		return
	}
	defer file.Close()

	accepted, report, err := excel.ImportRows(file)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_workbook", err.Error(), requestID)
		return
	}

	// Rows commit automatically only on a clean run; a run with failures
	// needs the caller to re-submit with confirm=true.
	confirm := r.URL.Query().Get("confirm") == "true"
	committed := false
	var created []payroll.Record
	if len(accepted) > 0 && (report.Failed == 0 || confirm) {
		created, err = h.Store.CreateBulk(accepted)
		if err != nil {
			log.Error().Err(err).Str("requestId", requestID).Msg("import commit failed")
			api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist imported records", requestID)
			return
		}
		committed = true
	}

	api.Success(w, map[string]any{
		"report":    report,
		"committed": committed,
		"imported":  len(created),
	}, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var records []payroll.Record
	filename := ""
	if ids := r.URL.Query().Get("ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if record := h.Store.GetByID(strings.TrimSpace(id)); record != nil {
				records = append(records, *record)
			}
		}
		filename = excel.ExportFilename(0, "", "")
	} else {
		filter := filterFromQuery(r)
		records = payroll.ApplyFilter(h.Store.ListAll(), filter)
		filename = excel.ExportFilename(filter.Year, filter.Month, filter.Category)
	}

	payload, err := excel.ExportRows(records)
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("export failed")
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to build workbook", requestID)
		return
	}
	serveFile(w, filename, xlsxContentType, payload)
}

func (h *Handler) handleTemplate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	payload, err := excel.BuildTemplate()
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("template build failed")
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to build template", requestID)
		return
	}
	serveFile(w, "Template_Data_Gaji.xlsx", xlsxContentType, payload)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record := h.Store.GetByID(chi.URLParam(r, "recordID"))
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", requestID)
		return
	}

	payload, err := payroll.BuildPayslipPDF(*record)
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("payslip build failed")
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to build payslip", requestID)
		return
	}
	serveFile(w, fmt.Sprintf("Slip_Gaji_%s.pdf", record.PayrollNumber), "application/pdf", payload)
}

func (h *Handler) handleYears(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ListDistinctYears(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Stats(), middleware.GetRequestID(r.Context()))
}

func serveFile(w http.ResponseWriter, filename, contentType string, payload []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	_, _ = w.Write(payload)
}
