// backend/src/handlers/education_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/services"
	"github.com/username/eduplan/backend/src/utils"
)

// EducationHandler serves the planner API.
type EducationHandler struct {
	service services.ScenarioService
}

// NewEducationHandler creates a new instance of EducationHandler.
func NewEducationHandler(service services.ScenarioService) *EducationHandler {
	return &EducationHandler{service: service}
}

// RegisterRoutes mounts the planner API on the router.
func (h *EducationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/universities", h.HandleGetUniversities)
	r.Get("/api/universities/{university}/courses", h.HandleGetCourses)
	r.Get("/api/course-info", h.HandleGetCourseInfo)
	r.Get("/api/projections/fee", h.HandleProjectFee)
	r.Get("/api/projections/fx", h.HandleProjectFx)
	r.Get("/api/projections/details", h.HandleProjectionDetails)
	r.Get("/api/strategies/compare", h.HandleCompareStrategies)
	r.Post("/api/roi/scenarios", h.HandleROIScenarios)
}

func (h *EducationHandler) HandleGetUniversities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"universities": h.service.Universities(),
	})
}

func (h *EducationHandler) HandleGetCourses(w http.ResponseWriter, r *http.Request) {
	university, err := url.PathUnescape(chi.URLParam(r, "university"))
	if err != nil || university == "" {
		utils.SendJSONError(w, "university path parameter required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"university": university,
		"courses":    h.service.Courses(university),
	})
}

func (h *EducationHandler) HandleGetCourseInfo(w http.ResponseWriter, r *http.Request) {
	university := r.URL.Query().Get("university")
	programme := r.URL.Query().Get("programme")
	if university == "" || programme == "" {
		utils.SendJSONError(w, "university and programme query parameters required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.service.CourseInfo(university, programme))
}

func (h *EducationHandler) HandleProjectFee(w http.ResponseWriter, r *http.Request) {
	university := r.URL.Query().Get("university")
	programme := r.URL.Query().Get("programme")
	if university == "" || programme == "" {
		utils.SendJSONError(w, "university and programme query parameters required", http.StatusBadRequest)
		return
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"university": university,
		"programme":  programme,
		"year":       year,
		"fee_gbp":    h.service.ProjectFee(university, programme, year),
	})
}

func (h *EducationHandler) HandleProjectFx(w http.ResponseWriter, r *http.Request) {
	year, err := intQueryParam(r, "year")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year": year,
		"rate": h.service.FxRate(year),
	})
}

func (h *EducationHandler) HandleProjectionDetails(w http.ResponseWriter, r *http.Request) {
	university := r.URL.Query().Get("university")
	programme := r.URL.Query().Get("programme")
	if university == "" || programme == "" {
		utils.SendJSONError(w, "university and programme query parameters required", http.StatusBadRequest)
		return
	}
	educationYear, err := intQueryParam(r, "education_year")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	details, err := h.service.ProjectionDetails(university, programme, educationYear)
	if err != nil {
		h.sendServiceError(w, r, err, "computing projection details")
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *EducationHandler) HandleCompareStrategies(w http.ResponseWriter, r *http.Request) {
	university := r.URL.Query().Get("university")
	programme := r.URL.Query().Get("programme")
	if university == "" || programme == "" {
		utils.SendJSONError(w, "university and programme query parameters required", http.StatusBadRequest)
		return
	}
	conversionYear, err := intQueryParam(r, "conversion_year")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	educationYear, err := intQueryParam(r, "education_year")
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.L.Info("Handling strategy comparison request",
		"requestID", RequestIDFromContext(r.Context()),
		"university", university, "programme", programme,
		"conversionYear", conversionYear, "educationYear", educationYear)

	scenarios, err := h.service.CompareAllStrategies(university, programme, conversionYear, educationYear)
	if err != nil {
		h.sendServiceError(w, r, err, "comparing strategies")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
	})
}

func (h *EducationHandler) HandleROIScenarios(w http.ResponseWriter, r *http.Request) {
	var req services.ROIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid JSON request body", http.StatusBadRequest)
		return
	}

	logger.L.Info("Handling ROI scenarios request",
		"requestID", RequestIDFromContext(r.Context()),
		"university", req.University, "programme", req.Programme,
		"conversionYear", req.ConversionYear, "educationYear", req.EducationYear,
		"amountINR", req.AmountINR, "assets", len(req.AssetTypes))

	scenarios, err := h.service.CalculateROIScenarios(req)
	if err != nil {
		h.sendServiceError(w, r, err, "calculating ROI scenarios")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
	})
}

// sendServiceError maps service error categories onto HTTP statuses:
// bad parameters get 400, missing market data gets 502, anything else 500.
func (h *EducationHandler) sendServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrDataUnavailable):
		logger.L.Error("Market data unavailable",
			"requestID", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadGateway)
	default:
		logger.L.Error("Unexpected service error",
			"requestID", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error %s: %v", action, err), http.StatusInternalServerError)
	}
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter required", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L.Error("Failed to encode JSON response", "error", err)
	}
}
