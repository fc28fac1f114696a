package handlers

import (
	"net/http"

	"github.com/harsha/nutrition-dashboard/internal/nutrition"
)

type NutritionHandler struct{}

func NewNutritionHandler() *NutritionHandler {
	return &NutritionHandler{}
}

// Report returns the synthetic 30-day intake data the dashboard chart
// renders. The data is generated fresh on every request.
func (h *NutritionHandler) Report(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nutrition.GenerateReport(nutrition.ReportDays))
}
