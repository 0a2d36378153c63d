package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	shaft "Driveline/internal/calc/shaft"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Shaft   shaft.Input `json:"shaft"`
}

type Handler struct{}

// Generate runs the shaft sizing and renders a one-page PDF datasheet.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Shaft Sizing Report"
	}

	res, err := shaft.Calculate(input.Shaft)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Load case")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Bending: alternating %.1f N·m, mean %.1f N·m (Kf = %.2f)",
		input.Shaft.BendingAltNM, input.Shaft.BendingMeanNM, input.Shaft.Kf))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Torsion: alternating %.1f N·m, mean %.1f N·m (Kfs = %.2f)",
		input.Shaft.TorsionAltNM, input.Shaft.TorsionMeanNM, input.Shaft.Kfs))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Material: Se %.0f MPa, Sut %.0f MPa, design factor %.2f",
		input.Shaft.SeMPa, input.Shaft.SutMPa, input.Shaft.DesignFactor))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Diameters by criterion")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range []shaft.Criterion{shaft.Goodman, shaft.Morrow, shaft.Gerber, shaft.SWT} {
		d, ok := res.DiametersMM[c]
		if !ok {
			continue
		}
		marker := ""
		if c == res.Criterion {
			marker = "  (selected)"
		}
		pdf.Cell(0, 5, fmt.Sprintf("%s: %.2f mm%s", c, d, marker))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Recommendation: %.0f mm", res.RecommendedMM))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	if res.YieldFactor > 0 {
		pdf.Cell(0, 5, fmt.Sprintf("Static yield factor: %.2f", res.YieldFactor))
		pdf.Ln(5)
	}
	if res.Geometry != nil {
		pdf.Cell(0, 5, fmt.Sprintf("Geometry: %d segments, %.0f mm total, min diameter %.2f mm",
			res.Geometry.SegmentCount, res.Geometry.TotalLengthMM, res.Geometry.MinDiameterMM))
		pdf.Ln(5)
	}
	for _, warning := range res.Warnings {
		pdf.Cell(0, 5, "Warning: "+warning)
		pdf.Ln(5)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"shaft-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
