package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	shaft "Driveline/internal/calc/shaft"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ShaftImportResult struct {
	Count   int            `json:"count"`
	Results []shaft.Result `json:"results"`
}

func (h *Handler) Shaft(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []shaft.Result
	for i := 1; i < len(rows); i++ {
		input, err := ParseShaftRow(rows[i])
		if err != nil {
			continue
		}
		res, err := shaft.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ShaftImportResult{Count: len(results), Results: results})
}

// ParseShaftRow reads one spreadsheet row:
// bending_alt, bending_mean, torsion_alt, torsion_mean (N·m),
// kf, kfs, se_mpa, sut_mpa, design_factor, criterion,
// sigma_f_mpa (optional), sy_mpa (optional).
func ParseShaftRow(row []string) (shaft.Input, error) {
	if len(row) < 10 {
		return shaft.Input{}, fmt.Errorf("bad row")
	}
	vals := make([]float64, 9)
	for i := 0; i < 9; i++ {
		v, err := toFloat(row[i])
		if err != nil {
			return shaft.Input{}, err
		}
		vals[i] = v
	}
	in := shaft.Input{
		BendingAltNM:  vals[0],
		BendingMeanNM: vals[1],
		TorsionAltNM:  vals[2],
		TorsionMeanNM: vals[3],
		Kf:            vals[4],
		Kfs:           vals[5],
		SeMPa:         vals[6],
		SutMPa:        vals[7],
		DesignFactor:  vals[8],
		Criterion:     shaft.Criterion(strings.ToLower(strings.TrimSpace(row[9]))),
	}
	if len(row) > 10 && row[10] != "" {
		in.SigmaFMPa, _ = toFloat(row[10])
	}
	if len(row) > 11 && row[11] != "" {
		in.SyMPa, _ = toFloat(row[11])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
