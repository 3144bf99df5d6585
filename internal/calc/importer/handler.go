package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Fundament/internal/soil"
)

type Handler struct{}

type SoilImportResult struct {
	Count  int          `json:"count"`
	Layers []soil.Layer `json:"layers"`
}

// Soil reads an uploaded xlsx soil investigation sheet, one layer per row.
func (h *Handler) Soil(w http.ResponseWriter, r *http.Request) {
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

	var layers []soil.Layer
	for i := 1; i < len(rows); i++ {
		layer, err := parseSoilRow(rows[i])
		if err != nil {
			continue
		}
		layers = append(layers, layer)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SoilImportResult{Count: len(layers), Layers: layers})
}

func parseSoilRow(row []string) (soil.Layer, error) {
	// expected: layer_name, soil_type, elevation_m, thickness_m, density,
	// modulus_mpa, fak_kpa, then optional cohesion, friction angle,
	// friction coefficient, eta_b, eta_d, zeta_a, poisson ratio
	if len(row) < 7 {
		return soil.Layer{}, fmt.Errorf("bad row")
	}
	elevation, err := toFloat(row[2])
	if err != nil {
		return soil.Layer{}, err
	}
	thickness, err := toFloat(row[3])
	if err != nil {
		return soil.Layer{}, err
	}
	density, err := toFloat(row[4])
	if err != nil {
		return soil.Layer{}, err
	}
	modulus, err := toFloat(row[5])
	if err != nil {
		return soil.Layer{}, err
	}
	fak, err := toFloat(row[6])
	if err != nil {
		return soil.Layer{}, err
	}
	l := soil.Layer{
		LayerName:             row[0],
		SoilType:              row[1],
		ElevationM:            elevation,
		ThicknessM:            thickness,
		DensityKNM3:           density,
		CompressionModulusMPa: modulus,
		FakKPa:                fak,
	}
	optional := []*float64{
		&l.CohesionKPa, &l.FrictionAngleDeg, &l.FrictionCoefficient,
		&l.EtaB, &l.EtaD, &l.ZetaA, &l.PoissonRatio,
	}
	for i, dst := range optional {
		col := 7 + i
		if len(row) > col && row[col] != "" {
			if v, err := toFloat(row[col]); err == nil {
				*dst = v
			}
		}
	}
	return l, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
