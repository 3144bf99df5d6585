package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Fundament/internal/calc/settlement"
	"Fundament/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDF(t *testing.T) {
	body, err := json.Marshal(Input{
		Project: "WTG-07",
		Author:  "ops",
		Calculation: settlement.Input{
			BaseRadiusM:  10,
			BuriedDepthM: 4,
			Layers: []soil.Layer{{
				LayerName:             "silty clay",
				ElevationM:            0,
				ThicknessM:            20,
				DensityKNM3:           19,
				CompressionModulusMPa: 12,
				FakKPa:                150,
			}},
			PkKPa:    130,
			PkmaxKPa: 150,
			PkminKPa: 110,
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateRejectsBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRejectsBadCalculation(t *testing.T) {
	body, _ := json.Marshal(Input{Calculation: settlement.Input{BaseRadiusM: 0}})
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
