package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Fundament/internal/calc/settlement"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	Calculation settlement.Input `json:"calculation"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Foundation Settlement Report"
	}

	res, err := settlement.Calculate(input.Calculation)
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

	writeSummary(pdf, input.Calculation, res)
	writeLayerTable(pdf, res.Settlement.PerLayer)
	writeVerdicts(pdf, res)

	if input.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"settlement-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeSummary(pdf *gofpdf.Fpdf, in settlement.Input, res settlement.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Base radius: %.2f m, buried depth: %.2f m, soil layers: %d",
		in.BaseRadiusM, in.BuriedDepthM, len(in.Layers)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("pk = %.2f kPa, pkmax = %.2f kPa, pkmin = %.2f kPa",
		in.PkKPa, in.PkmaxKPa, in.PkminKPa))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Overburden Ps = %.2f kPa, net pressure P0k = %.2f kPa, fak = %.2f kPa",
		res.Settlement.PsKPa, res.Settlement.P0kKPa, res.Settlement.FakKPa))
	pdf.Ln(8)
}

func writeLayerTable(pdf *gofpdf.Fpdf, details []settlement.LayerDetail) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Layered Summation")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	headers := []string{"No.", "zi (m)", "Esi (MPa)", "alpha", "dS (mm)", "sum S (mm)", "ratio"}
	widths := []float64{12, 22, 26, 24, 26, 30, 24}
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 6, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range details {
		cells := []string{
			fmt.Sprintf("%d", d.Layer),
			fmt.Sprintf("%.1f", d.ZiM),
			fmt.Sprintf("%.2f", d.EsiMPa),
			fmt.Sprintf("%.4f", d.AlphaI),
			fmt.Sprintf("%.3f", d.DeltaSMM),
			fmt.Sprintf("%.3f", d.CumulativeSMM),
			fmt.Sprintf("%.4f", d.SettlementRatio),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeVerdicts(pdf *gofpdf.Fpdf, res settlement.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Verdicts")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)

	s := res.Settlement
	pdf.Cell(0, 5, fmt.Sprintf("Equivalent Es = %.2f MPa, psi_s = %.4f", s.EquivalentEsMPa, s.PsiS))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Final settlement %.2f mm vs allowable %.2f mm: %s (converged: %t)",
		s.FinalSettlementMM, s.AllowableSettlementMM, verdict(s.IsCompliant), s.Converged))
	pdf.Ln(5)

	i := res.Inclination
	pdf.Cell(0, 5, fmt.Sprintf("Inclination %.6f vs allowable %.6f: %s (converged: %t)",
		i.Inclination, i.AllowableInclination, verdict(i.IsCompliant), i.Converged))
	pdf.Ln(5)
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
