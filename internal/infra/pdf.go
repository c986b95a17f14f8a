package infra

// pdf.go — Receipt generation for committed dispatches using go-pdf/fpdf.
// Generates A7-size thermal receipt-style tickets with:
//   - Station system header
//   - Dispatch id and timestamp
//   - Plate, cliente, fuel type
//   - Liters × price line and bold total
//
// The output file is saved to rutaRecibos/recibo_{id}.pdf. Receipt generation
// is best-effort: a failure here never rolls back a committed dispatch.

import (
	"fmt"
	"os"
	"path/filepath"

	"cupogas/internal/model"

	"github.com/go-pdf/fpdf"
)

var nombresCombustible = map[string]string{
	model.CombustibleGasolina: "Gasolina",
	model.CombustibleDiesel:   "Diésel",
	model.CombustiblePremium:  "Premium",
}

// GenerarReciboPDF writes a PDF receipt for a committed Carga and returns the
// absolute path of the generated file.
func GenerarReciboPDF(carga *model.Carga, vehiculo *model.Vehiculo, cliente *model.Usuario, surtidor *model.Surtidor, rutaRecibos string) (string, error) {
	if err := os.MkdirAll(rutaRecibos, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", carga.ID)
	filePath := filepath.Join(rutaRecibos, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "CupoGas", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Carga de Combustible", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Dispatch info ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, carga.Timestamp.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Carga %s", carga.ID), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Detail ───────────────────────────────────────────────────────────
	col1 := contentW * 0.42
	col2 := contentW * 0.58

	row := func(etiqueta, valor string) {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(col1, 5, etiqueta, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(col2, 5, valor, "", 1, "R", false, 0, "")
	}

	nombre := cliente.Nombre
	if len(nombre) > 24 {
		nombre = nombre[:23] + "…"
	}
	row("Placa", vehiculo.Placa)
	row("Cliente", nombre)
	row("Combustible", nombresCombustible[surtidor.TipoCombustible])
	row("Surtidor", fmt.Sprintf("N° %d", surtidor.Numero))
	row("Litros", carga.Litros.StringFixed(2)+" L")
	row("Precio/L", "Bs. "+carga.PrecioPorLitro.StringFixed(2))

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Bs. "+carga.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(contentW, 4, "Conserve este recibo", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", fileName, err)
	}
	return filePath, nil
}
