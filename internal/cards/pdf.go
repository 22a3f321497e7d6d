package cards

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// GeneratePDF renders the boarding card as a single-page A5 landscape PDF.
func GeneratePDF(fields map[string]string) ([]byte, error) {
	const op = "cards.GeneratePDF"

	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, fields["airline"], "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	route := fmt.Sprintf("%s (%s) to %s (%s)",
		fields["embarkation_name"], fields["embarkation"],
		fields["destination_name"], fields["destination"])
	pdf.CellFormat(0, 10, route, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, detail := range [][2]string{
		{"Passenger", fields["name"]},
		{"Departs", fields["departs"]},
		{"Arrives", fields["arrives"]},
		{"Gate", fields["gate"]},
	} {
		pdf.CellFormat(40, 8, detail[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, detail[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(40, 14, "Seat", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 14, fields["seat_number"], "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}
