package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/refdex/refdex/internal/resolve"
)

// writeReferencePDF renders resolved documents into a simple A4 PDF: a
// centered title, a generation timestamp, then one numbered block per
// document with a clickable source link. The layout mirrors RenderText.
func writeReferencePDF(title string, docs []resolve.Document, outPath string, border bool) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if border {
		// Rectangular frame on every page
		pdf.SetHeaderFuncMode(func() {
			w, h := pdf.GetPageSize()
			pdf.SetDrawColor(44, 62, 80)
			pdf.SetLineWidth(0.8)
			const margin = 6.0
			pdf.Rect(margin, margin, w-2*margin, h-2*margin, "D")
		}, false)
	}
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(41, 128, 185)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	for i, d := range docs {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetTextColor(44, 62, 80)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", i+1, d.Title)), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(41, 128, 185)
		pdf.WriteLinkString(5, tr(d.SourceURL), d.SourceURL)
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(52, 73, 94)
		for _, line := range strings.Split(d.Content, "\n") {
			s := strings.TrimSpace(line)
			if s == "" {
				pdf.Ln(4)
				continue
			}
			pdf.MultiCell(0, 5, tr(s), "", "L", false)
		}
		pdf.Ln(10)
	}

	return pdf.OutputFileAndClose(outPath)
}
