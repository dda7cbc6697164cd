package main

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/loctok/loctok"
)

const (
	pdfMargin     = 15 // mm
	pdfLineHeight = 7  // mm
)

// writePDFReport renders the by-language summary as a one-page PDF.
func writePDFReport(outputPath, target, encoding string, result *loctok.CountResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, pdfLineHeight+2, "loctok report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, pdfLineHeight-1, fmt.Sprintf("Path: %s", target), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, pdfLineHeight-1, fmt.Sprintf("Encoding: %s", encoding), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, pdfLineHeight-1, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC1123)), "", 1, "L", false, 0, "")
	pdf.Ln(pdfLineHeight / 2)

	rows := loctok.AggregateByLanguage(result.Files)
	sumLines, sumTokens := 0, 0
	for _, r := range rows {
		sumLines += r.Lines
		sumTokens += r.Tokens
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, pdfLineHeight, "Language", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, pdfLineHeight, "lines of code", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, pdfLineHeight, "token count", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(80, pdfLineHeight, r.Language, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, pdfLineHeight, fmtNum(r.Lines), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, pdfLineHeight, fmtNum(r.Tokens), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, pdfLineHeight, "SUM:", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, pdfLineHeight, fmtNum(sumLines), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, pdfLineHeight, fmtNum(sumTokens), "1", 1, "R", false, 0, "")

	pdf.Ln(pdfLineHeight / 2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, pdfLineHeight-1,
		fmt.Sprintf("%d files, %s tokens total", len(result.Files), fmtNum(result.Total)),
		"", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outputPath, err)
	}
	fmt.Printf("Report saved to %s\n", outputPath)
	return nil
}
