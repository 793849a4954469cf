package rendering

import (
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// Output location for the generated resume. The file is overwritten on each
// run; timestamped history lives in the artifact store, not here.
const (
	DefaultOutputDir  = "modified_resume"
	DefaultOutputFile = "modified_resume.pdf"
)

const (
	headingFontSize = 13
	bodyFontSize    = 10
	lineHeight      = 5
)

// WritePDF renders the resume into dir (created if missing) and returns the
// path of the written file.
func WritePDF(resume *RenderedResume, dir string) (string, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &RenderError{Message: "failed to create output directory " + dir, Cause: err}
	}

	path := filepath.Join(dir, DefaultOutputFile)
	if err := RenderPDF(resume, path); err != nil {
		return "", err
	}
	return path, nil
}

// RenderPDF writes the resume as a single-column PDF document at path.
func RenderPDF(resume *RenderedResume, path string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12, 10, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Name and contact details, centered
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 9, tr(resume.PersonalInfo.Name), "", 1, "C", false, 0, "")
	if resume.ContactLine != "" {
		pdf.SetFont("Helvetica", "", bodyFontSize)
		pdf.CellFormat(0, lineHeight, tr(resume.ContactLine), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	if len(resume.Skills) > 0 {
		sectionHeading(pdf, "Skills")
		for _, row := range resume.Skills {
			pdf.SetFont("Helvetica", "B", bodyFontSize)
			pdf.CellFormat(42, lineHeight, tr(row.Label), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.MultiCell(0, lineHeight, tr(row.Values), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(resume.Experience) > 0 {
		sectionHeading(pdf, "Experience")
		for _, exp := range resume.Experience {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, tr(exp.Heading), "", 1, "L", false, 0, "")
			if exp.Duration != "" {
				pdf.SetFont("Helvetica", "I", bodyFontSize)
				pdf.CellFormat(0, lineHeight, tr(exp.Duration), "", 1, "L", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", bodyFontSize)
			for _, bullet := range exp.Bullets {
				bulletLine(pdf, tr(bullet))
			}
			pdf.Ln(2)
		}
		pdf.Ln(1)
	}

	if len(resume.Projects) > 0 {
		sectionHeading(pdf, "Projects")
		for _, proj := range resume.Projects {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, tr(proj.Heading), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", bodyFontSize)
			if proj.Role != "" {
				pdf.MultiCell(0, lineHeight, tr("Role: "+proj.Role), "", "L", false)
			}
			if proj.Description != "" {
				pdf.MultiCell(0, lineHeight, tr(proj.Description), "", "L", false)
			}
			if proj.Technologies != "" {
				pdf.MultiCell(0, lineHeight, tr("Technologies: "+proj.Technologies), "", "L", false)
			}
			for _, achievement := range proj.Achievements {
				bulletLine(pdf, tr(achievement))
			}
			if proj.URL != "" {
				pdf.MultiCell(0, lineHeight, tr("Link: "+proj.URL), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(1)
	}

	if len(resume.Education) > 0 {
		sectionHeading(pdf, "Education")
		pdf.SetFont("Helvetica", "", bodyFontSize)
		for _, line := range resume.Education {
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
			pdf.Ln(1)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &RenderError{Message: "failed to write PDF " + path, Cause: err}
	}
	return nil
}

func sectionHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", headingFontSize)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func bulletLine(pdf *fpdf.Fpdf, text string) {
	left, _, _, _ := pdf.GetMargins()
	pdf.SetX(left + 5)
	pdf.MultiCell(0, lineHeight, "- "+text, "", "L", false)
}
