// Package pdf renders resume documents with the fpdf library.
package pdf

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"resumebuilder/internal/domain/entity"
	"resumebuilder/internal/domain/service"
)

const (
	titleFontSize  = 18
	headerFontSize = 14
	bodyFontSize   = 12
	lineHeight     = 6
)

type renderer struct{}

// NewRenderer constructs the PDF renderer.
func NewRenderer() service.PDFRenderer {
	return &renderer{}
}

// RenderResume lays the resume out as a single-column A4 document: contact
// header, summary, skills, experience, education.
func (r *renderer) RenderResume(resume *entity.Resume) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	writeContactHeader(doc, resume.PersonalInfo)
	writeSkills(doc, resume.Skills)
	writeExperience(doc, resume.Experience)
	writeEducation(doc, resume.Education)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf output")
	}

	return buf.Bytes(), nil
}

func writeContactHeader(doc *fpdf.Fpdf, info *entity.PersonalInfo) {
	if info == nil {
		return
	}

	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.CellFormat(0, 10, info.FullName, "", 1, "C", false, 0, "")

	var contact []string
	if info.Phone != "" {
		contact = append(contact, "Phone: "+info.Phone)
	}
	if info.Email != "" {
		contact = append(contact, "Email: "+info.Email)
	}
	if len(contact) > 0 {
		doc.SetFont("Helvetica", "", bodyFontSize)
		doc.CellFormat(0, lineHeight, strings.Join(contact, "  "), "", 1, "C", false, 0, "")
	}

	if info.Summary != "" {
		doc.Ln(lineHeight)
		writeSectionHeader(doc, "Summary")
		writeBody(doc, info.Summary)
	}

	doc.Ln(lineHeight)
}

func writeSkills(doc *fpdf.Fpdf, skills []string) {
	if len(skills) == 0 {
		return
	}

	writeSectionHeader(doc, "Skills")
	writeBody(doc, strings.Join(skills, ", "))
	doc.Ln(lineHeight)
}

func writeExperience(doc *fpdf.Fpdf, entries []entity.Experience) {
	if len(entries) == 0 {
		return
	}

	writeSectionHeader(doc, "Experience")
	for _, exp := range entries {
		end := exp.EndDate
		if exp.Current {
			end = "Present"
		}
		writeBody(doc, exp.Position+" at "+exp.Company)
		writeBody(doc, exp.StartDate+" - "+end)
		if exp.Description != "" {
			writeBody(doc, exp.Description)
		}
		doc.Ln(lineHeight)
	}
}

func writeEducation(doc *fpdf.Fpdf, entries []entity.Education) {
	if len(entries) == 0 {
		return
	}

	writeSectionHeader(doc, "Education")
	for _, edu := range entries {
		writeBody(doc, edu.Degree+" at "+edu.School)
		writeBody(doc, edu.StartDate+" - "+edu.EndDate)
		if edu.Description != "" {
			writeBody(doc, edu.Description)
		}
		doc.Ln(lineHeight)
	}
}

func writeSectionHeader(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", headerFontSize)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func writeBody(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "", bodyFontSize)
	doc.MultiCell(0, lineHeight, text, "", "L", false)
}
