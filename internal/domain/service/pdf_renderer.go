package service

import "resumebuilder/internal/domain/entity"

// PDFRenderer turns a resume into a downloadable PDF document.
type PDFRenderer interface {
	// RenderResume produces the PDF bytes for the given resume.
	RenderResume(resume *entity.Resume) ([]byte, error)
}
