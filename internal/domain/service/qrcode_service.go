package service

import "github.com/google/uuid"

// QRCodeService generates QR codes for shareable resume links.
type QRCodeService interface {
	// GenerateShareQR encodes the public view URL of the given resume into a
	// PNG QR code.
	GenerateShareQR(resumeID uuid.UUID) ([]byte, error)
}
