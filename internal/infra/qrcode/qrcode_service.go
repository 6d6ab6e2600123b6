// Package qrcode generates QR codes for public resume share links.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"resumebuilder/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	shareBaseURL         string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, shareBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		shareBaseURL:         strings.TrimRight(shareBaseURL, "/"),
	}
}

// GenerateShareQR encodes the public view URL of the resume into a PNG QR code.
func (s *qrcodeService) GenerateShareQR(resumeID uuid.UUID) ([]byte, error) {
	shareURL := fmt.Sprintf("%s/resumes/%s", s.shareBaseURL, resumeID)

	png, err := qrcode.Encode(shareURL, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}
