// Package qrcode renders eSIM activation codes as QR images.
package qrcode

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ErrMissingSMDPAddress is returned when an activation has no SM-DP+ server to download from.
var ErrMissingSMDPAddress = errors.New("eSIM activation has no SM-DP+ address")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// GenerateActivationQR encodes the LPA activation string as a PNG QR code
func (s *qrcodeService) GenerateActivationQR(activation entity.ESIMActivation) ([]byte, error) {
	if activation.SMDPAddress == "" {
		return nil, ErrMissingSMDPAddress
	}
	if activation.MatchingID == "" {
		return nil, errors.Wrap(entity.ErrInvalidActivationCode, "empty matching ID")
	}

	qrCode, err := qrcode.New(activation.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseActivationQR parses scanned QR code data back into an activation
func (s *qrcodeService) ParseActivationQR(qrData string) (entity.ESIMActivation, error) {
	activation, err := entity.ParseESIMActivation(qrData)
	if err != nil {
		return entity.ESIMActivation{}, errors.Wrap(err, "failed to parse activation code")
	}

	return activation, nil
}
