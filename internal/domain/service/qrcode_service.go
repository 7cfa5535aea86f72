package service

import (
	"storefront/internal/domain/entity"
)

// QRCodeService defines the interface for eSIM activation QR codes
type QRCodeService interface {
	// GenerateActivationQR renders the activation as a PNG QR code
	GenerateActivationQR(activation entity.ESIMActivation) ([]byte, error)

	// ParseActivationQR parses scanned QR code data back into an activation
	ParseActivationQR(qrData string) (entity.ESIMActivation, error)
}
