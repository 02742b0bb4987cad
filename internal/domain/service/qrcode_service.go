package service

// QRCodeService renders QR code images for deep links.
type QRCodeService interface {
	// Generate renders a PNG QR code encoding the given URL.
	Generate(url string) ([]byte, error)
}
