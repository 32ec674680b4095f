package qrimg

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("qr content is empty")

const defaultSize = 256

// Encode renders content as a PNG QR code. Size <= 0 falls back to the
// default 256px.
func Encode(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
