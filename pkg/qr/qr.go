// Package qr genera etiquetas QR en PNG para los códigos de activos.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize tamaño en píxeles de la etiqueta si el caller no indica otro.
const DefaultSize = 256

// PNG codifica data como QR con corrección de errores alta y devuelve el PNG.
func PNG(data string, size int) ([]byte, error) {
	if data == "" {
		return nil, fmt.Errorf("qr: data vacío")
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(data, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return png, nil
}
