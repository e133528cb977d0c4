// Package assetid genera códigos de negocio para activos con la forma
// PROD-<timestamp base36>-<sufijo aleatorio base36>, en mayúsculas.
//
// La colisión no es imposible pero sí despreciable para el throughput del
// sistema; la restricción UNIQUE de la columna product_id en la base de
// datos es el respaldo autoritativo. Un choque se reporta como error de
// creación, nunca sobrescribe.
package assetid

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	prefix    = "PROD"
	suffixLen = 9
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// New genera un código de activo: PROD-<unix ms en base36>-<9 chars base36>.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var sb strings.Builder
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < suffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand no falla en la práctica; si falla, degradar al reloj
			n = big.NewInt(time.Now().UnixNano() % int64(len(alphabet)))
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return strings.ToUpper(prefix + "-" + ts + "-" + sb.String())
}
