package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos JSON tolerantes para los campos opcionales de activos. El frontend
// envía "" o valores malformados donde no hay dato; aquí se normalizan a
// ausente en vez de persistirse como string vacío.

var jsonNull = []byte("null")

// NullDecimal precio opcional. Acepta número, string numérico, "" o null;
// todo lo no numérico normaliza a ausente.
type NullDecimal struct {
	decimal.NullDecimal
}

// NewDecimal construye un NullDecimal presente.
func NewDecimal(d decimal.Decimal) NullDecimal {
	return NullDecimal{decimal.NullDecimal{Decimal: d, Valid: true}}
}

func (n *NullDecimal) UnmarshalJSON(b []byte) error {
	n.Valid = false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	n.Decimal = d
	n.Valid = true
	return nil
}

func (n NullDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return []byte(n.Decimal.String()), nil
}

// NullDate fecha opcional. Acepta RFC3339 o YYYY-MM-DD; "", null o una fecha
// inválida normalizan a ausente.
type NullDate struct {
	Time  time.Time
	Valid bool
}

func (n *NullDate) UnmarshalJSON(b []byte) error {
	n.Valid = false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			n.Time = t
			n.Valid = true
			return nil
		}
	}
	return nil
}

func (n NullDate) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Time)
}

// Ptr devuelve *time.Time para la entidad: nil si está ausente.
func (n NullDate) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

// Quantity cantidad tolerante. Acepta número o string numérico; "", null o
// un valor malformado quedan sin resolver y caen al default del caller.
type Quantity struct {
	Value int
	Valid bool
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	q.Valid = false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		q.Value = int(f)
		q.Valid = true
	}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.Itoa(q.Value)), nil
}

// OrDefault devuelve la cantidad resuelta o def si no vino ninguna.
func (q Quantity) OrDefault(def int) int {
	if q.Valid {
		return q.Value
	}
	return def
}
