package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Numero é a fronteira de conversão para campos numéricos vindos de
// formulários HTML: aceita tanto um número JSON como uma string numérica
// ("12.5"). String vazia e null contam como ausente, nunca como zero.
type Numero struct {
	Valido bool
	Valor  float64
}

// NumeroDe cria um Numero presente com o valor dado
func NumeroDe(v float64) Numero {
	return Numero{Valido: true, Valor: v}
}

// Ptr devolve o valor como *float64, nil quando ausente
func (n Numero) Ptr() *float64 {
	if !n.Valido {
		return nil
	}
	v := n.Valor
	return &v
}

// UnmarshalJSON implementa json.Unmarshaler
func (n *Numero) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Valido = false
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("valor numérico inválido: %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			n.Valido = false
			return nil
		}
		// Formulários portugueses usam vírgula decimal
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	valor, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %s", raw)
	}

	n.Valido = true
	n.Valor = valor
	return nil
}

// MarshalJSON implementa json.Marshaler
func (n Numero) MarshalJSON() ([]byte, error) {
	if !n.Valido {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Valor, 'f', -1, 64)), nil
}
