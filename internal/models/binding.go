package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Los formularios del front mandan números, booleanos y arrays como strings
// ("100", "true", "[\"a\",\"b\"]"). Estos tipos hacen esa coerción en el
// borde del API; un string malformado es un error de binding (400).

// unwrapString devuelve el contenido interno si data es un string JSON.
func unwrapString(data []byte) (inner []byte, wrapped bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return data, false, nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}
	return []byte(raw), true, nil
}

// FlexInt64 acepta un número JSON o un string numérico.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped {
		s := strings.TrimSpace(string(inner))
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt64(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(inner, &n); err != nil {
		return err
	}
	*f = FlexInt64(n)
	return nil
}

// FlexFloat64 acepta un número JSON o un string numérico.
type FlexFloat64 float64

func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped {
		s := strings.TrimSpace(string(inner))
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*f = FlexFloat64(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(inner, &n); err != nil {
		return err
	}
	*f = FlexFloat64(n)
	return nil
}

// FlexBool acepta true/false o sus versiones en string.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped {
		switch strings.TrimSpace(string(inner)) {
		case "true", "1":
			*f = true
		case "false", "0", "":
			*f = false
		default:
			return fmt.Errorf("invalid boolean %q", string(inner))
		}
		return nil
	}
	var b bool
	if err := json.Unmarshal(inner, &b); err != nil {
		return err
	}
	*f = FlexBool(b)
	return nil
}

// FlexStrings acepta un array de strings o un string con el array codificado.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped && len(bytes.TrimSpace(inner)) == 0 {
		*f = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(inner, &out); err != nil {
		return fmt.Errorf("malformed JSON array: %w", err)
	}
	*f = out
	return nil
}

// FlexVariants acepta un array de variantes o un string con el array codificado.
type FlexVariants []ProductVariantInput

func (f *FlexVariants) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped && len(bytes.TrimSpace(inner)) == 0 {
		*f = nil
		return nil
	}
	var out []ProductVariantInput
	if err := json.Unmarshal(inner, &out); err != nil {
		return fmt.Errorf("malformed variants: %w", err)
	}
	*f = out
	return nil
}

// SeasonInput acepta un objeto {from,to} o un string con el objeto codificado.
// Ambos campos son opcionales para poder mergear en updates parciales.
type SeasonInput struct {
	From *FlexInt64 `json:"from"`
	To   *FlexInt64 `json:"to"`
}

func (s *SeasonInput) UnmarshalJSON(data []byte) error {
	inner, wrapped, err := unwrapString(data)
	if err != nil {
		return err
	}
	if wrapped && len(bytes.TrimSpace(inner)) == 0 {
		return nil
	}
	type alias SeasonInput
	var a alias
	if err := json.Unmarshal(inner, &a); err != nil {
		return fmt.Errorf("malformed season: %w", err)
	}
	*s = SeasonInput(a)
	return nil
}
