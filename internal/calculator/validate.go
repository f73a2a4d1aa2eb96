package calculator

import (
	"bytes"
	"encoding/json"
	"math"

	"calculator/backend/internal/model"
)

// ValidateInputs checks operands in order and stops at the first one that is
// absent or not a finite number. On success it returns their values in order.
func ValidateInputs(operands ...model.Operand) ([]float64, error) {
	values := make([]float64, 0, len(operands))
	for _, op := range operands {
		if !op.Present {
			return nil, ErrMissingInput
		}
		v, ok := parseNumber(op.Raw)
		if !ok || !IsValidNumber(v) {
			return nil, ErrInvalidNumber
		}
		values = append(values, v)
	}
	return values, nil
}

// IsValidNumber reports whether v is a finite real number.
func IsValidNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseNumber accepts only JSON number literals. Strings, booleans, null,
// arrays and objects are rejected, as are literals outside float64 range.
func parseNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}
