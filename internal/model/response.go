package model

import (
	"encoding/json"
	"math"
)

// Number is a result value. NaN and the infinities have no JSON form and are
// written as null; negative zero is written as 0.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	if f == 0 {
		f = 0
	}
	return json.Marshal(f)
}

// Response is the envelope every calculator endpoint replies with.
type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Error   string  `json:"error,omitempty"`
	Result  *Number `json:"result,omitempty"`
}

func Success(message string, result float64) Response {
	n := Number(result)
	return Response{Success: true, Message: message, Result: &n}
}

func Failure(message string) Response {
	return Response{Success: false, Error: message}
}
