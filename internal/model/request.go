package model

import (
	"bytes"
	"encoding/json"
)

// Payload is a decoded request body keyed by field name. Values stay raw so an
// absent field, an explicit null and a non-numeric value remain distinguishable.
type Payload map[string]json.RawMessage

// Operand is one named input pulled out of a Payload.
type Operand struct {
	Name    string
	Raw     json.RawMessage
	Present bool
}

// Operand returns the named field. Present is false when the body did not carry it.
func (p Payload) Operand(name string) Operand {
	raw, ok := p[name]
	return Operand{Name: name, Raw: raw, Present: ok}
}

// String renders the payload as compact JSON for logging.
func (p Payload) String() string {
	if len(p) == 0 {
		return "{}"
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// DecodePayload parses a request body. An empty body is an empty object. Bare
// NaN and Infinity tokens are not JSON, but clients send them anyway; they are
// turned into string values so they fail number validation instead of parsing.
func DecodePayload(body []byte) (Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Payload{}, nil
	}

	var p Payload
	err := json.Unmarshal(body, &p)
	if err != nil {
		quoted, changed := quoteNonFinite(body)
		if !changed {
			return nil, err
		}
		p = nil
		if json.Unmarshal(quoted, &p) != nil {
			return nil, err
		}
	}
	if p == nil {
		p = Payload{}
	}
	return p, nil
}

var nonFiniteTokens = [][]byte{
	[]byte("-Infinity"),
	[]byte("+Infinity"),
	[]byte("Infinity"),
	[]byte("NaN"),
}

// quoteNonFinite wraps bare NaN/Infinity tokens found outside string literals in quotes.
func quoteNonFinite(body []byte) ([]byte, bool) {
	var (
		out      = make([]byte, 0, len(body)+8)
		inString bool
		escaped  bool
		changed  bool
	)

	for i := 0; i < len(body); i++ {
		ch := body[i]
		if inString {
			out = append(out, ch)
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		if ch == '"' {
			inString = true
			out = append(out, ch)
			continue
		}

		matched := false
		for _, tok := range nonFiniteTokens {
			if bytes.HasPrefix(body[i:], tok) {
				out = append(out, '"')
				out = append(out, tok...)
				out = append(out, '"')
				i += len(tok) - 1
				matched, changed = true, true
				break
			}
		}
		if !matched {
			out = append(out, ch)
		}
	}
	return out, changed
}
