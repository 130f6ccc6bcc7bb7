package report

import (
	"encoding/json"
	"io"

	"github.com/todohawk/todohawk/internal/types"
)

// WriteJSON writes findings as an indented JSON array in scan order. A nil
// slice encodes as [] so downstream parsers always get an array.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// DetailsJSON returns the compact single-line form used for step outputs.
func DetailsJSON(findings []types.Finding) (string, error) {
	if findings == nil {
		findings = []types.Finding{}
	}
	b, err := json.Marshal(findings)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
