package core

import (
	"encoding/json"
	"io"
)

// MarshalReport pretty-prints a password report as JSON for humans or pipelines.
func MarshalReport(w io.Writer, r PasswordReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// UnmarshalReport decodes report JSON, useful for ingestion tests.
func UnmarshalReport(r io.Reader) (PasswordReport, error) {
	var pr PasswordReport
	if err := json.NewDecoder(r).Decode(&pr); err != nil {
		return PasswordReport{}, err
	}
	return pr, nil
}
