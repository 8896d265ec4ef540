// Package dataset reads the bulk spreadsheet export the project list is built from.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// RawRecord is one spreadsheet row keyed by its column header.
type RawRecord map[string]interface{}

// Decode reads a JSON array of records. Array elements that are not objects are skipped.
func Decode(r io.Reader) ([]RawRecord, error) {
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	out := make([]RawRecord, 0, len(items))
	for i, raw := range items {
		var rec RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
			log.Warn().Int("row", i).Msg("dataset: skipping non-object row")
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadFile reads records from path. A missing file yields an empty set so a fresh
// install starts with no projects.
func LoadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", path).Msg("dataset: file not found, starting with no projects")
			return []RawRecord{}, nil
		}
		return nil, err
	}
	defer f.Close()
	recs, err := Decode(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("records", len(recs)).Msg("dataset: loaded")
	return recs, nil
}
