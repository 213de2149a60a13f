package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// detectDialect distinguishes the two JSON descriptor dialects loader
// understands. The scalar dialect is the only one carrying a
// "scaleForPlace" key (petri_json_reader.rs's fuzzy dialect has no
// notion of place scales at all), so its presence is a reliable,
// cheap discriminator without parsing the full document twice.
func detectDialect(data []byte) (string, error) {
	var probe struct {
		ScaleForPlace json.RawMessage `json:"scaleForPlace"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("petrisim: %w", err)
	}
	if probe.ScaleForPlace != nil && !bytes.Equal(probe.ScaleForPlace, []byte("null")) {
		return "scalar", nil
	}
	return "fuzzy", nil
}
