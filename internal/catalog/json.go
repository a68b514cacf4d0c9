package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// LoadJSON reads an internship catalog from a JSON array of listing objects.
// Items are decoded weakly so numeric fields survive being encoded as strings.
func LoadJSON(path string) (*Listings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer file.Close()

	var items []any
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	var listings []Listing
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &listings,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding catalog items: %w", err)
	}

	kept := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.ID == "" {
			continue
		}
		if l.Stipend < 0 {
			l.Stipend = 0
		}
		if l.MinExperience < 0 {
			l.MinExperience = 0
		}
		kept = append(kept, l)
	}

	return &Listings{Items: kept}, nil
}
