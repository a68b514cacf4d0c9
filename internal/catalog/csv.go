package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of the internship dataset. min_experience is optional; rows
// without it default to zero.
const (
	colID            = "internship_id"
	colTitle         = "title"
	colCompany       = "company"
	colSkills        = "skills"
	colLocation      = "location"
	colCategory      = "category"
	colStipend       = "stipend"
	colDuration      = "duration"
	colEducation     = "education"
	colDescription   = "description"
	colMinExperience = "min_experience"
)

// LoadCSV reads an internship catalog from the dataset CSV format. The first
// row must be a header naming the columns. Rows that cannot be interpreted
// (missing id, too few fields) are skipped rather than failing the whole load.
func LoadCSV(path string) (*Listings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses catalog rows from r. See LoadCSV for the row handling rules.
func ReadCSV(r io.Reader) (*Listings, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &Listings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	if _, ok := columns[colID]; !ok {
		return nil, fmt.Errorf("catalog header is missing the %s column", colID)
	}

	listings := &Listings{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row should not abort the rest of the catalog.
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		id := field(colID)
		if id == "" {
			continue
		}

		listings.Items = append(listings.Items, Listing{
			ID:            id,
			Title:         field(colTitle),
			Company:       field(colCompany),
			Location:      field(colLocation),
			Category:      firstCategory(field(colCategory)),
			Duration:      field(colDuration),
			Skills:        splitSkills(field(colSkills)),
			Stipend:       parseNonNegative(field(colStipend)),
			MinExperience: parseNonNegative(field(colMinExperience)),
			Education:     field(colEducation),
			Description:   field(colDescription),
		})
	}

	return listings, nil
}

// splitSkills splits a comma separated skill cell, preserving order and
// dropping blank entries. No deduplication: order is display order.
func splitSkills(cell string) []string {
	if cell == "" {
		return nil
	}

	parts := strings.Split(cell, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

// firstCategory keeps only the first entry of a comma separated category cell.
func firstCategory(cell string) string {
	if idx := strings.IndexByte(cell, ','); idx != -1 {
		cell = cell[:idx]
	}
	return strings.TrimSpace(cell)
}

func parseNonNegative(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
