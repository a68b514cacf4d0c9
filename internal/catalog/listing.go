package catalog

import (
	"fmt"
	"strconv"
)

// Listing is one internship record in the catalog. Skills keep the order the
// source declares (relevance/display order) and are not deduplicated.
type Listing struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	Duration      string   `json:"duration"`
	Skills        []string `json:"skills"`
	Stipend       int      `json:"stipend"`
	MinExperience int      `json:"min_experience"`
	Education     string   `json:"education"`
	Description   string   `json:"description"`
}

// Record returns the listing itself. It lets wrapper types that embed a
// Listing (such as scored results) flow through the filtering pipeline.
func (l Listing) Record() Listing {
	return l
}

type Listings struct {
	Items []Listing
}

func (ls *Listings) Len() int {
	return len(ls.Items)
}

func (ls *Listings) FindByID(id string) *Listing {
	for i := range ls.Items {
		if ls.Items[i].ID == id {
			return &ls.Items[i]
		}
	}
	return nil
}

func (ls *Listings) IDs() []string {
	ids := make([]string, 0, len(ls.Items))
	for _, l := range ls.Items {
		ids = append(ids, l.ID)
	}
	return ids
}

// Report by category.
func (ls *Listings) ReportByCategory() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, l := range ls.Items {
		key := l.Category
		if key == "" {
			key = "uncategorized"
		}
		report[key] = append(report[key], map[string]string{
			"title":    l.Title,
			"company":  l.Company,
			"location": l.Location,
			"stipend":  strconv.Itoa(l.Stipend),
			"duration": l.Duration,
		})
	}
	return report
}

func (l Listing) String() string {
	return fmt.Sprintf("%s %s / %s / %s", l.ID, l.Title, l.Company, l.Location)
}
