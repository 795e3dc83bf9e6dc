package filtering

import (
	"encoding/json"
	"os"
	"time"

	adzuna "github.com/jobtools/adzuna-go"
)

// SeenAds is a small persistent record of advertisements the user has
// already looked at, so repeated searches do not surface them again.
type SeenAds struct {
	Items []*SeenAd
}

// SeenAd remembers a single advertisement.
type SeenAd struct {
	ID      string
	Title   string
	Company string
	SeenAt  time.Time
}

// LoadSeenAds reads the seen-advertisements file. A missing or empty
// file yields an empty record.
func LoadSeenAds(path string) (*SeenAds, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SeenAds{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &SeenAds{}, nil
	}

	var seen SeenAds
	if err := json.NewDecoder(file).Decode(&seen); err != nil {
		return nil, err
	}
	return &seen, nil
}

// Append records the given jobs as seen.
func (s *SeenAds) Append(jobs []adzuna.Job) {
	now := time.Now().UTC()
	for _, job := range jobs {
		s.Items = append(s.Items, &SeenAd{
			ID:      job.ID,
			Title:   job.Title,
			Company: job.Company.DisplayName,
			SeenAt:  now,
		})
	}
}

// IDs returns the identifiers of all recorded advertisements.
func (s *SeenAds) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (s *SeenAds) Len() int {
	return len(s.Items)
}

// ToFile writes the record back to disk.
func (s *SeenAds) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
