package adzuna

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Exception is the error envelope returned by the API on non-2xx
// responses.
type Exception struct {
	// Exception is a machine readable class of the failure.
	Exception string `json:"exception"`
	// Doc is a human readable message in English.
	Doc string `json:"doc"`
	// Display is a URL linking to the relevant documentation.
	Display string `json:"display"`
}

// Version is returned by the version endpoint.
type Version struct {
	// APIVersion is the major version of the API.
	APIVersion int `json:"api_version"`
	// SoftwareVersion is the version of the software providing the API.
	SoftwareVersion string `json:"software_version"`
}

func (v *Version) validate() error {
	if v.SoftwareVersion == "" {
		return errors.New("missing software_version")
	}
	return nil
}

// Company describes an advertiser. Count and AverageSalary are only
// filled in by statistics endpoints, not by search.
type Company struct {
	DisplayName   string  `json:"display_name,omitempty"`
	CanonicalName string  `json:"canonical_name,omitempty"`
	Count         int     `json:"count,omitempty"`
	AverageSalary float64 `json:"average_salary,omitempty"`
}

// TopCompanies is returned by the top_companies endpoint. The
// leaderboard is ordered by the number of live advertisements.
type TopCompanies struct {
	Leaderboard []Company `json:"leaderboard,omitempty"`
}

// Category is a job category. Tag may be passed back to the search and
// statistics endpoints through the category parameter.
type Category struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// Categories is returned by the categories endpoint.
type Categories struct {
	Results []Category `json:"results"`
}

func (c *Categories) validate() error {
	if c.Results == nil {
		return errors.New("missing results")
	}
	return nil
}

// HistoricalSalary is returned by the history endpoint. Keys of Month
// are ISO 8601 dates without the day, e.g. "2013-09".
type HistoricalSalary struct {
	Month map[string]float64 `json:"month,omitempty"`
}

// SalaryHistogram is returned by the histogram endpoint. Each key is
// the lower bound of a salary bucket, each value the number of live
// advertisements in that bucket.
type SalaryHistogram struct {
	Histogram map[string]int `json:"histogram,omitempty"`
}

// LocationDetail describes a place as a series of strings, each
// refining the location more than the previous (country, region, city,
// suburb). Area may be serialized back into locationN parameters.
type LocationDetail struct {
	Area        []string `json:"area,omitempty"`
	DisplayName string   `json:"display_name,omitempty"`
}

// LocationJobs pairs a location with the number of jobs available
// there.
type LocationJobs struct {
	Count    int            `json:"count,omitempty"`
	Location LocationDetail `json:"location"`
}

// JobGeoData is returned by the geodata endpoint.
type JobGeoData struct {
	Locations []LocationJobs `json:"locations,omitempty"`
}

// Values of Job.ContractType.
const (
	ContractTypePermanent = "permanent"
	ContractTypeContract  = "contract"
)

// Values of Job.ContractTime.
const (
	ContractTimeFullTime = "full_time"
	ContractTimePartTime = "part_time"
)

// Job is a single advertisement from the search endpoint.
type Job struct {
	ID          string  `json:"id"`
	Created     string  `json:"created"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RedirectURL string  `json:"redirect_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    Category       `json:"category"`
	Location    LocationDetail `json:"location"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	// SalaryIsPredicted reports whether the salary was predicted rather
	// than advertised. The API transmits it as the literal string "1"
	// or "0".
	SalaryIsPredicted StringBool `json:"salary_is_predicted"`
	Company           Company    `json:"company"`
	// ContractType is "permanent" or "contract" when known.
	ContractType string `json:"contract_type,omitempty"`
	// ContractTime is "full_time" or "part_time" when known.
	ContractTime string `json:"contract_time,omitempty"`
	Adref        string `json:"adref"`
}

// JobSearchResults is returned by the search endpoint.
type JobSearchResults struct {
	Results []Job   `json:"results"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
}

func (r *JobSearchResults) validate() error {
	if r.Results == nil {
		return errors.New("missing results")
	}
	return nil
}

// StringBool decodes boolean fields that the API transmits as the
// literal strings "1" and "0". Native JSON booleans are accepted too.
type StringBool bool

func (b *StringBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*b = true
		return nil
	case "false", "null":
		*b = false
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = s == "1"

	return nil
}
