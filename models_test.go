package adzuna

import (
	"encoding/json"
	"testing"
)

func TestStringBoolDecoding(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`"1"`, true},
		{`"0"`, false},
		{`""`, false},
		{`true`, true},
		{`false`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var got StringBool
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Fatalf("decoding %s: %v", tc.input, err)
		}
		if bool(got) != tc.want {
			t.Fatalf("decoding %s: expected %v, got %v", tc.input, tc.want, got)
		}
	}

	var got StringBool
	if err := json.Unmarshal([]byte(`7`), &got); err == nil {
		t.Fatalf("expected an error for a numeric token")
	}
}

func TestJobDecoding(t *testing.T) {
	body := `{
		"id": "4321",
		"created": "2026-08-01T12:00:00Z",
		"title": "Go Developer",
		"description": "Build services",
		"redirect_url": "https://example.com/4321",
		"latitude": 30.26,
		"longitude": -97.74,
		"category": {"tag": "it-jobs", "label": "IT Jobs"},
		"location": {"area": ["US", "Texas", "Austin"], "display_name": "Austin, Texas"},
		"salary_min": 90000,
		"salary_max": 120000,
		"salary_is_predicted": "1",
		"company": {"display_name": "Acme"},
		"contract_type": "permanent",
		"contract_time": "full_time",
		"adref": "ref-1"
	}`

	var job Job
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		t.Fatalf("decoding job: %v", err)
	}

	if !bool(job.SalaryIsPredicted) {
		t.Fatalf("expected salary_is_predicted to decode \"1\" as true")
	}
	if job.Category.Tag != "it-jobs" {
		t.Fatalf("unexpected category tag: %q", job.Category.Tag)
	}
	if job.ContractType != ContractTypePermanent {
		t.Fatalf("unexpected contract type: %q", job.ContractType)
	}
	if job.ContractTime != ContractTimeFullTime {
		t.Fatalf("unexpected contract time: %q", job.ContractTime)
	}
	if len(job.Location.Area) != 3 || job.Location.Area[2] != "Austin" {
		t.Fatalf("unexpected location area: %v", job.Location.Area)
	}
	if job.SalaryMax != 120000 {
		t.Fatalf("unexpected salary_max: %v", job.SalaryMax)
	}
}

func TestVersionValidation(t *testing.T) {
	v := &Version{APIVersion: 1}
	if err := v.validate(); err == nil {
		t.Fatalf("expected a missing software_version to be rejected")
	}

	v.SoftwareVersion = "Jobsworth:1970"
	if err := v.validate(); err != nil {
		t.Fatalf("expected a complete version to validate, got %v", err)
	}
}
