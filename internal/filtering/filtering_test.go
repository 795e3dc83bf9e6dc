package filtering

import (
	"path/filepath"
	"testing"

	adzuna "github.com/jobtools/adzuna-go"
)

func sampleJobs() []adzuna.Job {
	return []adzuna.Job{
		{ID: "1", Title: "Go Developer", Company: adzuna.Company{DisplayName: "Acme"}},
		{ID: "2", Title: "Backend Engineer", Company: adzuna.Company{DisplayName: "Globex"}, SalaryMin: 40000, SalaryMax: 45000},
		{ID: "3", Title: "Platform Engineer", Company: adzuna.Company{DisplayName: "Initech"}, SalaryMin: 90000, SalaryMax: 120000},
		{ID: "4", Title: "SRE", Company: adzuna.Company{DisplayName: "Hooli"}},
	}
}

func TestRunPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	seen := &SeenAds{}
	seen.Append([]adzuna.Job{{ID: "4", Title: "SRE"}})
	if err := seen.ToFile(path); err != nil {
		t.Fatalf("writing seen file: %v", err)
	}

	cfg := &Config{
		Companies: []string{"acme"},
		MinSalary: 50000,
		SeenFile:  path,
	}
	steps := []Filter{
		NewSeen(cfg.SeenFile),
		NewCompanies(cfg.Companies),
		NewSalaryFloor(cfg.MinSalary),
	}

	jobs, err := Run(cfg, Deps{}, steps, sampleJobs())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// "4" is seen, "1" is from an excluded company, "2" is under the
	// salary floor; only "3" survives.
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job left, got %d: %+v", len(jobs), jobs)
	}
	if jobs[0].ID != "3" {
		t.Fatalf("expected job 3 to survive, got %q", jobs[0].ID)
	}
}

func TestSalaryFloorKeepsUnknownSalaries(t *testing.T) {
	filter := NewSalaryFloor(50000)

	jobs, step, err := filter.Apply(Deps{}, sampleJobs())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if step.Initial != 4 || step.Dropped != 1 || step.Left != 3 {
		t.Fatalf("unexpected step counters: %+v", step)
	}
	for _, job := range jobs {
		if job.ID == "2" {
			t.Fatalf("expected job 2 to be dropped")
		}
	}
}

func TestFiltersWithoutConfigurationAreDisabled(t *testing.T) {
	steps := []Filter{
		NewSeen(""),
		NewCompanies(nil),
		NewSalaryFloor(0),
	}

	for _, step := range steps {
		if step.IsEnabled() {
			t.Fatalf("expected %s to be disabled without configuration", step.Name())
		}
	}

	jobs, err := Run(&Config{}, Deps{}, steps, sampleJobs())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("expected all jobs to pass through, got %d", len(jobs))
	}
}

func TestDisableByName(t *testing.T) {
	steps := []Filter{NewCompanies([]string{"Acme"})}

	DisableByName(steps, "companies", "testing")
	if steps[0].IsEnabled() {
		t.Fatalf("expected the companies filter to be disabled")
	}
}

func TestSeenAdsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	seen, err := LoadSeenAds(path)
	if err != nil {
		t.Fatalf("loading a missing file: %v", err)
	}
	if seen.Len() != 0 {
		t.Fatalf("expected an empty record for a missing file, got %d items", seen.Len())
	}

	seen.Append(sampleJobs()[:2])
	if err := seen.ToFile(path); err != nil {
		t.Fatalf("writing: %v", err)
	}

	reloaded, err := LoadSeenAds(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 items after reload, got %d", reloaded.Len())
	}

	ids := reloaded.IDs()
	if ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected ids after reload: %v", ids)
	}
}
