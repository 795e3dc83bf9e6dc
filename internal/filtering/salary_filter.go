package filtering

import (
	"fmt"

	adzuna "github.com/jobtools/adzuna-go"
)

type salaryFloorFilter struct {
	floor    float64
	disabled bool
	reason   string
}

// NewSalaryFloor creates a filter dropping advertisements whose known
// salary tops out below the floor. Advertisements without any salary
// information are kept. A zero floor disables the filter.
func NewSalaryFloor(floor float64) Filter {
	f := &salaryFloorFilter{floor: floor}
	if floor == 0 {
		f.Disable("no salary floor configured")
	}
	return f
}

func (f *salaryFloorFilter) Name() string { return "salary_floor" }

func (f *salaryFloorFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *salaryFloorFilter) IsEnabled() bool { return !f.disabled }

func (f *salaryFloorFilter) Validate(*Config) error {
	if f.floor < 0 {
		return fmt.Errorf("salary floor must not be negative, got %v", f.floor)
	}
	return nil
}

func (f *salaryFloorFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: !f.disabled, Reason: f.reason}
}

func (f *salaryFloorFilter) Apply(_ Deps, jobs []adzuna.Job) ([]adzuna.Job, Step, error) {
	initial := len(jobs)

	kept := jobs[:0:0]
	for _, job := range jobs {
		if job.SalaryMin == 0 && job.SalaryMax == 0 {
			kept = append(kept, job)
			continue
		}
		if job.SalaryMax >= f.floor {
			kept = append(kept, job)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
