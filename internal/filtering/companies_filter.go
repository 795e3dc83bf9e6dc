package filtering

import (
	"strings"

	adzuna "github.com/jobtools/adzuna-go"

	"go.uber.org/zap"
)

type companiesFilter struct {
	companies []string
	disabled  bool
	reason    string
}

// NewCompanies creates a filter dropping advertisements from the given
// companies. Matching is case insensitive on the display name.
func NewCompanies(companies []string) Filter {
	f := &companiesFilter{companies: companies}
	if len(companies) == 0 {
		f.Disable("no companies configured")
	}
	return f
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *companiesFilter) IsEnabled() bool { return !f.disabled }

func (f *companiesFilter) Validate(*Config) error { return nil }

func (f *companiesFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: !f.disabled, Reason: f.reason}
}

func (f *companiesFilter) Apply(deps Deps, jobs []adzuna.Job) ([]adzuna.Job, Step, error) {
	initial := len(jobs)

	excluded := make(map[string]struct{}, len(f.companies))
	for _, name := range f.companies {
		excluded[strings.ToLower(name)] = struct{}{}
	}

	kept := jobs[:0:0]
	var droppedIDs []string
	for _, job := range jobs {
		if _, ok := excluded[strings.ToLower(job.Company.DisplayName)]; ok {
			droppedIDs = append(droppedIDs, job.ID)
			continue
		}
		kept = append(kept, job)
	}

	if deps.Logger != nil && len(droppedIDs) > 0 {
		deps.Logger.Debug("dropped advertisements by company",
			zap.Strings("ids", droppedIDs),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(droppedIDs), Left: len(kept)}, nil
}
