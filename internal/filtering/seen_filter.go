package filtering

import (
	adzuna "github.com/jobtools/adzuna-go"

	"go.uber.org/zap"
)

type seenFilter struct {
	path     string
	disabled bool
	reason   string
}

// NewSeen creates a filter dropping advertisements recorded in the
// seen-advertisements file at path. An empty path disables the filter.
func NewSeen(path string) Filter {
	f := &seenFilter{path: path}
	if path == "" {
		f.Disable("no seen file configured")
	}
	return f
}

func (f *seenFilter) Name() string { return "seen" }

func (f *seenFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *seenFilter) IsEnabled() bool { return !f.disabled }

func (f *seenFilter) Validate(*Config) error { return nil }

func (f *seenFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: !f.disabled, Reason: f.reason}
}

func (f *seenFilter) Apply(deps Deps, jobs []adzuna.Job) ([]adzuna.Job, Step, error) {
	initial := len(jobs)

	seen, err := LoadSeenAds(f.path)
	if err != nil {
		return nil, Step{}, err
	}

	known := make(map[string]struct{}, seen.Len())
	for _, id := range seen.IDs() {
		known[id] = struct{}{}
	}

	kept := jobs[:0:0]
	for _, job := range jobs {
		if _, ok := known[job.ID]; ok {
			continue
		}
		kept = append(kept, job)
	}

	if deps.Logger != nil && len(kept) < initial {
		deps.Logger.Debug("dropped already seen advertisements",
			zap.Int("dropped", initial-len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
