// Package filtering applies local, sequential filter steps to search
// results before they are shown to the user. Filters never talk to the
// network; they only narrow down what a search already returned.
package filtering

import (
	"fmt"

	adzuna "github.com/jobtools/adzuna-go"

	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to search results.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(deps Deps, jobs []adzuna.Job) ([]adzuna.Job, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	// Companies lists advertiser display names to drop.
	Companies []string
	// MinSalary drops advertisements whose known salary is below the
	// floor. Zero disables the filter.
	MinSalary float64
	// SeenFile is the path of the seen-advertisements file. Empty
	// disables the filter.
	SeenFile string
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
}

// statusProvider is implemented by filters that can supply detailed
// status information.
type statusProvider interface {
	Status() Status
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// DisableByName marks a filter with the provided name as disabled while
// keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the
// remaining jobs.
func Run(cfg *Config, deps Deps, steps []Filter, jobs []adzuna.Job) ([]adzuna.Job, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		jobs = next
	}

	return jobs, nil
}
