// Package profile defines named run-length profiles and loads them from
// YAML or JSON.
//
// A profile is the (MinRun, MaxRun) pair a search runs under. Two are
// built in: Standard (1..3) and Ultra (4..10).
package profile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/dijkstra"
)

// Sentinel errors for profile validation and loading.
var (
	// ErrInvalidProfile indicates a profile with no name or unusable run limits.
	ErrInvalidProfile = errors.New("profile: invalid profile")
	// ErrDuplicateName indicates two profiles sharing a name.
	ErrDuplicateName = errors.New("profile: duplicate profile name")
	// ErrNoProfiles indicates an empty profile list.
	ErrNoProfiles = errors.New("profile: no profiles defined")
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("profile: unsupported file extension")
)

// Profile names a pair of run limits.
type Profile struct {
	Name   string `yaml:"name" json:"name"`
	MinRun int    `yaml:"min_run" json:"min_run"`
	MaxRun int    `yaml:"max_run" json:"max_run"`
}

// Standard is the light crucible: one to three straight moves per run.
func Standard() Profile {
	return Profile{Name: "crucible", MinRun: 1, MaxRun: 3}
}

// Ultra is the ultra crucible: four to ten straight moves per run.
func Ultra() Profile {
	return Profile{Name: "ultra", MinRun: 4, MaxRun: 10}
}

// Defaults returns Standard and Ultra, in that order.
func Defaults() []Profile {
	return []Profile{Standard(), Ultra()}
}

// Validate checks the name and the run limits.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	}
	if err := dijkstra.ValidateRunLimits(p.MinRun, p.MaxRun); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidProfile, p.Name, err)
	}

	return nil
}

// Options returns the search options selecting this profile's run limits.
func (p Profile) Options() []dijkstra.Option {
	return []dijkstra.Option{dijkstra.WithRunLimits(p.MinRun, p.MaxRun)}
}

// String renders the profile as "name[min..max]".
func (p Profile) String() string {
	return fmt.Sprintf("%s[%d..%d]", p.Name, p.MinRun, p.MaxRun)
}

// ValidateAll checks every profile and that names are unique.
func ValidateAll(ps []Profile) error {
	if len(ps) == 0 {
		return ErrNoProfiles
	}
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}
