// Package scenario loads and runs scripted restock scenarios.
package scenario

import (
	"embed"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var scenarioFS embed.FS

// DefaultName is the embedded scenario used when none is given.
const DefaultName = "restock"

// ErrInvalidScenario is the cause of every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Parse parses and validates a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load loads a scenario from a file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	s, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return s, nil
}

// Default returns the embedded restock scenario.
func Default() (*Scenario, error) {
	data, err := scenarioFS.ReadFile("scenarios/" + DefaultName + ".yaml")
	if err != nil {
		return nil, &LoadError{File: DefaultName, Message: "embedded scenario missing", Cause: err}
	}

	s, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = DefaultName
		}
		return nil, err
	}
	return s, nil
}

// Validate checks the product and users are named and every step does exactly
// one thing with a declared user.
func (s *Scenario) Validate() error {
	if s.Product == "" {
		return &LoadError{Message: "product is required", Cause: ErrInvalidScenario}
	}

	users := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		if u == "" {
			return &LoadError{Message: "user names must not be empty", Cause: ErrInvalidScenario}
		}
		if users[u] {
			return &LoadError{Message: "duplicate user " + u, Cause: ErrInvalidScenario}
		}
		users[u] = true
	}

	for i, step := range s.Steps {
		switch step.actionCount() {
		case 0:
			return &LoadError{Step: i + 1, Message: "step has no action", Cause: ErrInvalidScenario}
		case 1:
		default:
			return &LoadError{Step: i + 1, Message: "step has more than one action", Cause: ErrInvalidScenario}
		}

		name := step.Register + step.Deregister
		if name != "" && !users[name] {
			return &LoadError{Step: i + 1, Message: "unknown user " + name, Cause: ErrInvalidScenario}
		}
	}

	return nil
}
