package scenario

import (
	"fmt"
	"strconv"
)

// Scenario is a scripted sequence of registry operations against one product.
type Scenario struct {
	// Product is the product name.
	Product string `yaml:"product"`

	// Description is optional free text.
	Description string `yaml:"description,omitempty"`

	// Users are the subscriber names, in creation order.
	Users []string `yaml:"users"`

	// Steps are applied in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single operation. Exactly one field must be set.
type Step struct {
	Register   string `yaml:"register,omitempty"`
	Deregister string `yaml:"deregister,omitempty"`
	Available  *bool  `yaml:"available,omitempty"`
	Notify     bool   `yaml:"notify,omitempty"`
}

// Action returns the step's operation name.
func (s Step) Action() string {
	switch {
	case s.Register != "":
		return "register"
	case s.Deregister != "":
		return "deregister"
	case s.Available != nil:
		return "available"
	case s.Notify:
		return "notify"
	default:
		return ""
	}
}

// String returns a short description, e.g. "register Alice" or "available true".
func (s Step) String() string {
	switch s.Action() {
	case "register":
		return "register " + s.Register
	case "deregister":
		return "deregister " + s.Deregister
	case "available":
		return "available " + strconv.FormatBool(*s.Available)
	case "notify":
		return "notify"
	default:
		return "empty step"
	}
}

// actionCount returns how many operations the step sets.
func (s Step) actionCount() int {
	n := 0
	if s.Register != "" {
		n++
	}
	if s.Deregister != "" {
		n++
	}
	if s.Available != nil {
		n++
	}
	if s.Notify {
		n++
	}
	return n
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path or embedded name of the scenario.
	File string

	// Step is the 1-based step index (0 if not step-specific).
	Step int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Step > 0 {
		msg = fmt.Sprintf("step %d: %s", e.Step, msg)
	}
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Result summarizes a scenario run.
type Result struct {
	// Steps holds one entry per applied step.
	Steps []StepResult

	// Notifications is the total number of notifications delivered.
	Notifications int
}

// StepResult records the outcome of one step.
type StepResult struct {
	Step Step

	// Changed reports whether a register/deregister altered the registry.
	Changed bool

	// Notified is the number of notifications the step delivered.
	Notified int
}
