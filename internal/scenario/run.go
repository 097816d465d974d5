package scenario

import (
	"errors"
	"io"

	"github.com/patternkit/patternkit-go/pkg/stock"
)

// NewUsers creates one stock.User per declared name, writing notifications to w.
func (s *Scenario) NewUsers(w io.Writer) map[string]*stock.User {
	users := make(map[string]*stock.User, len(s.Users))
	for _, name := range s.Users {
		users[name] = stock.NewUser(name, w)
	}
	return users
}

// Run applies every step to p, with users notifying through w.
func (s *Scenario) Run(p *stock.Product, w io.Writer) (*Result, error) {
	if p == nil {
		return nil, errors.New("scenario: nil product")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	users := s.NewUsers(w)
	result := &Result{}

	for _, step := range s.Steps {
		sr := StepResult{Step: step}

		switch step.Action() {
		case "register":
			sr.Changed = p.Register(users[step.Register])
		case "deregister":
			sr.Changed = p.Deregister(users[step.Deregister])
		case "available":
			sr.Notified = p.SetAvailability(*step.Available)
		case "notify":
			sr.Notified = p.NotifyAll()
		}

		result.Notifications += sr.Notified
		result.Steps = append(result.Steps, sr)
	}

	return result, nil
}
