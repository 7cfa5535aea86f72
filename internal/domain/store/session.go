package store

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/wizard"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidPersona is returned when a session is opened for an unknown persona.
var ErrInvalidPersona = errors.New("invalid persona")

// Session is one shopper's visit. Exactly one persona store is set.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Persona   entity.Persona `json:"persona"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`

	GenZ     *GenZ     `json:"genz,omitempty"`
	Family   *Family   `json:"family,omitempty"`
	YoungPro *YoungPro `json:"young_pro,omitempty"`
	Switcher *Switcher `json:"switcher,omitempty"`
}

// NewSession opens a session with the initial store of the persona.
func NewSession(persona entity.Persona, now time.Time, ttl time.Duration) (*Session, error) {
	s := &Session{
		ID:        uuid.New(),
		Persona:   persona,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	switch persona {
	case entity.PersonaGenZ:
		s.GenZ = NewGenZ()
	case entity.PersonaFamily:
		s.Family = NewFamily()
	case entity.PersonaYoungPro:
		s.YoungPro = NewYoungPro()
	case entity.PersonaSwitcher:
		s.Switcher = NewSwitcher()
	default:
		return nil, errors.Wrapf(ErrInvalidPersona, "persona %q", persona)
	}

	return s, nil
}

// Expired reports whether the session has outlived its TTL.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Flow returns the wizard flow of the session persona.
func (s *Session) Flow() wizard.Flow {
	switch s.Persona {
	case entity.PersonaFamily:
		return wizard.FamilyFlow
	case entity.PersonaYoungPro:
		return wizard.YoungProFlow
	case entity.PersonaSwitcher:
		return wizard.SwitcherFlow
	default:
		return wizard.GenZFlow
	}
}

// Wizard returns the navigation state of the active store.
func (s *Session) Wizard() wizard.State {
	switch {
	case s.GenZ != nil:
		return s.GenZ.Wizard
	case s.Family != nil:
		return s.Family.Wizard
	case s.YoungPro != nil:
		return s.YoungPro.Wizard
	case s.Switcher != nil:
		return s.Switcher.Wizard
	default:
		return wizard.State{}
	}
}

// SetWizard replaces the navigation state of the active store.
func (s *Session) SetWizard(state wizard.State) {
	switch {
	case s.GenZ != nil:
		s.GenZ.Wizard = state
	case s.Family != nil:
		s.Family.Wizard = state
	case s.YoungPro != nil:
		s.YoungPro.Wizard = state
	case s.Switcher != nil:
		s.Switcher.Wizard = state
	}
}

// Reset restores the active store to its initial snapshot.
func (s *Session) Reset() {
	switch {
	case s.GenZ != nil:
		s.GenZ.Reset()
	case s.Family != nil:
		s.Family.Reset()
	case s.YoungPro != nil:
		s.YoungPro.Reset()
	case s.Switcher != nil:
		s.Switcher.Reset()
	}
}

// Clone returns a deep copy of the session and its store.
func (s *Session) Clone() *Session {
	c := *s
	if s.GenZ != nil {
		c.GenZ = s.GenZ.Clone()
	}
	if s.Family != nil {
		c.Family = s.Family.Clone()
	}
	if s.YoungPro != nil {
		c.YoungPro = s.YoungPro.Clone()
	}
	if s.Switcher != nil {
		c.Switcher = s.Switcher.Clone()
	}

	return &c
}
