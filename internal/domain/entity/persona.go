// Package entity contains the core business objects of the project.
package entity

// Persona represents the shopper segment that selects flows and filters.
type Persona string

const (
	// PersonaGenZ is the Gen Z segment (AI finder, gaming mode).
	PersonaGenZ Persona = "genz"
	// PersonaFamily is the Families segment (plan builder, safety settings).
	PersonaFamily Persona = "family"
	// PersonaYoungPro is the Young Professionals segment (scorer quiz).
	PersonaYoungPro Persona = "young_pro"
	// PersonaSwitcher is the Value Switchers segment (BYO, deals, porting).
	PersonaSwitcher Persona = "value_switcher"
)

// String returns the string representation of the Persona.
func (p Persona) String() string {
	return string(p)
}

// IsValid checks if the Persona is a valid value.
func (p Persona) IsValid() bool {
	switch p {
	case PersonaGenZ, PersonaFamily, PersonaYoungPro, PersonaSwitcher:
		return true
	default:
		return false
	}
}
