// Package argument decomposes a stimulus passage into labeled argument
// components and a directed relationship graph. Everything is a
// best-effort surface heuristic: degenerate input yields an empty or
// low-confidence structure, never an error.
package argument

// ComponentType labels the role a span of stimulus text plays.
type ComponentType string

const (
	Premise    ComponentType = "premise"
	Conclusion ComponentType = "conclusion"
	Evidence   ComponentType = "evidence"
	Assumption ComponentType = "assumption"
	Background ComponentType = "background"
)

// Component is one labeled span of the stimulus.
type Component struct {
	ID         string        // "c1", "c2", ... sub-clauses "c2.1"
	Type       ComponentType
	Text       string
	Start      int  // Byte offset into the stimulus
	End        int  // Byte offset one past the span
	IsMain     bool // True only for the identified primary conclusion
	Confidence float64
	Indicator  string // The indicator word that drove the label, if any
}

// Relationship labels a directed edge between components.
type Relationship string

const (
	Supports Relationship = "supports"
	Opposes  Relationship = "opposes"
)

// Edge is one directed relationship in the logical flow.
type Edge struct {
	From         string
	To           string
	Relationship Relationship
}

// Strength is the overall heuristic strength of the argument.
type Strength string

const (
	Weak     Strength = "weak"
	Moderate Strength = "moderate"
	Strong   Strength = "strong"
)

// Structure is the full decomposition of one stimulus.
type Structure struct {
	Stimulus       string
	Components     []Component
	MainConclusion string   // "" when no conclusion was identified
	MainPremises   []string
	Assumptions    []string // Implicit assumption descriptions
	LogicalFlow    []Edge
	Strength       Strength
}

// Component returns the component with the given ID, or nil.
func (s *Structure) Component(id string) *Component {
	for i := range s.Components {
		if s.Components[i].ID == id {
			return &s.Components[i]
		}
	}
	return nil
}
