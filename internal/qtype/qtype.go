package qtype

// Type identifies one of the fifteen logical-reasoning question types.
type Type string

const (
	Strengthen            Type = "strengthen"
	Weaken                Type = "weaken"
	Assumption            Type = "assumption"
	Flaw                  Type = "flaw"
	MustBeTrue            Type = "must_be_true"
	MostStronglySupported Type = "most_strongly_supported"
	MainConclusion        Type = "main_conclusion"
	MethodOfReasoning     Type = "method_of_reasoning"
	ParallelReasoning     Type = "parallel_reasoning"
	ParallelFlaw          Type = "parallel_flaw"
	Principle             Type = "principle"
	Evaluate              Type = "evaluate"
	Paradox               Type = "paradox"
	PointAtIssue          Type = "point_at_issue"
	RoleOfStatement       Type = "role_of_statement"
)

// All returns every question type in display order.
func All() []Type {
	return []Type{
		Strengthen,
		Weaken,
		Assumption,
		Flaw,
		MustBeTrue,
		MostStronglySupported,
		MainConclusion,
		MethodOfReasoning,
		ParallelReasoning,
		ParallelFlaw,
		Principle,
		Evaluate,
		Paradox,
		PointAtIssue,
		RoleOfStatement,
	}
}

// Valid reports whether t is a known question type.
func Valid(t Type) bool {
	_, ok := registry[t]
	return ok
}

// Core returns the five canonical types a broad practice set should
// always represent.
func Core() []Type {
	return []Type{Strengthen, Weaken, Assumption, Flaw, MustBeTrue}
}

// Info holds static metadata for a question type.
type Info struct {
	Type        Type
	Name        string // Human-readable display name
	Description string
	BaseSeconds int // Baseline recommended solve time
}

// registry is the package-level type registry, keyed by Type.
var registry map[Type]*Info

func init() {
	registry = make(map[Type]*Info, len(seedInfos))
	for i := range seedInfos {
		registry[seedInfos[i].Type] = &seedInfos[i]
	}
}

// Get returns the metadata for a type, or nil if unknown.
func Get(t Type) *Info {
	return registry[t]
}

// DisplayName returns a human-readable name for a type.
// Unknown types fall back to the raw string.
func DisplayName(t Type) string {
	if info := registry[t]; info != nil {
		return info.Name
	}
	return string(t)
}

// BaseSeconds returns the baseline recommended time for a type.
// Unknown types get the must-be-true baseline.
func BaseSeconds(t Type) int {
	if info := registry[t]; info != nil {
		return info.BaseSeconds
	}
	return registry[MustBeTrue].BaseSeconds
}
