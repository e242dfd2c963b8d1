package argument

// Indicator word tables. Order matters at classification time:
// conclusion indicators are checked first, then premise, then evidence
// cues. A sentence matching none of them defaults to premise, except a
// scene-setting first sentence (see analyzer.go).

var conclusionIndicators = []string{
	"therefore", "thus", "hence", "consequently", "as a result",
	"it follows that", "clearly,", "so the", "this shows that",
	"this suggests that", "we can conclude", "must be the case",
}

var premiseIndicators = []string{
	"because", "since", "given that", "after all", "for the reason",
	"owing to", "on the grounds that", "as shown by", "for example",
}

var evidenceCues = []string{
	"study", "studies", "data", "research", "survey", "experiment",
	"statistics", "percent", "%", "found that", "according to",
}

var contrastIndicators = []string{
	"however", "but", "although", "yet", "nevertheless",
	"on the other hand", "despite", "whereas",
}

// subordinators introduce dependent clauses extracted as sub-components.
var subordinators = []string{
	"because", "since", "although", "if", "when", "while",
}

// Per-label confidences. Indicator-driven labels score higher than the
// positional defaults.
const (
	confConclusion     = 0.8
	confPremise        = 0.75
	confEvidence       = 0.7
	confBackground     = 0.5
	confDefaultPremise = 0.4
	confSubClause      = 0.6
)
