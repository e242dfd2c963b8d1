package classify

import "github.com/abhisek/reasonprep/internal/qtype"

// seedRule is the uncompiled form of a type rule. Patterns are compiled
// case-insensitively at init.
type seedRule struct {
	typ      qtype.Type
	keywords []string
	patterns []string
	priority float64
}

// seedRules is the static indicator table for all fifteen types.
// Keywords are matched as lowercase substrings; patterns add word-order
// context. Priority breaks ties where vocabularies overlap (the
// parallel types must outrank plain flaw, which shares "flawed").
var seedRules = []seedRule{
	{
		typ:      qtype.Strengthen,
		keywords: []string{"strengthen", "most supports the argument", "bolster"},
		patterns: []string{
			`\bstrengthens?\b`,
			`if true.*strengthen`,
			`most (supports?|strengthens?)\b`,
		},
		priority: 8,
	},
	{
		typ:      qtype.Weaken,
		keywords: []string{"weaken", "undermine", "cast doubt", "call into question"},
		patterns: []string{
			`\bweakens?\b`,
			`if true.*(weaken|undermine)`,
			`(undermines?|casts? doubt)`,
		},
		priority: 8,
	},
	{
		typ:      qtype.Assumption,
		keywords: []string{"assumption", "assumes", "presupposes", "takes for granted"},
		patterns: []string{
			`\bassumptions?\b`,
			`(assumes|presupposes|takes for granted)`,
			`depends on assuming`,
		},
		priority: 8,
	},
	{
		typ:      qtype.Flaw,
		keywords: []string{"flaw", "vulnerable to criticism", "error in reasoning", "reasoning error"},
		patterns: []string{
			`\bflaw(ed|s)?\b`,
			`vulnerable to criticism`,
			`errors? (in|of) (the )?reasoning`,
		},
		priority: 7,
	},
	{
		typ:      qtype.MustBeTrue,
		keywords: []string{"must be true", "must also be true", "properly inferred", "logically follows"},
		patterns: []string{
			`must (also )?be true`,
			`properly (inferred|concluded|drawn)`,
			`logically follows?`,
		},
		priority: 6,
	},
	{
		typ:      qtype.MostStronglySupported,
		keywords: []string{"most strongly supported", "most strongly support"},
		patterns: []string{
			`most strongly support(s|ed)?`,
			`statements above.*support`,
		},
		priority: 7,
	},
	{
		typ:      qtype.MainConclusion,
		keywords: []string{"main conclusion", "overall conclusion", "main point"},
		patterns: []string{
			`main (conclusion|point)`,
			`overall conclusion`,
			`accurately expresses.*conclusion`,
		},
		priority: 7,
	},
	{
		typ:      qtype.MethodOfReasoning,
		keywords: []string{"method of reasoning", "argumentative technique", "proceeds by"},
		patterns: []string{
			`method of (reasoning|argument)`,
			`proceeds by`,
			`argumentative (technique|strategy)`,
			`responds to.*by`,
		},
		priority: 7,
	},
	{
		typ:      qtype.ParallelReasoning,
		keywords: []string{"most similar in its reasoning", "parallel in reasoning", "most closely parallels"},
		patterns: []string{
			`similar in (its )?reasoning`,
			`most closely parallels?`,
			`pattern of reasoning.*most similar`,
		},
		priority: 8,
	},
	{
		typ:      qtype.ParallelFlaw,
		keywords: []string{"flawed reasoning", "most similar"},
		patterns: []string{
			`flawed (pattern of )?reasoning.*(similar|parallel)`,
			`flawed.*most similar`,
			`parallel.*flaw`,
		},
		priority: 9,
	},
	{
		typ:      qtype.Principle,
		keywords: []string{"principle", "proposition", "conforms to"},
		patterns: []string{
			`\bprinciples?\b`,
			`conforms? (most closely )?to`,
			`\bpropositions?\b`,
		},
		priority: 6,
	},
	{
		typ:      qtype.Evaluate,
		keywords: []string{"evaluate", "useful to know", "helpful in assessing"},
		patterns: []string{
			`evaluat(e|ing|ion)`,
			`useful to (know|determine|establish)`,
			`(helpful|important) in (assessing|judging|evaluating)`,
		},
		priority: 6,
	},
	{
		typ:      qtype.Paradox,
		keywords: []string{"paradox", "discrepancy", "reconcile", "resolve the apparent"},
		patterns: []string{
			`(paradox|discrepancy)`,
			`resolve the apparent`,
			`reconcil(e|es|ing)`,
			`explain the surprising`,
		},
		priority: 7,
	},
	{
		typ:      qtype.PointAtIssue,
		keywords: []string{"point at issue", "disagree", "committed to disagreeing"},
		patterns: []string{
			`point at issue`,
			`disagree (about|over|with|as to)`,
			`committed to disagreeing`,
		},
		priority: 7,
	},
	{
		typ:      qtype.RoleOfStatement,
		keywords: []string{"role in the argument", "plays which", "figures in the argument"},
		patterns: []string{
			`plays which (one )?of the following roles`,
			`role (played )?in the argument`,
			`figures in the (\w+ )?argument`,
		},
		priority: 7,
	},
}
