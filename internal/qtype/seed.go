package qtype

// seedInfos is the static metadata table for all fifteen question types.
// Baseline seconds reflect the relative reading and abstraction load of
// each type; parallel-reasoning items carry the heaviest budget because
// every answer choice is its own argument.
var seedInfos = []Info{
	{
		Type:        Strengthen,
		Name:        "Strengthen",
		Description: "Pick the choice that most supports the argument's conclusion.",
		BaseSeconds: 80,
	},
	{
		Type:        Weaken,
		Name:        "Weaken",
		Description: "Pick the choice that most undermines the argument's conclusion.",
		BaseSeconds: 80,
	},
	{
		Type:        Assumption,
		Name:        "Assumption",
		Description: "Identify an unstated premise the argument depends on.",
		BaseSeconds: 90,
	},
	{
		Type:        Flaw,
		Name:        "Flaw",
		Description: "Describe the reasoning error the argument commits.",
		BaseSeconds: 85,
	},
	{
		Type:        MustBeTrue,
		Name:        "Must Be True",
		Description: "Pick the choice that follows necessarily from the statements.",
		BaseSeconds: 75,
	},
	{
		Type:        MostStronglySupported,
		Name:        "Most Strongly Supported",
		Description: "Pick the choice best supported by the statements, short of certainty.",
		BaseSeconds: 80,
	},
	{
		Type:        MainConclusion,
		Name:        "Main Conclusion",
		Description: "Identify the argument's main point.",
		BaseSeconds: 60,
	},
	{
		Type:        MethodOfReasoning,
		Name:        "Method of Reasoning",
		Description: "Describe how the argument proceeds from premises to conclusion.",
		BaseSeconds: 90,
	},
	{
		Type:        ParallelReasoning,
		Name:        "Parallel Reasoning",
		Description: "Pick the choice whose reasoning pattern matches the stimulus.",
		BaseSeconds: 120,
	},
	{
		Type:        ParallelFlaw,
		Name:        "Parallel Flaw",
		Description: "Pick the choice that commits the same reasoning error as the stimulus.",
		BaseSeconds: 115,
	},
	{
		Type:        Principle,
		Name:        "Principle",
		Description: "Identify the general principle the argument conforms to or applies.",
		BaseSeconds: 85,
	},
	{
		Type:        Evaluate,
		Name:        "Evaluate",
		Description: "Pick the question whose answer would most help judge the argument.",
		BaseSeconds: 95,
	},
	{
		Type:        Paradox,
		Name:        "Paradox",
		Description: "Pick the choice that resolves the apparent discrepancy.",
		BaseSeconds: 80,
	},
	{
		Type:        PointAtIssue,
		Name:        "Point at Issue",
		Description: "Identify what two speakers disagree about.",
		BaseSeconds: 90,
	},
	{
		Type:        RoleOfStatement,
		Name:        "Role of Statement",
		Description: "Describe the function a given statement plays in the argument.",
		BaseSeconds: 85,
	},
}
