package argument

import (
	"fmt"
	"strings"

	"github.com/abhisek/reasonprep/internal/textutil"
)

// Analyze decomposes stimulus prose into an argument structure. An
// empty stimulus returns an empty structure with no main conclusion
// and weak strength.
func Analyze(stimulus string) *Structure {
	s := &Structure{Stimulus: stimulus, Strength: Weak}

	sentences := textutil.SplitSentences(stimulus)
	if len(sentences) == 0 {
		return s
	}

	s.Components = classifySentences(sentences)
	s.Components = append(s.Components, extractSubClauses(s.Components)...)
	s.LogicalFlow = buildEdges(s.Components)

	main := selectMainConclusion(s)
	if main != nil {
		main.IsMain = true
		s.MainConclusion = main.Text
	}
	s.MainPremises = selectMainPremises(s, main)
	s.Assumptions = detectAssumptionGaps(s)
	s.Strength = scoreStrength(s)
	return s
}

// classifySentences labels each sentence in indicator priority order:
// conclusion, then premise, then evidence, then a default. The default
// is premise; a first sentence with no indicator is relabeled
// background when later sentences carry the argument's premises, since
// it is then scene-setting rather than load-bearing.
func classifySentences(sentences []textutil.Sentence) []Component {
	comps := make([]Component, 0, len(sentences))
	firstDefaulted := false

	for i, sent := range sentences {
		c := Component{
			ID:    fmt.Sprintf("c%d", i+1),
			Text:  sent.Text,
			Start: sent.Start,
			End:   sent.End,
		}
		lower := strings.ToLower(sent.Text)

		switch {
		case matchIndicator(&c, lower, conclusionIndicators, Conclusion, confConclusion):
		case matchIndicator(&c, lower, premiseIndicators, Premise, confPremise):
		case matchIndicator(&c, lower, evidenceCues, Evidence, confEvidence):
		default:
			c.Type = Premise
			c.Confidence = confDefaultPremise
			if i == 0 {
				firstDefaulted = true
			}
		}
		comps = append(comps, c)
	}

	if firstDefaulted {
		for i := 1; i < len(comps); i++ {
			if comps[i].Type == Premise || comps[i].Type == Evidence {
				comps[0].Type = Background
				comps[0].Confidence = confBackground
				break
			}
		}
	}
	return comps
}

func matchIndicator(c *Component, lower string, indicators []string, typ ComponentType, conf float64) bool {
	ind, ok := textutil.ContainsAny(lower, indicators)
	if !ok {
		return false
	}
	c.Type = typ
	c.Confidence = conf
	c.Indicator = ind
	return true
}

// extractSubClauses pulls dependent clauses introduced by subordinating
// conjunctions out of each sentence as additional premise components.
// The clause runs from the conjunction to the next comma or the end of
// the sentence and must carry at least two words beyond the
// conjunction.
func extractSubClauses(comps []Component) []Component {
	var subs []Component
	for i := range comps {
		parent := &comps[i]
		lower := strings.ToLower(parent.Text)
		n := 0
		for _, conj := range subordinators {
			idx := indexWord(lower, conj)
			if idx < 0 {
				continue
			}
			end := strings.IndexByte(parent.Text[idx:], ',')
			if end < 0 {
				end = len(parent.Text) - idx
			}
			clause := strings.TrimRight(strings.TrimSpace(parent.Text[idx:idx+end]), ".!?")
			if len(strings.Fields(clause)) < 3 {
				continue
			}
			n++
			subs = append(subs, Component{
				ID:         fmt.Sprintf("%s.%d", parent.ID, n),
				Type:       Premise,
				Text:       clause,
				Start:      parent.Start + idx,
				End:        parent.Start + idx + len(clause),
				Confidence: confSubClause,
				Indicator:  conj,
			})
		}
	}
	return subs
}

// indexWord finds needle in haystack at a word boundary, or -1.
func indexWord(haystack, needle string) int {
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		beforeOK := idx == 0 || !isWordByte(haystack[idx-1])
		after := idx + len(needle)
		afterOK := after >= len(haystack) || !isWordByte(haystack[after])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + len(needle)
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// buildEdges constructs the logical-flow graph: sub-clauses support
// their parent, premises support conclusions, evidence supports
// premises, and two components sharing a contrast indicator oppose.
func buildEdges(comps []Component) []Edge {
	var edges []Edge

	for i := range comps {
		c := &comps[i]
		if parentID, ok := subParent(c.ID); ok {
			edges = append(edges, Edge{From: c.ID, To: parentID, Relationship: Supports})
		}
	}

	for i := range comps {
		from := &comps[i]
		if from.Type != Premise || isSub(from.ID) {
			continue
		}
		for j := range comps {
			to := &comps[j]
			if to.Type == Conclusion {
				edges = append(edges, Edge{From: from.ID, To: to.ID, Relationship: Supports})
			}
		}
	}

	for i := range comps {
		from := &comps[i]
		if from.Type != Evidence {
			continue
		}
		for j := range comps {
			to := &comps[j]
			if to.Type == Premise && !isSub(to.ID) {
				edges = append(edges, Edge{From: from.ID, To: to.ID, Relationship: Supports})
			}
		}
	}

	for i := range comps {
		for j := i + 1; j < len(comps); j++ {
			if sharedContrast(comps[i].Text, comps[j].Text) {
				edges = append(edges, Edge{From: comps[i].ID, To: comps[j].ID, Relationship: Opposes})
			}
		}
	}
	return edges
}

func sharedContrast(a, b string) bool {
	lowerA := strings.ToLower(a)
	lowerB := strings.ToLower(b)
	for _, ind := range contrastIndicators {
		if indexWord(lowerA, ind) >= 0 && indexWord(lowerB, ind) >= 0 {
			return true
		}
	}
	return false
}

func isSub(id string) bool {
	return strings.ContainsRune(id, '.')
}

func subParent(id string) (string, bool) {
	if dot := strings.IndexByte(id, '.'); dot > 0 {
		return id[:dot], true
	}
	return "", false
}

// selectMainConclusion applies the fallback chain: an explicitly
// flagged main conclusion, then the conclusion with the most incoming
// supports edges, then the sole conclusion. Returns nil when the
// stimulus has no conclusion component.
func selectMainConclusion(s *Structure) *Component {
	var conclusions []*Component
	for i := range s.Components {
		if s.Components[i].Type == Conclusion {
			conclusions = append(conclusions, &s.Components[i])
		}
	}
	if len(conclusions) == 0 {
		return nil
	}
	for _, c := range conclusions {
		if c.IsMain {
			return c
		}
	}

	incoming := make(map[string]int)
	for _, e := range s.LogicalFlow {
		if e.Relationship == Supports {
			incoming[e.To]++
		}
	}
	best := conclusions[0]
	for _, c := range conclusions[1:] {
		if incoming[c.ID] > incoming[best.ID] {
			best = c
		}
	}
	if incoming[best.ID] > 0 || len(conclusions) == 1 {
		return best
	}
	// No support edges to break the tie; first conclusion stands in.
	return best
}

// selectMainPremises returns the texts of premises supporting the main
// conclusion, or every premise when no conclusion was found.
func selectMainPremises(s *Structure, main *Component) []string {
	var out []string
	if main == nil {
		for i := range s.Components {
			if s.Components[i].Type == Premise {
				out = append(out, s.Components[i].Text)
			}
		}
		return out
	}

	supporters := make(map[string]bool)
	for _, e := range s.LogicalFlow {
		if e.Relationship == Supports && e.To == main.ID {
			supporters[e.From] = true
		}
	}
	for i := range s.Components {
		c := &s.Components[i]
		if c.Type == Premise && supporters[c.ID] {
			out = append(out, c.Text)
		}
	}
	return out
}
