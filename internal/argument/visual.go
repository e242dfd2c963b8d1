package argument

// Visualization transform: positions components on a layered canvas for
// display. Purely derivative of the structure; no new semantics.

// VisNode is a positioned component for rendering.
type VisNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	IsMain bool    `json:"isMain"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// VisEdge is a rendered relationship.
type VisEdge struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"`
}

// VisData is the full render payload.
type VisData struct {
	Nodes []VisNode `json:"nodes"`
	Edges []VisEdge `json:"edges"`
}

// Layer rows, top to bottom: context, evidence, premises, conclusions.
var layerY = map[ComponentType]float64{
	Background: 0,
	Evidence:   1,
	Assumption: 1,
	Premise:    2,
	Conclusion: 3,
}

const (
	nodeSpacingX = 220
	nodeSpacingY = 140
	maxLabelLen  = 60
)

// VisualizationData lays the structure out on a grid: one row per
// component role, components of the same role spread horizontally in
// document order.
func VisualizationData(s *Structure) VisData {
	data := VisData{
		Nodes: make([]VisNode, 0, len(s.Components)),
		Edges: make([]VisEdge, 0, len(s.LogicalFlow)),
	}

	col := make(map[ComponentType]int)
	for i := range s.Components {
		c := &s.Components[i]
		label := c.Text
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen-3] + "..."
		}
		data.Nodes = append(data.Nodes, VisNode{
			ID:     c.ID,
			Label:  label,
			Type:   string(c.Type),
			IsMain: c.IsMain,
			X:      float64(col[c.Type]) * nodeSpacingX,
			Y:      layerY[c.Type] * nodeSpacingY,
		})
		col[c.Type]++
	}

	for _, e := range s.LogicalFlow {
		data.Edges = append(data.Edges, VisEdge{
			From:         e.From,
			To:           e.To,
			Relationship: string(e.Relationship),
		})
	}
	return data
}
