package render

// Layout is the serializable description of a drawn figure. Lengths are in
// points; values are on the chart's value axis.
type Layout struct {
	Kind   string        `json:"kind"`
	Title  string        `json:"title,omitempty"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	XMin   float64       `json:"x_min"`
	XMax   float64       `json:"x_max"`
	XLabel string        `json:"x_label,omitempty"`
	Legend []LegendEntry `json:"legend,omitempty"`
	// Rows run bottom to top for bar and mean charts, and in panel order
	// (top to bottom) for Likert diagrams.
	Rows []Row `json:"rows"`
}

// LegendEntry pairs a label with its fill color.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Row is one bar, or one panel of a multi-row diagram.
type Row struct {
	Key         string       `json:"key"`
	Label       string       `json:"label"`
	N           int          `json:"n,omitempty"`
	Segments    []Segment    `json:"segments"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Segment is a filled span [Start, End] of a row.
type Segment struct {
	Label string  `json:"label,omitempty"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Color string  `json:"color"`
}

// Annotation is a centered text label on a row.
type Annotation struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}
