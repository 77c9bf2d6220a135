package graph

// Labels are human-readable descriptions of a node's result.
type Labels struct {
	Text      string // Plain text, may use unicode
	PlotTitle string // Title for plots, LaTeX math allowed
	Latex     string
	Axis      string // Axis label for plots
	Mark      string // Short mark, e.g. P(ee)
}

// WithDefaults fills the empty fields of l from d.
func (l Labels) WithDefaults(d Labels) Labels {
	if l.Text == "" {
		l.Text = d.Text
	}
	if l.PlotTitle == "" {
		l.PlotTitle = d.PlotTitle
	}
	if l.Latex == "" {
		l.Latex = d.Latex
	}
	if l.Axis == "" {
		l.Axis = d.Axis
	}
	if l.Mark == "" {
		l.Mark = d.Mark
	}
	return l
}
