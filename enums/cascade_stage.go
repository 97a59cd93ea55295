package enums

// CascadeStage names one strategy of the trending discovery fallback
// sequence, in attempt order.
type CascadeStage string

const (
	CascadeStageFilter  CascadeStage = "filter"
	CascadeStageShelves CascadeStage = "shelves"
	CascadeStageSearch  CascadeStage = "search"
)
