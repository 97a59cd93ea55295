package enums

// ContentKind names an upstream content-type filter chip.
type ContentKind string

const (
	ContentKindShorts ContentKind = "Shorts"
)
