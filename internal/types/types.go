package types

// Kind classifies a marker comment by its keyword.
type Kind string

const (
	KindTODO  Kind = "TODO"
	KindFIXME Kind = "FIXME"
	KindHACK  Kind = "HACK"
)

// Finding describes a marker comment detected at a path and line. Text holds
// the matching source line with surrounding whitespace trimmed. A line yields
// at most one Finding, and findings are never mutated after creation.
type Finding struct {
	Path string `json:"path"`
	Line int    `json:"line"` // 1-based, as counted at scan time
	Text string `json:"content"`
	Kind Kind   `json:"kind"`
}
