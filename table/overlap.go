package table

//go:generate go tool stringer -type=Overlap -output=overlap_string.go

// Overlap classifies how a rule's source interval sits relative to an input
// interval. Every (source, input) pair with Start <= End on both sides falls
// into exactly one class.
type Overlap int

const (
	// Outside means the two intervals share no value.
	Outside Overlap = iota
	// Inside means the input lies entirely within the source.
	Inside
	// SplitByStart means the source starts inside the input and covers its tail.
	SplitByStart
	// SplitByEnd means the source covers the head of the input and ends inside it.
	SplitByEnd
	// Straddle means the source lies strictly inside the input, leaving pieces on
	// both sides.
	Straddle
)
