package scriptor

// StringRange is a half-open [Start, End) interval over an input string.
type StringRange struct {
	Start int
	End   int
}

// NewStringRange builds a range covering [start, end).
func NewStringRange(start, end int) StringRange {
	return StringRange{Start: start, End: end}
}

// NewStringRangeAt builds the empty range [pos, pos).
func NewStringRangeAt(pos int) StringRange {
	return StringRange{Start: pos, End: pos}
}

// EncompassingRange returns the smallest range containing both a and b.
func EncompassingRange(a, b StringRange) StringRange {
	return StringRange{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}

// Get projects the range onto s.
func (r StringRange) Get(s string) string {
	return s[r.Start:r.End]
}

// GetFromReader projects the range onto the reader's underlying string.
func (r StringRange) GetFromReader(reader Reader) string {
	return reader.String()[r.Start:r.End]
}

func (r StringRange) IsEmpty() bool {
	return r.Start == r.End
}

func (r StringRange) Length() int {
	return r.End - r.Start
}
