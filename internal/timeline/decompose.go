package timeline

// Bounds of the modeled history, inclusive.
const (
	HistoryStart = -4000
	HistoryEnd   = 2999
)

// RootRange is the range of the epoch view.
var RootRange = TimeRange{Start: HistoryStart, End: HistoryEnd}

// TimeRange is an inclusive interval of years. At the year level a block's
// Start and End carry a month number (1..12) instead.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether v lies inside the range.
func (r TimeRange) Contains(v int) bool {
	return v >= r.Start && v <= r.End
}

// Span returns End - Start.
func (r TimeRange) Span() int {
	return r.End - r.Start
}

// Step returns the block width used when decomposing a range at level l.
func Step(l Level) int {
	switch l {
	case Epoch:
		return 1000
	case Millennium:
		return 100
	case Century:
		return 10
	case Decade, Year:
		return 1
	}
	return 0
}

// Decompose splits r into the ordered child blocks shown at level l.
//
// Blocks are produced by fixed striding from r.Start, so the last block may
// reach past r.End when the span is not a multiple of the step. The epoch
// view ignores r and always covers the whole history; the year view ignores
// r and yields the twelve months.
func Decompose(l Level, r TimeRange) []TimeRange {
	switch l {
	case Epoch:
		return stride(HistoryStart, HistoryEnd+1, 1000)
	case Millennium:
		return stride(r.Start, r.End, 100)
	case Century:
		return stride(r.Start, r.End, 10)
	case Decade:
		var blocks []TimeRange
		for y := r.Start; y <= r.End; y++ {
			blocks = append(blocks, TimeRange{Start: y, End: y})
		}
		return blocks
	case Year:
		blocks := make([]TimeRange, 0, 12)
		for m := 1; m <= 12; m++ {
			blocks = append(blocks, TimeRange{Start: m, End: m})
		}
		return blocks
	}
	return nil
}

// stride yields {s, s+step-1} for s = start, start+step, ... while s < limit.
func stride(start, limit, step int) []TimeRange {
	var blocks []TimeRange
	for s := start; s < limit; s += step {
		blocks = append(blocks, TimeRange{Start: s, End: s + step - 1})
	}
	return blocks
}
