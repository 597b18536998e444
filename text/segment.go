package text

import "golang.org/x/text/unicode/bidi"

// Segment is a contiguous run of text with a single direction, in logical
// order.
type Segment struct {
	// Text is the run's slice of the source string.
	Text string

	// Start and End are the byte offsets of the run in the source string.
	Start int
	End   int

	// Direction is the resolved direction of the run.
	Direction Direction

	// Level is the bidi embedding level (even = LTR, odd = RTL).
	Level int
}

// SegmentText splits text into directional runs using the Unicode bidi
// algorithm, assuming a left-to-right base paragraph direction. Each
// returned segment can be shaped independently.
func SegmentText(text string) []Segment {
	return segment(text, bidi.Neutral)
}

// SegmentTextRTL is SegmentText with a right-to-left base direction.
func SegmentTextRTL(text string) []Segment {
	return segment(text, bidi.RightToLeft)
}

func segment(text string, base bidi.Direction) []Segment {
	if text == "" {
		return nil
	}

	levels := computeBidiLevels(text, base)
	if len(levels) == 0 {
		return nil
	}

	return buildSegments(text, levels)
}

// computeBidiLevels returns the resolved embedding level of every rune.
func computeBidiLevels(text string, base bidi.Direction) []int {
	runes := []rune(text)
	levels := make([]int, len(runes))

	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(base))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, start and end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}

	return levels
}

// buildSegments groups consecutive runes with the same level into
// logical-order segments.
func buildSegments(text string, levels []int) []Segment {
	runes := []rune(text)
	byteOffsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += len(string(r))
	}
	byteOffsets[len(runes)] = len(text)

	segments := make([]Segment, 0, 4)
	segStart := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[segStart] {
			continue
		}
		startByte := byteOffsets[segStart]
		endByte := byteOffsets[i]

		dir := DirectionLTR
		if levels[segStart]%2 == 1 {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Text:      text[startByte:endByte],
			Start:     startByte,
			End:       endByte,
			Direction: dir,
			Level:     levels[segStart],
		})
		segStart = i
	}

	return segments
}
