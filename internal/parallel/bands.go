package parallel

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// SplitRows divides rows [0, total) into at most parts contiguous bands.
//
// Every band except the last starts and ends on a multiple of align, so a
// band never splits a group of rows that must be processed together (two
// luma rows share one chroma row in 4:2:0). parts is capped so that bands
// average at least minRows rows. Returns nil if total <= 0.
func SplitRows(total, parts, align, minRows int) []Band {
	if total <= 0 {
		return nil
	}
	if align < 1 {
		align = 1
	}
	// Round minRows up to whole alignment units.
	minRows = max((minRows+align-1)/align, 1) * align
	if parts < 1 {
		parts = 1
	}
	if maxParts := total / minRows; parts > maxParts {
		parts = max(maxParts, 1)
	}

	// Work in units of align rows; the last unit may be short.
	units := (total + align - 1) / align
	if parts > units {
		parts = units
	}

	bands := make([]Band, 0, parts)
	start := 0
	for i := range parts {
		endUnit := units * (i + 1) / parts
		end := min(endUnit*align, total)
		if end > start {
			bands = append(bands, Band{Start: start, End: end})
		}
		start = end
	}
	return bands
}
