package yuv

// Domain of the saturation table.
//
// The bounds are the extremes the fixed-point formulas reach for 8-bit
// input, widened by one:
//
//	min_B = (298*(-16) + 517*(-128)) / 256 = -277
//	max_B = (298*(255-16) + 517*(255-128)) / 256 = 534
//
// Green and red stay inside [-223, 481].
const (
	ClipMin = -278
	ClipMax = 535
)

// clipTable maps v-ClipMin to clamp(v, 0, 255).
// Built once at package initialisation and never written afterwards,
// so concurrent readers need no synchronisation.
var clipTable = buildClipTable()

func buildClipTable() *[ClipMax - ClipMin + 1]uint8 {
	var t [ClipMax - ClipMin + 1]uint8
	for v := ClipMin; v <= ClipMax; v++ {
		switch {
		case v < 0:
			t[v-ClipMin] = 0
		case v > 255:
			t[v-ClipMin] = 255
		default:
			t[v-ClipMin] = uint8(v)
		}
	}
	return &t
}

// Saturate clamps v to [0, 255].
//
// Values in [ClipMin, ClipMax] come from the lookup table. Anything outside
// that range cannot be produced by the converters; it is clamped directly
// instead of indexing out of the table.
//
// Example:
//
//	Saturate(-17) // 0
//	Saturate(130) // 130
//	Saturate(400) // 255
func Saturate(v int) uint8 {
	if v >= ClipMin && v <= ClipMax {
		return clipTable[v-ClipMin]
	}
	if v < 0 {
		return 0
	}
	return 255
}
