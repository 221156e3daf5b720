// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

// Slice is a drawable wedge, angles already offset by the wheel rotation.
type Slice struct {
	Index        int
	Label        string
	DisplayLabel string
	Color        string
	Weight       float64
	Share        float64
	StartAngle   float64
	EndAngle     float64
}

// Layout describes how to draw state. An empty wheel has no slices.
func Layout(state State) []Slice {
	bounds := SliceBounds(state.Options, state.Mode)
	total := state.TotalWeight()

	slices := make([]Slice, len(state.Options))
	for i, o := range state.Options {
		share := 0.0
		if total > 0 {
			share = o.Weight / total
		}
		slices[i] = Slice{
			Index:        i,
			Label:        o.Label,
			DisplayLabel: DisplayLabel(o.Label),
			Color:        o.Color,
			Weight:       o.Weight,
			Share:        share,
			StartAngle:   state.Rotation + bounds[i][0],
			EndAngle:     state.Rotation + bounds[i][1],
		}
	}
	return slices
}
