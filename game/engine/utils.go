package engine

import "strings"

// RenderTrack draws TrackLength cells separated by spaces, with TrackMarker
// on position and TrackPlaceholder everywhere else. Out-of-range positions
// are clamped onto the track.
func RenderTrack(position int) string {
	position = ClampPosition(position)

	cells := make([]string, TrackLength)
	for i := range cells {
		if i == position {
			cells[i] = TrackMarker
		} else {
			cells[i] = TrackPlaceholder
		}
	}
	return strings.Join(cells, " ")
}

// ClampPosition caps a position to the track bounds
func ClampPosition(position int) int {
	if position < 0 {
		return 0
	}
	if position > FinishLine {
		return FinishLine
	}
	return position
}

// CountSlips counts the slipped turns in a history
func CountSlips(history []TurnRecord) int {
	count := 0
	for _, rec := range history {
		if rec.Slipped {
			count++
		}
	}
	return count
}
