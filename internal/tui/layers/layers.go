// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth returns a modal width for the screen, bounded by minWidth and maxWidth
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	return min(max(screenWidth*ModalWidthNumerator/ModalWidthDivisor, minWidth), maxWidth, max(screenWidth-ModalMargin, 1))
}

// Compose stacks a base view and overlay layers into one frame. Nil layers are skipped.
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, l := range overlays {
		if l != nil {
			stack = append(stack, l)
		}
	}
	return lipgloss.NewCanvas(stack...).Render()
}
