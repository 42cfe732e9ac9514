package ui

import (
	"image"

	"conway-life/internal/core"
)

// PanelWidth is the width in pixels of the HUD panel.
const PanelWidth = 240

// adjusted returns the value one step from current in direction, and whether
// that value is inside the control's bounds and differs from current.
func adjusted(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.Min < ctrl.Max {
		target = min(max(target, ctrl.Min), ctrl.Max)
	}
	return target, target != current
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
