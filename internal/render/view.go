package render

import (
	"fmt"
	"strings"
)

// View selects how the trajectories are drawn.
type View int

const (
	// View3D draws the full (x, y, z) path.
	View3D View = iota
	// ViewTopDown projects the path onto the X-Y plane.
	ViewTopDown
)

func (v View) String() string {
	if v == ViewTopDown {
		return "2d"
	}
	return "3d"
}

// Description is the view name used in chart titles.
func (v View) Description() string {
	if v == ViewTopDown {
		return "Top-Down View"
	}
	return "3D View"
}

// ParseView accepts "3d", "2d", "top-down" and "topdown", case-insensitively.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3d":
		return View3D, nil
	case "2d", "top-down", "topdown":
		return ViewTopDown, nil
	default:
		return View3D, fmt.Errorf("unknown view %q (want 3d or 2d)", s)
	}
}

// Capabilities describes what the output target can display.
type Capabilities struct {
	ThreeD bool
}

// SelectView returns the view to draw given what was requested and what the
// target supports. A 3D request on a target without 3D support falls back to
// the top-down view.
func SelectView(requested View, caps Capabilities) View {
	if requested == View3D && !caps.ThreeD {
		opsf("Warning: 3D plotting not available, falling back to 2D plots")
		return ViewTopDown
	}
	return requested
}
