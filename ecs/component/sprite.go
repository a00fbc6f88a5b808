package component

import "image/color"

// Fill draws the entity's rectangle as a solid color.
type Fill struct {
	Color color.Color
}

var FillComponent = NewComponent[Fill]()
