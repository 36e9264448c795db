package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gauge"
)

// Size returns the pixel size of the canvas a layer set needs.
func Size(set gauge.LayerSet) (width, height int) {
	return int(math.Ceil(set.Width)), int(math.Ceil(set.Height))
}

// Paint plays set to b back to front: the five layers, then the label.
func Paint(b Backend, set gauge.LayerSet) error {
	w, h := Size(set)
	if err := b.Begin(w, h); err != nil {
		return fmt.Errorf("render: begin %dx%d: %w", w, h, err)
	}
	for _, l := range set.Ordered() {
		b.FillLayer(l)
	}
	if set.Label != nil {
		b.DrawLabel(*set.Label)
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("render: end: %w", err)
	}
	gauge.Logger().Debug("render: painted",
		"percent", set.Percent,
		"angle", set.Angle,
		"width", w,
		"height", h)
	return nil
}
