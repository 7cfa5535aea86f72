package recommend

import (
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/scoring"
)

// Dimension is one axis a device can stand out on.
type Dimension string

const (
	DimensionGaming   Dimension = "gaming"
	DimensionCamera   Dimension = "camera"
	DimensionBattery  Dimension = "battery"
	DimensionWork     Dimension = "work"
	DimensionValue    Dimension = "value"
	DimensionPrestige Dimension = "prestige" // Ranks quiz picks only; Strongest never reports it.
)

var dimensionLabels = map[Dimension]string{
	DimensionGaming:   "Mobile gaming",
	DimensionCamera:   "Photography",
	DimensionBattery:  "All-day battery",
	DimensionWork:     "Work on the go",
	DimensionValue:    "Value for money",
	DimensionPrestige: "Premium experience",
}

// Strength is the best dimension of a device.
type Strength struct {
	Dimension Dimension
	Score     int
	Label     string
}

// Strongest returns the highest scoring dimension. Ties go to the earlier dimension in
// gaming, camera, battery, work, value order.
func Strongest(d entity.Device) Strength {
	card := scoring.Card(d)
	candidates := []struct {
		dim   Dimension
		score int
	}{
		{DimensionGaming, card.Gaming},
		{DimensionCamera, card.Camera},
		{DimensionBattery, card.Battery},
		{DimensionWork, card.Work},
		{DimensionValue, card.Value},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	return Strength{Dimension: best.dim, Score: best.score, Label: dimensionLabels[best.dim]}
}

// Explain renders a one-line reason a device is recommended for the dimension.
func Explain(d entity.Device, dim Dimension) string {
	switch dim {
	case DimensionGaming:
		return fmt.Sprintf("%s display with a %s chipset", d.RefreshRate, d.Chipset)
	case DimensionCamera:
		return fmt.Sprintf("%dMP main camera", scoring.Megapixels(d.Camera))
	case DimensionBattery:
		return fmt.Sprintf("%s battery that lasts all day", d.Battery)
	case DimensionPrestige:
		return fmt.Sprintf("premium %s build with a %s camera", d.Brand, d.Camera)
	case DimensionWork:
		return fmt.Sprintf("smooth %s screen and a %s battery for long work days", d.RefreshRate, d.Battery)
	default:
		return fmt.Sprintf("solid specs from $%.2f/mo", d.Price36)
	}
}

// scoreOf returns the device score for a dimension.
func scoreOf(d entity.Device, dim Dimension) int {
	switch dim {
	case DimensionGaming:
		return scoring.Gaming(d)
	case DimensionCamera:
		return scoring.Camera(d)
	case DimensionBattery:
		return scoring.Battery(d)
	case DimensionWork:
		return scoring.Work(d)
	case DimensionPrestige:
		return scoring.Prestige(d)
	default:
		return scoring.Value(d)
	}
}
