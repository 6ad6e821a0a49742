package domain

import "fmt"

type ProfileType string

const (
	ProfileTypeFood   ProfileType = "food"
	ProfileTypeWeight ProfileType = "weight"
)

type MarkerShape string

const (
	MarkerNone   MarkerShape = "none"
	MarkerCircle MarkerShape = "circle"
	MarkerCross  MarkerShape = "cross"
	MarkerSquare MarkerShape = "square"
)

// AxisRange forces an axis to [Min, Max]. A nil *AxisRange means auto.
type AxisRange struct {
	Min float64
	Max float64
}

// Band is a shaded horizontal region marking a target range for a metric.
type Band struct {
	Min float64
	Max float64
}

type Targets struct {
	Kcal    Band
	Protein Band
	Fiber   Band
}

// ChartProfile collects every option that differs between chart variants.
type ChartProfile struct {
	Name  string
	Type  ProfileType
	Title string

	// Output geometry. The image is WidthInches*DPI by HeightInches*DPI pixels.
	WidthInches  float64
	HeightInches float64
	DPI          float64

	// Food
	KcalRange    *AxisRange
	MacroRange   *AxisRange
	ShowBands    bool
	Targets      Targets
	FiberMarker  MarkerShape
	MaskZeroDays bool

	// Weight
	Interpolate bool
}

func (c ChartProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Type, c.Name)
}

func (c ChartProfile) PixelSize() (int, int) {
	return int(c.WidthInches * c.DPI), int(c.HeightInches * c.DPI)
}
