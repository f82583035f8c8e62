package letterhead

// WatermarkType selects text or image watermark content.
type WatermarkType string

// Watermark content types.
const (
	WatermarkText  WatermarkType = "text"
	WatermarkImage WatermarkType = "image"
)

// WatermarkPosition selects the watermark placement branch.
type WatermarkPosition string

// Watermark positions.
const (
	PositionCenter WatermarkPosition = "center"
	PositionTop    WatermarkPosition = "top"
	PositionBottom WatermarkPosition = "bottom"
	PositionRepeat WatermarkPosition = "repeat"
)

// Watermark defaults.
const (
	DefaultWatermarkOpacity   = 10
	DefaultWatermarkSize      = 100
	DefaultWatermarkRotation  = -45
	DefaultWatermarkRepeatGap = 100
)

// Watermark describes one watermark layer. A letterhead carries a primary
// and an independent secondary layer with the same shape.
type Watermark struct {
	Enabled       bool
	Type          WatermarkType
	Text          string
	ImageURL      string
	Opacity       float64 // 0..100
	Size          float64 // percent
	Rotation      float64 // degrees
	Position      WatermarkPosition
	RepeatGap     float64 // px
	UseLawyerName bool
}

// DefaultWatermark returns a disabled text watermark with default geometry.
func DefaultWatermark() Watermark {
	return Watermark{
		Type:      WatermarkText,
		Opacity:   DefaultWatermarkOpacity,
		Size:      DefaultWatermarkSize,
		Rotation:  DefaultWatermarkRotation,
		Position:  PositionCenter,
		RepeatGap: DefaultWatermarkRepeatGap,
	}
}
