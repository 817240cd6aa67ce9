package qrcode

import (
	"fmt"
	"time"
)

// Mode is the display metadata of a style.
type Mode struct {
	Style       Style  `json:"-"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var modes = [...]Mode{
	{Style: StyleStandard, ID: "standard", Name: "Standard", Description: "Classic black and white QR"},
	{Style: StyleTinted, ID: "kiwi", Name: "Kiwi Style", Description: "QR in kiwi colors"},
	{Style: StyleRounded, ID: "rounded", Name: "Rounded", Description: "Soft rounded modules"},
	{Style: StyleDotted, ID: "dots", Name: "Dots", Description: "Circular dot modules"},
}

// Modes lists every style in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out[:], modes[:])
	return out
}

// ModeOf returns the display metadata of s.
func ModeOf(s Style) (Mode, error) {
	if !s.Valid() {
		return Mode{}, fmt.Errorf("%w: %s", ErrUnknownStyle, s)
	}
	return modes[s], nil
}

// DownloadFilename names a downloaded image after its mode and creation time,
// e.g. "kiwiqr-rounded-1700000000000.png".
func DownloadFilename(s Style, at time.Time) string {
	id := s.String()
	if m, err := ModeOf(s); err == nil {
		id = m.ID
	}
	return fmt.Sprintf("kiwiqr-%s-%d.png", id, at.UnixMilli())
}
