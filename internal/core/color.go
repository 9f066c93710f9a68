package core

// Color is a foreground color for a screen cell. The platform maps it onto
// ANSI 256-color codes.
type Color uint8

// Piece colors, in grid color id order: a cell holding id n is drawn in
// Color(n).
const (
	ColorDefault Color = iota
	ColorCyan          // I
	ColorBlue          // J
	ColorOrange        // L
	ColorYellow        // O
	ColorGreen         // S
	ColorMagenta       // T
	ColorRed           // Z
)

// Interface colors for walls, text, overlays and notices.
const (
	ColorWhite Color = iota + ColorRed + 1
	ColorBrightWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
	ColorDarkGray
)

// PieceColor returns the color of a grid color id. Ids outside the piece
// range are drawn white.
func PieceColor(id uint8) Color {
	if id == 0 || Color(id) > ColorRed {
		return ColorWhite
	}
	return Color(id)
}
