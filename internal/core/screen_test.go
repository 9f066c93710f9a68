package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	for y := range s.Height() {
		assert.Equal(t, strings.Repeat(" ", 80), s.Row(y))
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	s.SetColored(1, 2, '#', ColorCyan)
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, Cell{Rune: '#', Color: ColorCyan}, s.GetCell(1, 2))

	// Out of bounds writes are silent, reads are blank.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), 'X', ColorRed)
	s.Clear()
	assert.Equal(t, "    \n    ", s.String())
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorYellow)

	assert.True(t, strings.HasPrefix(s.Row(1)[2:], "Hello"))
	assert.Equal(t, ColorYellow, s.GetCell(6, 1).Color)

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "▶ Go", ColorDefault)

	// 4 runes in 20 columns start at 8.
	assert.Equal(t, '▶', s.Get(8, 1))
	assert.Equal(t, 'o', s.Get(11, 1))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, Cell{Rune: '#', Color: ColorGreen}, s.GetCell(x, y))
		}
	}
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	expected := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	assert.Equal(t, expected, s.String())
	assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	assert.Equal(t, "   \n   \n   ", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, "Hello   ", s.Row(0))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))
	assert.Equal(t, strings.Repeat(" ", 15), s.Row(5), "rows cut by the shrink stay gone")
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	assert.Equal(t, "          ", s.Row(-1))
	assert.Equal(t, "          ", s.Row(5))
}
