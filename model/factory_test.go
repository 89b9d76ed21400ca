package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIsExplicit(t *testing.T) {
	first := new(Sequence)
	second := NewSequence(10)

	assert.Equal(t, "btn_1", first.Next(WidgetTypeButton))
	assert.Equal(t, "label_2", first.Next(WidgetTypeLabel))
	assert.Equal(t, "obj_10", second.Next(WidgetTypeContainer))
	assert.Equal(t, "btn_3", first.Next(WidgetTypeButton))
}

func TestNewWidgetOfPresets(t *testing.T) {
	sequence := new(Sequence)

	button := NewWidgetOf(sequence, WidgetTypeButton, 5, 6)
	assert.Equal(t, "btn_1", button.Name())
	assert.Equal(t, 5, button.X())
	assert.Equal(t, 6, button.Y())
	assert.Equal(t, 120, button.Width())
	assert.Equal(t, 40, button.Height())
	assert.Equal(t, "Button", button.Text())

	window := NewWidgetOf(sequence, WidgetTypeWin, 0, 0)
	assert.Equal(t, "win_2", window.Name())
	assert.Equal(t, "Window", window.Text())

	scale := NewWidgetOf(sequence, WidgetTypeScale, 0, 0)
	assert.Equal(t, 100, scale.Width())
	assert.Equal(t, 40, scale.Height())
	assert.Empty(t, scale.Text())
}

func TestDefaultScreen(t *testing.T) {
	screen := DefaultScreen()

	assert.Equal(t, "main_screen", screen.Name())
	assert.Equal(t, 480, screen.Width())
	assert.Equal(t, 320, screen.Height())
	require.Len(t, screen.Widgets(), 2)

	label := screen.Widgets()[0]
	assert.Equal(t, "lbl_title", label.Name())
	assert.Equal(t, "LVGL UI Designer", label.Text())
	assert.Equal(t, 0x333333, label.TextColor())

	button := screen.Widgets()[1]
	assert.Equal(t, "btn_ok", button.Name())
	assert.Equal(t, 0x2196F3, button.BgColor())
	assert.Equal(t, 8, button.Radius())
}

func TestScreenNameFromFile(t *testing.T) {
	assert.Equal(t, "home", ScreenNameFromFile("home.graphxml"))
	assert.Equal(t, "home.xml", ScreenNameFromFile("home.xml"))
}
