package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTheme(t *testing.T) {
	assert.True(t, NewTheme(true).Plain())
	assert.False(t, NewTheme(false).Plain())
}

func TestRenderBanner_Plain(t *testing.T) {
	banner := NewTheme(true).RenderBanner("0.0.1-alpha")

	lines := strings.Split(banner, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("*", 51), lines[0])
	assert.Contains(t, lines[1], "Welcome to SoulWare CLI (SoulDOS)")
	assert.Contains(t, lines[2], "Version 0.0.1-alpha")
	for _, line := range lines {
		assert.Len(t, line, 51)
	}
}

func TestPlainThemeRendersUnstyled(t *testing.T) {
	theme := NewTheme(true)
	assert.Equal(t, "VERIFIED", theme.Ok.Render("VERIFIED"))
	assert.Equal(t, "FAILED", theme.Fail.Render("FAILED"))
}
