package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[33m12\033[0m", Colorize(Yellow, "12"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mshins: 4\033[0m", Colorf(Green, "shins: %d", 4))
}

func TestStripANSI(t *testing.T) {
	input := "\033[36mDetonation\033[0m (level 5) \033[1m\033[35mGauntlet\033[0m"
	assert.Equal(t, "Detonation (level 5) Gauntlet", StripANSI(input))
}

func TestStripANSI_NoEscapes(t *testing.T) {
	assert.Equal(t, "plain text", StripANSI("plain text"))
	assert.Equal(t, "", StripANSI(""))
}

// Property: StripANSI(Colorize(color, text)) == text for any ASCII text.
func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Bold, Dim, Green, Yellow, Magenta, Cyan, BrightBlack, BrightBlue}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		assert.Equal(t, text, StripANSI(Colorize(color, text)))
	})
}

// Property: StripANSI output length <= input length.
func TestPropertyStripANSIOutputShorterOrEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		assert.LessOrEqual(t, len(StripANSI(text)), len(text))
	})
}
