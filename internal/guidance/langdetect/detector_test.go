package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_ASCIIAlwaysEnglish(t *testing.T) {
	d := New(Config{})
	for _, text := range []string{
		"how to prepare for upsc",
		"salary of software engineer",
		"JEE vs NEET which is better?",
		"1234 !@#$",
		"a",
	} {
		assert.Equal(t, English, d.Detect(text), "text %q", text)
	}
}

func TestDetect_EmptyIsEnglish(t *testing.T) {
	d := New(Config{})
	assert.Equal(t, English, d.Detect(""))
	assert.Equal(t, English, d.Detect("   \t\n"))
}

func TestDetect_Marathi(t *testing.T) {
	d := New(Config{})
	tests := []string{
		"आहे",
		"MPSC परीक्षा कशी आहे",
		"मी काय करू शकतो",
	}
	for _, text := range tests {
		assert.Equal(t, Marathi, d.Detect(text), "text %q", text)
	}
}

func TestDetect_Hindi(t *testing.T) {
	d := New(Config{})
	tests := []string{
		"यह कैसा है लेकिन नहीं",
		"है लेकिन नहीं कब फिर",
	}
	for _, text := range tests {
		assert.Equal(t, Hindi, d.Detect(text), "text %q", text)
	}
}

func TestDetect_DevanagariRatioFallback(t *testing.T) {
	// Devanagari text hitting no indicator words in either list still
	// classifies as Marathi once it crosses the ratio threshold.
	d := New(Config{})
	assert.Equal(t, Marathi, d.Detect("अभ"))
}

func TestDetect_TieStaysEnglish(t *testing.T) {
	// "तू" is on both indicator lists; equal scores fall through to the
	// ratio check, and a short mixed string stays English.
	d := New(Config{})
	assert.Equal(t, English, d.Detect("career तू options and details here"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Hindi, Normalize("hi"))
	assert.Equal(t, Marathi, Normalize(" MR "))
	assert.Equal(t, Auto, Normalize("auto"))
	assert.Equal(t, English, Normalize("fr"))
	assert.Equal(t, English, Normalize(""))
}
