package search

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		hex      string
		rendered string
	}{
		{name: "middle", text: "Hash: # end", hex: "1a2b", rendered: "Hash: 1a2b end"},
		{name: "trailing", text: "Hash: #", hex: "1a2b", rendered: "Hash: 1a2b"},
		{name: "leading", text: "#!", hex: "ff", rendered: "ff!"},
		{name: "bare placeholder", text: "#", hex: "0", rendered: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.text, DefaultPlaceholder)
			require.NoError(t, err)
			assert.Equal(t, tt.rendered, tmpl.Render(tt.hex))
		})
	}
}

func TestParseTemplateErrors(t *testing.T) {
	_, err := ParseTemplate("no placeholder here", DefaultPlaceholder)
	assert.True(t, errors.Is(err, ErrPlaceholderMissing))

	_, err = ParseTemplate("one # and another #", DefaultPlaceholder)
	assert.True(t, errors.Is(err, ErrPlaceholderAmbiguous))

	_, err = ParseTemplate("###", DefaultPlaceholder)
	assert.True(t, errors.Is(err, ErrPlaceholderAmbiguous))
}

func TestRenderInjective(t *testing.T) {
	tmpl, err := ParseTemplate("x#y", DefaultPlaceholder)
	require.NoError(t, err)

	space, err := NewSpace(2, 0)
	require.NoError(t, err)

	seen := make(map[string]struct{}, space.Size())
	for i := uint64(0); i < space.Size(); i++ {
		hex := space.HexAt(i)
		rendered := tmpl.Render(hex)
		require.Equal(t, "x"+hex+"y", rendered)
		_, dup := seen[rendered]
		require.False(t, dup)
		seen[rendered] = struct{}{}
	}
}
