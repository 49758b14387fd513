package kss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

const buttonSource = `// Buttons
//
// Your standard button suitable for clicking.
//
// :hover   - Highlights when hovering.
// .primary - The call to action.
//
// Markup: <button class="btn {{modifier_class}}">Click</button>
//
// Weight: 2
//
// Styleguide 1.2.
.btn { color: red; }
`

func TestParse_LineCommentSection(t *testing.T) {
	guide, err := Parse(buttonSource)
	require.NoError(t, err)
	require.Len(t, guide.Sections, 1)

	sec := guide.Sections[0]
	assert.Equal(t, "Buttons", sec.Header)
	assert.Equal(t, "Your standard button suitable for clicking.", sec.Description)
	assert.Equal(t, "<p>Your standard button suitable for clicking.</p>", sec.DescriptionHTML)
	assert.Equal(t, "1.2", sec.Reference)
	assert.Equal(t, 2, sec.Depth)
	assert.Equal(t, 2.0, sec.Weight)
	assert.Equal(t, `<button class="btn {{modifier_class}}">Click</button>`, sec.Markup)
	assert.Equal(t, []string{"btn"}, sec.MarkupClasses)
	require.Len(t, sec.Modifiers, 2)
	assert.Equal(t, Modifier{Name: ":hover", Description: "Highlights when hovering.", ClassName: "pseudo-class-hover"}, sec.Modifiers[0])
	assert.Equal(t, Modifier{Name: ".primary", Description: "The call to action.", ClassName: "primary"}, sec.Modifiers[1])
	assert.NotEmpty(t, sec.Fingerprint)
	assert.False(t, sec.Deprecated)
}

func TestParse_BlockCommentSection(t *testing.T) {
	src := `/*
 * Deprecated: Old forms
 *
 * $size  - Base size of the input.
 * $color - Border color.
 *
 * Markup:
 * <form class="form">
 *   <input class="form-input">
 * </form>
 *
 * Styleguide forms - inputs
 */
@mixin input($size, $color) {}
`
	guide, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, guide.Sections, 1)

	sec := guide.Sections[0]
	assert.Equal(t, "Deprecated: Old forms", sec.Header)
	assert.True(t, sec.Deprecated)
	assert.Equal(t, "forms - inputs", sec.Reference)
	assert.Equal(t, 2, sec.Depth)
	assert.Equal(t, []Parameter{
		{Name: "$size", Description: "Base size of the input."},
		{Name: "$color", Description: "Border color."},
	}, sec.Parameters)
	assert.Equal(t, []string{"form", "form-input"}, sec.MarkupClasses)
	assert.Empty(t, sec.Description)
}

func TestParse_SkipsCommentsWithoutReference(t *testing.T) {
	guide, err := Parse("// comment\nbody")
	require.NoError(t, err)
	require.NotNil(t, guide)
	assert.Empty(t, guide.Sections)

	guide, err = Parse("// Helpers\n//\n// No styleguide reference.\n.x{}")
	require.NoError(t, err)
	assert.Empty(t, guide.Sections)
}

func TestParse_IsDeterministic(t *testing.T) {
	a, err := Parse(buttonSource)
	require.NoError(t, err)
	b, err := Parse(buttonSource)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_SortsByReference(t *testing.T) {
	src := `// Tables
//
// Styleguide 10

// Links
//
// Styleguide 2.1

// Typography
//
// Styleguide 2
`
	guide, err := Parse(src)
	require.NoError(t, err)
	var refs []string
	for _, s := range guide.Sections {
		refs = append(refs, s.Reference)
	}
	assert.Equal(t, []string{"2", "2.1", "10"}, refs)

	sec, ok := guide.Section("2.1.0")
	require.True(t, ok)
	assert.Equal(t, "Links", sec.Header)
}

func TestParse_InvalidWeight(t *testing.T) {
	_, err := Parse("// Box\n//\n// Weight: heavy\n//\n// Styleguide 3\n")
	require.Error(t, err)
	assert.True(t, ferrors.IsParseFailure(err))
}

func TestParse_ExperimentalDescription(t *testing.T) {
	guide, err := Parse("// Grid\n//\n// Experimental: may change.\n// Uses *flexbox*.\n//\n// Styleguide 4\n")
	require.NoError(t, err)
	require.Len(t, guide.Sections, 1)
	sec := guide.Sections[0]
	assert.True(t, sec.Experimental)
	assert.Equal(t, "Experimental: may change.\nUses *flexbox*.", sec.Description)
	assert.Contains(t, sec.DescriptionHTML, "<em>flexbox</em>")
}

func TestParse_FingerprintTracksContent(t *testing.T) {
	a, err := Parse("// Box\n//\n// Styleguide 3\n")
	require.NoError(t, err)
	b, err := Parse("// Box\n//\n// A box.\n//\n// Styleguide 3\n")
	require.NoError(t, err)
	assert.NotEqual(t, a.Sections[0].Fingerprint, b.Sections[0].Fingerprint)
}
