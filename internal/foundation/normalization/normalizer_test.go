package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

type testEnum string

const (
	testEnumAlpha testEnum = "alpha"
	testEnumBeta  testEnum = "beta"
)

func newTestNormalizer() *Normalizer[testEnum] {
	return NewNormalizer("test enum", map[string]testEnum{
		"alpha": testEnumAlpha,
		"beta":  testEnumBeta,
	}, testEnumAlpha)
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()
	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "alpha", testEnumAlpha},
		{"case insensitive", "BETA", testEnumBeta},
		{"with spaces", "  beta  ", testEnumBeta},
		{"invalid input", "invalid", testEnumAlpha},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeStrict(t *testing.T) {
	n := newTestNormalizer()

	v, err := n.NormalizeStrict("")
	require.NoError(t, err)
	assert.Equal(t, testEnumAlpha, v)

	v, err = n.NormalizeStrict(" Beta ")
	require.NoError(t, err)
	assert.Equal(t, testEnumBeta, v)

	_, err = n.NormalizeStrict("gamma")
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryValidation, ferrors.GetCategory(err))
	assert.Contains(t, err.Error(), "invalid test enum")
}

func TestValidKeysSorted(t *testing.T) {
	assert.Equal(t, []string{"alpha", "beta"}, newTestNormalizer().ValidKeys())
}
