package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_ContainsDescriptionVerbatim(t *testing.T) {
	descriptions := []string{
		"a red silk evening gown",
		"denim jacket with embroidered sleeves & brass buttons",
		"oversized wool coat, floor length",
	}

	for _, d := range descriptions {
		assert.Contains(t, Build(d, false), d)
		assert.Contains(t, Build(d, true), d)
	}
}

func TestBuild_ReferenceGuidance(t *testing.T) {
	withRef := Build("a pleated linen skirt", true)
	withoutRef := Build("a pleated linen skirt", false)

	assert.Contains(t, withRef, "Silhouette and proportions")
	assert.Contains(t, withRef, "rather than copying the reference design outright")
	assert.NotContains(t, withoutRef, "reference image")
}

func TestBuild_PhotographySpecAlwaysAppended(t *testing.T) {
	for _, hasRef := range []bool{true, false} {
		p := Build("a velvet blazer", hasRef)
		assert.Contains(t, p, "studio lighting")
		assert.True(t, strings.HasSuffix(p, "high-end e-commerce product photo."))
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first := Build("a trench coat with a removable hood", true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build("a trench coat with a removable hood", true))
	}
}

func TestBuild_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Build("x", false))
}
