package purchase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReference(t *testing.T) {
	ref := NewReference()

	assert.True(t, strings.HasPrefix(ref, "TXN"))
	assert.GreaterOrEqual(t, len(ref), len("TXN")+13+9)
	assert.Equal(t, strings.ToUpper(ref), ref)
}

func TestNewReference_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		assert.False(t, seen[ref], "reference %s issued twice", ref)
		seen[ref] = true
	}
}

func TestRandomSuffix_Length(t *testing.T) {
	assert.Len(t, randomSuffix(5), 5)
	assert.Len(t, randomSuffix(9), 9)
	assert.Len(t, randomSuffix(100), 32)
}
