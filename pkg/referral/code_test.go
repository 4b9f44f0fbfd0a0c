package referral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerator(t *testing.T) {
	generate, err := NewGenerator()
	assert.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := generate()
		assert.Len(t, code, codeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
		}
		seen[code] = true
	}
	// random codes, collisions in 1000 draws would indicate a broken generator
	assert.Len(t, seen, 1000)
}
