package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactKey(t *testing.T) {
	k1 := ArtifactKey("Final Report.PDF")
	k2 := ArtifactKey("Final Report.PDF")

	assert.True(t, strings.HasPrefix(k1, ArtifactPrefix+"/"))
	assert.True(t, strings.HasSuffix(k1, ".pdf"))
	assert.NotContains(t, k1, "Final")
	assert.NotEqual(t, k1, k2)
	assert.True(t, strings.HasSuffix(ArtifactKey("noext"), ".pdf"))
}
