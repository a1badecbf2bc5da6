package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const ArtifactPrefix = "project-artifacts"

// ArtifactKey names a stored artifact, keeping the original extension.
func ArtifactKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".pdf"
	}
	return fmt.Sprintf("%s/%s%s", ArtifactPrefix, uuid.New().String(), ext)
}
