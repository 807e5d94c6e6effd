package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads dir/name into a null-terminated string for OpenGL.
func LoadShader(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
