package glbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCStr(t *testing.T) {
	assert.Equal(t, "mvp\x00", cstr("mvp"))
	assert.Equal(t, "mvp\x00", cstr("mvp\x00"))
	assert.Equal(t, "\x00", cstr(""))
}
