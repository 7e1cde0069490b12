package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "linen-shirt", FromName("Linen Shirt"))
	assert.Equal(t, "photo-1", FromName("  Photo (1) "))
	assert.Equal(t, "image", FromName("???"))
	assert.Equal(t, "image", FromName(""))
}
