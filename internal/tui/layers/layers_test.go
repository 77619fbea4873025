package layers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

func TestCreateCenteredLayer_Position(t *testing.T) {
	layer := CreateCenteredLayer("abcd\nefgh", 20, 10)
	require.NotNil(t, layer)
	assert.Equal(t, 8, layer.GetX())
	assert.Equal(t, 4, layer.GetY())
}

func TestCreateCenteredLayer_LargerThanScreen(t *testing.T) {
	layer := CreateCenteredLayer(strings.Repeat("x", 30), 20, 10)
	require.NotNil(t, layer)
	assert.Equal(t, 0, layer.GetX())
}

func TestCompose(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	assert.Equal(t, base, Compose(base, nil))

	out := Compose(base, CreateCenteredLayer("XX", 10, 5))
	assert.Contains(t, out, "XX")
}
