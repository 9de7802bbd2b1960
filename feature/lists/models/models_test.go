package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemImage_ObjectKey(t *testing.T) {
	img := ItemImage{ID: "0b94f3a1-6f2d-4f7e-8a57-2f9f2a1c1234"}
	assert.Equal(t, "images/0b94f3a1-6f2d-4f7e-8a57-2f9f2a1c1234.bin", img.ObjectKey())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "lists", List{}.TableName())
	assert.Equal(t, "items", Item{}.TableName())
	assert.Equal(t, "item_images", ItemImage{}.TableName())
}
