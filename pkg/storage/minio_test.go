package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDataURI(t *testing.T) {
	t.Run("with data URI prefix", func(t *testing.T) {
		contentType, raw := splitDataURI("data:image/png;base64,iVBORw0KGgo=")
		assert.Equal(t, "image/png", contentType)
		assert.Equal(t, "iVBORw0KGgo=", raw)
	})

	t.Run("bare base64 defaults to jpeg", func(t *testing.T) {
		contentType, raw := splitDataURI("/9j/4AAQSkZJRg==")
		assert.Equal(t, "image/jpeg", contentType)
		assert.Equal(t, "/9j/4AAQSkZJRg==", raw)
	})
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".gif", extensionFor("image/gif"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("application/octet-stream"))
}

func TestPublicURL(t *testing.T) {
	t.Run("external URL wins", func(t *testing.T) {
		s := &MinIOStorage{bucket: "sosfido-media", endpoint: "minio:9000", publicURL: "https://media.sosfido.local/"}
		assert.Equal(t, "https://media.sosfido.local/sosfido-media/photos/a.jpg", s.PublicURL("photos/a.jpg"))
	})

	t.Run("falls back to the endpoint", func(t *testing.T) {
		s := &MinIOStorage{bucket: "sosfido-media", endpoint: "localhost:9000"}
		assert.Equal(t, "http://localhost:9000/sosfido-media/photos/a.jpg", s.PublicURL("photos/a.jpg"))
	})
}
