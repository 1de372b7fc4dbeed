package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURI(t *testing.T) {
	uri := EncodeDataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", uri)

	mediaType, payload, ok := ParseDataURI(uri)
	assert.True(t, ok)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, "iVBORw==", payload)

	_, _, ok = ParseDataURI("https://example.com/knee.png")
	assert.False(t, ok)

	p := PainPoint{Image: uri}
	att, ok := p.Attachment()
	assert.True(t, ok)
	assert.Equal(t, ImageAttachment{MediaType: "image/png", Data: "iVBORw=="}, att)
	assert.True(t, p.HasImage())
}
