package pkg

import (
	"encoding/base64"
	"regexp"
)

var dataURIPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// EncodeDataURI builds a base64 data URI for raw bytes.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits a base64 data URI into its media type and payload.
// The payload is returned still encoded.
func ParseDataURI(uri string) (mediaType, payload string, ok bool) {
	m := dataURIPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Attachment converts the point's image to an outbound attachment.
func (p PainPoint) Attachment() (ImageAttachment, bool) {
	mediaType, payload, ok := ParseDataURI(p.Image)
	if !ok {
		return ImageAttachment{}, false
	}
	return ImageAttachment{MediaType: mediaType, Data: payload}, true
}
