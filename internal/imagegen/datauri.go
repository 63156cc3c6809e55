package imagegen

import (
	"encoding/base64"
	"errors"
	"strings"
)

const defaultMIMEType = "image/png"

// errInvalidBase64 is returned when an image payload does not decode.
var errInvalidBase64 = errors.New("image data is not valid base64")

// DataURI is a parsed "data:<mime>;base64,<payload>" string. A bare base64
// string parses with the default MIME type.
type DataURI struct {
	MIMEType string
	Payload  string
}

// ParseDataURI splits an optional data-URL prefix from its payload.
func ParseDataURI(s string) DataURI {
	uri := DataURI{MIMEType: defaultMIMEType, Payload: s}

	prefix, payload, found := strings.Cut(s, "base64,")
	if !found {
		return uri
	}
	uri.Payload = payload
	if strings.Contains(prefix, "image/") {
		mime := strings.TrimSpace(prefix)
		mime = strings.Replace(mime, "data:", "", 1)
		mime = strings.Replace(mime, ";base64", "", 1)
		mime = strings.Replace(mime, ";", "", 1)
		uri.MIMEType = mime
	}
	return uri
}

// Extension returns the temp-file suffix for the MIME type.
func (d DataURI) Extension() string {
	switch d.MIMEType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// Decode returns the raw image bytes. Standard and URL-safe alphabets are
// accepted, padded or not.
func (d DataURI) Decode() ([]byte, error) {
	payload := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, d.Payload)
	if payload == "" {
		return nil, errInvalidBase64
	}

	for _, enc := range decodeEncodings {
		if data, err := enc.DecodeString(payload); err == nil {
			return data, nil
		}
	}
	return nil, errInvalidBase64
}

var decodeEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}
