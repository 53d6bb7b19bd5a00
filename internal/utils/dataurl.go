package utils

import (
	"encoding/base64"
	"net/http"
)

// DataURL encodes content as a base64 data URL, sniffing the media type.
func DataURL(content []byte) string {
	return "data:" + http.DetectContentType(content) + ";base64," + base64.StdEncoding.EncodeToString(content)
}
