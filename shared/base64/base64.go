package base64

import "strings"

const encodingMarker = ";base64,"

// GetContentType extracts the MIME type from a data URI, e.g. "image/png"
// out of "data:image/png;base64,...". Anything that is not a base64 data URI
// yields an empty string.
func GetContentType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ""
	}

	contentType, _, found := strings.Cut(rest, encodingMarker)
	if !found {
		return ""
	}

	return contentType
}
