// Package naming holds the pure naming policy: the canonical folder names,
// the extension-to-folder mapping, the rename rules for proxy and thumbnail
// files, and per-file attribute derivation.
//
// Everything here is a total function over strings; filesystem effects live
// in the fsops package.
package naming

import "fmt"

// Canonical folder names that recognized extension buckets are renamed to.
const (
	HiRes      = "HIRES"
	Proxy      = "PROXY"
	Thumbnails = "THUMBNAILS"
)

// prefixLen is the length of the camera-firmware prefix ("GH", "GL", "GX")
// that precedes the recording index in a base name.
const prefixLen = 2

// CanonicalFolders maps a lowercased source extension to the canonical
// folder its bucket is renamed to. Folders with any other name pass through
// the conformer untouched.
var CanonicalFolders = map[string]string{
	"mp4": HiRes,
	"lrv": Proxy,
	"thm": Thumbnails,
}

// Rule describes how a file's new name is derived from its base name:
// the correlation substring starting at IndexOffset is formatted into
// Template's single placeholder.
type Rule struct {
	Template    string
	IndexOffset int
}

// Built-in rules. The proxy rule strips the low-res "GL" prefix and adopts
// the high-res prefix and container extension; the thumbnail rule keeps the
// base name and swaps the extension to JPG.
var (
	ProxyRule     = Rule{Template: "GH%s.MP4", IndexOffset: 2}
	ThumbnailRule = Rule{Template: "%s.JPG", IndexOffset: 0}
)

// Derive applies a rule to a base name. Total over any input; an offset past
// the end of the base name yields a degenerate (empty-substring) name.
func Derive(baseName string, r Rule) string {
	return fmt.Sprintf(r.Template, sliceFrom(baseName, r.IndexOffset))
}

// CorrelationKey returns the portion of a base name shared between a
// recording's high-res, proxy, and thumbnail files: everything after the
// firmware prefix.
func CorrelationKey(baseName string) string {
	return sliceFrom(baseName, prefixLen)
}

func sliceFrom(s string, offset int) string {
	if offset >= len(s) {
		return ""
	}
	return s[offset:]
}
