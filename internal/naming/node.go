package naming

import (
	"path/filepath"
	"strings"
)

// MediaNode is a filesystem path plus the attributes the policy works from.
// Nodes are derived fresh from directory listings at each traversal step;
// nothing is cached across phases.
type MediaNode struct {
	Path string
	Base string // Filename without extension.
	Ext  string // Lowercased extension without the leading dot; "" when absent.
}

// NodeFor derives a MediaNode from a path. A leading-dot name with no other
// dot ("`.Spotlight-V100`") counts as having no extension.
func NodeFor(path string) MediaNode {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	return MediaNode{
		Path: path,
		Base: strings.TrimSuffix(name, ext),
		Ext:  strings.ToLower(strings.TrimPrefix(ext, ".")),
	}
}

// CorrelationKey returns the node's recording-index substring.
func (n MediaNode) CorrelationKey() string {
	return CorrelationKey(n.Base)
}
