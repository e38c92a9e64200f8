package pipeline

// RunStats tracks aggregate counters across one run.
type RunStats struct {
	Dirs           int // Directory arguments processed.
	Moved          int // Files bucketed by the sorter.
	FoldersRenamed int // Extension buckets conformed to canonical names.
	Thumbnails     int // Thumbnail files renamed by the linker.
	Proxies        int // Proxy files cross-linked to high-res stems.
	FilesConformed int // Individual file arguments conformed.
}

// Renames returns the total number of rename operations performed.
func (s *RunStats) Renames() int {
	return s.Moved + s.FoldersRenamed + s.Thumbnails + s.Proxies + s.FilesConformed
}
