// Command gpsort organizes action-camera media dumps: it buckets files by
// extension, renames the known buckets to HIRES/PROXY/THUMBNAILS, and
// cross-links proxy and thumbnail files to their high-res siblings.
package main

func main() {
	Execute()
}
