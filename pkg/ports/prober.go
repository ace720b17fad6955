package ports

// ClipInfo describes an encoded clip.
type ClipInfo struct {
	Codec      string
	Frames     int
	DurationMs int
	Width      int
	Height     int
}

// ClipProber inspects encoded clips.
type ClipProber interface {
	// Probe reads the container metadata of the clip at path.
	Probe(path string) (ClipInfo, error)
}
