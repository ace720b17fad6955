// Package mp4probe inspects encoded clips using mp4ff.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/prepareclips/pkg/ports"
)

// Codec names reported in ports.ClipInfo.
const (
	CodecH264    = "h264"
	CodecHEVC    = "hevc"
	CodecAV1     = "av1"
	CodecUnknown = "unknown"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.ClipProber.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe reads the clip at path.
func (p *Prober) Probe(path string) (ports.ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads a progressive MP4 from r.
func ProbeReader(r io.ReadSeeker) (ports.ClipInfo, error) {
	file, err := mp4.DecodeFile(r)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("decode mp4: %w", err)
	}
	if file.Moov == nil {
		return ports.ClipInfo{}, fmt.Errorf("decode mp4: missing moov box")
	}

	for _, trak := range file.Moov.Traks {
		if info, ok := videoTrackInfo(trak); ok {
			return info, nil
		}
	}
	return ports.ClipInfo{}, ErrNoVideoTrack
}

func videoTrackInfo(trak *mp4.TrakBox) (ports.ClipInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.ClipInfo{}, false
	}

	info := ports.ClipInfo{Codec: CodecUnknown}

	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return info, true
	}
	stbl := trak.Mdia.Minf.Stbl

	if stbl.Stsz != nil {
		info.Frames = int(stbl.Stsz.SampleNumber)
	}

	if stbl.Stsd != nil {
		for _, child := range stbl.Stsd.Children {
			switch child.Type() {
			case "avc1", "avc3":
				info.Codec = CodecH264
			case "hvc1", "hev1":
				info.Codec = CodecHEVC
			case "av01":
				info.Codec = CodecAV1
			default:
				continue
			}
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
				info.Width = int(vse.Width)
				info.Height = int(vse.Height)
			}
			break
		}
	}

	return info, true
}

var _ ports.ClipProber = (*Prober)(nil)
