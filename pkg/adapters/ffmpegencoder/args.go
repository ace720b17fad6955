package ffmpegencoder

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/user/prepareclips/pkg/ports"
)

// EvenDimensionsFilter pads odd frame sizes up to the next even number,
// which yuv420p H.264 requires.
const EvenDimensionsFilter = "pad=ceil(iw/2)*2:ceil(ih/2)*2"

// Settings are the fixed output options applied to every clip.
type Settings struct {
	Codec   string
	Profile string
	CRF     int
	PixFmt  string
	Filter  string
}

// DefaultSettings returns H.264 high profile, CRF 20, yuv420p with even padding.
func DefaultSettings() Settings {
	return Settings{
		Codec:   "libx264",
		Profile: "high",
		CRF:     20,
		PixFmt:  "yuv420p",
		Filter:  EvenDimensionsFilter,
	}
}

// BuildArgs returns the ffmpeg arguments (without the executable) that
// encode req with s. Input frames are read with the glob pattern type.
func BuildArgs(s Settings, req ports.ClipRequest) []string {
	input := ffmpeg.KwArgs{
		"framerate":    req.FrameRate,
		"pattern_type": "glob",
	}

	output := ffmpeg.KwArgs{
		"c:v":     s.Codec,
		"pix_fmt": s.PixFmt,
	}
	if s.Profile != "" {
		output["profile:v"] = s.Profile
	}
	if s.CRF >= 0 {
		output["crf"] = s.CRF
	}
	if s.Filter != "" {
		output["vf"] = s.Filter
	}

	return ffmpeg.Input(req.InputPattern, input).
		Output(req.OutputPath, output).
		OverWriteOutput().
		GetArgs()
}
