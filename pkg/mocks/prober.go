package mocks

import "github.com/user/prepareclips/pkg/ports"

// ClipProber is a mock implementation of ports.ClipProber.
type ClipProber struct {
	ProbeFunc func(path string) (ports.ClipInfo, error)

	Probed []string
}

func (m *ClipProber) Probe(path string) (ports.ClipInfo, error) {
	m.Probed = append(m.Probed, path)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	return ports.ClipInfo{Codec: "h264", Frames: 1}, nil
}

var _ ports.ClipProber = (*ClipProber)(nil)
