package sampler

import "io"

type byteReader struct {
	s Sampler
}

// Reader adapts a Sampler into an io.Reader producing uniformly
// distributed bytes, so identifiers can be derived from the same
// randomness source as the rest of a scenario.
func Reader(s Sampler) io.Reader {
	return byteReader{s: s}
}

func (r byteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.s.Int(0, 255))
	}
	return len(p), nil
}
