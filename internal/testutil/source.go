package testutil

import (
	"context"
	"io"

	"github.com/frudas24/deskcorners/internal/corner"
)

// ChanSource is a pointer source fed from a channel. Closing C ends the
// stream with io.EOF.
type ChanSource struct {
	C chan corner.Point
}

// NewChanSource returns a source with a buffered channel.
func NewChanSource() *ChanSource {
	return &ChanSource{C: make(chan corner.Point, 64)}
}

// Next returns the next queued position.
func (s *ChanSource) Next(ctx context.Context) (corner.Point, error) {
	select {
	case p, ok := <-s.C:
		if !ok {
			return corner.Point{}, io.EOF
		}
		return p, nil
	case <-ctx.Done():
		return corner.Point{}, ctx.Err()
	}
}
