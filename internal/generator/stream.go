package generator

import (
	"context"
)

// Stream sends opts.Count passwords on the returned channel, or keeps
// going until ctx is done when opts.Count is zero. The channel is closed
// when the stream ends.
func (g *Generator) Stream(ctx context.Context, opts Options) (<-chan string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ch := make(chan string, 1000)
	pool := opts.Pool()

	go func() {
		defer close(ch)

		for i := uint64(0); opts.Count == 0 || i < opts.Count; i++ {
			select {
			case <-ctx.Done():
				return
			default:
			}

			password := g.password(pool, opts.MinLength, opts.MaxLength)

			select {
			case <-ctx.Done():
				return
			case ch <- password:
			}
		}
	}()

	return ch, nil
}
