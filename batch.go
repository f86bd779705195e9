package huffman

import (
	"context"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/sync/errgroup"
)

// EncodeAll runs Encode over each input concurrently, with at most limit
// sessions in flight (limit <= 0 means no limit).  Each session builds its
// own tree and code table.  The results are in the same order as inputs.  If
// any session fails or ctx is cancelled, the first error is returned.
func EncodeAll(ctx context.Context, inputs [][]byte, limit int) ([]*Encoded, error) {
	out := make([]*Encoded, len(inputs))
	err := runAll(ctx, len(inputs), limit, func(i int) error {
		enc, err := Encode(inputs[i])
		if err != nil {
			return err
		}
		out[i] = enc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll runs Decode over each Encoded concurrently, with at most limit
// decodes in flight (limit <= 0 means no limit).  The Encoded values may
// share trees.
func DecodeAll(ctx context.Context, encoded []*Encoded, limit int) ([][]byte, error) {
	out := make([][]byte, len(encoded))
	err := runAll(ctx, len(encoded), limit, func(i int) error {
		assert.Assertf(encoded[i] != nil, "encoded[%d] is nil", i)
		data, err := encoded[i].Decode()
		if err != nil {
			return err
		}
		out[i] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func runAll(ctx context.Context, n int, limit int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
