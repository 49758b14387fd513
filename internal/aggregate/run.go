package aggregate

import (
	"context"

	"git.home.luguber.info/inful/stylebuilder/internal/record"
)

// Producer delivers records in order until it runs out or fn fails.
type Producer interface {
	Each(ctx context.Context, fn func(*record.Record) error) error
}

// Run feeds every record from p through t and finishes the run once the
// producer reports end of input. The first error stops the run; Finish is
// not called in that case.
func Run[T any](ctx context.Context, p Producer, t *Transformer[T]) error {
	if err := p.Each(ctx, t.Process); err != nil {
		return err
	}
	return t.Finish()
}
