package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx to err. nil stays nil.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
