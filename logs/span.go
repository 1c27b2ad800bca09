package logs

import "context"

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

func SpanOf(ctx context.Context) Span {
	if v, ok := ctx.Value(SpanKey).(Span); ok {
		return v
	}
	return ""
}
