package scriptor

import (
	"context"
	"math"
)

// LongArgumentType parses an int64, optionally bounded to [Min, Max].
//
// Unlike a naive port, this reads the full numeric token via the long
// tokenizer rather than a single character, so multi-digit and negative
// longs parse correctly.
type LongArgumentType[S any] struct {
	Min int64
	Max int64
}

func Long[S any]() *LongArgumentType[S] {
	return &LongArgumentType[S]{Min: math.MinInt64, Max: math.MaxInt64}
}

func LongInRange[S any](min, max int64) *LongArgumentType[S] {
	return &LongArgumentType[S]{Min: min, Max: max}
}

func (t *LongArgumentType[S]) Parse(reader *StringReader) (int64, error) {
	start := reader.Cursor()
	value, err := reader.ReadLong()
	if err != nil {
		return 0, err
	}
	if value < t.Min {
		reader.SetCursor(start)
		return 0, errLongTooLow(value, t.Min).withContext(reader)
	}
	if value > t.Max {
		reader.SetCursor(start)
		return 0, errLongTooHigh(value, t.Max).withContext(reader)
	}
	return value, nil
}

func (t *LongArgumentType[S]) ListSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	return noSuggestions[S](ctx, cc, builder)
}

func (t *LongArgumentType[S]) Examples() []string { return []string{"0", "123", "-123"} }
