package scriptor

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

// foldCaser case-folds suggestion text for comparison/dedup, rather than a
// bare strings.ToLower, so non-ASCII candidates fold the same way the rest
// of the pack's locale-aware text handling does.
var foldCaser = cases.Fold()

// Suggestion is one completion candidate, with the input range it would
// replace. IntValue is non-nil for suggestions drawn from an integer
// domain (e.g. numeric IDs): these sort numerically among themselves and
// fall back to text order against any suggestion without an IntValue,
// rather than needing a distinct suggestion type in the result slice.
type Suggestion struct {
	Range    StringRange
	Text     string
	Tooltip  Message
	IntValue *int
}

func NewSuggestion(rng StringRange, text string) *Suggestion {
	return &Suggestion{Range: rng, Text: text}
}

func NewIntSuggestion(rng StringRange, value int) *Suggestion {
	v := value
	return &Suggestion{Range: rng, Text: itoa(value), IntValue: &v}
}

func (s *Suggestion) WithTooltip(tooltip Message) *Suggestion {
	s.Tooltip = tooltip
	return s
}

// Apply renders the suggestion's replacement back into the full input.
func (s *Suggestion) Apply(input string) string {
	if s.Range.Start == 0 && s.Range.End == len(input) {
		return s.Text
	}
	var b strings.Builder
	if s.Range.Start > 0 {
		b.WriteString(input[:s.Range.Start])
	}
	b.WriteString(s.Text)
	if s.Range.End < len(input) {
		b.WriteString(input[s.Range.End:])
	}
	return b.String()
}

// expand widens a suggestion's range to cover a broader span, padding the
// text with whatever of the original input falls outside its own range.
func (s *Suggestion) expand(input string, rng StringRange) *Suggestion {
	if rng == s.Range {
		return s
	}
	var b strings.Builder
	if rng.Start < s.Range.Start {
		b.WriteString(input[rng.Start:s.Range.Start])
	}
	b.WriteString(s.Text)
	if rng.End > s.Range.End {
		b.WriteString(input[s.Range.End:rng.End])
	}
	return &Suggestion{Range: rng, Text: b.String(), Tooltip: s.Tooltip, IntValue: s.IntValue}
}

func suggestionLess(a, b *Suggestion) bool {
	if a.IntValue != nil && b.IntValue != nil {
		if *a.IntValue != *b.IntValue {
			return *a.IntValue < *b.IntValue
		}
	}
	return foldCaser.String(a.Text) < foldCaser.String(b.Text)
}

// Suggestions is a sorted, deduplicated (by Range, Text and Tooltip) batch of
// candidates.
type Suggestions struct {
	Range StringRange
	List  []*Suggestion
}

func EmptySuggestions() *Suggestions {
	return &Suggestions{Range: NewStringRangeAt(0)}
}

func (s *Suggestions) IsEmpty() bool { return len(s.List) == 0 }

func createSuggestions(input string, suggestions []*Suggestion) *Suggestions {
	if len(suggestions) == 0 {
		return EmptySuggestions()
	}
	rng := suggestions[0].Range
	for _, s := range suggestions[1:] {
		rng = EncompassingRange(rng, s.Range)
	}
	expanded := make([]*Suggestion, len(suggestions))
	for i, s := range suggestions {
		expanded[i] = s.expand(input, rng)
	}
	sort.SliceStable(expanded, func(i, j int) bool { return suggestionLess(expanded[i], expanded[j]) })
	deduped := make([]*Suggestion, 0, len(expanded))
	seen := make(map[suggestionKey]bool, len(expanded))
	for _, s := range expanded {
		key := dedupKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, s)
	}
	return &Suggestions{Range: rng, List: deduped}
}

type suggestionKey struct {
	rng     StringRange
	text    string
	tooltip string
}

func dedupKey(s *Suggestion) suggestionKey {
	key := suggestionKey{rng: s.Range, text: s.Text}
	if s.Tooltip != nil {
		key.tooltip = s.Tooltip.String()
	}
	return key
}

// MergeSuggestions combines the suggestions independently produced by a
// set of sibling nodes, run concurrently, into a single sorted batch over
// the original command line.
func MergeSuggestions(command string, input []*Suggestions) *Suggestions {
	if len(input) == 0 {
		return EmptySuggestions()
	}
	all := collectAll(input)
	return createSuggestions(command, all)
}

func collectAll(batches []*Suggestions) []*Suggestion {
	var all []*Suggestion
	for _, b := range batches {
		if b == nil {
			continue
		}
		all = append(all, b.List...)
	}
	return all
}

// SuggestionsBuilder accumulates candidates for one node's contribution to
// a completion request, within the [Start, input length) span it owns.
type SuggestionsBuilder struct {
	input        string
	start        int
	remaining    string
	remainingLow string
	result       []*Suggestion
}

func NewSuggestionsBuilder(input string, start int) *SuggestionsBuilder {
	return &SuggestionsBuilder{
		input:        input,
		start:        start,
		remaining:    input[start:],
		remainingLow: strings.ToLower(input[start:]),
	}
}

func (b *SuggestionsBuilder) Input() string            { return b.input }
func (b *SuggestionsBuilder) Start() int                { return b.start }
func (b *SuggestionsBuilder) Remaining() string         { return b.remaining }
func (b *SuggestionsBuilder) RemainingLowerCase() string { return b.remainingLow }

func (b *SuggestionsBuilder) Suggest(text string) *SuggestionsBuilder {
	if text == b.remaining {
		return b
	}
	b.result = append(b.result, NewSuggestion(NewStringRange(b.start, len(b.input)), text))
	return b
}

func (b *SuggestionsBuilder) SuggestWithTooltip(text string, tooltip Message) *SuggestionsBuilder {
	if text == b.remaining {
		return b
	}
	b.result = append(b.result, NewSuggestion(NewStringRange(b.start, len(b.input)), text).WithTooltip(tooltip))
	return b
}

func (b *SuggestionsBuilder) SuggestInt(value int) *SuggestionsBuilder {
	text := itoa(value)
	if text == b.remaining {
		return b
	}
	b.result = append(b.result, NewIntSuggestion(NewStringRange(b.start, len(b.input)), value))
	return b
}

func (b *SuggestionsBuilder) Build() *Suggestions {
	return createSuggestions(b.input, b.result)
}

// Restart produces a fresh builder over the same input/start, discarding
// any accumulated candidates, for a node that wants to reconsider from
// scratch (e.g. after widening its view of the remaining input).
func (b *SuggestionsBuilder) Restart() *SuggestionsBuilder {
	return NewSuggestionsBuilder(b.input, b.start)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

// safeListSuggestions runs one node's suggestion contribution, recovering
// from a panic into an empty contribution so one misbehaving node can't
// abort the whole fan-out.
func safeListSuggestions[S any](ctx context.Context, node Node[S], cc *CommandContext[S], builder *SuggestionsBuilder) (result *Suggestions) {
	defer func() {
		if r := recover(); r != nil {
			result = EmptySuggestions()
		}
	}()
	s, err := node.listSuggestions(ctx, cc, builder)
	if err != nil || s == nil {
		return EmptySuggestions()
	}
	return s
}

// fanOutSuggestions gathers every candidate's contribution concurrently via
// an errgroup barrier, then merges them into one sorted batch. Each node
// builds its suggestions against builderInput (the input truncated to the
// cursor, per node.listSuggestions's contract), but the merge step expands
// ranges against fullInput so a suggestion's range can still reach past the
// cursor into text the caller already typed.
func fanOutSuggestions[S any](ctx context.Context, nodes []Node[S], cc *CommandContext[S], builderInput string, start int, fullInput string) *Suggestions {
	results := make([]*Suggestions, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			results[i] = safeListSuggestions[S](gctx, node, cc, NewSuggestionsBuilder(builderInput, start))
			return nil
		})
	}
	_ = g.Wait()
	return MergeSuggestions(fullInput, results)
}
