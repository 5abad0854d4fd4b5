package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

func TestAnnotateOccurrence_WellFormed(t *testing.T) {
	store := storeWith(map[string][2]*string{
		"a": {strptr("Citation A"), nil},
		// "b" has a record but no citation field.
		"b": {nil, nil},
	})
	svc := NewAnnotateService(store, &mockParser{})

	text := "see litdb:a,b done"
	b := &domain.Buffer{Text: text}
	err := svc.AnnotateOccurrence(context.Background(), b, 10, 13, "a,b", false)
	require.NoError(t, err)

	// Exactly N spans, non-overlapping, in document order.
	require.Len(t, b.Occurrences, 1)
	anns := b.Occurrences[0].Annotations
	require.Len(t, anns, 2)

	assert.Equal(t, "a", anns[0].Key)
	assert.Equal(t, 10, anns[0].Start)
	assert.Equal(t, 11, anns[0].End)
	require.NotNil(t, anns[0].Tooltip)
	assert.Equal(t, "Citation A", *anns[0].Tooltip)
	assert.NotEmpty(t, anns[0].ID)

	assert.Equal(t, "b", anns[1].Key)
	assert.Equal(t, 12, anns[1].Start)
	assert.Equal(t, 13, anns[1].End)
	assert.Nil(t, anns[1].Tooltip)

	assert.LessOrEqual(t, anns[0].End, anns[1].Start)
}

func TestAnnotateOccurrence_RepeatedIdentifiers(t *testing.T) {
	store := storeWith(map[string][2]*string{"a": {strptr("A"), nil}})
	svc := NewAnnotateService(store, &mockParser{})

	text := "litdb:a,a"
	b := &domain.Buffer{Text: text}
	err := svc.AnnotateOccurrence(context.Background(), b, 6, 9, "a,a", false)
	require.NoError(t, err)

	anns := b.Occurrences[0].Annotations
	require.Len(t, anns, 2)

	// Identical identifiers match left-to-right without overlap.
	assert.Equal(t, 6, anns[0].Start)
	assert.Equal(t, 7, anns[0].End)
	assert.Equal(t, 8, anns[1].Start)
	assert.Equal(t, 9, anns[1].End)
}

func TestAnnotateOccurrence_SpanMismatch_Skips(t *testing.T) {
	store := storeWith(map[string][2]*string{"a": {strptr("A"), nil}})
	svc := NewAnnotateService(store, &mockParser{})

	// The target claims "a,zz" but the buffer text does not contain zz
	// inside the bounds: the identifier is skipped, not annotated.
	text := "litdb:a,b"
	b := &domain.Buffer{Text: text}
	err := svc.AnnotateOccurrence(context.Background(), b, 6, 9, "a,zz", false)
	require.NoError(t, err)

	anns := b.Occurrences[0].Annotations
	require.Len(t, anns, 1)
	assert.Equal(t, "a", anns[0].Key)
}

func TestAnnotateOccurrence_SpanMismatch_Strict(t *testing.T) {
	store := storeWith(nil)
	svc := NewAnnotateService(store, &mockParser{})

	text := "litdb:a,b"
	b := &domain.Buffer{Text: text}
	err := svc.AnnotateOccurrence(context.Background(), b, 6, 9, "a,zz", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpanMismatch)
	assert.Contains(t, err.Error(), "zz")
}

func TestAnnotateOccurrence_BadBounds(t *testing.T) {
	svc := NewAnnotateService(storeWith(nil), &mockParser{})

	b := &domain.Buffer{Text: "short"}
	err := svc.AnnotateOccurrence(context.Background(), b, 0, 99, "a", false)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnnotateBuffer(t *testing.T) {
	store := storeWith(map[string][2]*string{
		"a": {strptr("A"), nil},
		"c": {strptr("C"), nil},
	})
	text := "x litdb:a,b y litdb:c z"
	parser := &mockParser{links: []domain.LinkNode{
		{TargetStart: 8, TargetEnd: 11, Target: "a,b"},
		{TargetStart: 20, TargetEnd: 21, Target: "c"},
	}}
	svc := NewAnnotateService(store, parser)

	b, err := svc.AnnotateBuffer(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, b.Occurrences, 2)
	assert.Len(t, b.Occurrences[0].Annotations, 2)
	assert.Len(t, b.Occurrences[1].Annotations, 1)

	// Tooltip lookups round-trip through the buffer.
	tip := b.TooltipAt(8)
	require.NotNil(t, tip)
	assert.Equal(t, "A", *tip)
	assert.Nil(t, b.TooltipAt(0))
}

func TestAnnotateBuffer_ParserError(t *testing.T) {
	parser := &mockParser{err: assert.AnError}
	svc := NewAnnotateService(storeWith(nil), parser)

	_, err := svc.AnnotateBuffer(context.Background(), "text")
	assert.Error(t, err)
}
