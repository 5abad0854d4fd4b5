package domain

// Annotation is the metadata attached to one identifier sub-span of a
// link occurrence.
type Annotation struct {
	// ID uniquely identifies the annotation within an activation pass.
	ID string

	// Start and End bound the annotated characters, [Start, End).
	Start int
	End   int

	// Key is the raw identifier string.
	Key string

	// Tooltip is the citation resolved at activation time.
	// Nil when no matching record exists.
	Tooltip *string
}

// LinkOccurrence is one annotated litdb link span. Its bounds cover the
// whole identifier list; Annotations carry the per-identifier sub-spans
// in document order.
type LinkOccurrence struct {
	Start int
	End   int

	Annotations []Annotation
}

// Buffer is a span of editor text plus the link annotations computed
// for it. Occurrences are recomputed per activation pass and never
// persisted; the text itself is never altered by annotation.
type Buffer struct {
	Text string

	Occurrences []LinkOccurrence
}

// AddOccurrence appends an occurrence. The annotator adds occurrences
// in document order, which OccurrenceAt relies on.
func (b *Buffer) AddOccurrence(o LinkOccurrence) {
	b.Occurrences = append(b.Occurrences, o)
}

// OccurrenceAt returns the occurrence containing pos, if any.
func (b *Buffer) OccurrenceAt(pos int) (*LinkOccurrence, bool) {
	for i := range b.Occurrences {
		o := &b.Occurrences[i]
		if pos >= o.Start && pos < o.End {
			return o, true
		}
	}
	return nil, false
}

// OccurrenceEndingAt returns the occurrence whose end is exactly pos,
// if any. This is the boundary case where the character immediately
// before pos is annotated but pos itself is not.
func (b *Buffer) OccurrenceEndingAt(pos int) (*LinkOccurrence, bool) {
	for i := range b.Occurrences {
		o := &b.Occurrences[i]
		if pos == o.End {
			return o, true
		}
	}
	return nil, false
}

// AnnotationAt returns the identifier annotation at pos, if any.
// Positions on separators inside an occurrence carry no annotation.
func (b *Buffer) AnnotationAt(pos int) (*Annotation, bool) {
	o, ok := b.OccurrenceAt(pos)
	if !ok {
		return nil, false
	}
	for i := range o.Annotations {
		a := &o.Annotations[i]
		if pos >= a.Start && pos < a.End {
			return a, true
		}
	}
	return nil, false
}

// TooltipAt returns the tooltip at exactly pos, or nil when the
// position carries no annotation. There is no fallback interpolation.
func (b *Buffer) TooltipAt(pos int) *string {
	a, ok := b.AnnotationAt(pos)
	if !ok {
		return nil
	}
	return a.Tooltip
}
