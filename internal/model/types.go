package model

import "strings"

// SegmentKind classifies one fragment of a rendered template line.
type SegmentKind string

const (
	// SegmentLiteral marks template text carried through unchanged.
	SegmentLiteral SegmentKind = "literal"
	// SegmentFilled marks a placeholder replaced by a non-blank value.
	SegmentFilled SegmentKind = "filled"
	// SegmentUnresolved marks a placeholder whose value was missing or
	// blank; the segment text preserves the original token, delimiters
	// included, so the gap stays visible in the output.
	SegmentUnresolved SegmentKind = "unresolved"
)

// Segment is a single styled fragment of a rendered line. Struct fields are
// annotated so writers and tests can serialise lines directly.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// Line is the ordered segment sequence produced for one template line.
// Concatenating segment texts in order reproduces the line with tokens
// replaced, minus any blank literal fragments the renderer dropped.
type Line []Segment

// Text joins the segment texts in order.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Has reports whether the line contains at least one segment of kind.
func (l Line) Has(kind SegmentKind) bool {
	for _, seg := range l {
		if seg.Kind == kind {
			return true
		}
	}
	return false
}

// Last returns the final segment of the line.
func (l Line) Last() (Segment, bool) {
	if len(l) == 0 {
		return Segment{}, false
	}
	return l[len(l)-1], true
}

// TokenSet holds placeholder tokens in first-occurrence order with no
// duplicates. Token identity is the exact string including delimiters, so
// "$Host$" and "$HOST$" are distinct entries. The zero value is ready to use.
type TokenSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTokenSet builds a set from the supplied tokens, keeping first-occurrence
// order and discarding duplicates.
func NewTokenSet(tokens ...string) TokenSet {
	var set TokenSet
	for _, token := range tokens {
		set.Add(token)
	}
	return set
}

// Add appends a token unless it is already present. It reports whether the
// token was inserted.
func (s *TokenSet) Add(token string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, exists := s.seen[token]; exists {
		return false
	}
	s.seen[token] = struct{}{}
	s.order = append(s.order, token)
	return true
}

// Contains reports whether the token is present.
func (s TokenSet) Contains(token string) bool {
	_, ok := s.seen[token]
	return ok
}

// Len returns the number of distinct tokens.
func (s TokenSet) Len() int {
	return len(s.order)
}

// At returns the token at position i in first-occurrence order.
func (s TokenSet) At(i int) string {
	return s.order[i]
}

// Tokens returns a defensive copy of the ordered token slice.
func (s TokenSet) Tokens() []string {
	return append([]string(nil), s.order...)
}

// Mapping associates placeholder tokens with replacement values for one
// fill-in instance. A missing key and a blank value render the same way.
type Mapping map[string]string

// IsBlank reports whether s is empty or whitespace-only. The same rule
// decides which literal fragments are dropped and which mapped values count
// as unresolved, so every stage shares it.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
