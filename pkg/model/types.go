package model

import internalmodel "github.com/goliatone/go-tmplfill/internal/model"

// SegmentKind re-exports the internal segment kind enumeration.
type SegmentKind = internalmodel.SegmentKind

const (
	SegmentLiteral    = internalmodel.SegmentLiteral
	SegmentFilled     = internalmodel.SegmentFilled
	SegmentUnresolved = internalmodel.SegmentUnresolved
)

type Segment = internalmodel.Segment
type Line = internalmodel.Line
type TokenSet = internalmodel.TokenSet
type Mapping = internalmodel.Mapping

// NewTokenSet builds an ordered, duplicate-free token set.
func NewTokenSet(tokens ...string) TokenSet {
	return internalmodel.NewTokenSet(tokens...)
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return internalmodel.IsBlank(s)
}
