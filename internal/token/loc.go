package token

import "fmt"

// Pos is a single point in the source text.
type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d,%d", p.Line, p.Column, p.Offset)
}

// Loc is an immutable source span used only for diagnostics.
type Loc struct {
	Start Pos
	End   Pos
}

func (l *Loc) String() string {
	if l == nil {
		return ""
	}
	return l.Start.String() + ".." + l.End.String()
}

// Span joins two locations into one covering both. Either may be nil.
func Span(from, to *Loc) *Loc {
	switch {
	case from == nil:
		return to
	case to == nil:
		return from
	}
	return &Loc{Start: from.Start, End: to.End}
}
