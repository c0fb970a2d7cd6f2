package lits

import "github.com/seekerror/stdlib/pkg/lang"

// Cell packs a single board square into one byte:
//
//	bit 0-1: tile kind, if covered
//	bit 2:   covered-by-tile presence flag
//	bit 3:   scoring symbol, if present (0 = X, 1 = O)
//	bit 4:   scoring-symbol presence flag
type Cell uint8

const (
	cellKindOffset       = 0
	cellKindMask         = 0b11
	cellCoveredBit       = 1 << 2
	cellSymbolOffset     = 3
	cellSymbolMask       = 0b1
	cellSymbolPresentBit = 1 << 4
)

// Covered reports whether a tetromino covers this cell.
func (c Cell) Covered() bool {
	return c&cellCoveredBit != 0
}

// Kind returns the tile kind covering this cell, if any.
func (c Cell) Kind() (Kind, bool) {
	if !c.Covered() {
		return 0, false
	}
	return Kind((c >> cellKindOffset) & cellKindMask), true
}

// Symbol returns the scoring symbol occupying this cell, if any.
func (c Cell) Symbol() (Player, bool) {
	if c&cellSymbolPresentBit == 0 {
		return 0, false
	}
	return Player((c >> cellSymbolOffset) & cellSymbolMask), true
}

// KindOption is Kind wrapped as an optional value, for callers that thread it through
// other lang.Optional-typed plumbing instead of branching on the ok result immediately.
func (c Cell) KindOption() lang.Optional[Kind] {
	if kind, ok := c.Kind(); ok {
		return lang.Some(kind)
	}
	return lang.Optional[Kind]{}
}

// SymbolOption is Symbol wrapped as an optional value, for the same reason as KindOption.
func (c Cell) SymbolOption() lang.Optional[Player] {
	if p, ok := c.Symbol(); ok {
		return lang.Some(p)
	}
	return lang.Optional[Player]{}
}

// WithKind returns a copy of c with the covering tile kind set, or cleared if ok is false.
func (c Cell) WithKind(kind Kind, ok bool) Cell {
	if !ok {
		return c &^ cellCoveredBit
	}
	return (c &^ cellCoveredBit &^ (cellKindMask << cellKindOffset)) | cellCoveredBit | Cell(kind)<<cellKindOffset
}

// WithSymbol returns a copy of c with the scoring symbol set, or cleared if ok is false.
func (c Cell) WithSymbol(p Player, ok bool) Cell {
	if !ok {
		return c &^ cellSymbolPresentBit
	}
	return (c &^ cellSymbolPresentBit &^ (cellSymbolMask << cellSymbolOffset)) | cellSymbolPresentBit | Cell(p)<<cellSymbolOffset
}

// Negated returns c with its scoring symbol flipped to the opponent, used by the pie
// rule to renotate the whole board under a player swap. A cell with no symbol is
// returned unchanged.
func (c Cell) Negated() Cell {
	p, ok := c.Symbol()
	if !ok {
		return c
	}
	return c.WithSymbol(p.Opponent(), true)
}

func (c Cell) String() string {
	if kind, ok := c.Kind(); ok {
		return kind.String()
	}
	if p, ok := c.Symbol(); ok {
		return p.String()
	}
	return "."
}
