// Package layout reads, writes and generates reactor slot layouts.
//
// The glyph format is six lines of nine glyphs, one per slot in row-major
// order. Blank lines and lines starting with '#' are ignored, and spaces
// inside a row are skipped so rows may be written as "U V . . ...".
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"reactor-sim/internal/reactor"
)

// ErrMalformed reports a layout that does not describe exactly 6x9 slots.
var ErrMalformed = errors.New("malformed layout")

// Layout assigns a component kind to every slot. KindNone marks an empty slot.
type Layout [reactor.SlotCount]reactor.Kind

var kindGlyphs = map[reactor.Kind]rune{
	reactor.KindNone:                '.',
	reactor.KindUraniumCell:         'U',
	reactor.KindHeatVent:            'V',
	reactor.KindReactorHeatVent:     'R',
	reactor.KindOverclockedHeatVent: 'O',
	reactor.KindHeatExchanger:       'X',
	reactor.KindCoolantCell:         'C',
	reactor.KindDepletedUraniumCell: 'D',
}

var glyphKinds = func() map[rune]reactor.Kind {
	m := make(map[rune]reactor.Kind, len(kindGlyphs))
	for k, g := range kindGlyphs {
		m[g] = k
	}
	return m
}()

// Glyph returns the layout glyph for kind, or '?' when it has none.
func Glyph(kind reactor.Kind) rune {
	if g, ok := kindGlyphs[kind]; ok {
		return g
	}
	return '?'
}

// Parse reads a glyph layout.
func Parse(src string) (Layout, error) {
	var l Layout
	row := 0
	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if row >= reactor.Rows {
			return Layout{}, fmt.Errorf("line %d: more than %d rows: %w", line, reactor.Rows, ErrMalformed)
		}
		col := 0
		for _, g := range text {
			if g == ' ' || g == '\t' {
				continue
			}
			kind, ok := glyphKinds[g]
			if !ok {
				return Layout{}, fmt.Errorf("line %d col %d: unknown glyph %q: %w", line, col+1, g, ErrMalformed)
			}
			if col >= reactor.Cols {
				return Layout{}, fmt.Errorf("line %d: more than %d slots: %w", line, reactor.Cols, ErrMalformed)
			}
			l[row*reactor.Cols+col] = kind
			col++
		}
		if col != reactor.Cols {
			return Layout{}, fmt.Errorf("line %d: %d slots, want %d: %w", line, col, reactor.Cols, ErrMalformed)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Layout{}, err
	}
	if row != reactor.Rows {
		return Layout{}, fmt.Errorf("%d rows, want %d: %w", row, reactor.Rows, ErrMalformed)
	}
	return l, nil
}

// String formats the layout in the glyph format Parse accepts.
func (l Layout) String() string {
	var b strings.Builder
	for r := 0; r < reactor.Rows; r++ {
		for c := 0; c < reactor.Cols; c++ {
			b.WriteRune(Glyph(l[r*reactor.Cols+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Count returns how many slots hold kind.
func (l Layout) Count(kind reactor.Kind) int {
	n := 0
	for _, k := range l {
		if k == kind {
			n++
		}
	}
	return n
}

// Apply replaces every slot of r with a fresh component of the layout's kind.
func (l Layout) Apply(r *reactor.Reactor) error {
	for i, kind := range l {
		c := reactor.Empty
		if kind != reactor.KindNone {
			var err error
			if c, err = reactor.NewComponent(kind); err != nil {
				return fmt.Errorf("slot %d: %w", i, err)
			}
		}
		if err := r.SetSlot(i, c); err != nil {
			return err
		}
	}
	return nil
}

// FromSnapshot captures the kinds placed in a reactor snapshot.
func FromSnapshot(s reactor.Snapshot) Layout {
	var l Layout
	for i, c := range s.Slots {
		l[i] = c.Kind()
	}
	return l
}
