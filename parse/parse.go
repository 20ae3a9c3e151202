// Package parse turns valve network descriptions into core.Graph values.
//
// Two inputs are supported:
//
//   - Text records, one per line:
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//     Singular and plural wording ("tunnel leads to valve") are both
//     accepted; labels are free words, identifiers are letter/digit runs.
//   - A JSON document read with gjson (see ParseJSON).
//
// Duplicate identifiers overwrite earlier records (last write wins).
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pressure/core"
)

// Record is one parsed text line.
type Record struct {
	// Line is the 1-based source line.
	Line int

	// ID is the node identifier.
	ID string

	// Yield is the flow rate released per tick once activated.
	Yield int

	// Tunnels lists neighbor identifiers in source order.
	Tunnels []string
}

// ParseLine scans a single record. line is only used for error reporting.
//
// Grammar:
//
//	record  := word ID "has" label "=" INT ";" label "to" word ID { "," ID }
//	label   := word { word }
func ParseLine(line int, text string) (Record, error) {
	s := &scanner{line: line, text: text}
	rec := Record{Line: line}

	if s.word() == "" {
		return rec, s.fail("expected record prefix")
	}
	id, err := s.ident()
	if err != nil {
		return rec, err
	}
	rec.ID = id
	if err = s.keyword("has"); err != nil {
		return rec, err
	}
	if _, err = s.label('=', ""); err != nil {
		return rec, err
	}
	if err = s.expect('='); err != nil {
		return rec, err
	}
	if s.peek() == '-' {
		return rec, s.fail("yield must be non-negative")
	}
	if rec.Yield, err = s.number(); err != nil {
		return rec, err
	}
	if err = s.expect(';'); err != nil {
		return rec, err
	}
	if _, err = s.label(0, "to"); err != nil {
		return rec, err
	}
	if err = s.keyword("to"); err != nil {
		return rec, err
	}
	if s.word() == "" {
		return rec, s.fail("expected node label")
	}
	for {
		nbr, err := s.ident()
		if err != nil {
			return rec, err
		}
		rec.Tunnels = append(rec.Tunnels, nbr)
		if s.done() {
			break
		}
		if err = s.expect(','); err != nil {
			return rec, err
		}
	}

	return rec, nil
}

// Records scans every non-blank line of r.
// The first malformed line aborts scanning with a *ParseError.
func Records(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseLine(line, text)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read input: %w", err)
	}

	return out, nil
}

// Build feeds records into a core.Builder and freezes the graph.
// Every tunnel costs core.DefaultCost.
func Build(recs []Record, opts ...core.BuilderOption) (*core.Graph, error) {
	b := core.NewBuilder(opts...)
	for _, rec := range recs {
		edges := make([]core.Edge, len(rec.Tunnels))
		for i, to := range rec.Tunnels {
			edges[i] = core.Tunnel(to)
		}
		if err := b.AddNode(rec.ID, rec.Yield, edges...); err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", rec.Line, err)
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return g, nil
}

// Parse reads text records from r and builds the graph.
func Parse(r io.Reader, opts ...core.BuilderOption) (*core.Graph, error) {
	recs, err := Records(r)
	if err != nil {
		return nil, err
	}

	return Build(recs, opts...)
}

// ParseString is Parse over an in-memory string.
func ParseString(input string, opts ...core.BuilderOption) (*core.Graph, error) {
	return Parse(strings.NewReader(input), opts...)
}
