// Package codec reads and writes the entries of a stablebimap.Map as YAML or
// JSON documents:
//
//	entries:
//	- left: 1
//	  right: a
//	- left: 2
//	  right: b
//
// Entries are written in the map's iteration order and inserted in document
// order when read, so a later entry evicts earlier ones it collides with.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"sigs.k8s.io/yaml"

	"github.com/homier/stablebimap"
)

type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

var (
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrConflict is returned by a strict Decoder when an entry of the
	// document evicts another entry.
	ErrConflict = errors.New("codec: conflicting entries")
)

// Document is the serialized form of a map.
type Document[L, R comparable] struct {
	Entries []stablebimap.Entry[L, R] `json:"entries"`
}

// Marshal returns the document form of m in the given format.
func Marshal[L, R comparable](m *stablebimap.Map[L, R], format Format) ([]byte, error) {
	doc := Document[L, R]{Entries: m.Entries()}

	switch format {
	case YAML:
		return yaml.Marshal(doc)
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes the document form of m to w.
func Encode[L, R comparable](w io.Writer, m *stablebimap.Map[L, R], format Format) error {
	data, err := Marshal(m, format)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// Report counts what happened to the entries of a decoded document.
type Report struct {
	Inserted  int
	Unchanged int
	Evicted   int
}

// Decoder loads documents into maps. The zero Decoder is lenient and silent.
type Decoder[L, R comparable] struct {
	// Strict rejects a document if any of its entries evicts another one,
	// whether from the document or from the target map.
	Strict bool

	// Logger receives one debug event per eviction when set.
	Logger *zerolog.Logger

	// Capacity and Options configure maps created by Decode.
	Capacity int
	Options  []stablebimap.Option[L, R]
}

// Decode parses a YAML or JSON document into a new map.
func (d Decoder[L, R]) Decode(data []byte) (*stablebimap.Map[L, R], Report, error) {
	m := stablebimap.New(d.Capacity, d.Options...)

	report, err := d.DecodeInto(data, m)
	if err != nil {
		return nil, report, err
	}

	return m, report, nil
}

// DecodeInto parses a YAML or JSON document and inserts its entries into m.
// On error m is left as it was.
func (d Decoder[L, R]) DecodeInto(data []byte, m *stablebimap.Map[L, R]) (Report, error) {
	var doc Document[L, R]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Report{}, fmt.Errorf("codec: parsing document: %w", err)
	}

	// Work on a copy so a failing document leaves m untouched.
	work := m.Clone()
	if err := work.Reserve(len(doc.Entries)); err != nil && !errors.Is(err, stablebimap.ErrTableFull) {
		return Report{}, err
	}

	var report Report
	for i, e := range doc.Entries {
		res, err := work.Insert(e.Left, e.Right)
		if err != nil {
			return report, fmt.Errorf("codec: inserting entry %d: %w", i, err)
		}

		switch res.Status {
		case stablebimap.Inserted:
			report.Inserted++
		case stablebimap.Unchanged:
			report.Unchanged++
		default:
			if d.Strict {
				return report, fmt.Errorf("%w: entry %d (%v, %v) evicts %v", ErrConflict, i, e.Left, e.Right, res.Evicted())
			}

			report.Evicted += res.Len()
			d.logEvictions(i, res)
		}
	}

	*m = *work

	return report, nil
}

func (d Decoder[L, R]) logEvictions(i int, res stablebimap.EvictionResult[L, R]) {
	if d.Logger == nil {
		return
	}

	for _, evicted := range res.Evicted() {
		d.Logger.Debug().
			Int("entry", i).
			Str("status", res.Status.String()).
			Interface("left", evicted.Left).
			Interface("right", evicted.Right).
			Msg("evicted entry")
	}
}
