package content

import (
	"strconv"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

// Coerce reshapes top-level content into the given preset.
//
// Composites convert freely between list and tuple. A Map becomes a list
// or tuple of key/value tuples, and a sequence whose elements are all
// two-element sequences becomes a Map of pairs; any other sequence becomes
// a Map keyed by index. Sequences of Maps become a Table whose header is
// the union of their keys in first-seen order; sequences of sequences
// become a headerless Table. A Map becomes a two-column Table of its
// entries. Text is wrapped as a single child for list and tuple and
// otherwise rejected with ErrCodeInvalidPreset.
//
// An empty preset returns c unchanged.
func Coerce(c Content, p Preset) (Content, error) {
	if p == "" {
		return c, nil
	}
	if cell, ok := c.(Cell); ok {
		c = cell.Content
	}
	switch p {
	case PresetList:
		if l, ok := c.(List); ok {
			return l, nil
		}
		return List(sequence(c)), nil
	case PresetTuple:
		if t, ok := c.(Tuple); ok {
			return t, nil
		}
		return Tuple(sequence(c)), nil
	case PresetMap:
		return toMap(c)
	case PresetTable:
		return toTable(c)
	}
	return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", p)
}

// children returns the elements of a list or tuple.
func children(c Content) ([]Content, bool) {
	switch v := c.(type) {
	case List:
		return v, true
	case Tuple:
		return v, true
	}
	return nil, false
}

func sequence(c Content) []Content {
	if ch, ok := children(c); ok {
		return ch
	}
	switch v := c.(type) {
	case Map:
		out := make([]Content, len(v))
		for i, e := range v {
			out[i] = Tuple{e.Key, e.Value}
		}
		return out
	case Table:
		var out []Content
		if v.Header != nil {
			out = append(out, Tuple(v.Header))
		}
		for _, r := range v.Rows {
			out = append(out, Tuple(r))
		}
		return out
	}
	return []Content{c}
}

func toMap(c Content) (Map, error) {
	if m, ok := c.(Map); ok {
		return m, nil
	}
	seq, ok := children(c)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "cannot draw %T as a map", c)
	}
	m := make(Map, len(seq))
	pairs := true
	for _, s := range seq {
		if pair, ok := children(s); !ok || len(pair) != 2 {
			pairs = false
			break
		}
	}
	for i, s := range seq {
		if pairs {
			pair, _ := children(s)
			m[i] = Entry{Key: pair[0], Value: pair[1]}
		} else {
			m[i] = Entry{Key: Text(strconv.Itoa(i)), Value: s}
		}
	}
	return m, nil
}

func toTable(c Content) (Table, error) {
	switch v := c.(type) {
	case Table:
		return v, nil
	case Map:
		t := Table{Header: []Content{Text("key"), Text("value")}}
		for _, e := range v {
			t.Rows = append(t.Rows, []Content{e.Key, e.Value})
		}
		return t, nil
	}
	seq, ok := children(c)
	if !ok {
		return Table{}, errors.New(errors.ErrCodeInvalidPreset, "cannot draw %T as a table", c)
	}

	records := true
	for _, s := range seq {
		if _, ok := s.(Map); !ok {
			records = false
			break
		}
	}
	if !records {
		t := Table{}
		for _, s := range seq {
			row, ok := children(s)
			if !ok {
				row = []Content{s}
			}
			t.Rows = append(t.Rows, row)
		}
		return t, nil
	}

	// Header keys are compared by their drawn text.
	var header []Content
	index := make(map[Text]int)
	for _, s := range seq {
		for _, e := range s.(Map) {
			k, ok := e.Key.(Text)
			if !ok {
				return Table{}, errors.New(errors.ErrCodeInvalidPreset, "table columns need text keys, got %T", e.Key)
			}
			if _, seen := index[k]; !seen {
				index[k] = len(header)
				header = append(header, k)
			}
		}
	}
	t := Table{Header: header}
	for _, s := range seq {
		row := make([]Content, len(header))
		for i := range row {
			row[i] = Text("")
		}
		for _, e := range s.(Map) {
			row[index[e.Key.(Text)]] = e.Value
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
