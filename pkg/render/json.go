package render

import (
	"encoding/json"

	"github.com/matzehuels/boxgrid/pkg/grid"
)

type jsonOutput struct {
	Rows      int         `json:"rows"`
	Columns   int         `json:"columns"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	RowGap    int         `json:"row_gap"`
	ColumnGap int         `json:"column_gap"`
	Tracks    jsonTracks  `json:"tracks"`
	Blocks    []jsonBlock `json:"blocks"`
	Lines     *jsonLines  `json:"lines,omitempty"`
}

type jsonTracks struct {
	Rows    []int `json:"rows"`
	Columns []int `json:"columns"`
}

type jsonBlock struct {
	ID          int  `json:"id"`
	Row         int  `json:"row"`
	Column      int  `json:"column"`
	RowSpan     int  `json:"row_span"`
	ColumnSpan  int  `json:"column_span"`
	X           int  `json:"x"`
	Y           int  `json:"y"`
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Placeholder bool `json:"placeholder,omitempty"`
}

type jsonLines struct {
	Horizontal []jsonSegment  `json:"horizontal"`
	Vertical   []jsonSegment  `json:"vertical"`
	Junctions  []jsonJunction `json:"junctions"`
}

type jsonSegment struct {
	From [2]int `json:"from"`
	To   [2]int `json:"to"`
}

type jsonJunction struct {
	X    int           `json:"x"`
	Y    int           `json:"y"`
	Kind grid.Junction `json:"kind"`
}

// ExportJSON serializes a layout result. Blocks are listed in result order
// and restricted to the visible ones; junctions are sorted top to bottom,
// then left to right.
func ExportJSON(res *grid.Result) ([]byte, error) {
	out := jsonOutput{
		Rows:      res.Rows,
		Columns:   res.Columns,
		Width:     res.Tracks.Width(),
		Height:    res.Tracks.Height(),
		RowGap:    res.Tracks.RowGap,
		ColumnGap: res.Tracks.ColumnGap,
		Tracks:    jsonTracks{Rows: res.Tracks.Rows, Columns: res.Tracks.Columns},
	}

	for _, b := range res.Visible() {
		out.Blocks = append(out.Blocks, jsonBlock{
			ID:          b.ID,
			Row:         b.Row,
			Column:      b.Column,
			RowSpan:     b.RowSpan,
			ColumnSpan:  b.ColumnSpan,
			X:           b.X,
			Y:           b.Y,
			Width:       b.Width,
			Height:      b.Height,
			Placeholder: b.IsPlaceholder(),
		})
	}

	if lm := res.Lines; lm != nil {
		out.Lines = &jsonLines{
			Horizontal: segments(lm.Horizontal),
			Vertical:   segments(lm.Vertical),
		}
		for _, p := range lm.Points() {
			out.Lines.Junctions = append(out.Lines.Junctions, jsonJunction{X: p.X, Y: p.Y, Kind: lm.Intersects[p]})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func segments(segs []grid.Segment) []jsonSegment {
	out := make([]jsonSegment, len(segs))
	for i, s := range segs {
		out[i] = jsonSegment{From: [2]int{s.From.X, s.From.Y}, To: [2]int{s.To.X, s.To.Y}}
	}
	return out
}
