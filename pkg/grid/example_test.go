package grid_test

import (
	"fmt"

	"github.com/matzehuels/boxgrid/pkg/grid"
)

type cell struct{ w, h int }

func (c cell) Size() (int, int) { return c.w, c.h }

type wide struct{ cell }

func (wide) Span() (int, int) { return 1, 2 }

func ExampleLayout() {
	opts := grid.DefaultOptions()
	opts.Limit = 2

	res := grid.Layout([]grid.Item{cell{3, 1}, cell{1, 1}, cell{2, 1}}, opts)

	fmt.Println("grid:", res.Rows, "x", res.Columns)
	fmt.Println("columns:", res.Tracks.Columns)
	for _, b := range res.Blocks {
		fmt.Println(b.ID, b.Row, b.Column, b.X, b.Y)
	}
	// Output:
	// grid: 2 x 2
	// columns: [5 3]
	// 0 0 0 1 0
	// 1 0 1 7 0
	// 2 1 0 1 2
	// -1 1 1 7 2
}

func ExamplePlace() {
	blocks := []*grid.Block{
		grid.NewBlock(0, cell{1, 1}, grid.Sides{}),
		grid.NewBlock(1, cell{1, 1}, grid.Sides{}),
		grid.NewBlock(2, cell{1, 1}, grid.Sides{}),
	}

	p := grid.Place(blocks, grid.FlowRow, 2)
	for _, b := range p.Blocks {
		fmt.Println(b)
	}
	// Output:
	// block 0 (0,0) span 1x1
	// block 1 (0,1) span 1x1
	// block 2 (1,0) span 1x1
	// placeholder(1,1)
}

func ExampleSynthesize() {
	opts := grid.DefaultOptions()
	opts.Limit = 2
	opts.Padding = grid.Sides{}

	res := grid.Layout([]grid.Item{wide{cell{3, 1}}, cell{1, 1}, cell{1, 1}}, opts)
	for _, p := range res.Lines.Points() {
		fmt.Println(p.X, p.Y, res.Lines.Intersects[p])
	}
	// Output:
	// -1 -1 down_and_right
	// 1 -1 horizontal
	// 3 -1 down_and_left
	// -1 1 vertical_and_right
	// 1 1 down_and_horizontal
	// 3 1 vertical_and_left
	// -1 3 up_and_right
	// 1 3 up_and_horizontal
	// 3 3 up_and_left
}

func ExampleOffsets() {
	plain, gapped := grid.Offsets([]int{3, 2}, 3)
	fmt.Println(plain)
	fmt.Println(gapped)
	// Output:
	// [{0 3} {6 8}]
	// [{-1 5} {5 10}]
}
