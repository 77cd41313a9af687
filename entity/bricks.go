package entity

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/npillmayer/arcade/textfile"
	"github.com/npillmayer/arcade/vec"
)

// Brick is a single block of a level. Solid bricks cannot be destroyed.
type Brick struct {
	Position  Vec2
	Size      Vec2
	Color     Color
	Solid     bool
	Destroyed bool
}

// Bricks is the list of bricks of a level, in drawing order.
type Bricks struct {
	list *vec.Vec[*Brick]
}

// NewBricks creates an empty brick list.
func NewBricks() *Bricks {
	return &Bricks{list: vec.New[*Brick](256)}
}

// Len returns the number of bricks, destroyed ones included.
func (bs *Bricks) Len() int {
	return bs.list.Len()
}

// Add appends a brick.
func (bs *Bricks) Add(b *Brick) {
	bs.list.Append(b)
}

// At returns brick i.
func (bs *Bricks) At(i int) (*Brick, error) {
	b, err := bs.list.At(i)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchBrick, err)
	}
	return b, nil
}

// All iterates over the bricks in drawing order.
func (bs *Bricks) All() iter.Seq2[int, *Brick] {
	return bs.list.All()
}

// Destroy marks brick i as destroyed. It returns false if the brick is solid
// and therefore survives the hit.
func (bs *Bricks) Destroy(i int) (bool, error) {
	b, err := bs.At(i)
	if err != nil {
		return false, err
	}
	if b.Solid {
		return false, nil
	}
	b.Destroyed = true
	return true, nil
}

// IsCompleted reports whether every non-solid brick has been destroyed.
// A level without bricks is completed.
func (bs *Bricks) IsCompleted() bool {
	for b := range bs.list.Values() {
		if !b.Solid && !b.Destroyed {
			return false
		}
	}
	return true
}

// Reset brings every destroyed brick back.
func (bs *Bricks) Reset() {
	for b := range bs.list.Values() {
		b.Destroyed = false
	}
}

// Clear removes all bricks.
func (bs *Bricks) Clear() {
	bs.list.Clear(nil)
}

// --- Level files -----------------------------------------------------------

var tileColors = map[int]Color{
	1: RGB(0.8, 0.8, 0.7),
	2: RGB(0.2, 0.6, 1.0),
	3: RGB(0.0, 0.7, 0.0),
	4: RGB(0.8, 0.8, 0.4),
	5: RGB(1.0, 0.5, 0.0),
}

// LoadLevel replaces the bricks with the level stored in file name, scaled
// to an area of width x height.
//
// A level file has one row of tiles per line, tiles separated by blanks:
// 0 is empty space, 1 a solid brick, and values above 1 are breakable bricks
// of different colors. Malformed tiles are traced and skipped.
func (bs *Bricks) LoadLevel(name string, width, height float32) error {
	var rows [][]int
	err := textfile.ForEachLine(name, func(line string) error {
		rows = append(rows, parseTiles(line))
		return nil
	})
	if err != nil {
		return err
	}
	return bs.build(rows, width, height)
}

// ReadLevel is LoadLevel for level data read from r.
func (bs *Bricks) ReadLevel(r io.Reader, width, height float32) error {
	var rows [][]int
	err := textfile.ScanLines(r, func(line string) error {
		rows = append(rows, parseTiles(line))
		return nil
	})
	if err != nil {
		return err
	}
	return bs.build(rows, width, height)
}

func parseTiles(line string) []int {
	var tiles []int
	for _, field := range strings.Fields(line) {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			tracer().Errorf("entity: invalid tile %q", field)
			continue
		}
		tiles = append(tiles, int(n))
	}
	return tiles
}

func (bs *Bricks) build(rows [][]int, width, height float32) error {
	bs.Clear()
	if len(rows) == 0 {
		return nil
	}
	columns := len(rows[0])
	if columns == 0 {
		return fmt.Errorf("%w: first row is empty", ErrMalformedLevel)
	}
	unitW, unitH := width/float32(columns), height/float32(len(rows))
	for y, row := range rows {
		for x := 0; x < columns && x < len(row); x++ {
			tile := row[x]
			if tile == 0 {
				continue
			}
			color, ok := tileColors[tile]
			if !ok {
				color = RGB(1, 1, 1)
			}
			bs.Add(&Brick{
				Position: Vec2{unitW * float32(x), unitH * float32(y)},
				Size:     Vec2{unitW, unitH},
				Color:    color,
				Solid:    tile == 1,
			})
		}
	}
	tracer().Debugf("entity: level of %dx%d tiles has %d bricks", columns, len(rows), bs.Len())
	return nil
}
