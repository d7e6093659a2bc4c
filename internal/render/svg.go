package render

import (
	"context"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/engine"
)

// SVGOptions controls SVG board output.
type SVGOptions struct {
	SquareSize int
	Highlight  engine.MoveMatrix
	Title      string
}

const (
	lightSquareFill = "fill:#E9CFA3"
	darkSquareFill  = "fill:#BB8860"
	highlightFill   = "fill:#6A9A4A;fill-opacity:0.6"
	coordStyle      = "font-family:sans-serif;font-size:%dpx;fill:#333333;text-anchor:middle"
	pieceStyle      = "font-family:serif;font-size:%dpx;text-anchor:middle;dominant-baseline:central"
)

// WriteSVG draws the snapshot as an SVG document on w.
func WriteSVG(ctx context.Context, w io.Writer, s engine.Snapshot, opts SVGOptions) error {
	size := opts.SquareSize
	if size <= 0 {
		size = 60
	}
	margin := size / 2
	width := s.Cols*size + margin*2
	height := s.Rows*size + margin*2

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	canvas.Gid("squares")
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			fill := darkSquareFill
			if (r+c)%2 == 0 {
				fill = lightSquareFill
			}
			x, y := margin+c*size, margin+r*size
			canvas.Rect(x, y, size, size, fill)
			if opts.Highlight.Has(chess.Pos(r, c)) {
				canvas.Rect(x, y, size, size, highlightFill)
			}
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			p := s.Cells[r][c]
			if p == nil {
				continue
			}
			x := margin + c*size + size/2
			y := margin + r*size + size/2
			canvas.Text(x, y, Glyph(*p, true), fmt.Sprintf(pieceStyle, size*3/4))
		}
	}
	canvas.Gend()

	fontSize := margin * 2 / 3
	style := fmt.Sprintf(coordStyle, fontSize)
	for c := 0; c < s.Cols; c++ {
		x := margin + c*size + size/2
		canvas.Text(x, height-margin/3, string(rune(chess.FileBase+c)), style)
	}
	for r := 0; r < s.Rows; r++ {
		y := margin + r*size + size/2 + fontSize/3
		canvas.Text(margin/2, y, fmt.Sprint(s.Rows-r), style)
	}

	canvas.End()
	return nil
}
