package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/wricardo/boggle/game/engine"
	"github.com/wricardo/boggle/game/geometry"
)

// ErrBadCommand is returned by ParseLine for input it cannot understand
var ErrBadCommand = errors.New("bad command")

type line struct {
	text string
	err  error
}

// Input implements service.InputSource over a line-oriented reader.
// Lines that fail to parse are reported to the feedback writer and skipped.
type Input struct {
	layout   *geometry.Layout
	feedback io.Writer
	lines    chan line
	done     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

// NewInput starts reading r in the background. feedback may be nil.
func NewInput(r io.Reader, layout *geometry.Layout, feedback io.Writer) *Input {
	if feedback == nil {
		feedback = io.Discard
	}
	in := &Input{
		layout:   layout,
		feedback: feedback,
		lines:    make(chan line),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go in.readLoop(r)
	return in
}

// Close stops the background reader. A read already blocked on r returns
// only when r does; its line is dropped. NextClick reports io.EOF afterwards.
func (in *Input) Close() error {
	in.once.Do(func() { close(in.done) })
	return nil
}

func (in *Input) readLoop(r io.Reader) {
	defer close(in.stopped)
	defer close(in.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !in.send(line{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		in.send(line{err: err})
	}
}

// send hands l to NextClick and reports false once the input is closed
func (in *Input) send(l line) bool {
	select {
	case in.lines <- l:
		return true
	case <-in.done:
		return false
	}
}

// NextClick blocks until the next valid command, the end of input (io.EOF)
// or the cancellation of ctx.
func (in *Input) NextClick(ctx context.Context) (engine.Point, error) {
	for {
		select {
		case <-in.done:
			return engine.Point{}, io.EOF
		default:
		}

		select {
		case <-ctx.Done():
			return engine.Point{}, ctx.Err()
		case <-in.done:
			return engine.Point{}, io.EOF
		case l, ok := <-in.lines:
			if !ok {
				return engine.Point{}, io.EOF
			}
			if l.err != nil {
				return engine.Point{}, l.err
			}
			if strings.TrimSpace(l.text) == "" {
				continue
			}
			p, err := ParseLine(l.text, in.layout)
			if err != nil {
				fmt.Fprintf(in.feedback, "%v\n", err)
				continue
			}
			return p, nil
		}
	}
}

// ParseLine converts one command into the screen point it stands for
func ParseLine(text string, layout *geometry.Layout) (engine.Point, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return engine.Point{}, fmt.Errorf("%w: empty line", ErrBadCommand)
	}

	switch fields[0] {
	case "exit", "quit", "q":
		return layout.Exit.Center(), nil
	case "reset", "r":
		return layout.Reset.Center(), nil
	case "up":
		return layout.ScrollUp.Center(), nil
	case "down":
		return layout.ScrollDown.Center(), nil
	case "click":
		if len(fields) != 3 {
			return engine.Point{}, fmt.Errorf("%w: usage: click <x> <y>", ErrBadCommand)
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return engine.Point{}, fmt.Errorf("%w: %q is not a point", ErrBadCommand, text)
		}
		return engine.Point{X: x, Y: y}, nil
	}

	if len(fields) != 2 {
		return engine.Point{}, fmt.Errorf("%w: %q", ErrBadCommand, text)
	}
	col, errC := strconv.Atoi(fields[0])
	row, errR := strconv.Atoi(fields[1])
	if errC != nil || errR != nil {
		return engine.Point{}, fmt.Errorf("%w: %q", ErrBadCommand, text)
	}
	// a cell center past the grid edge can land on a button
	if col < 0 || col >= layout.Cols || row < 0 || row >= layout.Rows {
		return engine.Point{}, fmt.Errorf("%w: cell (%d, %d) is off the %dx%d board", ErrBadCommand, col, row, layout.Cols, layout.Rows)
	}
	return layout.CellCenter(col, row), nil
}
