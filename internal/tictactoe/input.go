package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type line struct {
	text string
	err  error
}

// LineReader hands out input lines one at a time. A single goroutine owns the
// underlying reader so a blocked read never outlives a cancelled context in the caller.
// Close releases that goroutine once it is no longer needed.
type LineReader struct {
	lines chan line
	done  chan struct{}
	once  sync.Once
}

func NewLineReader(r io.Reader) *LineReader {
	that := &LineReader{
		lines: make(chan line),
		done:  make(chan struct{}),
	}

	go that.readLoop(bufio.NewReader(r))

	return that
}

func (that *LineReader) readLoop(reader *bufio.Reader) {
	defer close(that.lines)

	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			if !that.send(line{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
		}

		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			that.send(line{err: err})
			return
		}
	}
}

func (that *LineReader) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// ReadLine returns apperror.ErrInputClosed once the input is exhausted or the reader is closed.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read line: %w", ctx.Err())
	case <-that.done:
		return "", apperror.ErrInputClosed
	case next, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if next.err != nil {
			return "", fmt.Errorf("read line: %w", next.err)
		}
		return next.text, nil
	}
}

// Close stops the reader goroutine unless it is parked inside a Read call, in which
// case it exits as soon as that read returns.
func (that *LineReader) Close() {
	that.once.Do(func() { close(that.done) })
}
