package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// ErrPromptClosed indicates the interactive input ended mid-run.
var ErrPromptClosed = errors.New("runner: interactive input closed")

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Wait(ctx context.Context) error { return f(ctx) }

// Sleep waits d before every step.
func Sleep(d time.Duration) Pacer {
	return PacerFunc(func(ctx context.Context) error {
		if d <= 0 {
			return nil
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}

// Prompt waits for a line on in before every step. A non-empty hint is
// written to out first. A single goroutine reads in, so lines typed ahead
// are queued.
func Prompt(in io.Reader, out io.Writer, hint string) Pacer {
	return &prompt{
		in:    bufio.NewReader(in),
		out:   out,
		hint:  hint,
		lines: make(chan error, 1),
	}
}

type prompt struct {
	in     *bufio.Reader
	out    io.Writer
	hint   string
	once   sync.Once
	lines  chan error
	closed bool
}

func (p *prompt) Wait(ctx context.Context) error {
	if p.closed {
		return ErrPromptClosed
	}
	p.once.Do(func() { go p.read() })
	if p.hint != "" && p.out != nil {
		fmt.Fprint(p.out, p.hint)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-p.lines:
		if err == nil {
			return nil
		}
		p.closed = true
		if errors.Is(err, io.EOF) {
			return ErrPromptClosed
		}
		return err
	}
}

func (p *prompt) read() {
	for {
		_, err := p.in.ReadString('\n')
		p.lines <- err
		if err != nil {
			return
		}
	}
}

// Chain waits on every pacer in order.
func Chain(pacers ...Pacer) Pacer {
	return PacerFunc(func(ctx context.Context) error {
		for _, p := range pacers {
			if p == nil {
				continue
			}
			if err := p.Wait(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
