// Package progress renders merge progress. Reporters are purely
// observational: nothing they do affects the merged output.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// BarWidth is the total width of the plain bar including brackets
const BarWidth = 50

// Modes accepted by New
const (
	ModeAuto  = "auto"
	ModeBar   = "bar"
	ModePterm = "pterm"
	ModeNone  = "none"
)

// Reporter receives the processed/total counts after every file
type Reporter interface {
	Report(processed, total int)
	// Done signals completion; it must be safe to call more than once.
	Done()
}

// New picks a reporter for mode. In auto mode a terminal gets the pterm
// bar and anything else the plain bar.
func New(mode string, out io.Writer) Reporter {
	switch mode {
	case ModeNone:
		return Nop{}
	case ModeBar:
		return NewBar(out)
	case ModePterm:
		return NewPterm(out)
	default:
		if isTerminal(out) {
			return NewPterm(out)
		}
		return NewBar(out)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Nop discards progress
type Nop struct{}

func (Nop) Report(int, int) {}
func (Nop) Done()           {}

// Bar redraws a fixed-width text bar in place:
//
//	[========================                        ]  50%
type Bar struct {
	out   io.Writer
	drawn bool
}

// NewBar creates a plain text bar writing to out
func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

// Report redraws the bar. A zero total draws nothing.
func (b *Bar) Report(processed, total int) {
	if total <= 0 {
		return
	}
	if processed > total {
		processed = total
	}

	width := BarWidth - 2
	pos := processed * width / total
	fmt.Fprintf(b.out, "\r[%s%s] %3d%%",
		strings.Repeat("=", pos),
		strings.Repeat(" ", width-pos),
		processed*100/total)
	b.drawn = true
}

// Done ends the bar's line
func (b *Bar) Done() {
	if b.drawn {
		fmt.Fprintln(b.out)
		b.drawn = false
	}
}

// Pterm wraps pterm's progress bar
type Pterm struct {
	out io.Writer
	bar *pterm.ProgressbarPrinter
}

// NewPterm creates a pterm-backed reporter writing to out
func NewPterm(out io.Writer) *Pterm {
	return &Pterm{out: out}
}

// Report advances the bar, starting it on first use
func (p *Pterm) Report(processed, total int) {
	if total <= 0 {
		return
	}
	if p.bar == nil {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("Merging").
			WithShowElapsedTime(false).
			WithWriter(p.out).
			Start()
		if err != nil {
			logger := logging.GetLogger("progress")
			logger.Debug().Err(err).Msg("Could not start progress bar")
			return
		}
		p.bar = bar
	}
	if delta := processed - p.bar.Current; delta > 0 {
		p.bar.Add(delta)
	}
}

// Done stops the bar if it is still active
func (p *Pterm) Done() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
	}
}
