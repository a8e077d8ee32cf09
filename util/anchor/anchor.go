// Package anchor implements a minimal console UI with a scrolling log
// area and a set of status lines (lots) pinned to the bottom of the
// terminal. On non-interactive outputs it degrades to plain line logging.
package anchor

import (
	"fmt"
	"io"
	"os"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Highlight attributes accepted by New.
const (
	Red    = color.FgRed
	Green  = color.FgGreen
	Yellow = color.FgYellow
	Cyan   = color.FgCyan
)

type Anchor struct {
	mu          sync.Mutex
	out         io.Writer
	tint        *color.Color
	lots        []*Lot
	interactive bool
}

// Lot is a named status line pinned below the scrolling area.
type Lot struct {
	anchor *Anchor
	name   string
	text   string
	closed bool
}

func New(attributes ...color.Attribute) *Anchor {
	return &Anchor{
		out:         os.Stdout,
		tint:        color.New(attributes...),
		interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// Printf writes a log line above the pinned lots.
func (anchor *Anchor) Printf(format string, args ...interface{}) {
	anchor.mu.Lock()
	defer anchor.mu.Unlock()
	anchor.printAbove(fmt.Sprintf(format, args...))
}

// AnchorPrintf writes a highlighted log line above the pinned lots,
// rendered in the anchor's tint.
func (anchor *Anchor) AnchorPrintf(format string, args ...interface{}) {
	anchor.mu.Lock()
	defer anchor.mu.Unlock()
	anchor.printAbove(anchor.tint.Sprintf(format, args...))
}

// Lot returns the status line registered under the given name,
// creating and pinning it on first use.
func (anchor *Anchor) Lot(name string) *Lot {
	anchor.mu.Lock()
	defer anchor.mu.Unlock()
	for _, lot := range anchor.lots {
		if lot.name == name {
			return lot
		}
	}
	lot := &Lot{anchor: anchor, name: name}
	anchor.lots = append(anchor.lots, lot)
	if anchor.interactive {
		fmt.Fprintln(anchor.out, anchor.render(lot))
	}
	return lot
}

// Printf updates the lot's status text.
func (lot *Lot) Printf(format string, args ...interface{}) *Lot {
	lot.anchor.update(lot, fmt.Sprintf(format, args...))
	return lot
}

// Print updates the lot's status text.
func (lot *Lot) Print(args ...interface{}) *Lot {
	lot.anchor.update(lot, fmt.Sprint(args...))
	return lot
}

// Wipe clears the lot's status text, leaving the bare name pinned.
func (lot *Lot) Wipe() {
	lot.anchor.update(lot, "")
}

// Close freezes the lot on a final summary, "done" if none given.
func (lot *Lot) Close(summary ...string) {
	anchor := lot.anchor
	anchor.mu.Lock()
	defer anchor.mu.Unlock()

	lot.closed = true
	lot.text = "done"
	if len(summary) > 0 {
		lot.text = summary[0]
	}
	if anchor.interactive {
		anchor.refresh()
		return
	}
	fmt.Fprintf(anchor.out, "%s: %s\n", lot.name, lot.text)
}

func (anchor *Anchor) update(lot *Lot, text string) {
	anchor.mu.Lock()
	defer anchor.mu.Unlock()

	if lot.closed {
		return
	}
	lot.text = text
	if anchor.interactive {
		anchor.refresh()
		return
	}
	if text != "" {
		fmt.Fprintf(anchor.out, "%s: %s\n", lot.name, text)
	}
}

// printAbove writes a line over the topmost lot and repaints the
// lots one line further down, keeping them pinned to the bottom.
// Callers must hold the lock.
func (anchor *Anchor) printAbove(message string) {
	if !anchor.interactive || len(anchor.lots) == 0 {
		fmt.Fprintln(anchor.out, message)
		return
	}
	cursor.Up(len(anchor.lots))
	cursor.ClearLine()
	fmt.Fprintln(anchor.out, message)
	anchor.repaint()
}

// refresh repaints the lots in place. Callers must hold the lock.
func (anchor *Anchor) refresh() {
	cursor.Up(len(anchor.lots))
	anchor.repaint()
}

func (anchor *Anchor) repaint() {
	for _, lot := range anchor.lots {
		cursor.ClearLine()
		fmt.Fprintln(anchor.out, anchor.render(lot))
	}
	cursor.StartOfLine()
}

func (anchor *Anchor) render(lot *Lot) string {
	if lot.text == "" {
		return anchor.tint.Sprint(lot.name)
	}
	return fmt.Sprintf("%s: %s", anchor.tint.Sprint(lot.name), lot.text)
}
