// Package report renders solver output: a ranked list of type-coverage
// solutions, printed either with ANSI color or as plain text depending on
// what the terminal (and the CLI's color/plain switch) can support.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/agl-alexglopez/pokelinks"
)

// Mode selects how a Printer renders output.
type Mode int

const (
	// Auto colors output only when w looks like a real terminal.
	Auto Mode = iota
	Color
	Plain
)

// Printer writes solver solutions to an underlying writer.
type Printer struct {
	w          io.Writer
	rank       *color.Color
	typeName   *color.Color
	plainColor bool
}

// NewPrinter builds a Printer for w under the given Mode. Color writes go
// through go-colorable so Windows consoles without native ANSI support
// still render correctly; isatty decides Auto's behavior.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	file, isFile := w.(*os.File)

	useColor := mode == Color
	if mode == Auto && isFile {
		useColor = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}

	out := w
	if useColor && isFile {
		out = colorable.NewColorable(file)
	}

	return &Printer{
		w:          out,
		rank:       color.New(color.FgYellow, color.Bold),
		typeName:   color.New(color.FgCyan),
		plainColor: !useColor,
	}
}

// Solutions prints one line per solution: its rank, then its sorted
// elements. coverageLabel ("DEFENSE"/"ATTACK") and mode ("exact"/
// "overlapping") are echoed as a header.
func (p *Printer) Solutions(coverageLabel, mode string, solutions []pokelinks.Solution) {
	fmt.Fprintf(p.w, "%s coverage (%s), %d solution(s):\n", coverageLabel, mode, len(solutions))
	for i, sol := range solutions {
		if p.plainColor {
			fmt.Fprintf(p.w, "%3d. rank=%d ", i+1, sol.Rank)
		} else {
			fmt.Fprintf(p.w, "%3d. ", i+1)
			p.rank.Fprintf(p.w, "rank=%d ", sol.Rank)
		}
		for j, t := range sol.Elements() {
			if j > 0 {
				fmt.Fprint(p.w, ", ")
			}
			if p.plainColor {
				fmt.Fprint(p.w, t.String())
			} else {
				p.typeName.Fprint(p.w, t.String())
			}
		}
		fmt.Fprintln(p.w)
	}
}
