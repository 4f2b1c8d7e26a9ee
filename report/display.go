package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG  = pterm.FgLightGreen
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// kindStrings maps diagnostic kinds to their display labels.
var kindStrings = map[int]string{
	KindGeneral:    "Lowering",
	KindCallSite:   "Inline Call Site",
	KindInlineDecl: "Inline Declaration",
	KindPhase:      "Pipeline",
}

// ConsoleSink renders diagnostics to the terminal.  It is the default sink
// installed by the command-line driver.
type ConsoleSink struct{}

func (ConsoleSink) Report(d *Diagnostic) {
	label := kindStrings[d.Kind]

	if d.Severity == SeverityError {
		errorStyleBG.Print(label + " Error")
	} else {
		warnStyleBG.Print(label + " Warning")
	}

	if d.Span != nil {
		fmt.Printf(" [%s]", d.Span)
	}

	if d.Target != "" {
		fmt.Print(" ")
		infoColorFG.Print(d.Target)
	}

	fmt.Printf(" %s\n", d.Message)
}

// maxPhaseLength pads phase names so the Done columns line up.
const maxPhaseLength = len("check-inline-declarations")

// StartPhase prints the header line for a phase that is beginning.
func (ConsoleSink) StartPhase(name string) {
	infoColorFG.Print(name + "..." + strings.Repeat(" ", maxPhaseLength-len(name)+2))
}

// EndPhase prints the concluding timing for the phase begun last.
func (ConsoleSink) EndPhase(name string, elapsed time.Duration) {
	infoStyleBG.Print("Done")
	fmt.Printf(" (%.3fs)\n", elapsed.Seconds())
}

// DisplayInfoMessage prints a tagged informational message to the console.
func DisplayInfoMessage(tag, msg string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}

// DisplayErrorMessage prints a tagged error message to the console.
func DisplayErrorMessage(tag, msg string) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + msg)
}
