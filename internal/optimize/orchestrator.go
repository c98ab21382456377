package optimize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lakshaymaurya-felt/wintune/internal/logging"
	"github.com/lakshaymaurya-felt/wintune/internal/ui"
)

// actionSpec carries the user-facing strings and the dispatch closure for
// one simple action. restart-adapters has its own sub-flow and is not here.
type actionSpec struct {
	prompt  string
	skipped string
	label   string
	header  string
	invoke  func(Primitives, bool) Result
}

var actionSpecs = map[ID]actionSpec{
	CleanTemp: {
		prompt:  "Proceed to clean %TEMP%?",
		skipped: "Skipped %TEMP% cleanup.",
		label:   "Cleaning %TEMP%...",
		header:  "Clean %TEMP%",
		invoke:  func(p Primitives, dry bool) Result { return p.CleanTempDir(dry) },
	},
	EmptyRecycle: {
		prompt:  "Proceed to empty the Recycle Bin?",
		skipped: "Skipped Recycle Bin empty.",
		label:   "Emptying Recycle Bin...",
		header:  "Empty Recycle Bin",
		invoke:  func(p Primitives, dry bool) Result { return p.EmptyRecycleBin(dry) },
	},
	OptimizeTCP: {
		prompt:  "Proceed to apply TCP optimizations? (may require admin)",
		skipped: "Skipped TCP optimizations.",
		label:   "Applying TCP optimizations...",
		header:  "TCP optimizations",
		invoke:  func(p Primitives, dry bool) Result { return p.OptimizeTCP(dry) },
	},
	ShowWifi: {
		prompt:  "Proceed to list Wi-Fi profiles and passwords? (requires appropriate privileges)",
		skipped: "Skipped Wi-Fi password listing.",
		label:   "Gathering Wi-Fi profiles...",
		header:  "Wi-Fi profiles & passwords",
		invoke:  func(p Primitives, dry bool) Result { return p.ShowWifiPasswords(dry) },
	},
	CreateGodMode: {
		prompt:  "Create God Mode folder on Desktop?",
		skipped: "Skipped God Mode creation.",
		label:   "Creating God Mode folder...",
		header:  "God Mode",
		invoke:  func(p Primitives, dry bool) Result { return p.CreateGodMode(dry) },
	},
}

// Orchestrator sequences Confirmation Gate, Progress Runner, and reporting
// for a selected action set. It owns no side effects beyond writing to Out;
// everything else happens inside the primitives.
type Orchestrator struct {
	Prims Primitives
	In    *bufio.Reader
	Out   io.Writer

	// Spin runs a primitive under the progress indicator. Indirected so
	// tests can run primitives inline.
	Spin func(label string, fn func() Result) Result
}

// New builds an orchestrator wired to stdin/stdout and the live spinner.
func New(p Primitives) *Orchestrator {
	runner := ui.NewRunner(os.Stdout)
	return &Orchestrator{
		Prims: p,
		In:    bufio.NewReader(os.Stdin),
		Out:   os.Stdout,
		Spin: func(label string, fn func() Result) Result {
			return ui.Spin(runner, label, fn)
		},
	}
}

// Run executes the selected actions in canonical order. Duplicates
// collapse; an empty selection is reported and nothing runs. A primitive
// reporting failure is printed and the sequence continues; only a panic
// escapes and aborts the pass.
func (o *Orchestrator) Run(ids []ID, cfg Config) {
	selected := make(map[ID]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	if len(selected) == 0 {
		fmt.Fprintln(o.Out, "No actions selected.")
		return
	}

	log := logging.GetLogger("optimize")
	for _, id := range CanonicalOrder {
		if !selected[id] {
			continue
		}
		log.Debug().Str("action", string(id)).Bool("dryRun", cfg.DryRun).Msg("running action")
		if id == RestartAdapters {
			o.runAdapterFlow(cfg)
			continue
		}
		o.runSimple(id, cfg)
	}
}

func (o *Orchestrator) runSimple(id ID, cfg Config) {
	spec := actionSpecs[id]
	if !ui.Confirm(o.In, o.Out, spec.prompt, cfg.AssumeYes) {
		fmt.Fprintln(o.Out, spec.skipped)
		return
	}
	res := o.Spin(spec.label, func() Result {
		return spec.invoke(o.Prims, cfg.DryRun)
	})
	o.report(spec.header, res)
}

// runAdapterFlow is the restart-adapters compound sub-flow: list, select,
// then gate and restart each target independently. One adapter being
// declined or failing does not block the rest.
func (o *Orchestrator) runAdapterFlow(cfg Config) {
	adapters := o.Prims.ListAdapters()
	if len(adapters) == 0 {
		fmt.Fprintln(o.Out, "No adapters found or failed to list adapters.")
		return
	}

	fmt.Fprintln(o.Out, "Network adapters:")
	for i, a := range adapters {
		fmt.Fprintf(o.Out, " %d) %s\n", i+1, a)
	}

	fmt.Fprint(o.Out, "Enter adapter numbers to restart (comma-separated) or 'all': ")
	sel, err := ui.ReadLine(o.In)
	if err != nil || sel == "" {
		fmt.Fprintln(o.Out, "No adapters selected; skipping restart.")
		return
	}

	for _, name := range ResolveAdapterSelection(sel, adapters) {
		prompt := fmt.Sprintf("Restart adapter %q? This will briefly disconnect network.", name)
		if !ui.Confirm(o.In, o.Out, prompt, cfg.AssumeYes) {
			fmt.Fprintf(o.Out, "Skipped restarting %q.\n", name)
			continue
		}
		res := o.Spin(fmt.Sprintf("Restarting %q...", name), func() Result {
			return o.Prims.RestartAdapter(name, cfg.DryRun)
		})
		o.report(fmt.Sprintf("Restart %q", name), res)
	}
}

// report prints one outcome line, or a header plus block for multi-line
// messages. The message itself is always verbatim.
func (o *Orchestrator) report(header string, res Result) {
	icon := ui.Success(ui.IconOK)
	if !res.OK {
		icon = ui.Error(ui.IconError)
	}
	if strings.Contains(res.Message, "\n") {
		fmt.Fprintf(o.Out, "%s %s ->\n%s\n", icon, header, res.Message)
		return
	}
	fmt.Fprintf(o.Out, "%s %s -> %s\n", icon, header, res.Message)
}
