package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/wintune/internal/core"
	"github.com/lakshaymaurya-felt/wintune/internal/optimize"
	"github.com/lakshaymaurya-felt/wintune/internal/ui"
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ui.ColorPrimary).
	Padding(0, 2)

// printBanner renders the title box with a one-shot system summary.
func printBanner(out io.Writer) {
	info := core.CollectSysInfo()

	lines := []string{
		ui.Title("WinTune") + ui.Muted("  quick Windows maintenance"),
		"",
		fmt.Sprintf("Computer  %s", info.Hostname),
		fmt.Sprintf("OS        %s", info.OS),
	}
	if info.RAMTotal > 0 {
		lines = append(lines, fmt.Sprintf("RAM       %s (%.0f%% used)",
			core.FormatSize(int64(info.RAMTotal)), info.RAMUsedPercent))
	}
	if info.DiskFree > 0 {
		lines = append(lines, fmt.Sprintf("Disk      %s free on %s",
			core.FormatSize(int64(info.DiskFree)), info.SystemDrive))
	}

	fmt.Fprintln(out, bannerStyle.Render(strings.Join(lines, "\n")))
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "Choose actions to perform (comma-separated numbers):")
	tempItem := " 1) Clean %TEMP%"
	fmt.Fprintln(out, tempItem)
	fmt.Fprintln(out, " 2) Empty Recycle Bin")
	fmt.Fprintln(out, " 3) Optimize TCP (apply recommended netsh settings)")
	fmt.Fprintln(out, " 4) Restart network adapters (list will be shown)")
	fmt.Fprintln(out, " 5) Show saved Wi-Fi passwords")
	fmt.Fprintln(out, " 6) Run all")
	fmt.Fprintln(out, " 7) Create God Mode folder on Desktop")
}

// runMenuLoop drives the interactive menu until the user asks to exit or
// the input stream ends.
func runMenuLoop(orch *optimize.Orchestrator, cfg optimize.Config) {
	printBanner(orch.Out)

	for {
		printMenu(orch.Out)
		fmt.Fprint(orch.Out, "Selection (e.g. 1,2): ")
		raw, err := ui.ReadLine(orch.In)
		if err != nil {
			return
		}

		ids := optimize.ParseMenuSelection(raw)
		if len(ids) == 0 {
			fmt.Fprint(orch.Out, "No actions selected. Press Enter to exit, or type 'r' to return to the menu: ")
			resp, err := ui.ReadLine(orch.In)
			if err != nil || !strings.EqualFold(resp, "r") {
				return
			}
			continue
		}

		orch.Run(ids, cfg)

		fmt.Fprint(orch.Out, "Press Enter to return to the menu, or type 'exit' to quit: ")
		resp, err := ui.ReadLine(orch.In)
		if err != nil || strings.EqualFold(resp, "exit") {
			return
		}
	}
}

// Pause blocks until Enter is pressed. main calls this after an
// interactive session so double-click-launched windows stay visible.
func Pause() {
	ui.Pause(bufio.NewReader(os.Stdin), os.Stdout, "Press Enter to close...")
}
