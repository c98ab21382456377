package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/wintune/internal/core"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wintune %s (%s) built %s\n", appVersion, appCommit, appDate)
			fmt.Println(core.WindowsVersionString())
		},
	}
}
