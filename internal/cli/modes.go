package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapvo/snapvo/internal/render"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available display modes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range render.List() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
