package todohawk

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todohawk/todohawk/internal/markers"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the marker patterns the scanner looks for",
		Run: func(_ *cobra.Command, _ []string) {
			for _, p := range markers.Patterns() {
				fmt.Println(p)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
