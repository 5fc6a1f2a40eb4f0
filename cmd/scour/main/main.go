package main

import (
	"fmt"
	"os"

	"github.com/scourtool/scour/cmd/scour"
	"github.com/scourtool/scour/pkg/output"
)

func main() {
	rootCmd := scour.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := output.GetStyle("Failed")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
