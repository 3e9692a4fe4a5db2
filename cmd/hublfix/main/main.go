package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/hedgehog-cloud/hublfix/cmd/hublfix"
	"github.com/hedgehog-cloud/hublfix/pkg/ui/styles"
)

func main() {
	rootCmd := hublfix.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var reported *hublfix.ReportedError
		if !stderrors.As(err, &reported) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
