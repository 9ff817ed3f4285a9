package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/deanrtaylor1/docdistance/cli"
	"github.com/deanrtaylor1/docdistance/util"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			fmt.Fprintln(os.Stderr, util.TerminalRed+"Error: "+err.Error()+util.TerminalReset)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
