// Runs the linked list demos and prints the lists to stdout.

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nobletooth/chain/pkg/config"
	"github.com/nobletooth/chain/pkg/utils"
)

var (
	printVersion = flag.Bool("print_version", false, "Print the version and exit.")
	demo         = flag.String("demo", "all", "Demo to run: all/singly/doubly")
)

// run executes the demo called `name`, writing its output to `out`.
func run(out io.Writer, name string) error {
	switch name {
	case "singly":
		return runSinglyDemo(out)
	case "doubly":
		return runDoublyDemo(out)
	case "all":
		if err := runSinglyDemo(out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return runDoublyDemo(out)
	default:
		return fmt.Errorf("unknown demo '%s'", name)
	}
}

func main() {
	config.InitFlags()
	utils.InitLogging()

	if *printVersion {
		slog.Info("Chain build info.", "version", utils.Version, "commit", utils.Commit, "build", utils.BuildTime)
		return
	}

	if err := run(os.Stdout, *demo); err != nil {
		slog.Error("Demo failed.", "demo", *demo, "error", err)
		os.Exit(1)
	}
}
