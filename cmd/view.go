package cmd

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jjtimmons/jst/config"
	"github.com/jjtimmons/jst/internal/container"
	"github.com/jjtimmons/jst/internal/jsttree"
	"github.com/jjtimmons/jst/internal/matcher"
	"github.com/jjtimmons/jst/internal/traverse"
	"github.com/spf13/cobra"
)

var viewWindowSize int

// viewCmd prints a JST container's tree walk (reference edges in one
// colour, alternate edges in another) and a table of every fixed-size
// window it emits.
var viewCmd = &cobra.Command{
	Use:   "view [container]",
	Short: "Inspect a JST container's tree walk and emitted windows",
	Args:  cobra.ExactArgs(1),
	Run:   runView,
}

func init() {
	viewCmd.Flags().IntVarP(&viewWindowSize, "window-size", "k", 0, "window size (defaults to the configured traversal window size)")
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, args []string) {
	c := config.NewConfig()
	k := viewWindowSize
	if k <= 0 {
		k = c.Traversal.WindowSize
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("open %q: %v", args[0], err)
	}
	defer f.Close()

	src, store, err := container.Read(f)
	if err != nil {
		log.Fatalf("read container: %v", err)
	}

	ref := color.New(color.FgGreen)
	alt := color.New(color.FgYellow)
	if c.Display.NoColor {
		color.NoColor = true
	}

	printWalk(jsttree.Root(src, store), "", ref, alt)

	root := jsttree.Pipeline(jsttree.Root(src, store), k)
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"sequence", "position"})

	traverse.Run(root, matcher.NewAllWindows(k), func(h traverse.Hit) {
		tbl.AppendRow(table.Row{h.Sequence, h.Position})
	})
	tbl.Render()
}

func printWalk(c jsttree.Raw, indent string, ref, alt *color.Color) {
	if c.IsSink() {
		return
	}
	for _, e := range c.Edges() {
		painter := alt
		if e.Cargo.Reference {
			painter = ref
		}
		painter.Printf("%s%s (cov=%d)\n", indent, e.Cargo.Seq, e.Cargo.Cov.PopCount())
		if child, ok := e.Child.(jsttree.Raw); ok {
			printWalk(child, indent+"  ", ref, alt)
		}
	}
}
