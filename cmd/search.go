package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jjtimmons/jst/config"
	"github.com/jjtimmons/jst/internal/container"
	"github.com/jjtimmons/jst/internal/jsttree"
	"github.com/jjtimmons/jst/internal/matcher"
	"github.com/jjtimmons/jst/internal/telemetry"
	"github.com/jjtimmons/jst/internal/traverse"
	"github.com/spf13/cobra"
)

var searchNeedle string

// searchCmd scans every derived sequence in a JST container for exact
// occurrences of a literal needle, reporting per-sequence hit
// coordinates.
var searchCmd = &cobra.Command{
	Use:   "search [container]",
	Short: "Search every derived sequence in a JST container for a literal",
	Args:  cobra.ExactArgs(1),
	Run:   runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchNeedle, "needle", "n", "", "exact sequence to search for")
	searchCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address while searching (e.g. :9090)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	c := config.NewConfig()
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	if metricsAddr != "" {
		c.Metrics.Addr = metricsAddr
	}
	if searchNeedle == "" {
		log.Fatalf("--needle is required")
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

	m := matcher.NewLiteral(searchNeedle)
	root := jsttree.Pipeline(jsttree.Root(src, store), m.WindowSize())

	metrics, reg := telemetry.NewMetrics()
	if c.Metrics.Addr != "" {
		go func() {
			if err := telemetry.Serve(c.Metrics.Addr, reg); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"sequence", "position"})

	var hits int
	traverse.RunWithMetrics(root, m, metrics, func(h traverse.Hit) {
		hits++
		tbl.AppendRow(table.Row{h.Sequence, h.Position})
	})
	tbl.Render()

	if !c.Display.Quiet {
		fmt.Printf("%d hit(s) across %d sequence(s)\n", hits, store.DomainSize())
	}
}
