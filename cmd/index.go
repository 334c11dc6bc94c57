package cmd

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jjtimmons/jst/config"
	"github.com/jjtimmons/jst/internal/container"
	"github.com/spf13/cobra"
)

// indexCmd builds a .jst binary container from a source sequence and
// variant list and writes it to disk.
var indexCmd = &cobra.Command{
	Use:   "index [in] [out]",
	Short: "Build a JST container from a source sequence and its variants",
	Long: `Read a source sequence and its variants from an input file, build
the journaled variant store, and write it out as a JST binary container.`,
	Args: cobra.ExactArgs(2),
	Run:  runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, args []string) {
	c := config.NewConfig()
	in, out := args[0], args[1]

	src, store, err := loadRecords(in)
	if err != nil {
		log.Fatalf("%v", err)
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("create %q: %v", out, err)
	}
	defer f.Close()

	if err := container.Write(f, src, store); err != nil {
		log.Fatalf("write container: %v", err)
	}

	if !c.Display.Quiet {
		log.Printf("wrote %s: %s bp, %d variants, domain %d",
			out, humanize.Comma(int64(len(src))), store.Len(), store.DomainSize())
	}
}
