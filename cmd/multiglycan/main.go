/*
multiglycan is the command line front end for the glycopeptide search
engine: it wires FASTA/MGF input, the glycan builder cache, and the
matcher into a single "search" subcommand.

Argument parsing and the app template live here, following the
project's one-command-per-file convention; the actual work each
subcommand does lives in commands.go.
*/
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

// run is separated from main for debugging's sake.
func run(args []string) {
	if err := application().Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the app's global flags and subcommands.
func application() *cli.App {
	return &cli.App{
		Name:  "multiglycan",
		Usage: "Identify N-linked glycopeptides from tandem mass spectra.",

		Commands: []*cli.Command{
			{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Search a protein FASTA database against an MGF spectrum file.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "fasta", Required: true, Usage: "protein FASTA file"},
					&cli.StringFlag{Name: "mgf", Required: true, Usage: "MGF spectrum file"},
					&cli.StringFlag{Name: "out", Value: "results.csv", Usage: "output CSV path"},
					&cli.StringFlag{Name: "cache", Usage: "SQLite glycan store cache path; skipped if empty"},

					&cli.StringFlag{Name: "proteases", Value: "trypsin", Usage: "comma-separated: trypsin, chymotrypsin, lysc"},
					&cli.IntFlag{Name: "miss-cleavage", Value: 1, Usage: "maximum missed cleavages per peptide"},

					&cli.StringFlag{Name: "tolerance-by", Value: "ppm", Usage: "ppm or dalton"},
					&cli.Float64Flag{Name: "tolerance", Value: 10, Usage: "fragment mass tolerance"},
					&cli.Float64Flag{Name: "precursor-tolerance", Value: 10, Usage: "precursor mass tolerance"},

					&cli.IntFlag{Name: "hexnac", Value: 4, Usage: "composition envelope: max HexNAc"},
					&cli.IntFlag{Name: "hex", Value: 5, Usage: "composition envelope: max Hex"},
					&cli.IntFlag{Name: "fuc", Value: 1, Usage: "composition envelope: max Fuc"},
					&cli.IntFlag{Name: "neuac", Value: 2, Usage: "composition envelope: max NeuAc"},
					&cli.IntFlag{Name: "neugc", Value: 0, Usage: "composition envelope: max NeuGc"},
				},
				Action: searchCommand,
			},
		},
	}
}
