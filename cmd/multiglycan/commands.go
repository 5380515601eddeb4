package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/urfave/cli/v2"

	multiglycan "github.com/ruizhang84/multiglycan-go"
	"github.com/ruizhang84/multiglycan-go/cache"
	"github.com/ruizhang84/multiglycan-go/config"
	"github.com/ruizhang84/multiglycan-go/engine"
	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/io/fasta"
	"github.com/ruizhang84/multiglycan-go/io/mgf"
	"github.com/ruizhang84/multiglycan-go/io/resultcsv"
	"github.com/ruizhang84/multiglycan-go/logging"
	"github.com/ruizhang84/multiglycan-go/protein"
	"github.com/ruizhang84/multiglycan-go/search"
	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// searchCommand reads the FASTA/MGF inputs named by flags, runs the
// full search pipeline, and writes the aggregated results to -out.
func searchCommand(c *cli.Context) error {
	proteins, err := readFasta(c.String("fasta"))
	if err != nil {
		return err
	}
	spectra, err := readMGF(c.String("mgf"))
	if err != nil {
		return err
	}

	cfg, err := parseConfig(c)
	if err != nil {
		return err
	}

	var cacheStore *cache.Store
	if path := c.String("cache"); path != "" {
		cacheStore, err = cache.Open(path)
		if err != nil {
			logging.Logger.Warn("glycan store cache unavailable, continuing uncached:", err)
			cacheStore = nil
		} else {
			defer cacheStore.Close()
		}
	}

	results := multiglycan.RunSearch(cfg, proteins, spectra, cacheStore)

	out, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	if err := resultcsv.Write(out, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	printSummary(len(proteins), len(spectra), results, c.String("out"))
	return nil
}

func readFasta(path string) ([]protein.Protein, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fasta: %w", err)
	}
	defer f.Close()
	proteins, err := fasta.Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing fasta: %w", err)
	}
	return proteins, nil
}

func readMGF(path string) ([]spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mgf: %w", err)
	}
	defer f.Close()
	spectra, err := mgf.Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing mgf: %w", err)
	}
	return spectra, nil
}

func parseConfig(c *cli.Context) (config.SearchParameter, error) {
	proteases, err := parseProteases(c.String("proteases"))
	if err != nil {
		return config.SearchParameter{}, err
	}
	toleranceBy, err := parseToleranceBy(c.String("tolerance-by"))
	if err != nil {
		return config.SearchParameter{}, err
	}

	return config.SearchParameter{
		MissCleavage:       c.Int("miss-cleavage"),
		Proteases:          proteases,
		Tolerance:          c.Float64("tolerance"),
		ToleranceBy:        toleranceBy,
		PrecursorTolerance: c.Float64("precursor-tolerance"),
		CompositionEnvelope: glycan.Envelope{
			HexNAc: c.Int("hexnac"),
			Hex:    c.Int("hex"),
			Fuc:    c.Int("fuc"),
			NeuAc:  c.Int("neuac"),
			NeuGc:  c.Int("neugc"),
		},
	}, nil
}

func parseProteases(s string) ([]protein.Protease, error) {
	var out []protein.Protease
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "trypsin":
			out = append(out, protein.Trypsin)
		case "chymotrypsin":
			out = append(out, protein.Chymotrypsin)
		case "lysc":
			out = append(out, protein.LysC)
		default:
			return nil, fmt.Errorf("unknown protease %q", name)
		}
	}
	return out, nil
}

func parseToleranceBy(s string) (search.ToleranceBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ppm":
		return search.PPM, nil
	case "dalton", "da":
		return search.Dalton, nil
	default:
		return 0, fmt.Errorf("unknown tolerance-by %q", s)
	}
}

// printSummary writes a short, line-wrapped run report to stdout.
func printSummary(proteinCount, spectrumCount int, results []engine.SearchResult, outPath string) {
	scans := make(map[int32]bool, len(results))
	for _, r := range results {
		scans[r.Scan] = true
	}

	report := fmt.Sprintf(
		"Searched %d protein(s) against %d spectrum/spectra and identified %d glycopeptide assignment(s) across %d scan(s). Results written to %s.",
		proteinCount, spectrumCount, len(results), len(scans), outPath,
	)
	fmt.Println(wordwrap.WrapString(report, 68))
}
