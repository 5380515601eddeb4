package multiglycan

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ruizhang84/multiglycan-go/aggregate"
	"github.com/ruizhang84/multiglycan-go/cache"
	"github.com/ruizhang84/multiglycan-go/config"
	"github.com/ruizhang84/multiglycan-go/engine"
	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/logging"
	"github.com/ruizhang84/multiglycan-go/precursor"
	"github.com/ruizhang84/multiglycan-go/protein"
	"github.com/ruizhang84/multiglycan-go/spectrum"
)

// RunSearch wires the whole pipeline for one batch: build or load the
// glycan stores for cfg's composition envelope, digest every protein
// into sequon-bearing candidate peptides, then match each spectrum
// against that shared candidate pool, distributing the per-spectrum
// work across a bounded goroutine pool.
//
// cacheStore may be nil, in which case the glycan builder always runs
// fresh. Results come back aggregated: only the scores tied for each
// scan's maximum survive.
func RunSearch(cfg config.SearchParameter, proteins []protein.Protein, spectra []spectrum.Spectrum, cacheStore *cache.Store) []engine.SearchResult {
	isomer, subset, massStore := glycanStores(cfg, cacheStore)

	peptides := make(map[string]bool)
	for _, p := range proteins {
		for pep := range protein.CandidatePeptides(p.Sequence, cfg.Proteases, cfg.MissCleavage) {
			peptides[pep] = true
		}
	}

	results := searchAll(cfg, spectra, peptides, isomer, subset, massStore)
	return aggregate.Aggregate(results)
}

// glycanStores returns the isomer/subset/mass stores for cfg's
// envelope, consulting cacheStore first when one is given.
func glycanStores(cfg config.SearchParameter, cacheStore *cache.Store) (*glycan.Store, *glycan.Store, *glycan.MassStore) {
	candidates := glycan.DefaultCandidates

	if cacheStore != nil {
		fp := cache.Fingerprint(cfg.CompositionEnvelope, candidates)
		if isomer, subset, massStore, ok := cacheStore.Load(fp); ok {
			return isomer, subset, massStore
		}

		built := glycan.NewBuilder(cfg.CompositionEnvelope).Build()
		if err := cacheStore.Save(fp, built.Isomer, built.Subset, built.Mass); err != nil {
			logging.Logger.Warn("glycan store cache save failed, continuing uncached:", err)
		}
		return built.Isomer, built.Subset, built.Mass
	}

	built := glycan.NewBuilder(cfg.CompositionEnvelope).Build()
	return built.Isomer, built.Subset, built.Mass
}

// searchAll runs engine.Search for every spectrum concurrently,
// bounded to runtime.NumCPU() workers in flight at once, and collects
// the (possibly empty) per-spectrum results into one flat slice.
func searchAll(
	cfg config.SearchParameter,
	spectra []spectrum.Spectrum,
	peptides map[string]bool,
	isomer, subset *glycan.Store,
	massStore *glycan.MassStore,
) []engine.SearchResult {
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	var mu sync.Mutex
	var results []engine.SearchResult

	for _, s := range spectra {
		wg.Add(1)
		sem <- struct{}{}

		go func(s spectrum.Spectrum) {
			defer wg.Done()
			defer func() { <-sem }()

			found, err := searchOne(cfg, s, peptides, isomer, subset, massStore)
			if err != nil {
				logging.SpectrumSkipped(s.Scan, err)
				return
			}
			if len(found) == 0 {
				return
			}

			mu.Lock()
			results = append(results, found...)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	return results
}

// searchOne runs the precursor filter and the three-stage matcher for
// a single spectrum.
func searchOne(
	cfg config.SearchParameter,
	s spectrum.Spectrum,
	peptides map[string]bool,
	isomer, subset *glycan.Store,
	massStore *glycan.MassStore,
) ([]engine.SearchResult, error) {
	peakIndex, err := spectrum.BuildPeakIndex(s, cfg.Tolerance, cfg.ToleranceBy)
	if err != nil {
		return nil, fmt.Errorf("build peak index: %w", err)
	}

	candidates := precursor.BuildCandidates(s, peptides, isomer, cfg.PrecursorTolerance, cfg.ToleranceBy)
	return engine.Search(s, peakIndex, candidates, isomer, subset, massStore, cfg.Tolerance, cfg.ToleranceBy), nil
}
