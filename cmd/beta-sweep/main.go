package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"isinglab/internal/sims/ising"
)

type scenario struct {
	beta float64
}

type scenarioResult struct {
	beta           float64
	meanAbsMag     float64
	meanEnergy     float64
	susceptibility float64
}

func main() {
	width := flag.Int("w", 128, "lattice width")
	height := flag.Int("h", 128, "lattice height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	betaFrom := flag.Float64("from", 0.1, "lowest inverse temperature")
	betaTo := flag.Float64("to", 0.8, "highest inverse temperature")
	points := flag.Int("points", 29, "number of sweep points")
	equilibrate := flag.Int("equilibrate", 200, "sweeps to discard before sampling")
	samples := flag.Int("samples", 300, "sweeps to sample per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "optional CSV output path")
	flag.Parse()

	if *points < 2 || *betaTo <= *betaFrom {
		log.Fatalf("invalid sweep range: from=%v to=%v points=%d", *betaFrom, *betaTo, *points)
	}

	var sets []scenario
	stride := (*betaTo - *betaFrom) / float64(*points-1)
	for i := 0; i < *points; i++ {
		sets = append(sets, scenario{beta: *betaFrom + float64(i)*stride})
	}

	fmt.Printf("Sweeping %d beta points on %dx%d (%d workers, %d+%d steps each)\n",
		len(sets), *width, *height, *workers, *equilibrate, *samples)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(*width, *height, *seed, s.beta, *equilibrate, *samples)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].beta < all[j].beta })
	elapsed := time.Since(start)

	fmt.Printf("\n%8s  %10s  %10s  %12s\n", "beta", "<|m|>", "<e>", "chi")
	for _, res := range all {
		fmt.Printf("%8.4f  %10.4f  %10.4f  %12.4f\n",
			res.beta, res.meanAbsMag, res.meanEnergy, res.susceptibility)
	}

	peak := all[0]
	for _, res := range all {
		if res.susceptibility > peak.susceptibility {
			peak = res
		}
	}
	fmt.Printf("\nSusceptibility peak at beta=%.4f (chi=%.4f), elapsed %s\n",
		peak.beta, peak.susceptibility, elapsed.Round(time.Millisecond))

	if *csvPath != "" {
		if err := writeCSV(*csvPath, all); err != nil {
			log.Fatalf("writing csv: %v", err)
		}
		fmt.Printf("wrote %s\n", *csvPath)
	}
}

// runScenario equilibrates a fresh lattice at the given beta and then samples
// the absolute magnetization and energy per site once per sweep.
func runScenario(width, height int, seed int64, beta float64, equilibrate, samples int) scenarioResult {
	cfg := ising.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg.Params.Beta = beta

	sim := ising.NewWithConfig(cfg)
	for i := 0; i < equilibrate; i++ {
		sim.Step()
	}

	var sumM, sumM2, sumE float64
	for i := 0; i < samples; i++ {
		sim.Step()
		m := math.Abs(sim.Magnetization())
		sumM += m
		sumM2 += m * m
		sumE += sim.EnergyPerSite()
	}

	n := float64(samples)
	meanM := sumM / n
	sites := float64(width * height)
	return scenarioResult{
		beta:           beta,
		meanAbsMag:     meanM,
		meanEnergy:     sumE / n,
		susceptibility: sites * beta * (sumM2/n - meanM*meanM),
	}
}

func writeCSV(path string, results []scenarioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"beta", "mean_abs_m", "mean_e", "chi"}); err != nil {
		return err
	}
	for _, res := range results {
		record := []string{
			strconv.FormatFloat(res.beta, 'f', 6, 64),
			strconv.FormatFloat(res.meanAbsMag, 'f', 6, 64),
			strconv.FormatFloat(res.meanEnergy, 'f', 6, 64),
			strconv.FormatFloat(res.susceptibility, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
