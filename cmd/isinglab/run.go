package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"isinglab/internal/render"
	"isinglab/internal/sims/ising"
)

var (
	runWidth      int
	runHeight     int
	runSeed       int64
	runBeta       float64
	runSteps      int
	runStart      string
	runLogLevel   string
	runConfigPath string
	runReportEach int
	runPNGPath    string
	runGIFPath    string
	runGIFEvery   int
	runGIFDelay   int
)

// runCmd executes a fixed number of sweeps and reports observables.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless for a fixed number of steps",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(runLogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", runLogLevel)
		}
		logrus.SetLevel(level)

		cfg := resolveConfig(cmd)
		if runSteps <= 0 {
			logrus.Fatalf("--steps must be positive, got %d", runSteps)
		}

		sim := ising.NewWithConfig(cfg)
		logrus.Infof("Starting run: %dx%d lattice, beta=%.4f, seed=%d, steps=%d",
			cfg.Width, cfg.Height, cfg.Params.Beta, cfg.Seed, runSteps)

		var rec *render.GIFRecorder
		if runGIFPath != "" {
			if runGIFEvery <= 0 {
				runGIFEvery = 1
			}
			rec = render.NewGIFRecorder(cfg.Width, cfg.Height, runGIFDelay, color.White, color.Black)
			if err := rec.AddFrame(sim.Cells()); err != nil {
				logrus.Fatalf("recording initial frame: %v", err)
			}
		}

		startTime := time.Now()
		for step := 1; step <= runSteps; step++ {
			sim.Step()
			if runReportEach > 0 && step%runReportEach == 0 {
				logrus.Infof("step %d: m=%+.4f e=%+.4f", step, sim.Magnetization(), sim.EnergyPerSite())
			}
			if rec != nil && step%runGIFEvery == 0 {
				if err := rec.AddFrame(sim.Cells()); err != nil {
					logrus.Fatalf("recording frame at step %d: %v", step, err)
				}
			}
		}
		elapsed := time.Since(startTime)

		fmt.Printf("ran %d steps on %dx%d in %s (%.1f steps/s)\n",
			runSteps, cfg.Width, cfg.Height, elapsed.Round(time.Millisecond),
			float64(runSteps)/elapsed.Seconds())
		fmt.Printf("final: m=%+.4f e=%+.4f\n", sim.Magnetization(), sim.EnergyPerSite())

		if runPNGPath != "" {
			if err := writePNG(runPNGPath, sim); err != nil {
				logrus.Fatalf("writing snapshot: %v", err)
			}
			logrus.Infof("wrote %s", runPNGPath)
		}
		if rec != nil {
			if err := writeGIF(runGIFPath, rec); err != nil {
				logrus.Fatalf("writing animation: %v", err)
			}
			logrus.Infof("wrote %s (%d frames)", runGIFPath, rec.Frames())
		}
	},
}

// resolveConfig layers defaults, the optional YAML file, and explicit flags.
func resolveConfig(cmd *cobra.Command) ising.Config {
	cfg := ising.DefaultConfig()
	if runConfigPath != "" {
		loaded, err := ising.LoadConfig(runConfigPath)
		if err != nil {
			logrus.Fatalf("unable to read config: %v", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = runWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = runHeight
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}
	if cmd.Flags().Changed("beta") {
		if runBeta <= 0 {
			logrus.Fatalf("--beta must be positive, got %v", runBeta)
		}
		cfg.Params.Beta = runBeta
	}
	if cmd.Flags().Changed("start") {
		if runStart != ising.StartHot && runStart != ising.StartCold {
			logrus.Fatalf("--start must be %q or %q", ising.StartHot, ising.StartCold)
		}
		cfg.Params.Start = runStart
	}
	return cfg
}

func writePNG(path string, sim *ising.Ising) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	size := sim.Size()
	return render.WritePNG(f, sim.Cells(), size.W, size.H, color.White, color.Black)
}

func writeGIF(path string, rec *render.GIFRecorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return rec.Encode(f)
}

func init() {
	runCmd.Flags().IntVar(&runWidth, "width", 256, "lattice width")
	runCmd.Flags().IntVar(&runHeight, "height", 256, "lattice height")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1337, "seed for the random stream")
	runCmd.Flags().Float64Var(&runBeta, "beta", 0.4, "inverse temperature")
	runCmd.Flags().IntVar(&runSteps, "steps", 500, "number of full sweeps to run")
	runCmd.Flags().StringVar(&runStart, "start", "hot", "initial lattice (hot, cold)")
	runCmd.Flags().StringVar(&runLogLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "optional YAML config file")
	runCmd.Flags().IntVar(&runReportEach, "report-every", 100, "log observables every N steps (0 disables)")
	runCmd.Flags().StringVar(&runPNGPath, "png", "", "write a PNG snapshot of the final lattice")
	runCmd.Flags().StringVar(&runGIFPath, "gif", "", "write an animated GIF of the run")
	runCmd.Flags().IntVar(&runGIFEvery, "gif-every", 5, "record a GIF frame every N steps")
	runCmd.Flags().IntVar(&runGIFDelay, "gif-delay", 4, "GIF frame delay in 1/100s")

	rootCmd.AddCommand(runCmd)
}
