package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/diffuse1d/internal/analysis"
	"github.com/san-kum/diffuse1d/internal/config"
	"github.com/san-kum/diffuse1d/internal/diffusion"
	"github.com/san-kum/diffuse1d/internal/export"
	"github.com/san-kum/diffuse1d/internal/metrics"
	"github.com/san-kum/diffuse1d/internal/storage"
	"github.com/san-kum/diffuse1d/internal/viz"
)

var (
	dataDir      string
	dt           float64
	duration     float64
	diffusivity  float64
	dx           float64
	length       int
	boundaryLow  string
	boundaryHigh string
	profile      string
	amplitude    float64
	configFile   string
	preset       string
	svgOut       string
	svgTraces    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diffuse1d",
		Short: "explicit 1D diffusion solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffuse1d", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a diffusion simulation",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the field diffuse in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "check the explicit stability bound",
		RunE:  checkStability,
	}
	stabilityCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	stabilityCmd.Flags().Float64Var(&diffusivity, "diffusivity", config.DefaultDiffusivity, "diffusion coefficient")
	stabilityCmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "grid spacing")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "spatial power spectrum of the final profile",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run snapshots to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run snapshots to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "diffusion.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgTraces, "traces", 8, "number of snapshots to overlay")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, stabilityCmd, presetsCmd, spectrumCmd, exportCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration")
	cmd.Flags().Float64Var(&diffusivity, "diffusivity", config.DefaultDiffusivity, "diffusion coefficient")
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "grid spacing")
	cmd.Flags().IntVar(&length, "length", config.DefaultLength, "number of grid points")
	cmd.Flags().StringVar(&boundaryLow, "boundary-low", "clamp", "lower boundary kind (clamp|periodic|mirror)")
	cmd.Flags().StringVar(&boundaryHigh, "boundary-high", "clamp", "upper boundary kind (clamp|periodic|mirror)")
	cmd.Flags().StringVar(&profile, "initial", "gaussian", "initial profile")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "initial profile amplitude")
}

// resolveConfig merges preset, config file and flags, with flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("diffusivity") {
		cfg.Diffusivity = diffusivity
	}
	if cmd.Flags().Changed("dx") {
		cfg.Dx = dx
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("boundary-low") {
		cfg.BoundaryLow = boundaryLow
	}
	if cmd.Flags().Changed("boundary-high") {
		cfg.BoundaryHigh = boundaryHigh
	}
	if cmd.Flags().Changed("initial") {
		cfg.Initial.Profile = profile
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Initial.Amplitude = amplitude
	}

	return cfg, nil
}

func buildEquation(cfg *config.Config) (diffusion.Equation, error) {
	lower, upper, err := cfg.Boundaries()
	if err != nil {
		return diffusion.Equation{}, err
	}
	eq := diffusion.NewEquation(cfg.Diffusivity)
	eq.Dx = cfg.Dx
	eq.Lower, eq.Upper = lower, upper
	return eq, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eq, err := buildEquation(cfg)
	if err != nil {
		return err
	}

	f0, err := cfg.MakeInitial()
	if err != nil {
		return err
	}

	if !diffusion.IsStable(cfg.Diffusivity, cfg.Dt, cfg.Dx) {
		fmt.Printf("warning: D*dt/h^2 = %.3f exceeds %.1f, expect divergence\n",
			diffusion.DiffusionNumber(cfg.Diffusivity, cfg.Dt, cfg.Dx), diffusion.StabilityLimit)
	}

	solver := diffusion.New(eq)
	solver.AddMetric(metrics.NewMassDrift())
	solver.AddMetric(metrics.NewPeak())
	solver.AddMetric(metrics.NewSpread())

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running diffusion: length=%d D=%g dt=%g duration=%g boundaries=%s/%s\n",
		cfg.Length, cfg.Diffusivity, cfg.Dt, cfg.Duration, cfg.BoundaryLow, cfg.BoundaryHigh)
	start := time.Now()

	result, err := solver.Run(context.Background(), f0, diffusion.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Length:       cfg.Length,
		Dx:           cfg.Dx,
		Dt:           cfg.Dt,
		Duration:     cfg.Duration,
		Diffusivity:  cfg.Diffusivity,
		BoundaryLow:  cfg.BoundaryLow,
		BoundaryHigh: cfg.BoundaryHigh,
		Initial:      cfg.Initial.Profile,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eq, err := buildEquation(cfg)
	if err != nil {
		return err
	}

	f0, err := cfg.MakeInitial()
	if err != nil {
		return err
	}

	if err := eq.Validate(len(f0)); err != nil {
		return err
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Dt)
	}

	return viz.Run(eq, f0, cfg.Dt)
}

func checkStability(cmd *cobra.Command, args []string) error {
	ratio := diffusion.DiffusionNumber(diffusivity, dt, dx)
	fmt.Printf("D*dt/h^2 = %.4f (limit %.1f)\n", ratio, diffusion.StabilityLimit)
	if diffusion.IsStable(diffusivity, dt, dx) {
		fmt.Println("stable")
		return nil
	}
	fmt.Println("unstable: the explicit scheme will diverge")
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLENGTH\tDURATION\tDT\tD\tBOUNDARIES\tINITIAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%.4fs\t%.3f\t%s/%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			run.Duration,
			run.Dt,
			run.Diffusivity,
			run.BoundaryLow,
			run.BoundaryHigh,
			run.Initial,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fields, times, err := st.LoadFields(runID)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("initial: %s, boundaries: %s/%s\n", meta.Initial, meta.BoundaryLow, meta.BoundaryHigh)
	fmt.Printf("snapshots: %d\n\n", len(fields))

	first := fields[0]
	final := fields[len(fields)-1]

	graph := asciigraph.Plot(first,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("c(x) at t=%.2f", times[0])),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(final,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("c(x) at t=%.2f", times[len(times)-1])),
	)
	fmt.Println(graph)
	fmt.Println()

	mass := make([]float64, len(fields))
	for i, f := range fields {
		mass[i] = f.Sum()
	}
	graph = asciigraph.Plot(mass,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("total mass vs time"),
	)
	fmt.Println(graph)

	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fields, times, err := st.LoadFields(args[0])
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return fmt.Errorf("no data")
	}

	final := fields[len(fields)-1]
	ps := analysis.PowerSpectrum(final)

	fmt.Printf("spatial spectrum: %s at t=%.2f\n", meta.ID, times[len(times)-1])
	fmt.Printf("boundaries: %s/%s\n\n", meta.BoundaryLow, meta.BoundaryHigh)

	plotData := ps[:len(ps)/2]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("mode magnitude vs wavenumber"),
	)
	fmt.Println(graph)

	// Modes decay like exp(-D*k^2*t), so anything left above the mean
	// component is the large-scale remainder.
	if len(ps) > 1 {
		fmt.Printf("\nmean component: %.4f, strongest mode above it: ", ps[0])
		maxIdx, maxVal := 0, 0.0
		for i := 1; i < len(ps); i++ {
			if ps[i] > maxVal {
				maxVal, maxIdx = ps[i], i
			}
		}
		fmt.Printf("k=%d (%.4f)\n", maxIdx, maxVal)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	fields, times, err := st.LoadFields(args[0])
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return fmt.Errorf("no data")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range fields[0] {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, f := range fields {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range f {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	fields, _, err := st.LoadFields(args[0])
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return fmt.Errorf("no data")
	}

	svg := export.EvolutionToSVG(fields, 800, 400, svgTraces)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d snapshots)\n", svgOut, len(fields))
	return nil
}
