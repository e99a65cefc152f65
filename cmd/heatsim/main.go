package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/server"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/storage"
	"github.com/san-kum/heatsim/internal/tui"
)

var (
	dataDir     string
	materialArg string
	length      float64
	tmax        float64
	initialTemp float64
	amplitude   float64
	points      int
	sourceScale float64
	speed       int
	gridMode    bool
	configFile  string
	preset      string
	serverAddr  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatsim",
		Short: "implicit heat equation simulation lab",
		Run: func(cmd *cobra.Command, args []string) {
			app := tui.NewApp(config.DefaultConfig())
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [bar|plate]",
		Short: "run simulation to the time horizon",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [bar|plate]",
		Short: "run simulation with live heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  liveView,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "steps per frame")
	liveCmd.Flags().BoolVar(&gridMode, "grid", false, "all four materials side by side (plate)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list materials",
		RunE:  listMaterials,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [bar|plate]",
		Short: "list presets for a simulation kind",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run traces",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "export run plots to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trace to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [bar|plate]",
		Short: "run all materials on the same domain",
		Args:  cobra.ExactArgs(1),
		RunE:  compareMaterials,
	}
	addSimFlags(compareCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "websocket frame server",
		RunE:  serveFrames,
	}
	serveCmd.Flags().StringVar(&serverAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(runCmd, liveCmd, materialsCmd, presetsCmd, listCmd,
		plotCmd, exportCSVCmd, exportJSONCmd, exportPNGCmd, exportSVGCmd,
		compareCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&materialArg, "material", "iron", "material name")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length (m)")
	cmd.Flags().Float64Var(&tmax, "time", config.DefaultTmax, "time horizon (s)")
	cmd.Flags().Float64Var(&initialTemp, "u0", config.DefaultInitialTemp, "initial and boundary temperature (°C)")
	cmd.Flags().Float64Var(&amplitude, "f", config.DefaultAmplitude, "source amplitude")
	cmd.Flags().IntVar(&points, "points", 0, "grid points per axis (0 = kind default)")
	cmd.Flags().Float64Var(&sourceScale, "scale", 0, "source amplification (0 = default)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file, and flags; flags win.
func buildConfig(cmd *cobra.Command, kindArg string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Kind = kindArg

	if preset != "" {
		p := config.GetPreset(kindArg, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kindArg))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Kind = kindArg
	}

	if cmd.Flags().Changed("material") {
		cfg.Material = materialArg
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("time") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("u0") {
		cfg.InitialTemp = initialTemp
	}
	if cmd.Flags().Changed("f") {
		cfg.SourceAmplitude = amplitude
	}
	if cmd.Flags().Changed("points") {
		cfg.GridPoints = points
	}
	if cmd.Flags().Changed("scale") {
		cfg.SourceScale = sourceScale
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("grid") {
		cfg.GridMode = gridMode
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	kind, err := sim.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd, kind.String())
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	session, err := sim.NewSession(kind, params)
	if err != nil {
		return err
	}

	cellVolume := params.Length / float64(params.GridPoints-1)
	if kind == sim.Plate2D {
		cellVolume *= cellVolume
	}

	runner := sim.NewRunner(session)
	runner.AddMetric(metrics.NewMaxTemperature())
	runner.AddMetric(metrics.NewMeanTemperature())
	runner.AddMetric(metrics.NewHeatContent(params.Material.Density, params.Material.SpecificHeat, cellVolume))
	runner.AddMetric(sim.NewSweepCount(session))

	fmt.Printf("running %s/%s, n=%d, tmax=%.3gs...\n", kind, params.Material.Name, params.GridPoints, params.Tmax)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.RunConfig{})
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(kind, params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func liveView(cmd *cobra.Command, args []string) error {
	kind, err := sim.ParseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := buildConfig(cmd, kind.String())
	if err != nil {
		return err
	}
	if cfg.GridMode && kind != sim.Plate2D {
		return fmt.Errorf("grid mode needs a plate")
	}

	app, err := tui.NewLiveApp(cfg, kind)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tλ (W/mK)\tρ (kg/m³)\tc (J/kgK)\tα (m²/s)")
	for _, m := range material.All {
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\n",
			m.Name, m.Conductivity, m.Density, m.SpecificHeat, m.Alpha())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets(args[0])
	if names == nil {
		return fmt.Errorf("unknown kind: %s", args[0])
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMATERIAL\tL\tTMAX\tU0\tF\tPOINTS")
	for _, name := range names {
		p := config.GetPreset(args[0], name)
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.3g\t%.3g\t%.3g\t%d\n",
			name, p.Material, p.Length, p.Tmax, p.InitialTemp, p.SourceAmplitude, p.GridPoints)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tKIND\tMATERIAL\tTIME\tTMAX\tPOINTS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%d\t%d\n",
			run.ID, run.Kind, run.Material,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Tmax, run.GridPoints, run.Steps)
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
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s  material: %s\n", meta.Kind, meta.Material)
	fmt.Printf("samples: %d\n\n", len(trace.Times))

	series := []struct {
		caption string
		data    []float64
	}{
		{"max temperature (K)", trace.Max},
		{"center temperature (K)", trace.Center},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportCSV(os.Stdout, args[0])
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSON(os.Stdout, args[0])
}

func exportPNG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s %s", meta.Material, meta.Kind)

	tracePath := runID + "_trace.png"
	if err := export.TracePNG(tracePath, title, trace); err != nil {
		return err
	}
	profilePath := runID + "_profile.png"
	if err := export.ProfilePNG(profilePath, title, meta.Length, field); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s\n", tracePath, profilePath)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	path := runID + "_trace.svg"
	if err := os.WriteFile(path, []byte(export.TraceSVG(trace, 800, 400)), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func compareMaterials(cmd *cobra.Command, args []string) error {
	kind, err := sim.ParseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := buildConfig(cmd, kind.String())
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d materials on %s, n=%d, tmax=%.3gs...\n",
		len(material.All), kind, params.GridPoints, params.Tmax)
	start := time.Now()

	comparison := sim.NewComparison(kind, params, nil)
	entries, err := comparison.Run(context.Background(), sim.RunConfig{SampleEvery: 10})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tα (m²/s)\tFINAL MAX (K)\tFINAL CENTER (K)\tSWEEPS")
	for _, e := range entries {
		finalMax := e.Result.MaxTrace[len(e.Result.MaxTrace)-1]
		finalCenter := e.Result.Center[len(e.Result.Center)-1]
		fmt.Fprintf(w, "%s\t%.4g\t%.2f\t%.2f\t%.0f\n",
			e.Material.Name, e.Material.Alpha(), finalMax, finalCenter,
			e.Result.Metrics["total_sweeps"])
	}
	return w.Flush()
}

func serveFrames(cmd *cobra.Command, args []string) error {
	return server.NewServer(serverAddr).Serve()
}
