package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"tabnado/internal/cluster"
	"tabnado/internal/export"
	"tabnado/internal/tabs"
	"tabnado/internal/tui"
	"tabnado/internal/vortex"
)

var (
	tabsFile     string
	clustersFile string
	endpoint     string
	paramsFile   string
	outFile      string
	light        bool
	capLimit     int
	seed         int64
	// bench knobs
	benchTabs   int
	benchFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabnado",
		Short: "swirl your browser tabs into a tornado and let them settle into clusters",
		RunE:  runInteractive,
	}
	rootCmd.PersistentFlags().StringVar(&tabsFile, "tabs", "", "tab dump file (json array or url<TAB>title lines)")
	rootCmd.PersistentFlags().StringVar(&clustersFile, "clusters", "", "pre-computed clustering result (json)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "classification service URL")
	rootCmd.Flags().StringVar(&paramsFile, "params", vortex.DefaultPath(), "tuning parameter slot")
	rootCmd.Flags().BoolVar(&light, "light", false, "force the light theme")
	rootCmd.Flags().IntVar(&capLimit, "cap", vortex.DefaultCap, "max particles")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	clusterCmd := &cobra.Command{
		Use:   "cluster",
		Short: "classify a tab dump and print the grouping json",
		RunE:  runCluster,
	}
	clusterCmd.Flags().StringVar(&outFile, "out", "", "write result to file instead of stdout")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export grouped tabs as a bookmark file",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "bookmarks.html", "output file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the engine headless",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTabs, "tabs-count", vortex.DefaultCap, "synthetic tab count")
	benchCmd.Flags().IntVar(&benchFrames, "frames", 600, "frames to simulate")

	rootCmd.AddCommand(clusterCmd, exportCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadTabs() ([]tabs.Item, error) {
	if tabsFile == "" {
		return nil, fmt.Errorf("no tab dump given, use --tabs")
	}
	items, err := tabs.ParseFile(tabsFile)
	if err != nil {
		return nil, fmt.Errorf("read tabs: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no usable tabs in %s", tabsFile)
	}
	return items, nil
}

// resolveClusters picks the grouping source in priority order: file,
// service, offline by-domain fallback.
func resolveClusters(items []tabs.Item) (*cluster.Result, error) {
	if clustersFile != "" {
		return cluster.LoadFile(clustersFile)
	}
	if endpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		return cluster.NewClient(endpoint).Classify(ctx, items)
	}
	return cluster.ByDomain(items), nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	items, err := loadTabs()
	if err != nil {
		return err
	}
	var res *cluster.Result
	if clustersFile != "" {
		if res, err = cluster.LoadFile(clustersFile); err != nil {
			return fmt.Errorf("read clusters: %w", err)
		}
	}
	return tui.Run(tui.Options{
		Items:    items,
		Store:    vortex.NewStore(paramsFile),
		Result:   res,
		Endpoint: endpoint,
		Light:    light,
		Cap:      capLimit,
		Seed:     seed,
	})
}

func runCluster(cmd *cobra.Command, args []string) error {
	items, err := loadTabs()
	if err != nil {
		return err
	}
	res, err := resolveClusters(items)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := cluster.SaveFile(outFile, res); err != nil {
			return err
		}
		fmt.Printf("wrote %d groups to %s\n", len(res.Groups), outFile)
		return nil
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	items, err := loadTabs()
	if err != nil {
		return err
	}
	res, err := resolveClusters(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, []byte(export.Bookmarks(res, items)), 0644); err != nil {
		return err
	}
	fmt.Printf("exported %d tabs in %d groups to %s\n", len(items), len(res.Groups), outFile)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	items := make([]vortex.Item, benchTabs)
	for i := range items {
		items[i] = vortex.Item{ID: fmt.Sprintf("tab-%d", i), Title: fmt.Sprintf("tab %d", i)}
	}
	e := vortex.New(items, vortex.NewStore(""), vortex.Options{Seed: 1})
	e.SetResult(cluster.ByDomain(nil))

	samples := make([]float64, 0, benchFrames)
	for i := 0; i < benchFrames; i++ {
		start := time.Now()
		e.Step()
		samples = append(samples, float64(time.Since(start).Microseconds()))
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	fmt.Printf("%d particles, %d frames\n", len(e.Pool().Particles), benchFrames)
	fmt.Printf("step time: mean %.1fµs  p50 %.1fµs  p99 %.1fµs  max %.1fµs\n",
		mean, sorted[len(sorted)/2], sorted[len(sorted)*99/100], sorted[len(sorted)-1])
	fmt.Println(asciigraph.Plot(samples, asciigraph.Height(12), asciigraph.Caption("step µs per frame")))
	return nil
}
