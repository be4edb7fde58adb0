// Package main runs a standalone vessel-synthesis demo: seed a root in a
// spherical domain, run the growth engine for its configured step count,
// and report the resulting forest sizes. It is a convenience wrapper, not
// part of the engine's public surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/nikolausrauch/vessel-synthesizer/domain/refdomain"
	"github.com/nikolausrauch/vessel-synthesizer/engine"
	"github.com/nikolausrauch/vessel-synthesizer/geom"
	"github.com/nikolausrauch/vessel-synthesizer/settings"
	"github.com/nikolausrauch/vessel-synthesizer/settingsconfig"
)

func main() {
	configPath := flag.String("config", "", "Settings YAML file (empty = use defaults)")
	radius := flag.Float64("radius", 10, "Domain sphere radius")
	seed := flag.Int64("seed", 1, "Domain RNG seed")
	logLevel := flag.String("log-level", "info", "slog level: debug|info|warn|error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	})))

	sett, err := settingsconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	d := refdomain.NewSphere(geom.Point{}, float32(*radius))
	d.Seed(uint32(*seed))

	e := engine.New(d)
	e.SetSettings(sett)
	e.CreateRoot(settings.Arterial, d.Sample())

	start := time.Now()
	e.Run()
	elapsed := time.Since(start)

	for _, sys := range [...]settings.System{settings.Arterial, settings.Venous} {
		snap := e.Telemetry(sys).Snapshot()
		forest := e.GetForest(sys)
		nodeCount := 0
		for _, t := range forest.Trees() {
			nodeCount += t.NodeCount()
		}
		slog.Info("system complete", "system", sys.String(), "nodes", nodeCount, "stats", snap)
	}

	fmt.Printf("finished %d steps in %s\n", e.Step(), elapsed)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
