// ABOUTME: Entry point for the Pulseplay player
// ABOUTME: Parses CLI flags and drives playback, sweep, or server mode
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pulseplay-Audio/pulseplay-go/internal/config"
	"github.com/Pulseplay-Audio/pulseplay-go/internal/control"
	"github.com/Pulseplay-Audio/pulseplay-go/internal/discovery"
	"github.com/Pulseplay-Audio/pulseplay-go/internal/ui"
	"github.com/Pulseplay-Audio/pulseplay-go/internal/version"
	"github.com/Pulseplay-Audio/pulseplay-go/pkg/player"
	"github.com/Pulseplay-Audio/pulseplay-go/pkg/sink"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

// sweepSpeeds reproduces the classic bring-up sequence: normal, brisk,
// frame skipping, heavy frame skipping.
var sweepSpeeds = []float64{1.0, 1.5, 2.0, 3.0}

func main() {
	cfg := config.Load()

	var (
		file       = flag.String("file", cfg.File, "WAV file to play")
		speed      = flag.Float64("speed", cfg.Speed, "Playback speed multiplier (0.25-4.0)")
		sweep      = flag.Bool("sweep", false, "Play the file at 1.0x, 1.5x, 2.0x and 3.0x in sequence")
		serve      = flag.Bool("serve", false, "Run the WebSocket control server instead of playing a file")
		port       = flag.Int("port", cfg.Port, "Control server port")
		name       = flag.String("name", cfg.Name, "Advertised player name (default: hostname-pulseplay)")
		chunkSize  = flag.Int("chunk", cfg.ChunkSize, "Chunk size in samples")
		carryPhase = flag.Bool("carry-phase", cfg.CarryPhase, "Carry decimation phase across chunk boundaries")
		noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
		logFile    = flag.String("log-file", cfg.LogFile, "Log file path")
	)
	flag.Parse()

	useTUI := !*noTUI && !*serve

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	playerName := *name
	if playerName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		playerName = hostname + "-pulseplay"
	}

	log.Printf("Starting %s v%s: %s", version.Product, version.Version, playerName)

	// TUI setup
	var tuiProg *tea.Program
	var tuiCtrl *ui.Control

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("Shutdown signal received")
		cancel()
	}()

	opts := player.Options{
		ChunkSize:  *chunkSize,
		CarryPhase: *carryPhase,
	}

	if useTUI {
		tuiCtrl = ui.NewControl()
		tuiProg, err = ui.Run(tuiCtrl)
		if err != nil {
			log.Fatalf("Failed to start TUI: %v", err)
		}
		go tuiProg.Run()

		go func() {
			<-tuiCtrl.Quit
			log.Printf("Received quit signal from TUI")
			cancel()
		}()

		opts.OnProgress = func(p player.Progress) {
			tuiProg.Send(ui.StatusMsg{
				File:     p.Path,
				State:    "playing",
				Speed:    p.Speed,
				Desired:  p.Plan.Desired,
				SinkRate: p.Plan.SinkRate,
				Ratio:    p.Plan.Ratio,
				Chunks:   p.Stats.Chunks,
				Played:   p.Stats.SamplesPlayed,
				Skipped:  p.Stats.SamplesSkipped,
				Percent:  p.Stats.SkippedPercent(),
			})
		}
	}

	engine := player.New(sink.NewOto(), opts)

	if *serve {
		runServer(ctx, engine, playerName, *port)
		return
	}

	if *file == "" {
		flag.Usage()
		log.Fatalf("no file to play: pass -file or set PULSEPLAY_FILE")
	}

	failed := false
	if *sweep {
		failed = runSweep(ctx, engine, *file)
	} else {
		engine.SetSpeed(*speed)
		failed = !playOnce(ctx, engine, *file)
	}

	if tuiProg != nil {
		tuiProg.Quit()
	}

	if failed {
		os.Exit(1)
	}
}

// runServer exposes the engine over the control WebSocket and advertises
// it via mDNS until the context is cancelled.
func runServer(ctx context.Context, engine *player.Engine, name string, port int) {
	srv := control.NewServer(engine, port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start control server: %v", err)
	}
	defer srv.Stop()

	disc := discovery.NewManager(discovery.Config{ServiceName: name, Port: port})
	if err := disc.Advertise(); err != nil {
		log.Printf("mDNS advertisement failed: %v", err)
	}
	defer disc.Stop()

	<-ctx.Done()
	log.Printf("Control server stopped")
}

// runSweep plays the file at each sweep speed in turn. Returns true if any
// run failed.
func runSweep(ctx context.Context, engine *player.Engine, path string) bool {
	banner := color.New(color.FgCyan, color.Bold)
	failed := false

	for i, speed := range sweepSpeeds {
		if ctx.Err() != nil {
			return failed
		}

		banner.Printf("\n--- Playing at %.1fx speed ---\n", speed)
		engine.SetSpeed(speed)

		if !playOnce(ctx, engine, path) {
			failed = true
		}

		if i < len(sweepSpeeds)-1 {
			time.Sleep(1 * time.Second)
		}
	}

	banner.Printf("\n--- Sweep complete ---\n")
	return failed
}

// playOnce runs a single session and reports the outcome.
func playOnce(ctx context.Context, engine *player.Engine, path string) bool {
	stats, err := engine.Play(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("Playback cancelled")
			return true
		}
		log.Printf("Playback failed: %v", err)
		return false
	}

	log.Printf("Playback complete: %d samples played, %d skipped (%.1f%%)",
		stats.SamplesPlayed, stats.SamplesSkipped, stats.SkippedPercent())
	return true
}
