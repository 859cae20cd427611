// zonegen previews generated zone layouts in the terminal, or prints one as
// JSON with -json.
//
// Usage:
//
//	zonegen [-seed N] [-instance name] [-instances table.json] [-theme emoji|ascii] [-log file]
//	zonegen -json [-seed N] [-instance name] [-instances table.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"zonegen/assets"
	"zonegen/internal/preview"
	"zonegen/internal/render"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed for the first layout")
	instance := flag.String("instance", "", "Archetype to build (default: pick by weight)")
	instances := flag.String("instances", "", "Path to a JSON instance table (default: built-in)")
	dumpJSON := flag.Bool("json", false, "Print the layout as JSON and exit")
	themeName := flag.String("theme", "emoji", "Glyph theme: emoji or ascii")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	table, err := assets.Resolve(*instances, *instance)
	if err != nil {
		log.Fatalf("instance table: %v", err)
	}
	theme, ok := render.ThemeByName(*themeName)
	if !ok {
		log.Fatalf("unknown theme %q", *themeName)
	}

	logger, closeLog := openLogger(*logPath, *dumpJSON)
	defer closeLog()
	gen := preview.TableGenerator(table, *instance, logger)

	if *dumpJSON {
		if err := writeJSON(os.Stdout, gen, *seed); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	err = preview.New(screen, gen, *seed, theme, logger).Run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger returns the logger for this run. The terminal viewer owns the
// screen, so without -log its events are discarded; JSON mode logs warnings
// to stderr.
func openLogger(path string, toStderr bool) (*slog.Logger, func()) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(h), func() { _ = f.Close() }
	}
	var w io.Writer = io.Discard
	if toStderr {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})), func() {}
}

// writeJSON builds the layout for seed and writes it as indented JSON.
func writeJSON(w io.Writer, gen preview.Generator, seed int64) error {
	l, _, err := gen(seed)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
