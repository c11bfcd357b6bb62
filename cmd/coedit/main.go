package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"coedit/internal/config"
	"coedit/internal/raster"
	"coedit/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "TOML settings file")
	data := flag.String("data", "", "dataset file (.csv or .json); synthetic samples if empty")
	column := flag.String("column", "", "CSV column or JSON key holding the samples")
	png := flag.String("png", "", "render the transfer function to this PNG and exit")
	width := flag.Int("width", 512, "PNG width in pixels")
	height := flag.Int("height", 256, "PNG height in pixels")
	debug := flag.String("debug", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.DiscardHandler)
	if *debug != "" {
		f, err := tea.LogToFile(*debug, "coedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := tui.Options{
		Config:  cfg,
		Data:    *data,
		Column:  *column,
		PNG:     *png,
		ExportW: *width,
		ExportH: *height,
		Logger:  logger,
	}
	m := tui.New(opts)

	if *png != "" {
		if err := m.LoadErr(); err != nil {
			log.Fatal(err)
		}
		if err := raster.Export(m.Editor(), *png, *width, *height, raster.FromConfig(cfg)); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, "wrote", *png)
		return
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
