// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-match-go/internal/config"
)

var (
	// Configuration file
	configFile = flag.String("config", "", "YAML configuration file")

	// Game options
	startFEN  = flag.String("fen", "", "Start from this FEN piece placement (side to move optional)")
	plainMode = flag.Bool("plain", false, "Use the line-based console instead of the interactive board")
	svgOut    = flag.String("svg", "", "Write the final position as SVG to this file")

	// Display options
	asciiPieces = flag.Bool("ascii", false, "Draw pieces as letters instead of glyphs")
	noColour    = flag.Bool("nocolour", false, "Disable ANSI colours")
	noMoves     = flag.Bool("nomoves", false, "Don't highlight possible moves of the selected piece")

	// Logging
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "", "Log format: console, json")
	logFile   = flag.String("log-file", "", "Also write logs to this file")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies explicitly set command-line flags over the configuration.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyGameFlags(cfg, set)
	applyDisplayFlags(cfg, set)
	applyLogFlags(cfg, set)
}

// applyGameFlags configures the starting position and interface.
func applyGameFlags(cfg *config.Config, set map[string]bool) {
	if set["fen"] {
		cfg.Game.StartFEN = *startFEN
	}
	if set["plain"] {
		if *plainMode {
			cfg.Game.Interface = config.InterfacePlain
		} else {
			cfg.Game.Interface = config.InterfaceTUI
		}
	}
	if set["svg"] {
		cfg.Game.SVGOut = *svgOut
	}
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config, set map[string]bool) {
	if set["ascii"] {
		cfg.Display.Unicode = !*asciiPieces
	}
	if set["nocolour"] {
		cfg.Display.Colour = !*noColour
	}
	if set["nomoves"] {
		cfg.Display.ShowMoves = !*noMoves
	}
}

// applyLogFlags configures the logger.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = *logFormat
	}
	if set["log-file"] {
		cfg.Log.File = *logFile
	}
}
