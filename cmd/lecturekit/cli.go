package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/lecturekit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *lecturekit.Config
	Store     lecturekit.Store
	Locator   lecturekit.PlanLocator
	Inspector lecturekit.Inspector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" env:"LECTUREKIT_CONFIG" help:"YAML file with image rules and output names"`
	Verbose bool   `short:"v" help:"Log every file operation to stderr"`

	Rebuild RebuildCmd `cmd:"" help:"Move inline CSS and JavaScript into external files and images into images/"`
	Split   SplitCmd   `cmd:"" help:"Split a single-file page into css/, js/ and the HTML page"`
	Inspect InspectCmd `cmd:"" help:"Show inline blocks, references and image paths of a page"`
}

// RebuildCmd is the "rebuild" subcommand.
type RebuildCmd struct {
	Inputs      []string `arg:"" name:"input" help:"HTML pages to rebuild"`
	Output      string   `short:"o" help:"Output path (single input only; default: index.html beside the input)"`
	Strict      bool     `help:"Fail when the inline <style> or <script> block is not found"`
	Concurrency int      `short:"c" default:"4" help:"Pages rebuilt in parallel"`
}

// SplitCmd is the "split" subcommand.
type SplitCmd struct {
	Input      string `arg:"" help:"HTML page to split in place"`
	Legacy     bool   `help:"Use the fixed line ranges of the node workflow lecture"`
	Head       string `name:"head" placeholder:"START:END" help:"Head lines kept before the stylesheet link"`
	CSS        string `name:"css" placeholder:"START:END" help:"Lines written to the stylesheet"`
	Body       string `name:"body" placeholder:"START:END" help:"Body lines kept after </head>"`
	JS         string `name:"js" placeholder:"START:END" help:"Lines written to the script"`
	Tail       string `name:"tail" placeholder:"START:END" help:"Closing lines kept after the script tag"`
	CreateDirs bool   `help:"Create css/ and js/ when missing"`
	Backup     bool   `help:"Keep a .bak copy of every overwritten file"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Input string `arg:"" help:"HTML page to inspect"`
}
