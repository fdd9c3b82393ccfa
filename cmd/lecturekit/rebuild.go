package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/lecturekit"
	"github.com/fwojciec/lecturekit/rebuild"
	"golang.org/x/sync/errgroup"
)

// rebuildOutcome is the result of rebuilding one input page.
type rebuildOutcome struct {
	input  string
	output string
	result *lecturekit.RebuildResult
	write  *lecturekit.WriteResult
}

// Run executes the rebuild command.
func (c *RebuildCmd) Run(deps *Dependencies) error {
	if c.Output != "" && len(c.Inputs) > 1 {
		return lecturekit.Errorf(lecturekit.EINVALID, "--output can only be used with a single input")
	}

	rebuilder := rebuild.NewRebuilder(deps.Config)
	rebuilder.Strict = c.Strict

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]*rebuildOutcome, len(c.Inputs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, input := range c.Inputs {
		g.Go(func() error {
			outcome, err := c.rebuildPage(ctx, deps, rebuilder, input)
			if err != nil {
				return fmt.Errorf("rebuild %s: %w", input, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	err := g.Wait()

	// Report in input order, including pages finished before a failure.
	for _, outcome := range outcomes {
		if outcome != nil {
			printRebuild(deps.Stdout, deps.Config, outcome)
		}
	}

	return err
}

func (c *RebuildCmd) rebuildPage(ctx context.Context, deps *Dependencies, rebuilder *rebuild.Rebuilder, input string) (*rebuildOutcome, error) {
	doc, err := deps.Store.ReadDocument(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := rebuilder.Rebuild(doc.Content)
	if err != nil {
		return nil, err
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(input), deps.Config.Rebuild.Output)
	}

	write, err := deps.Store.WriteFile(ctx, output, result.Content)
	if err != nil {
		return nil, err
	}

	if deps.Inspector != nil {
		report, err := deps.Inspector.Inspect(result.Content, deps.Config.Images)
		if err != nil {
			return nil, err
		}
		deps.Logger.Debug("rebuilt page",
			"path", output,
			"inline_styles", report.InlineStyles,
			"inline_scripts", report.InlineScripts,
			"images", len(report.Images),
			"images_left", report.RewritableImages(),
		)
	}

	return &rebuildOutcome{input: input, output: output, result: result, write: write}, nil
}

func printRebuild(w io.Writer, cfg *lecturekit.Config, o *rebuildOutcome) {
	fmt.Fprintf(w, "Rebuilt %s -> %s\n", o.input, o.output)

	if o.result.StyleReplaced > 0 {
		fmt.Fprintf(w, "- removed inline CSS, now references %s\n", cfg.Rebuild.Stylesheet)
	} else {
		fmt.Fprintln(w, "- warning: no inline <style> follows the stylesheet anchor, head left unchanged")
	}

	if o.result.ScriptReplaced > 0 {
		fmt.Fprintf(w, "- removed inline JavaScript, now references %s\n", cfg.Rebuild.Script)
	} else {
		fmt.Fprintln(w, "- warning: no inline <script> precedes </body>, scripts left unchanged")
	}

	fmt.Fprintf(w, "- moved %d image paths into images/\n", o.result.ImagesReplaced())

	if o.write.Unchanged {
		fmt.Fprintln(w, "- output already up to date")
	}
}
