package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/lecturekit"
	"github.com/fwojciec/lecturekit/split"
)

// Run executes the split command.
func (c *SplitCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.ReadDocument(deps.Ctx, c.Input)
	if err != nil {
		return err
	}
	lines := doc.Lines()
	fmt.Fprintf(deps.Stdout, "Read %s: %d lines\n", c.Input, len(lines))

	plan, err := c.plan(deps, lines)
	if err != nil {
		return err
	}

	result, err := split.Split(lines, plan)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.Input)
	cssPath := filepath.Join(dir, filepath.FromSlash(plan.StylesheetHref))
	jsPath := filepath.Join(dir, filepath.FromSlash(plan.ScriptSrc))

	css, err := deps.Store.WriteFile(deps.Ctx, cssPath, result.CSS)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "CSS: lines %s (%d lines, %s) -> %s\n",
		plan.CSS, result.CSSLines, lecturekit.FormatBytes(css.Bytes), cssPath)

	js, err := deps.Store.WriteFile(deps.Ctx, jsPath, result.JS)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "JavaScript: lines %s (%d lines, %s) -> %s\n",
		plan.JS, result.JSLines, lecturekit.FormatBytes(js.Bytes), jsPath)

	page, err := deps.Store.WriteFile(deps.Ctx, c.Input, result.HTML)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "HTML: %d lines, %s -> %s\n",
		result.HTMLLines, lecturekit.FormatBytes(page.Bytes), c.Input)

	return nil
}

// plan picks the split plan: the legacy ranges, explicit ranges from the
// flags, or the marker lines found by the locator.
func (c *SplitCmd) plan(deps *Dependencies, lines lecturekit.Lines) (*lecturekit.SplitPlan, error) {
	explicit := c.Head != "" || c.CSS != "" || c.Body != "" || c.JS != "" || c.Tail != ""

	switch {
	case c.Legacy && explicit:
		return nil, lecturekit.Errorf(lecturekit.EINVALID, "--legacy cannot be combined with explicit line ranges")
	case c.Legacy:
		plan := lecturekit.LegacySplitPlan()
		plan.StylesheetHref = deps.Config.Split.Stylesheet
		plan.ScriptSrc = deps.Config.Split.Script
		return plan, nil
	case explicit:
		return c.explicitPlan(deps.Config)
	default:
		return deps.Locator.Locate(lines)
	}
}

func (c *SplitCmd) explicitPlan(cfg *lecturekit.Config) (*lecturekit.SplitPlan, error) {
	plan := &lecturekit.SplitPlan{
		StylesheetHref: cfg.Split.Stylesheet,
		ScriptSrc:      cfg.Split.Script,
	}

	for _, f := range []struct {
		name  string
		value string
		dst   *lecturekit.LineRange
	}{
		{"--head", c.Head, &plan.Head},
		{"--css", c.CSS, &plan.CSS},
		{"--body", c.Body, &plan.Body},
		{"--js", c.JS, &plan.JS},
		{"--tail", c.Tail, &plan.Tail},
	} {
		if f.value == "" {
			return nil, lecturekit.Errorf(lecturekit.EINVALID, "%s is required when line ranges are given", f.name)
		}
		r, err := lecturekit.ParseLineRange(f.value)
		if err != nil {
			return nil, err
		}
		*f.dst = r
	}

	return plan, nil
}
