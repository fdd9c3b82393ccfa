package main

import (
	"fmt"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.ReadDocument(deps.Ctx, c.Input)
	if err != nil {
		return err
	}

	report, err := deps.Inspector.Inspect(doc.Content, deps.Config.Images)
	if err != nil {
		return err
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Page: %s\n", c.Input)
	if report.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", report.Title)
	}
	fmt.Fprintf(w, "Inline <style> blocks: %d\n", report.InlineStyles)
	fmt.Fprintf(w, "Inline <script> blocks: %d\n", report.InlineScripts)

	fmt.Fprintf(w, "Stylesheets: %d\n", len(report.Stylesheets))
	for _, href := range report.Stylesheets {
		fmt.Fprintf(w, "  %s\n", href)
	}

	fmt.Fprintf(w, "Scripts: %d\n", len(report.Scripts))
	for _, src := range report.Scripts {
		fmt.Fprintf(w, "  %s\n", src)
	}

	fmt.Fprintf(w, "Images: %d (%d to move)\n", len(report.Images), report.RewritableImages())
	for _, img := range report.Images {
		if img.Rule == nil {
			fmt.Fprintf(w, "  %s\n", img.Src)
			continue
		}
		fmt.Fprintf(w, "  %s -> %s\n", img.Src, img.Rule.Rewrite(img.Src))
	}

	return nil
}
