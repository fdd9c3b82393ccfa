// Package split slices a single-file lecture page into a stylesheet, a
// script and the HTML that references them.
package split

import (
	"github.com/fwojciec/lecturekit"
)

// Split cuts lines along plan. Ranges past the end of the page are clamped,
// so a plan meant for a different page silently extracts the wrong lines.
func Split(lines lecturekit.Lines, plan *lecturekit.SplitPlan) (*lecturekit.SplitResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	css := lines.Slice(plan.CSS)
	js := lines.Slice(plan.JS)
	html := Assemble(lines, plan)

	return &lecturekit.SplitResult{
		CSS:         css.Join(),
		JS:          js.Join(),
		HTML:        html.Join(),
		SourceLines: len(lines),
		CSSLines:    len(css),
		JSLines:     len(js),
		HTMLLines:   len(html),
	}, nil
}

// Assemble rebuilds the page from the kept head, body and tail lines with a
// stylesheet link closing the head and a script tag after the body.
func Assemble(lines lecturekit.Lines, plan *lecturekit.SplitPlan) lecturekit.Lines {
	head := lines.Slice(plan.Head)
	body := lines.Slice(plan.Body)
	tail := lines.Slice(plan.Tail)

	out := make(lecturekit.Lines, 0, len(head)+len(body)+len(tail)+3)
	out = append(out, head...)
	out = append(out, StylesheetLine(plan.StylesheetHref))
	out = append(out, "</head>\n")
	out = append(out, body...)
	out = append(out, ScriptLine(plan.ScriptSrc))
	out = append(out, tail...)
	return out
}

// StylesheetLine returns the <link> line inserted before </head>.
func StylesheetLine(href string) string {
	return `    <link rel="stylesheet" href="` + href + "\">\n"
}

// ScriptLine returns the <script> line inserted after the body.
func ScriptLine(src string) string {
	return `    <script src="` + src + "\"></script>\n"
}
