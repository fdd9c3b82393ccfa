// Package html locates split points in lecture pages with the
// golang.org/x/net/html tokenizer.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/lecturekit"
	"golang.org/x/net/html"
)

// Ensure Locator implements lecturekit.PlanLocator at compile time.
var _ lecturekit.PlanLocator = (*Locator)(nil)

// Locator finds the inline stylesheet in <head> and the inline script that
// closes <body>, and turns their tag lines into a split plan.
//
// Every marker tag (<style>, </style>, </head>, <script>, </script>) must
// sit on a line of its own, since the split works on whole lines.
type Locator struct {
	StylesheetHref string
	ScriptSrc      string
}

// NewLocator returns a Locator that inserts the given references.
func NewLocator(stylesheetHref, scriptSrc string) *Locator {
	return &Locator{StylesheetHref: stylesheetHref, ScriptSrc: scriptSrc}
}

// marker is a tag position within the page.
type marker struct {
	line  int
	raw   string
	found bool
}

// block is an element spanning an opening and a closing marker.
type block struct {
	open  marker
	close marker
}

// Locate implements lecturekit.PlanLocator.
func (l *Locator) Locate(lines lecturekit.Lines) (*lecturekit.SplitPlan, error) {
	content := lines.Join()
	z := html.NewTokenizer(strings.NewReader(content))

	var (
		offset    int
		style     block
		headClose marker
		script    block
		current   *block // inline script being read
		pending   *block // inline script waiting for </body>
		final     *block
	)

	lineAt := func(off int) int {
		return strings.Count(content[:off], "\n")
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, lecturekit.Errorf(lecturekit.EINVALID, "failed to tokenize HTML: %v", err)
			}
			break
		}

		raw := string(z.Raw())
		start := offset
		offset += len(raw)
		tok := z.Token()

		if pending != nil {
			switch {
			case tt == html.TextToken && strings.TrimSpace(tok.Data) == "":
				continue
			case tt == html.EndTagToken && tok.Data == "body":
				final = pending
				pending = nil
				continue
			default:
				pending = nil
			}
		}

		switch tt {
		case html.StartTagToken:
			switch tok.Data {
			case "style":
				if !headClose.found && !style.open.found {
					style.open = marker{line: lineAt(start), raw: raw, found: true}
				}
			case "script":
				if !hasAttr(tok, "src") {
					current = &block{open: marker{line: lineAt(start), raw: raw, found: true}}
				}
			}
		case html.EndTagToken:
			switch tok.Data {
			case "style":
				if style.open.found && !style.close.found {
					style.close = marker{line: lineAt(start), raw: raw, found: true}
				}
			case "head":
				if !headClose.found {
					headClose = marker{line: lineAt(start), raw: raw, found: true}
				}
			case "script":
				if current != nil {
					current.close = marker{line: lineAt(start), raw: raw, found: true}
					pending = current
					current = nil
				}
			}
		}
	}

	if !style.open.found || !style.close.found {
		return nil, lecturekit.Errorf(lecturekit.ENOMATCH, "no <style> block in <head>")
	}
	if !headClose.found {
		return nil, lecturekit.Errorf(lecturekit.ENOMATCH, "no </head> tag")
	}
	if final == nil {
		return nil, lecturekit.Errorf(lecturekit.ENOMATCH, "no inline <script> block precedes </body>")
	}
	script = *final

	for _, m := range []marker{style.open, style.close, headClose, script.open, script.close} {
		if strings.TrimSpace(lines[m.line]) != strings.TrimSpace(m.raw) {
			return nil, lecturekit.Errorf(lecturekit.EINVALID, "line %d: %s must be on its own line", m.line+1, strings.TrimSpace(m.raw))
		}
	}
	for i := style.close.line + 1; i < headClose.line; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return nil, lecturekit.Errorf(lecturekit.EINVALID, "line %d: content between </style> and </head> would be lost", i+1)
		}
	}

	return &lecturekit.SplitPlan{
		Head:           lecturekit.LineRange{Start: 0, End: style.open.line},
		CSS:            lecturekit.LineRange{Start: style.open.line + 1, End: style.close.line},
		Body:           lecturekit.LineRange{Start: headClose.line + 1, End: script.open.line},
		JS:             lecturekit.LineRange{Start: script.open.line + 1, End: script.close.line},
		Tail:           lecturekit.LineRange{Start: script.close.line + 1, End: len(lines)},
		StylesheetHref: l.StylesheetHref,
		ScriptSrc:      l.ScriptSrc,
	}, nil
}

func hasAttr(tok html.Token, key string) bool {
	for _, a := range tok.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
