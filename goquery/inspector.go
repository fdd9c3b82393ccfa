// Package goquery inspects lecture pages with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lecturekit"
)

// Ensure Inspector implements lecturekit.Inspector at compile time.
var _ lecturekit.Inspector = (*Inspector)(nil)

// Inspector reports the inline blocks, external references and image
// sources of a page.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses html and matches every <img> src against rules.
func (i *Inspector) Inspect(html string, rules []lecturekit.ImageRule) (*lecturekit.Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, lecturekit.Errorf(lecturekit.EINVALID, "failed to parse HTML: %v", err)
	}

	report := &lecturekit.Report{
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		InlineStyles: doc.Find("style").Length(),
	}

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			report.Scripts = append(report.Scripts, src)
			return
		}
		report.InlineScripts++
	})

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			report.Stylesheets = append(report.Stylesheets, href)
		}
	})

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		report.Images = append(report.Images, lecturekit.ImageSource{
			Src:  src,
			Rule: lecturekit.MatchImageRule(rules, src),
		})
	})

	return report, nil
}
