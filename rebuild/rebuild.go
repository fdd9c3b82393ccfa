// Package rebuild moves the inline stylesheet and script of a lecture page
// into external files and relocates its images under images/.
package rebuild

import (
	"regexp"
	"strings"

	"github.com/fwojciec/lecturekit"
)

// Rebuilder rewrites lecture pages. The zero value is not usable; create
// one with NewRebuilder.
type Rebuilder struct {
	// Anchor is the literal stylesheet <link> the inline <style> follows.
	Anchor string

	// Stylesheet and Script are the external references that replace the
	// inline blocks.
	Stylesheet string
	Script     string

	// Images is applied in order after the inline blocks are replaced.
	Images []lecturekit.ImageRule

	// Strict turns a missing <style> or <script> anchor into an ENOMATCH
	// error instead of a zero count in the result.
	Strict bool
}

// NewRebuilder returns a Rebuilder configured from cfg.
func NewRebuilder(cfg *lecturekit.Config) *Rebuilder {
	return &Rebuilder{
		Anchor:     cfg.Rebuild.Anchor,
		Stylesheet: cfg.Rebuild.Stylesheet,
		Script:     cfg.Rebuild.Script,
		Images:     cfg.Images,
	}
}

var scriptPattern = regexp.MustCompile(`(?s)<script>.*?</script>\s*</body>`)

// Rebuild returns the rewritten page.
func (r *Rebuilder) Rebuild(html string) (*lecturekit.RebuildResult, error) {
	if r.Anchor == "" {
		return nil, lecturekit.Errorf(lecturekit.EINVALID, "stylesheet anchor required")
	}

	result := &lecturekit.RebuildResult{}

	html, result.StyleReplaced = r.replaceStyle(html)
	if r.Strict && result.StyleReplaced == 0 {
		return nil, lecturekit.Errorf(lecturekit.ENOMATCH, "no <style> block follows %s", r.Anchor)
	}

	html, result.ScriptReplaced = r.replaceScript(html)
	if r.Strict && result.ScriptReplaced == 0 {
		return nil, lecturekit.Errorf(lecturekit.ENOMATCH, "no <script> block precedes </body>")
	}

	html, result.Images = ReplaceImages(html, r.Images)
	result.Content = html

	return result, nil
}

// replaceStyle swaps every inline <style> block that directly follows the
// anchor link for a reference to the external stylesheet.
func (r *Rebuilder) replaceStyle(html string) (string, int) {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(r.Anchor) + `\s*<style>.*?</style>`)
	n := len(re.FindAllStringIndex(html, -1))
	if n == 0 {
		return html, 0
	}
	return re.ReplaceAllLiteralString(html, r.Anchor+headBlock(r.Stylesheet)), n
}

func (r *Rebuilder) replaceScript(html string) (string, int) {
	n := len(scriptPattern.FindAllStringIndex(html, -1))
	if n == 0 {
		return html, 0
	}
	return scriptPattern.ReplaceAllLiteralString(html, bodyBlock(r.Script)), n
}

// headBlock follows the anchor link: a commented-out local Font Awesome
// link and the external stylesheet.
func headBlock(stylesheet string) string {
	var b strings.Builder
	b.WriteString("\n    <!-- 本地Font Awesome (TODO: 下载后取消下面注释) -->")
	b.WriteString("\n    <!-- <link rel=\"stylesheet\" href=\"lib/fontawesome/css/all.min.css\"> -->")
	b.WriteString("\n    \n    <!-- 主样式表 -->")
	b.WriteString("\n    <link rel=\"stylesheet\" href=\"")
	b.WriteString(stylesheet)
	b.WriteString("\">")
	return b.String()
}

func bodyBlock(script string) string {
	return "<!-- 主脚本文件 -->\n    <script src=\"" + script + "\"></script>\n</body>"
}

// ReplaceImages applies rules in order as literal replace-all operations and
// reports how many times each rule fired.
func ReplaceImages(html string, rules []lecturekit.ImageRule) (string, []lecturekit.ImageHit) {
	hits := make([]lecturekit.ImageHit, 0, len(rules))
	for _, rule := range rules {
		old := rule.Old()
		n := strings.Count(html, old)
		if n > 0 {
			html = strings.ReplaceAll(html, old, rule.New())
		}
		hits = append(hits, lecturekit.ImageHit{Rule: rule, Count: n})
	}
	return html, hits
}
