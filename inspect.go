package lecturekit

// ImageSource is an <img> src found on a page together with the rule that
// would rewrite it. Rule is nil when no rule applies.
type ImageSource struct {
	Src  string
	Rule *ImageRule
}

// Report summarizes the external references and inline blocks of a page.
type Report struct {
	Title         string
	InlineStyles  int
	InlineScripts int
	Stylesheets   []string
	Scripts       []string
	Images        []ImageSource
}

// RewritableImages returns the number of images a rule applies to.
func (r *Report) RewritableImages() int {
	var n int
	for _, img := range r.Images {
		if img.Rule != nil {
			n++
		}
	}
	return n
}

// Inspector reports on the structure of an HTML page.
type Inspector interface {
	Inspect(html string, rules []ImageRule) (*Report, error)
}
