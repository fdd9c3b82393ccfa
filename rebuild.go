package lecturekit

// ImageHit records how often one image rule fired during a rebuild.
type ImageHit struct {
	Rule  ImageRule
	Count int
}

// RebuildResult is the outcome of rebuilding one page.
//
// A zero count means the corresponding anchor was not found and that part of
// the page was left untouched.
type RebuildResult struct {
	Content        string
	StyleReplaced  int
	ScriptReplaced int
	Images         []ImageHit
}

// ImagesReplaced returns the total number of image paths rewritten.
func (r *RebuildResult) ImagesReplaced() int {
	var n int
	for _, hit := range r.Images {
		n += hit.Count
	}
	return n
}

// Changed reports whether the rebuild altered the page at all.
func (r *RebuildResult) Changed() bool {
	return r.StyleReplaced > 0 || r.ScriptReplaced > 0 || r.ImagesReplaced() > 0
}
