package lecturekit

// SplitPlan describes which lines of a page hold the stylesheet, the script,
// and the HTML that is kept around them.
type SplitPlan struct {
	Head LineRange
	CSS  LineRange
	Body LineRange
	JS   LineRange
	Tail LineRange

	// StylesheetHref and ScriptSrc are the references inserted into the
	// reassembled page.
	StylesheetHref string
	ScriptSrc      string
}

// LegacySplitPlan returns the line ranges of the node workflow lecture page
// the splitter was first written for. They are only meaningful for that
// page; on any other input they silently extract the wrong lines.
func LegacySplitPlan() *SplitPlan {
	return &SplitPlan{
		Head:           LineRange{Start: 0, End: 8},
		CSS:            LineRange{Start: 11, End: 1350},
		Body:           LineRange{Start: 1351, End: 2316},
		JS:             LineRange{Start: 2317, End: 3232},
		Tail:           LineRange{Start: 3233, End: 3235},
		StylesheetHref: "css/styles.css",
		ScriptSrc:      "js/main.js",
	}
}

// Validate returns an error if the plan contains invalid fields.
// Ranges past the end of a document are not an error.
func (p *SplitPlan) Validate() error {
	for _, r := range []LineRange{p.Head, p.CSS, p.Body, p.JS, p.Tail} {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if p.StylesheetHref == "" {
		return Errorf(EINVALID, "split plan stylesheet href required")
	}
	if p.ScriptSrc == "" {
		return Errorf(EINVALID, "split plan script src required")
	}
	return nil
}

// SplitResult is the outcome of splitting one page.
type SplitResult struct {
	CSS  string
	JS   string
	HTML string

	SourceLines int
	CSSLines    int
	JSLines     int
	HTMLLines   int
}

// PlanLocator finds the split plan of a page by looking at its content.
type PlanLocator interface {
	// Locate returns the line ranges of the inline stylesheet and script.
	// Returns ENOMATCH if either block cannot be found and EINVALID if the
	// page cannot be split along whole lines.
	Locate(lines Lines) (*SplitPlan, error)
}
