package mock

import "github.com/fwojciec/lecturekit"

var _ lecturekit.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of lecturekit.Inspector.
type Inspector struct {
	InspectFn func(html string, rules []lecturekit.ImageRule) (*lecturekit.Report, error)
}

func (i *Inspector) Inspect(html string, rules []lecturekit.ImageRule) (*lecturekit.Report, error) {
	return i.InspectFn(html, rules)
}
