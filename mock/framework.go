package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docsearch.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docsearch.Framework
}

func (d *FrameworkDetector) Detect(html string) docsearch.Framework {
	return d.DetectFn(html)
}
