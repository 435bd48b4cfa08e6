package pdfrenderer

import "errors"

// ErrRender возвращается, когда gofpdf не смог собрать документ
var ErrRender = errors.New("pdfrenderer: failed to render document")
