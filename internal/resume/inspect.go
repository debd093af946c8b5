package resume

import (
	"bytes"

	"github.com/dslipak/pdf"
	"github.com/gabriel-vasile/mimetype"
)

// Info describes what a located file actually contains. It never changes
// whether the file is served.
type Info struct {
	MIME  string
	IsPDF bool
	Pages int // zero when unknown
}

// Inspect sniffs f's content type and counts pages when it is a PDF.
func Inspect(f File) Info {
	mt := mimetype.Detect(f.Data)
	info := Info{MIME: mt.String(), IsPDF: mt.Is(MIMEType)}
	if info.IsPDF {
		info.Pages = countPages(f.Data)
	}
	return info
}

func countPages(data []byte) (n int) {
	// the reader panics on some malformed xref tables
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return r.NumPage()
}
