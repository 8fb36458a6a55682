package progress

import (
	"fmt"
	"io"
)

// SimpleHandler writes single-line progress messages to a writer, used by
// the CLI in verbose mode.
type SimpleHandler struct {
	out io.Writer
}

// NewSimpleHandler creates a handler writing to out.
func NewSimpleHandler(out io.Writer) *SimpleHandler {
	return &SimpleHandler{out: out}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case ScanStart:
		fmt.Fprintf(h.out, "Scanning %s\n", event.Path)
	case EnterDirectory:
		fmt.Fprintf(h.out, "  dir  %s\n", event.Path)
	case FileAnalyzed:
		fmt.Fprintf(h.out, "  file %s\n", event.Path)
	case FileSkipped:
		fmt.Fprintf(h.out, "  skip %s (%s)\n", event.Path, event.Message)
	case ScanComplete:
		fmt.Fprintf(h.out, "Scanned %d files, analyzed %d\n", event.FilesSeen, event.FilesAnalyzed)
	case Info:
		fmt.Fprintf(h.out, "  %s\n", event.Message)
	}
}
