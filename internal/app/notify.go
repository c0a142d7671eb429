package app

import (
	"fmt"
	"io"
)

// WriterNotifier prints outcomes as single lines, one per operation.
type WriterNotifier struct {
	Out io.Writer
}

func (n WriterNotifier) Notify(summary, body string) {
	if body == "" {
		fmt.Fprintf(n.Out, "%s\n", summary)
		return
	}
	fmt.Fprintf(n.Out, "%s: %s\n", summary, body)
}
