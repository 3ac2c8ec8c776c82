package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/muesli/termenv"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
)

// RenderReport writes a human-readable verdict for one execution.
func RenderReport(w io.Writer, info *composer.NodeInfo) {
	out := termenv.NewOutput(w)

	verdict := out.String("FAIL").Foreground(out.Color("1")).Bold()
	if info.ReturnValue == composer.ReturnSuccess {
		verdict = out.String("PASS").Foreground(out.Color("2")).Bold()
	}

	fmt.Fprintf(w, "%s  %s (%s)\n", verdict, info.Name, info.Elapsed)
	fmt.Fprintf(w, "  %s\n", info.Message)

	for _, m := range info.ContactResults {
		pairs := make([]string, 0, len(m.Contacts))
		for pair := range m.Contacts {
			pairs = append(pairs, pair)
		}
		sort.Strings(pairs)
		for _, pair := range pairs {
			for _, c := range m.Contacts[pair] {
				fmt.Fprintf(w, "  sample %-4d %-30s dist=%.4f\n", m.Sample, pair, c.Distance)
			}
		}
	}
}
