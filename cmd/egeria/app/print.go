package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/stacklok/egeria-client-go/pkg/output"
)

const defaultWrapWidth = 100

type printOptions struct {
	render bool
	width  int
}

func (o *printOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.render, "render", false, "Render markdown output (LIST, MD, FORM, REPORT) for the terminal")
	cmd.Flags().IntVar(&o.width, "width", defaultWrapWidth, "Word wrap width for rendered output")
}

// renderable reports whether glamour can make f more readable
func renderable(f output.Format) bool {
	switch f {
	case output.LIST, output.MD, output.FORM, output.REPORT:
		return true
	default:
		return false
	}
}

func printRendered(w io.Writer, r output.Rendered, opts printOptions) error {
	text := r.String()
	if opts.render && renderable(r.Format) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(opts.width),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		text, err = renderer.Render(text)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
