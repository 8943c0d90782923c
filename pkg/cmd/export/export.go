package export

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/app"
	snapexport "github.com/mpapenbr/pitstop-explorer-go/pkg/export"
)

type exportOptions struct {
	format   string
	jsonPath string
	out      string
	indent   int
	sel      app.SelectionFlags
}

func NewExportCmd() *cobra.Command {
	o := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "exports the aggregated views as JSON or the scatter plot as image",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !snapexport.IsValidFormat(o.format) {
				return fmt.Errorf("%q: %w", o.format, snapexport.ErrUnknownFormat)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, o)
		},
	}
	cmd.Flags().StringVarP(&o.format, "format", "f", snapexport.FormatJSON,
		fmt.Sprintf("output format %v", snapexport.Formats()))
	cmd.Flags().StringVar(&o.jsonPath, "jsonpath", "",
		"JSONPath expression selecting parts of the snapshot (json only)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&o.indent, "indent", 2, "indentation of json output")
	app.AddSelectionFlags(cmd, &o.sel)
	return cmd
}

func runExport(cmd *cobra.Command, o *exportOptions) error {
	ctx := cmd.Context()
	s, err := app.Open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()
	c := s.Coordinator
	if err := c.Start(ctx); err != nil {
		return err
	}
	if err := o.sel.Apply(ctx, c); err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	err = snapexport.Write(w, c.Snapshot(), snapexport.Options{
		Format:   o.format,
		JSONPath: o.jsonPath,
		Indent:   o.indent,
	})
	if err != nil {
		return err
	}
	log.Debug("Snapshot exported", log.String("format", o.format), log.String("out", o.out))
	return nil
}
