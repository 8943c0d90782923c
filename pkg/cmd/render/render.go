package render

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/app"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render/echarts"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render/plot"
)

type renderOptions struct {
	out   string
	image string
	sel   app.SelectionFlags
}

func NewRenderCmd() *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "renders the linked views for a selection as HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, o)
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "pitstops.html", "HTML output file")
	cmd.Flags().StringVar(&o.image, "image", "",
		"additionally write the scatter plot to this file (.png or .svg)")
	app.AddSelectionFlags(cmd, &o.sel)
	return cmd
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
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

	c.Register(echarts.NewPage(echarts.FileTarget(o.out)))
	if o.image != "" {
		img, err := plot.NewImage(o.image)
		if err != nil {
			return err
		}
		c.Register(img)
	}
	if err := c.Recompute(ctx); err != nil {
		return err
	}
	log.Info("Views rendered",
		log.String("out", o.out),
		log.String("image", o.image),
		log.Int("sequence", c.Snapshot().Sequence))
	return nil
}
