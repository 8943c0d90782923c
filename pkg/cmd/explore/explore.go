package explore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/pitstop-explorer-go/log"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/app"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/coordinator"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render/echarts"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render/text"
)

type exploreOptions struct {
	html   string
	limit  int
	prompt string
}

func NewExploreCmd() *cobra.Command {
	o := &exploreOptions{}
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive session reading selection events from stdin",
		Long: `Reads one event per line from stdin and prints the recomputed views.
Type 'help' for the list of commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, o)
		},
	}
	cmd.Flags().StringVar(&o.html, "html", "",
		"also render the views to this HTML file after every event")
	cmd.Flags().IntVar(&o.limit, "limit", 10, "max rows per printed table (0: all)")
	cmd.Flags().StringVar(&o.prompt, "prompt", "> ", "input prompt")
	return cmd
}

func runExplore(cmd *cobra.Command, o *exploreOptions) error {
	ctx := cmd.Context()
	views := []coordinator.View{text.NewWriter(cmd.OutOrStdout(), text.WithLimit(o.limit))}
	if o.html != "" {
		views = append(views, echarts.NewPage(echarts.FileTarget(o.html)))
	}
	s, err := app.Open(ctx, views...)
	if err != nil {
		return err
	}
	defer s.Close()
	ctx = log.AddToContext(ctx, log.Default().Named("explore").
		With(log.String("session", s.Coordinator.Session())))
	if err := s.Coordinator.Start(ctx); err != nil {
		return err
	}
	return NewLoop(s.Coordinator, cmd.InOrStdin(), cmd.OutOrStdout(),
		WithPrompt(o.prompt)).Run(ctx)
}

// Loop reads commands line by line and executes them
type Loop struct {
	c      Controller
	in     io.Reader
	out    io.Writer
	prompt string
}

type LoopOption func(*Loop)

func WithPrompt(p string) LoopOption {
	return func(l *Loop) {
		l.prompt = p
	}
}

func NewLoop(c Controller, in io.Reader, out io.Writer, opts ...LoopOption) *Loop {
	ret := &Loop{c: c, in: in, out: out}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run processes input until quit, end of input or cancellation of ctx.
// Failing commands are reported and do not end the loop.
func (l *Loop) Run(ctx context.Context) error {
	logger := log.GetFromContext(ctx)
	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, l.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(l.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		cmd, err := Parse(line)
		if errors.Is(err, errEmpty) {
			continue
		}
		if err != nil {
			fmt.Fprintf(l.out, "error: %v\n", err)
			continue
		}
		logger.Debug("command", log.String("name", cmd.Name), log.Strings("args", cmd.Args))
		quit, err := Execute(ctx, l.c, l.out, cmd)
		if err != nil {
			logger.Warn("command failed", log.String("line", line), log.ErrorField(err))
			fmt.Fprintf(l.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}
