package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/mpapenbr/pitstop-explorer-go/pkg/export"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/model"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/render"
)

var (
	errEmpty   = errors.New("empty line")
	errUsage   = errors.New("usage")
	errUnknown = errors.New("unknown command")
)

// Controller is the part of the coordinator the loop drives
type Controller interface {
	render.Clicker
	SetYearRange(ctx context.Context, from, to int) error
	ClearAll(ctx context.Context) error
	Recompute(ctx context.Context) error
	Snapshot() *model.Snapshot
}

// Command is one parsed input line
type Command struct {
	Name string
	Args []string
}

// Parse splits line with shell quoting rules, e.g. `bar "Red Bull"`
func Parse(line string) (Command, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return Command{}, err
	}
	if len(words) == 0 {
		return Command{}, errEmpty
	}
	return Command{Name: strings.ToLower(words[0]), Args: words[1:]}, nil
}

const helpText = `commands:
  years FROM TO        restrict the data to the years FROM..TO
  bar CONSTRUCTOR      click a bar (toggles the constructor)
  track CIRCUIT        click a circuit on the globe (toggles the track)
  click VIEW KEY       click the row KEY of VIEW (bar, scatter, globe)
  clear                clear track and constructor
  show                 print the current views again
  export FILE          write the snapshot (.json, .png, .svg)
  help                 this text
  quit                 leave
`

// Execute runs cmd against c. quit is true if the loop should end.
//
//nolint:cyclop // command dispatch
func Execute(ctx context.Context, c Controller, out io.Writer, cmd Command) (quit bool, err error) {
	name := func() string { return strings.Join(cmd.Args, " ") }
	switch cmd.Name {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(out, helpText)
		return false, err
	case "years":
		if len(cmd.Args) != 2 {
			return false, fmt.Errorf("%w: years FROM TO", errUsage)
		}
		from, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return false, fmt.Errorf("from: %w", err)
		}
		to, err := strconv.Atoi(cmd.Args[1])
		if err != nil {
			return false, fmt.Errorf("to: %w", err)
		}
		return false, c.SetYearRange(ctx, from, to)
	case "bar":
		if len(cmd.Args) == 0 {
			return false, fmt.Errorf("%w: bar CONSTRUCTOR", errUsage)
		}
		return false, c.ClickBar(ctx, name())
	case "track":
		if len(cmd.Args) == 0 {
			return false, fmt.Errorf("%w: track CIRCUIT", errUsage)
		}
		return false, c.ClickTrack(ctx, name())
	case "click":
		if len(cmd.Args) < 2 {
			return false, fmt.Errorf("%w: click VIEW KEY", errUsage)
		}
		kind, err := render.ParseViewKind(cmd.Args[0])
		if err != nil {
			return false, err
		}
		return false, render.Dispatch(ctx, c, kind, strings.Join(cmd.Args[1:], " "))
	case "clear":
		return false, c.ClearAll(ctx)
	case "show":
		return false, c.Recompute(ctx)
	case "export":
		if len(cmd.Args) != 1 {
			return false, fmt.Errorf("%w: export FILE", errUsage)
		}
		return false, exportSnapshot(c.Snapshot(), cmd.Args[0])
	default:
		return false, fmt.Errorf("%w: %s (try help)", errUnknown, cmd.Name)
	}
}

func exportSnapshot(snap *model.Snapshot, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !export.IsValidFormat(format) {
		return fmt.Errorf("%s: %w", path, export.ErrUnknownFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, snap, export.Options{Format: format, Indent: 2}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
