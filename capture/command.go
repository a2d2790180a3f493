package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/process"
)

// RootWindow is captured when the active window cannot be determined.
const RootWindow = "root"

// CommandSession captures the screen by running an external tool, for example
// ImageMagick's import. The window to capture is looked up on the first
// capture and reused for the rest of the session.
type CommandSession struct {
	runner        process.Runner
	argv          []*template.Template
	windowCommand []string
	window        mo.Option[string]
}

type commandVars struct {
	Window string
	File   string
}

// NewCommandSession parses the argv template of the capture tool. A non-empty
// window skips the lookup through windowCommand.
func NewCommandSession(runner process.Runner, command []string, window string, windowCommand []string) (*CommandSession, error) {
	if len(command) == 0 {
		return nil, errors.New("capture command is empty")
	}

	argv := make([]*template.Template, 0, len(command))
	for i, arg := range command {
		tmpl, err := template.New(fmt.Sprintf("arg%d", i)).Option("missingkey=error").Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("capture command argument %q: %w", arg, err)
		}
		argv = append(argv, tmpl)
	}

	session := &CommandSession{
		runner:        runner,
		argv:          argv,
		windowCommand: windowCommand,
	}
	if window != "" {
		session.window = mo.Some(window)
	}
	return session, nil
}

// Window returns the window captured by the session, resolving it on first use.
func (s *CommandSession) Window(ctx context.Context) string {
	if w, ok := s.window.Get(); ok {
		return w
	}

	w := s.lookupWindow(ctx)
	s.window = mo.Some(w)
	log.Infof("capturing window %s", w)
	return w
}

func (s *CommandSession) lookupWindow(ctx context.Context) string {
	if len(s.windowCommand) == 0 {
		return RootWindow
	}

	out, err := s.runner.Output(ctx, s.windowCommand[0], s.windowCommand[1:]...)
	if err != nil {
		log.Warnf("active window lookup failed, capturing %s: %v", RootWindow, err)
		return RootWindow
	}

	w := strings.TrimSpace(string(out))
	if w == "" {
		return RootWindow
	}
	return w
}

// Args renders the capture command for a file.
func (s *CommandSession) Args(window, file string) ([]string, error) {
	vars := commandVars{Window: window, File: file}
	args := make([]string, 0, len(s.argv))
	for _, tmpl := range s.argv {
		var b strings.Builder
		if err := tmpl.Execute(&b, vars); err != nil {
			return nil, err
		}
		args = append(args, b.String())
	}
	return lo.Filter(args, func(arg string, _ int) bool { return arg != "" }), nil
}

func (s *CommandSession) Capture(ctx context.Context, path string) error {
	args, err := s.Args(s.Window(ctx), path)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("capture command renders to nothing")
	}
	return s.runner.Run(ctx, args[0], args[1:]...)
}
