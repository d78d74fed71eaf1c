// Package shell implements the interactive conversion prompt.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"unitconvert/internal/convert"
	"unitconvert/internal/diagnostic"
	"unitconvert/internal/expression"
	"unitconvert/internal/render"
)

const (
	prompt  = "> "
	welcome = "Welcome to the Unit Converter! Type 'quit' to exit.\n" +
		"You can enter expressions (e.g. '10C -> F') or type 'guided' for step-by-step mode."
	usage = `Commands:
  <value><unit> -> <unit>   convert an expression, e.g. 10C -> F or 3 mi to km
  guided                    enter value and units one at a time
  list [category]           list categories, or the units of one category
  help                      show this help
  quit | exit               leave the shell`
)

// Shell reads conversion requests line by line and prints the results.
type Shell struct {
	format    string
	precision int
	logger    *zap.Logger
}

// New creates a shell that renders results in format with precision digits.
func New(format string, precision int, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shell{format: format, precision: precision, logger: logger}
}

// session is the state of one Run call.
type session struct {
	*Shell
	ctx     context.Context
	lines   <-chan string
	readErr error
	out     io.Writer
	errOut  io.Writer
}

// Run processes lines from in until "quit", end of input or ctx is done.
// Errors caused by a line are printed to errOut and do not end the loop.
// A blocked read does not delay the return once ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ss := &session{Shell: s, ctx: ctx, out: out, errOut: errOut}
	ss.lines = ss.read(in)

	fmt.Fprintln(out, welcome)

	for {
		line, ok := ss.prompt(prompt)
		if !ok {
			break
		}

		if done := ss.handle(line); done {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	if ss.readErr != nil {
		return fmt.Errorf("failed to read input: %w", ss.readErr)
	}

	return nil
}

// read scans in on its own goroutine. The channel is closed at end of
// input, after readErr is set.
func (ss *session) read(in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ss.ctx.Done():
				return
			}
		}

		ss.readErr = scanner.Err()
	}()

	return lines
}

func (ss *session) prompt(msg string) (string, bool) {
	if ss.ctx.Err() != nil {
		return "", false
	}

	fmt.Fprint(ss.out, msg)

	select {
	case <-ss.ctx.Done():
		fmt.Fprintln(ss.out)
		return "", false
	case line, ok := <-ss.lines:
		if !ok {
			fmt.Fprintln(ss.out)
			return "", false
		}

		return strings.TrimSpace(line), true
	}
}

// endOfInput is the error of a guided step that got no answer.
func (ss *session) endOfInput() error {
	if err := ss.ctx.Err(); err != nil {
		return err
	}

	return io.ErrUnexpectedEOF
}

// handle processes one line and reports whether the shell should exit.
func (ss *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(ss.out, usage)
	case "guided":
		if err := ss.guided(); err != nil && ss.ctx.Err() == nil {
			ss.report("Error", err)
		}
	case "list":
		if err := ss.list(fields[1:]); err != nil {
			ss.report("Error", err)
		}
	default:
		expr, err := expression.Parse(line)
		if err != nil {
			ss.report("Failed to parse expression", err)
			return false
		}

		ss.logger.Debug("parsed expression", zap.Stringer("expression", expr))

		if len(expr.Warnings) > 0 {
			ss.logger.Debug("expression warnings", zap.Stringers("warnings", expr.Warnings))
		}

		for _, w := range expr.Warnings {
			fmt.Fprintf(ss.errOut, "Warning: %s\n", w.Message)
		}

		if err := ss.convert(expr.Value, expr.From, expr.To); err != nil {
			ss.report("Conversion failed", err)
		}
	}

	return false
}

func (ss *session) guided() error {
	text, ok := ss.prompt("Enter value to convert: ")
	if !ok {
		return ss.endOfInput()
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return diagnostic.NewParseError("Invalid number '%s'", text)
	}

	from, ok := ss.prompt("Enter FROM unit (e.g. m, kg, C,...): ")
	if !ok {
		return ss.endOfInput()
	}

	to, ok := ss.prompt("Enter TO unit (e.g. m, kg, C,...): ")
	if !ok {
		return ss.endOfInput()
	}

	return ss.convert(value, from, to)
}

func (ss *session) list(args []string) error {
	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	return render.List(ss.out, category, ss.format)
}

func (ss *session) convert(value float64, from, to string) error {
	r, err := convert.Run(value, from, to)
	if err != nil {
		return err
	}

	ss.logger.Debug("converted",
		zap.Stringer("category", r.Category),
		zap.Float64("value", value),
		zap.String("from", from),
		zap.String("to", to))

	return render.Render(ss.out, r, ss.format, ss.precision)
}

func (ss *session) report(prefix string, err error) {
	ss.logger.Debug(prefix, zap.Error(err))
	fmt.Fprintf(ss.errOut, "%s: %v\n", prefix, err)
}
