package commander

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPrompt is printed before each read when no prompt is configured.
const DefaultPrompt = "> "

// Loop repeatedly prompts for a line, tokenizes it and dispatches it.
// The Loop should be instantiated using the NewLoop function.
type Loop struct {
	dispatcher   *Dispatcher
	reader       LineReader
	output       io.Writer
	prompt       string
	delimiter    rune
	exitCommands []string
	logger       logrus.FieldLogger
	running      atomic.Bool
	stopping     atomic.Bool
}

// NewLoop instantiates a Loop reading from reader and printing failures to output.
func NewLoop(dsp *Dispatcher, reader LineReader, output io.Writer) *Loop {
	return &Loop{
		dispatcher:   dsp,
		reader:       reader,
		output:       output,
		prompt:       DefaultPrompt,
		delimiter:    DefaultDelimiter,
		exitCommands: []string{"exit"},
		logger:       logrus.StandardLogger(),
	}
}

// Prompt may optionally be provided to replace DefaultPrompt.
func (loop *Loop) Prompt(prompt string) {
	loop.prompt = prompt
}

// Delimiter may optionally be provided to replace DefaultDelimiter.
func (loop *Loop) Delimiter(delimiter rune) {
	loop.delimiter = delimiter
}

// ExitCommands may optionally be provided to replace the default "exit".
// A line whose command name is one of names ends Run, even when a handler is registered under that name.
// Providing no names leaves EOF and Stop as the only ways out.
func (loop *Loop) ExitCommands(names ...string) {
	loop.exitCommands = names
}

// Logger may optionally be provided to replace the logrus standard logger.
func (loop *Loop) Logger(logger logrus.FieldLogger) {
	loop.logger = logger
}

// Run prompts, reads, tokenizes and dispatches until the input ends, an exit command is read or Stop is called.
// Dispatch failures are printed to the output and never end the loop.
// Read failures other than io.EOF are returned.
func (loop *Loop) Run() error {
	if !loop.running.CompareAndSwap(false, true) {
		return LoopIsRunningError
	}
	defer loop.running.Store(false)
	loop.stopping.Store(false)

	log := loop.logger.WithField("session", uuid.New().String())
	log.Debug("interactive loop started")

	for !loop.stopping.Load() {
		line, err := loop.reader.ReadLine(loop.prompt)
		if errors.Is(err, io.EOF) {
			log.Debug("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("commander: read line: %w", err)
		}
		if loop.step(line, log) {
			log.Debug("exit command received")
			return nil
		}
	}
	log.Debug("interactive loop stopped")
	return nil
}

// Stop ends Run once the line currently being read has been handled.
// It has no effect on a Loop that is not running.
func (loop *Loop) Stop() {
	if loop.running.Load() {
		loop.stopping.Store(true)
	}
}

//-----Private Functions------//

// step handles one line and reports whether it was an exit command.
func (loop *Loop) step(line string, log logrus.FieldLogger) bool {
	parsed, err := Tokenize(trimLineEnd(line), loop.delimiter)
	if errors.Is(err, EmptyInputError) {
		return false
	}
	if slices.Contains(loop.exitCommands, parsed.Name) {
		return true
	}
	if err := loop.dispatcher.Execute(parsed.Name, parsed.Args); err != nil {
		log.WithField("command", parsed.Name).Debug("reporting dispatch failure")
		if _, werr := fmt.Fprintf(loop.output, "error: %v\n", err); werr != nil {
			log.WithError(werr).Error("failed to print dispatch failure")
		}
	}
	return false
}

func trimLineEnd(line string) string {
	return strings.TrimRight(line, "\r\n")
}
