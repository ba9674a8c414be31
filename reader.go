package commander

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// LineReader prints a prompt and blocks until one line of input is available.
// The returned line carries no line terminator.
// io.EOF signals that no more input will arrive.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// BufferedReader reads lines from any io.Reader and writes prompts to an io.Writer.
type BufferedReader struct {
	reader *bufio.Reader
	output io.Writer
}

// NewBufferedReader instantiates a BufferedReader.
func NewBufferedReader(input io.Reader, output io.Writer) *BufferedReader {
	return &BufferedReader{
		reader: bufio.NewReader(input),
		output: output,
	}
}

// ReadLine writes prompt and reads up to the next newline.
// A final line without a newline is returned before io.EOF.
func (rd *BufferedReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(rd.output, prompt); err != nil {
		return "", err
	}
	line, err := rd.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return trimLineEnd(line), nil
}

// lineState is the part of *liner.State a TerminalReader drives.
type lineState interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

// TerminalReader reads lines from the terminal with line editing and history.
type TerminalReader struct {
	state       lineState
	historyFile string
}

// NewTerminalReader takes over the terminal.
// History is loaded from historyFile when it exists and saved back on Close.
// An empty historyFile disables persistence.
// The returned reader is usable even when loading the history fails; the failure is returned alongside it.
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return newTerminalReader(state, historyFile)
}

func newTerminalReader(state lineState, historyFile string) (*TerminalReader, error) {
	rd := &TerminalReader{
		state:       state,
		historyFile: historyFile,
	}
	return rd, rd.loadHistory()
}

// ReadLine prompts on the terminal.
// Ctrl-C and Ctrl-D both end the input with io.EOF.
func (rd *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := rd.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		rd.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves the history and restores the terminal.
func (rd *TerminalReader) Close() error {
	var saveErr error
	if rd.historyFile != "" {
		saveErr = rd.saveHistory()
	}
	return errors.Join(saveErr, rd.state.Close())
}

func (rd *TerminalReader) loadHistory() error {
	if rd.historyFile == "" {
		return nil
	}
	f, err := os.Open(rd.historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commander: load history: %w", err)
	}
	defer f.Close()
	if _, err := rd.state.ReadHistory(f); err != nil {
		return fmt.Errorf("commander: load history: %w", err)
	}
	return nil
}

// saveHistory keeps the file private to the user since lines may carry sensitive arguments.
func (rd *TerminalReader) saveHistory() error {
	f, err := os.OpenFile(rd.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("commander: save history: %w", err)
	}
	defer f.Close()
	if _, err := rd.state.WriteHistory(f); err != nil {
		return fmt.Errorf("commander: save history: %w", err)
	}
	return nil
}
