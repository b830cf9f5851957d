package console

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// LineReader reads one line of user input after showing prompt. It returns
// io.EOF when the input ends.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// TerminalReader is a LineReader with line editing and a persistent
// history file.
type TerminalReader struct {
	state       *liner.State
	historyFile string
}

func NewTerminalReader(historyFile string) *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	r := &TerminalReader{state: state, historyFile: historyFile}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logrus.WithError(err).Warn("Failed to read console history")
			}
			_ = f.Close()
		}
	}
	return r
}

func (r *TerminalReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves the history and restores the terminal.
func (r *TerminalReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			if _, err := r.state.WriteHistory(f); err != nil {
				logrus.WithError(err).Warn("Failed to write console history")
			}
			_ = f.Close()
		}
	}
	return r.state.Close()
}
