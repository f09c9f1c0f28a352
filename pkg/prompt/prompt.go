// Package prompt asks the user to confirm destructive actions or to type a
// value. Without a terminal every confirmation is declined.
package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrNoTerminal is returned by Text when there is no terminal to ask on.
var ErrNoTerminal = errors.New("prompt: no terminal")

// Prompter is what runners ask for confirmations and values.
type Prompter interface {
	Confirm(label string) (bool, error)
	Text(label string) (string, error)
}

// Terminal prompts on In and Out with promptui.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// Yes answers every confirmation without asking.
	Yes bool
}

var _ Prompter = (*Terminal)(nil)

// Confirm asks a yes/no question. Ctrl-C, "n" and the absence of a terminal
// all decline.
func (t *Terminal) Confirm(label string) (bool, error) {
	if t.Yes {
		return true, nil
	}
	if !t.interactive() {
		return false, nil
	}
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     io.NopCloser(t.in()),
		Stdout:    nopCloser{t.out()},
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Text asks for a non-blank value.
func (t *Terminal) Text(label string) (string, error) {
	if !t.interactive() {
		return "", ErrNoTerminal
	}
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	p := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  io.NopCloser(t.in()),
		Stdout: nopCloser{t.out()},
	}
	v, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (t *Terminal) in() io.Reader {
	if t.In == nil {
		return os.Stdin
	}
	return t.In
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}

func (t *Terminal) interactive() bool {
	f, ok := t.in().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Fixed answers every prompt the same way.
type Fixed struct {
	Answer bool
	Value  string
}

func (f Fixed) Confirm(string) (bool, error) { return f.Answer, nil }

func (f Fixed) Text(string) (string, error) {
	if strings.TrimSpace(f.Value) == "" {
		return "", ErrNoTerminal
	}
	return strings.TrimSpace(f.Value), nil
}
