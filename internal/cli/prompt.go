package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/config"
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// Prompter reads one line of user input after showing a prompt.
// *readline.Instance satisfies it.
type Prompter interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// NewPrompter opens an interactive line reader on the given streams.
func NewPrompter(in io.ReadCloser, out io.Writer) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Stdin:  in,
		Stdout: out,
	})
}

// AskPaths prompts for every path the configuration leaves empty.
// An empty answer, or end of input, keeps the path empty so that the
// defaults apply later.
func AskPaths(p Prompter, conf *config.Conf) error {
	if conf.InputPath == "" {
		answer, err := ask(p, fmt.Sprintf("input log file (default: %s): ", config.DefaultInputPath))
		if err != nil {
			return err
		}
		conf.InputPath = answer
	}
	if conf.OutputPath == "" {
		answer, err := ask(p, fmt.Sprintf("output results file (default: %s): ", config.DefaultOutputPath))
		if err != nil {
			return err
		}
		conf.OutputPath = answer
	}
	return nil
}

func ask(p Prompter, prompt string) (string, error) {
	p.SetPrompt(prompt)
	line, err := p.Readline()
	if err == io.EOF {
		return "", nil
	}
	if err == readline.ErrInterrupt {
		return "", errors.New("input interrupted")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}
