package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter is the human-in-the-loop capability the pipeline calls for
// confirmation gates. Modelling it as an interface keeps the core testable
// without a real input stream.
type Prompter interface {
	// Confirm asks a yes/no question; only an explicit "y" is affirmative.
	Confirm(prompt string) bool
	// ReadLine asks for free text and returns the trimmed reply.
	ReadLine(prompt string) string
}

// Stdio prompts on an output writer and reads replies line by line.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (s *Stdio) Confirm(prompt string) bool {
	fmt.Fprintf(s.out, "%s (y/n): ", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}

func (s *Stdio) ReadLine(prompt string) string {
	fmt.Fprintf(s.out, "%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// Nop declines every confirmation and returns empty text. Non-interactive
// entrypoints (one-shot ask, HTTP) use it so a drafted email is never sent
// without a human answering a prompt.
type Nop struct{}

func (Nop) Confirm(string) bool    { return false }
func (Nop) ReadLine(string) string { return "" }

// TurnRunner is the piece of the orchestrator the REPL needs.
type TurnRunner interface {
	RunTurn(ctx context.Context, goal string) (string, error)
}

// REPL is the line-oriented terminal loop: every input line is a goal,
// "quit"/"exit" (case-insensitive) end the session.
type REPL struct {
	In    io.Reader
	Out   io.Writer
	Model string
}

func (r *REPL) Run(ctx context.Context, runner TurnRunner) error {
	fmt.Fprintf(r.Out, "Hello! I am your local concierge agent, powered by %s.\n", r.Model)
	fmt.Fprintln(r.Out, "I can remember our conversation and browse multiple sites for you.")
	fmt.Fprintln(r.Out, `Type "quit" or "exit" to end the session.`)

	scanner := bufio.NewScanner(r.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(r.Out, "\nWhat would you like to find?\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		goal := strings.TrimSpace(scanner.Text())
		if goal == "" {
			continue
		}
		switch strings.ToLower(goal) {
		case "quit", "exit":
			fmt.Fprintln(r.Out, "Goodbye!")
			return nil
		}

		summary, err := runner.RunTurn(ctx, goal)
		if err != nil {
			fmt.Fprintf(r.Out, "\nSomething went wrong: %v\n", err)
			continue
		}
		fmt.Fprintf(r.Out, "\n--- Here is your summary ---\n\n%s\n\n----------------------------\n", summary)
	}
}
