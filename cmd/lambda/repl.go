package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/peterh/liner"

	"github.com/WilliamRagstad/lamda-calc/untyped"
)

const (
	promptMain = "> "
	promptCont = ". "
	helpText   = `Enter terms or assignments separated by ';'. Ctrl+C interrupts a
running reduction, Ctrl+D exits.

  :help          Show this help
  :quit / :exit  Exit
  :env           List the bound names
  :load <file>   Evaluate a file into the session
`
)

func runREPL(s *session, histPath string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		if _, err := ln.ReadHistory(f); err != nil {
			log.Printf("reading history: %v", err)
		}
		f.Close()
	}

	for {
		src, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(s.out)
			break
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if strings.HasPrefix(src, ":") {
			if exit := s.command(src); exit {
				break
			}
			continue
		}
		s.report(s.interruptible(func(ctx context.Context) error {
			return s.run(ctx, src)
		}))
	}

	if f, err := os.Create(histPath); err == nil {
		if _, err := ln.WriteHistory(f); err != nil {
			log.Printf("writing history: %v", err)
		}
		f.Close()
	}
}

// readInput reads lines until they parse or fail for a reason other than
// running out of input. ok is false at EOF.
func readInput(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src = b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := parseUnit(src); !errors.Is(err, untyped.ErrIncomplete) {
			return src, true
		}
	}
}

// interruptible runs fn with a context that is canceled by Ctrl+C.
func (s *session) interruptible(fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return fn(ctx)
}

func (s *session) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(s.out, "interrupted")
	default:
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *session) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":quit", ":exit":
		return true
	case ":env":
		s.printEnv()
	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: :load <file>")
			return false
		}
		s.report(s.interruptible(func(ctx context.Context) error {
			src, err := os.ReadFile(fields[1])
			if err != nil {
				return err
			}
			return s.run(ctx, string(src))
		}))
	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}
