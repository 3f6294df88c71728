// Command repl reads clauses interactively, printing each parsed clause and the
// record it lowers to.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/brunokim/lam/loader"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	consultFiles = pflag.StringSlice("consult-files", nil, "Files to load before reading input, in order")
	historyFile  = pflag.String("history", "", "File to keep input history")
	strict       = pflag.Bool("strict", false, "Reject unparsed input after the last clause")
	verbose      = pflag.BoolP("verbose", "v", false, "Log debug messages")
)

const (
	prompt         = "?- "
	continuePrompt = "|  "
)

// lineReader is the subset of *readline.Instance used by the REPL.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	SaveHistory(content string) error
}

type session struct {
	in     lineReader
	out    io.Writer
	loader *loader.Loader
	count  int
}

func main() {
	pflag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()
	l := loader.New(loader.WithLogger(logger), loader.WithStrict(*strict))

	if len(*consultFiles) > 0 {
		progs, err := l.LoadFiles(context.Background(), *consultFiles)
		for _, prog := range progs {
			if prog != nil {
				printProgram(os.Stdout, prog)
			}
		}
		if err != nil {
			log.Print(err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		HistoryFile:            *historyFile,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	s := &session{in: rl, out: os.Stdout, loader: l}
	s.mainLoop()
}

func (s *session) mainLoop() {
	for {
		text, isClose := s.readInput()
		if isClose {
			return
		}
		s.count++
		prog, err := s.loader.LoadString(fmt.Sprintf("input#%d", s.count), text)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		printProgram(s.out, prog)
	}
}

// readInput reads lines until one ends with a period, returning them joined by
// newlines. It reports whether input was closed instead.
func (s *session) readInput() (string, bool) {
	s.in.SetPrompt(prompt)
	var lines []string
	for {
		line, err := s.in.Readline()
		if err != nil {
			return "", true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if !strings.HasSuffix(line, ".") {
			s.in.SetPrompt(continuePrompt)
			continue
		}
		break
	}
	text := strings.Join(lines, "\n")
	_ = s.in.SaveHistory(strings.Join(lines, " "))
	return text, false
}

func printProgram(w io.Writer, prog *loader.Program) {
	for i, c := range prog.Clauses {
		fmt.Fprintf(w, "%v\n  %v\n", c, prog.Records[i])
	}
	if prog.Remaining != "" {
		fmt.Fprintf(w, "unparsed: %q\n", prog.Remaining)
	}
}
