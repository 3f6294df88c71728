package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/brunokim/lam/loader"
	"github.com/brunokim/lam/test_helpers"

	"github.com/google/go-cmp/cmp"
)

type fakeReader struct {
	lines   []string
	prompts []string
	history []string
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *fakeReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *fakeReader) SaveHistory(content string) error {
	r.history = append(r.history, content)
	return nil
}

func TestMainLoop(t *testing.T) {
	in := &fakeReader{lines: []string{
		"parent(john, mary).",
		"",
		"ancestor(X, Y) :-",
		"    parent(X, Y).",
		"f(1",
		").g(2).",
		"a(",
	}}
	var out bytes.Buffer
	s := &session{in: in, out: &out, loader: loader.New()}
	s.mainLoop()

	want := test_helpers.Dedent(`
        parent(john, mary).
          assert_clause parent@0
        ancestor(X, Y) :- parent(X, Y).
          assert_clause ancestor@0
        f(1).
          assert_clause f@0
        unparsed: "g(2)."
    `) + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output (-want, +got)%s", diff)
	}

	wantHistory := []string{
		"parent(john, mary).",
		"ancestor(X, Y) :- parent(X, Y).",
		"f(1 ).g(2).",
	}
	if diff := cmp.Diff(wantHistory, in.history); diff != "" {
		t.Errorf("history (-want, +got)%s", diff)
	}

	wantPrompts := []string{
		prompt,
		prompt, continuePrompt,
		prompt, continuePrompt,
		prompt, continuePrompt,
	}
	if diff := cmp.Diff(wantPrompts, in.prompts); diff != "" {
		t.Errorf("prompts (-want, +got)%s", diff)
	}
}
