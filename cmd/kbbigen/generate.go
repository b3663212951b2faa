package main

import (
	"context"
	"fmt"
	"io"

	"kbbiwords"
)

// Dependencies holds the wired collaborators for a run.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher kbbiwords.Fetcher
	Writer  kbbiwords.DocumentWriter
}

// GenerateCmd downloads the word list, filters it, and writes the JSON file.
type GenerateCmd struct {
	URL    string
	Output string
	MinLen int
	MaxLen int
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Downloading word list from %s\n", c.URL)

	text, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbbiwords.ErrorMessage(err))
		return err
	}

	words := kbbiwords.CandidateWords(text)
	doc := kbbiwords.BuildDocument(words, c.MinLen, c.MaxLen)

	fmt.Fprintf(deps.Stdout, "Accepted %d of %d candidate words\n", len(doc.KBBI), len(words))

	if err := deps.Writer.WriteDocument(deps.Ctx, doc, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kbbiwords.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", c.Output)
	fmt.Fprintln(deps.Stdout, "Done")

	return nil
}
