package loctok

import (
	"fmt"
	"os"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Counter turns text into a token count. Implementations are not safe for
// concurrent use; the pool hands each instance to one worker at a time.
type Counter interface {
	Count(text string) int
}

// Encodings lists the supported tiktoken encoding names.
var Encodings = []string{
	"cl100k_base",
	"o200k_base",
	"p50k_base",
	"p50k_edit",
	"r50k_base",
}

const defaultEncoding = "cl100k_base"

// --- tiktoken backend ---

type tiktokenCounter struct {
	tke *tiktoken.Tiktoken
}

func newTiktokenCounter(encoding string) (Counter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to init encoding %s: %w", encoding, err)
	}
	return &tiktokenCounter{tke: tke}, nil
}

func (c *tiktokenCounter) Count(text string) int {
	// Special-token sequences are counted as ordinary text, matching
	// encode-with-special-tokens semantics.
	return len(c.tke.Encode(text, []string{"all"}, nil))
}

// --- HuggingFace tokenizer file backend ---

type hfCounter struct {
	htk *hf.Tokenizer
}

func newHFCounter(path string) (Counter, error) {
	htk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer from file %s: %w", path, err)
	}
	return &hfCounter{htk: htk}, nil
}

func (c *hfCounter) Count(text string) int {
	en, err := c.htk.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: tokenizer failed to encode text: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

// NewCounter constructs a single counter for the options' backend. Most
// callers want CountPath, which pools counters across workers; this exists for
// one-off text counting.
func NewCounter(opts Options) (Counter, error) {
	newFn, err := newCounterFactory(opts)
	if err != nil {
		return nil, err
	}
	return newFn()
}

// newCounterFactory validates the backend choice up front so an unsupported
// encoding fails before any traversal starts.
func newCounterFactory(opts Options) (func() (Counter, error), error) {
	if opts.TokenizerFile != "" {
		path := opts.TokenizerFile
		return func() (Counter, error) { return newHFCounter(path) }, nil
	}
	name := opts.Encoding
	if name == "" {
		name = defaultEncoding
	}
	supported := false
	for _, e := range Encodings {
		if e == name {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return func() (Counter, error) { return newTiktokenCounter(name) }, nil
}
