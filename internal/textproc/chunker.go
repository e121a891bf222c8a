package textproc

import (
	"log"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// DefaultChunkWords bounds a chunk when no explicit size is given. The
// ingestion pipeline passes its own, smaller size.
const DefaultChunkWords = 1000

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

func loadTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.Printf("sentence tokenizer init failed, retrying: %v", err)
			t, err = english.NewSentenceTokenizer(nil)
			if err != nil {
				log.Printf("sentence tokenizer unavailable, falling back to period splitting: %v", err)
				return
			}
		}
		tokenizer = t
	})
	return tokenizer
}

// Split breaks text into chunks of at most maxWords words each. Paragraphs are
// the preferred unit; when any single paragraph exceeds maxWords, the whole
// text is re-split into sentences instead. A unit is never split internally,
// so one oversized sentence still forms its own chunk.
func Split(text string, maxWords int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if maxWords <= 0 {
		maxWords = DefaultChunkWords
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	units := paragraphs
	for _, p := range paragraphs {
		if len(strings.Fields(p)) > maxWords {
			units = splitSentences(text)
			break
		}
	}

	var chunks []string
	var current []string
	currentSize := 0

	for _, unit := range units {
		unitSize := len(strings.Fields(unit))
		if currentSize+unitSize > maxWords {
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, " "))
			}
			current = []string{unit}
			currentSize = unitSize
		} else {
			current = append(current, unit)
			currentSize += unitSize
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

func splitSentences(text string) []string {
	if tok := loadTokenizer(); tok != nil {
		var out []string
		for _, s := range tok.Tokenize(text) {
			t := strings.TrimSpace(s.Text)
			if t != "" {
				out = append(out, t)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	var out []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
