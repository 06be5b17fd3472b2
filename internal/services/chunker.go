package services

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits text into chunks of at most maxChunkSize runes, packing
// whole paragraphs and falling back to sentences for long ones. A sentence
// longer than maxChunkSize is cut into maxChunkSize pieces. Each chunk after
// the first starts with the last overlap runes of its predecessor when they fit.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = defaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	b := &chunkBuilder{maxSize: maxChunkSize, overlap: overlap}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			b.add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			for _, piece := range splitByRunes(sentence, maxChunkSize) {
				b.add(piece, " ")
			}
		}
	}

	return b.finish()
}

type chunkBuilder struct {
	maxSize int
	overlap int
	current strings.Builder
	runes   int
	chunks  []string
}

func (b *chunkBuilder) add(piece, sep string) {
	pieceRunes := utf8.RuneCountInString(piece)

	if b.runes > 0 && b.runes+len(sep)+pieceRunes > b.maxSize {
		prev := b.current.String()
		b.chunks = append(b.chunks, prev)
		b.current.Reset()
		b.runes = 0

		if tail := getLastNChars(prev, b.overlap); tail != "" && utf8.RuneCountInString(tail)+len(sep)+pieceRunes <= b.maxSize {
			b.write(tail)
		}
	}

	if b.runes > 0 {
		b.write(sep)
	}
	b.write(piece)
}

func (b *chunkBuilder) write(s string) {
	b.current.WriteString(s)
	b.runes += utf8.RuneCountInString(s)
}

func (b *chunkBuilder) finish() []string {
	if b.runes > 0 {
		b.chunks = append(b.chunks, b.current.String())
	}
	return b.chunks
}

func splitIntoSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func splitByRunes(text string, n int) []string {
	if utf8.RuneCountInString(text) <= n {
		return []string{text}
	}

	var pieces []string
	runes := []rune(text)
	for len(runes) > n {
		pieces = append(pieces, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}
	return pieces
}

// truncateRunes cuts text to at most n runes without splitting a character.
func truncateRunes(text string, n int) string {
	if len(text) <= n {
		return text
	}

	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

func getLastNChars(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
