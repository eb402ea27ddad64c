package services

import (
	"strings"
	"unicode/utf8"
)

// ChunkOptions bounds chunk size in runes. Overlap is the number of trailing
// words of one chunk repeated at the start of the next.
type ChunkOptions struct {
	MaxRunes     int
	OverlapWords int
}

var DefaultChunkOptions = ChunkOptions{MaxRunes: 1000, OverlapWords: 20}

// ChunkText splits résumé text for embedding. Paragraphs (blank line
// separated) are packed together while they fit; a paragraph that does not
// fit on its own is split by lines, then by words.
func ChunkText(text string, opts ChunkOptions) []string {
	if opts.MaxRunes <= 0 {
		opts.MaxRunes = DefaultChunkOptions.MaxRunes
	}
	if opts.OverlapWords < 0 {
		opts.OverlapWords = 0
	}

	var pieces []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= opts.MaxRunes {
			pieces = append(pieces, para)
			continue
		}
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if utf8.RuneCountInString(line) <= opts.MaxRunes {
				pieces = append(pieces, line)
				continue
			}
			pieces = append(pieces, splitWords(line, opts.MaxRunes)...)
		}
	}

	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunk := strings.Join(current, "\n\n")
		chunks = append(chunks, chunk)
		current = nil
		currentLen = 0

		if tail := lastWords(chunk, opts.OverlapWords); tail != "" && utf8.RuneCountInString(tail) < opts.MaxRunes/2 {
			current = []string{tail}
			currentLen = utf8.RuneCountInString(tail)
		}
	}

	for _, piece := range pieces {
		pieceLen := utf8.RuneCountInString(piece)
		if len(current) > 0 && currentLen+pieceLen+2 > opts.MaxRunes {
			flush()
		}
		if len(current) > 0 && currentLen+pieceLen+2 > opts.MaxRunes {
			// the overlap tail alone leaves no room for this piece
			current = nil
			currentLen = 0
		}
		if len(current) > 0 {
			currentLen += 2
		}
		current = append(current, piece)
		currentLen += pieceLen
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}

	return chunks
}

func splitWords(line string, maxRunes int) []string {
	var out []string
	var b strings.Builder
	size := 0

	for _, word := range strings.Fields(line) {
		wordLen := utf8.RuneCountInString(word)
		if size > 0 && size+1+wordLen > maxRunes {
			out = append(out, b.String())
			b.Reset()
			size = 0
		}
		if size > 0 {
			b.WriteByte(' ')
			size++
		}
		b.WriteString(word)
		size += wordLen
	}
	if size > 0 {
		out = append(out, b.String())
	}
	return out
}

func lastWords(text string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= n {
		return ""
	}
	return strings.Join(words[len(words)-n:], " ")
}
