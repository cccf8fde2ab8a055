package layout

import "github.com/quillweb/quill/internal/platform"

// wrapText splits text into lines per spec.md §4.7's wrap_text
// algorithm: scan characters, accumulating an undecided word since the
// last break opportunity (whitespace not in nbsp); each time a break
// opportunity (or EOF) completes a word, test whether the decided
// line plus that word, not counting the break whitespace that ends
// the word, fits the applicable width limit (the current
// line's remaining width for the very first line, the full line width
// for every line after a flush). If it fits, the word (plus its
// trailing separator) is folded into the decided buffer; if not, the
// decided buffer is flushed as a line and the word starts the next
// one. A single word that alone exceeds the full line width is never
// split (spec.md §8 property 7's "unless the line consists of a
// single unbreakable word" exception) -- it is simply accepted as an
// overflowing line.
//
// Concatenating the returned lines in order reproduces text exactly:
// every input character lands in exactly one line, including the
// break whitespace itself (folded into the line it terminates).
func wrapText(fc platform.FontContext, font platform.Font, text string, nbsp map[int]bool, maxWidth, firstLineRemaining float64) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	isBreak := func(i int) bool {
		switch runes[i] {
		case ' ', '\t', '\n', '\r', '\f':
			return !nbsp[i]
		}
		return false
	}

	var lines []string
	var decided string
	limit := firstLineRemaining
	if limit <= 0 {
		limit = maxWidth
	}

	wordStart := 0
	flushDecided := func() {
		if decided != "" {
			lines = append(lines, decided)
		}
		decided = ""
		limit = maxWidth
	}

	considerWord := func(word string, endsAtBreak bool) {
		candidate := decided + word
		measured := candidate
		if endsAtBreak {
			// The trailing break whitespace is not counted against the limit.
			measured = string([]rune(candidate)[:len([]rune(candidate))-1])
		}
		w, _ := fc.TextDimension(measured, font)
		if w <= limit || decided == "" {
			// Fits, or is an unbreakable single word that overflows the
			// limit regardless (spec.md §8 property 7 exception).
			decided = candidate
			return
		}
		flushDecided()
		decided = word
	}

	for i := 0; i <= len(runes); i++ {
		if i == len(runes) {
			if i > wordStart {
				considerWord(string(runes[wordStart:i]), false)
			}
			break
		}
		if isBreak(i) {
			considerWord(string(runes[wordStart:i+1]), true)
			wordStart = i + 1
		}
	}
	flushDecided()
	return lines
}
