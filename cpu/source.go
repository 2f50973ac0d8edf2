// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = "//"

// tokenRe matches a $(...) expression, allowing one level of nested
// parentheses, or a run of non-space characters.
var tokenRe = regexp.MustCompile(`\$\([^()]*(?:\([^()]*\)[^()]*)*\)|\S+`)

// Tokenize splits a line of source into whitespace separated tokens.
// A $(...) expression is kept as a single token.
func Tokenize(line string) (words []string) {
	return tokenRe.FindAllString(strings.TrimSpace(line), -1)
}

// RemoveComments drops the first token starting with COMMENT, and all
// tokens after it.
func RemoveComments(words []string) []string {
	for n, word := range words {
		if strings.HasPrefix(word, COMMENT) {
			return words[:n]
		}
	}
	return words
}

// LoadProgram reads program text into tokenized lines, one per source line.
// Blank and comment-only lines are kept as empty token lists.
func LoadProgram(input io.Reader) (lines [][]string, err error) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		words := RemoveComments(Tokenize(scanner.Text()))
		if words == nil {
			words = []string{}
		}
		lines = append(lines, words)
	}

	err = scanner.Err()

	return
}
