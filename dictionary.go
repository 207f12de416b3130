package pwstrength

import (
	_ "embed"
	"strings"
)

//go:embed data/common_passwords.txt
var commonPasswordsData string

// wordList is a read-only set of lowercased common passwords. Analyzers
// share it without locking.
type wordList map[string]struct{}

// embeddedWords is the list used unless WithDictionary replaces it.
var embeddedWords = parseWordList(commonPasswordsData)

// parseWordList reads one password per line, lowercasing entries and
// skipping blank lines.
func parseWordList(data string) wordList {
	words := make(wordList)
	for line := range strings.Lines(data) {
		if w := strings.ToLower(strings.TrimSpace(line)); w != "" {
			words[w] = struct{}{}
		}
	}
	return words
}

func (l wordList) has(word string) bool {
	_, ok := l[word]
	return ok
}
