package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionSign starts a formatting code in Minecraft text.
const SectionSign = "§"

// Colorize converts '&' formatting codes into section-sign codes. An '&'
// not followed by a valid code is kept as is.
func Colorize(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) && isFormatCode(runes[i+1]) {
			b.WriteString(SectionSign)
			b.WriteRune(toLower(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func isFormatCode(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	case r >= 'k' && r <= 'o', r >= 'K' && r <= 'O', r == 'r', r == 'R':
		return true
	}
	return false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// humanize turns a key name such as "fire_aspect" into "Fire Aspect".
func humanize(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// wrapWords breaks s into lines of at most width runes on spaces. Words
// longer than width get a line of their own. width <= 0 disables wrapping.
func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
