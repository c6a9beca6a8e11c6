package reward

import "strings"

// SectionSign is the colour prefix understood by game clients
const SectionSign = '§'

const colorCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// TranslateColorCodes rewrites &x colour codes to §x. An & not followed by a
// known code is left alone.
func TranslateColorCodes(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) && strings.ContainsRune(colorCodes, runes[i+1]) {
			b.WriteRune(SectionSign)
			b.WriteRune(toLower(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
