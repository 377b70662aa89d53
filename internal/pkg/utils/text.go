package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitSentences разбивает текст на предложения-единицы. Граница единицы -
// '.', '!' или '?', за которым идёт пробельный символ или конец текста.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var units []string
	var b strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if isSentenceEnd(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			if unit := strings.TrimSpace(b.String()); unit != "" {
				units = append(units, unit)
			}
			b.Reset()
		}
	}

	if rest := strings.TrimSpace(b.String()); rest != "" {
		units = append(units, rest)
	}

	return units
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// CondenseSentences сжимает текст до maxUnits предложений и maxChars символов.
// Обрезает только по границе предложения; единственное слишком длинное
// предложение урезается по границе слова с многоточием.
func CondenseSentences(text string, maxUnits, maxChars int) string {
	if maxUnits < 1 {
		maxUnits = 1
	}

	units := SplitSentences(text)
	if len(units) == 0 {
		return ""
	}
	if len(units) > maxUnits {
		units = units[:maxUnits]
	}

	// Бюджет символов - в рунах, не в байтах: кириллица и CJK не должны
	// резаться раньше лимита
	for len(units) > 1 && utf8.RuneCountInString(strings.Join(units, " ")) > maxChars {
		units = units[:len(units)-1]
	}

	out := strings.Join(units, " ")
	if utf8.RuneCountInString(out) > maxChars {
		out = clipAtWord(out, maxChars)
	}
	return out
}

// clipAtWord обрезает строку до maxChars по последнему пробелу
func clipAtWord(s string, maxChars int) string {
	if maxChars < 2 {
		maxChars = 2
	}
	runes := []rune(s)
	if len(runes) > maxChars-1 {
		runes = runes[:maxChars-1]
	}
	clipped := string(runes)
	if idx := strings.LastIndexFunc(clipped, unicode.IsSpace); idx > 0 {
		clipped = clipped[:idx]
	}
	return strings.TrimSpace(clipped) + "…"
}
