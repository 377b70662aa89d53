package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLang(t *testing.T) {
	t.Run("empty code uses default", func(t *testing.T) {
		assert.Equal(t, "fr", NormalizeLang("", "fr"))
	})

	t.Run("empty code and unsupported default fall back to reference", func(t *testing.T) {
		assert.Equal(t, ReferenceLang, NormalizeLang("", "xx"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, "de", NormalizeLang("DE", "en"))
		assert.Equal(t, "en", NormalizeLang("En", "en"))
	})

	t.Run("region subtag stripped", func(t *testing.T) {
		assert.Equal(t, "pt", NormalizeLang("pt-BR", "en"))
		assert.Equal(t, "zh", NormalizeLang("zh-Hant", "en"))
		assert.Equal(t, "en", NormalizeLang("en-US", "en"))
	})

	t.Run("unsupported language falls back to reference", func(t *testing.T) {
		assert.Equal(t, ReferenceLang, NormalizeLang("ko", "en"))
		assert.Equal(t, ReferenceLang, NormalizeLang("not-a-lang-at-all", "en"))
	})

	t.Run("all declared languages normalize to themselves", func(t *testing.T) {
		for code := range SupportedLanguages {
			assert.Equal(t, code, NormalizeLang(code, "en"), "lang %s", code)
		}
	})
}
