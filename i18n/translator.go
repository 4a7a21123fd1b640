package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional facet parameters to embed in the message (for
// example "min", "max", "got" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"required":        "required element missing",
		"too_short":       "shorter than the minimum length of {min} (got {got})",
		"too_long":        "longer than the maximum length of {max} (got {got})",
		"too_small":       "less than the minimum value {min} (got {got})",
		"pattern":         "does not match pattern {pattern}",
		"invalid_enum":    "{got} is not a valid {type} code",
		"union_ambiguous": "more than one choice alternative is present ({got})",
		"parse_error":     "parse error: {err}",
		"unknown_message": "unknown message namespace {namespace}",
		"duplicate_key":   "key '{key}' duplicated",
		"truncated":       "max issues reached",
	},
	"ja": {
		"required":        "必須要素がありません",
		"too_short":       "最小長 {min} より短いです (実際: {got})",
		"too_long":        "最大長 {max} を超えています (実際: {got})",
		"too_small":       "最小値 {min} 未満です (実際: {got})",
		"pattern":         "パターン {pattern} に一致しません",
		"invalid_enum":    "{got} は {type} の有効なコードではありません",
		"union_ambiguous": "選択肢が複数指定されています ({got})",
		"parse_error":     "解析エラー: {err}",
		"unknown_message": "未知のメッセージ名前空間です: {namespace}",
		"duplicate_key":   "キー '{key}' が重複しています",
		"truncated":       "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders. A placeholder without data renders
// as "?".
func expand(tmpl string, data map[string]string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:i])
		key := tmpl[i+1 : i+j]
		if v, ok := data[key]; ok {
			b.WriteString(v)
		} else {
			b.WriteString("?")
		}
		tmpl = tmpl[i+j+1:]
	}
	return b.String()
}

// Languages returns the languages with a built-in dictionary.
func Languages() []string { return []string{"en", "ja"} }

var currentTranslator atomic.Value

func init() { currentTranslator.Store(Translator(dictTranslator{lang: "en"})) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	currentTranslator.Store(Translator(dictTranslator{lang: lang}))
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(tr)
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().(Translator).Message(code, data)
}
