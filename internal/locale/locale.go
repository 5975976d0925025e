package locale

import "strings"

const (
	LanguageChinese = "zh"
	LanguageEnglish = "en"
)

// Preference 描述一次请求最终使用的语言
type Preference struct {
	Language string
	HTMLLang string
}

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// LanguageFromAcceptLanguage 按 Accept-Language 中第一个可识别的语言返回
func LanguageFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := NormalizeLanguage(tag); language != "" {
			return language
		}
	}
	return ""
}

// Resolve 依次使用显式参数与 Accept-Language，最终默认中文
func Resolve(explicit, acceptLanguage string) Preference {
	language := NormalizeLanguage(explicit)
	if language == "" {
		language = LanguageFromAcceptLanguage(acceptLanguage)
	}
	return PreferenceForLanguage(language)
}

func PreferenceForLanguage(language string) Preference {
	if NormalizeLanguage(language) == LanguageEnglish {
		return Preference{Language: LanguageEnglish, HTMLLang: "en-US"}
	}
	return Preference{Language: LanguageChinese, HTMLLang: "zh-CN"}
}
