// Package lang holds the static registry of languages the bot can work with,
// mapping a short user-facing code to a display name and the codes the
// translation and speech backends expect.
package lang

import (
	"sort"
	"strings"
)

// Info describes a single supported language.
type Info struct {
	Code          string // short user-facing code, e.g. "en"
	Name          string // display name, e.g. "English"
	TranslateCode string // code the translation backend expects
	SpeechCode    string // code the speech backend expects
}

// registry is immutable after init, safe for concurrent lookups
var registry = map[string]Info{
	"en": {Code: "en", Name: "English", TranslateCode: "en", SpeechCode: "en"},
	"es": {Code: "es", Name: "Spanish", TranslateCode: "es", SpeechCode: "es"},
	"fr": {Code: "fr", Name: "French", TranslateCode: "fr", SpeechCode: "fr"},
	"de": {Code: "de", Name: "German", TranslateCode: "de", SpeechCode: "de"},
	"it": {Code: "it", Name: "Italian", TranslateCode: "it", SpeechCode: "it"},
	"pt": {Code: "pt", Name: "Portuguese", TranslateCode: "pt", SpeechCode: "pt"},
	"ru": {Code: "ru", Name: "Russian", TranslateCode: "ru", SpeechCode: "ru"},
	"pl": {Code: "pl", Name: "Polish", TranslateCode: "pl", SpeechCode: "pl"},
	"tr": {Code: "tr", Name: "Turkish", TranslateCode: "tr", SpeechCode: "tr"},
	"nl": {Code: "nl", Name: "Dutch", TranslateCode: "nl", SpeechCode: "nl"},
	"sv": {Code: "sv", Name: "Swedish", TranslateCode: "sv", SpeechCode: "sv"},
	"fi": {Code: "fi", Name: "Finnish", TranslateCode: "fi", SpeechCode: "fi"},
	"da": {Code: "da", Name: "Danish", TranslateCode: "da", SpeechCode: "da"},
	"no": {Code: "no", Name: "Norwegian", TranslateCode: "no", SpeechCode: "no"},
	"uk": {Code: "uk", Name: "Ukrainian", TranslateCode: "uk", SpeechCode: "uk"},
	"cs": {Code: "cs", Name: "Czech", TranslateCode: "cs", SpeechCode: "cs"},
	"el": {Code: "el", Name: "Greek", TranslateCode: "el", SpeechCode: "el"},
	"ro": {Code: "ro", Name: "Romanian", TranslateCode: "ro", SpeechCode: "ro"},
	"hu": {Code: "hu", Name: "Hungarian", TranslateCode: "hu", SpeechCode: "hu"},
	"bg": {Code: "bg", Name: "Bulgarian", TranslateCode: "bg", SpeechCode: "bg"},
	"ar": {Code: "ar", Name: "Arabic", TranslateCode: "ar", SpeechCode: "ar"},
	"he": {Code: "he", Name: "Hebrew", TranslateCode: "he", SpeechCode: "he"},
	"hi": {Code: "hi", Name: "Hindi", TranslateCode: "hi", SpeechCode: "hi"},
	"ko": {Code: "ko", Name: "Korean", TranslateCode: "ko", SpeechCode: "ko"},
	"ja": {Code: "ja", Name: "Japanese", TranslateCode: "ja", SpeechCode: "ja"},
	"zh": {Code: "zh", Name: "Chinese (Simplified)", TranslateCode: "zh-CN", SpeechCode: "zh-cn"},
}

// Resolve looks up a language by code. The code is trimmed and lowercased
// before the lookup; an unknown code returns ok=false, never an error.
func Resolve(code string) (Info, bool) {
	info, ok := registry[strings.ToLower(strings.TrimSpace(code))]
	return info, ok
}

// All returns every supported language sorted by code.
func All() []Info {
	res := make([]Info, 0, len(registry))
	for _, info := range registry {
		res = append(res, info)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Code < res[j].Code })
	return res
}
