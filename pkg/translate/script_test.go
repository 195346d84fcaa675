package translate

import "testing"

func TestHasTargetScript(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"japanese kanji", "翻訳済み", true},
		{"hiragana only", "ひらがな", true},
		{"katakana only", "カタカナ", true},
		{"korean hangul", "번역됨", true},
		{"plain ascii passthrough", "untranslated passthrough", false},
		{"empty string", "", false},
		{"mixed ascii and kanji", "Die Hard 翻訳", true},
		{"punctuation and digits only", "1999-03-31!", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasTargetScript(tc.in); got != tc.want {
				t.Errorf("HasTargetScript(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
