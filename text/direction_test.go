package text

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"latin", "Hello, World!", LTR},
		{"arabic", "مرحبا بالعالم", RTL},
		{"hebrew", "שלום עולם", RTL},
		{"cyrillic", "Привет мир", LTR},
		{"digits only", "12345", Neutral},
		{"punctuation only", "... !!! ???", Neutral},
		{"mixed mostly arabic", "النمط التأملي Reflection", RTL},
		{"mixed mostly latin", "The Reflection pattern (نمط)", LTR},
		{"arabic with digits", "الصفحة 42", RTL},
		{"cjk", "こんにちは世界", LTR},
		{"truncated multi-byte tail", "ab\xe4", LTR},
		{"stray continuation bytes", "\x80\xbf\x80", Neutral},
		{"invalid bytes inside arabic", "مرح\xe4\xffبا", RTL},
		{"lone invalid byte", "\xff", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if LTR.String() != "LTR" || RTL.String() != "RTL" || Neutral.String() != "Neutral" {
		t.Error("unexpected Direction string values")
	}
	if Direction(99).String() != "Unknown" {
		t.Error("expected Unknown for out-of-range direction")
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("مرحبا") {
		t.Error("expected Arabic text to be RTL")
	}
	if IsRTL("hello") {
		t.Error("expected Latin text not to be RTL")
	}
}
