package extractor

import "testing"

func TestExtractEnhancement(t *testing.T) {
	tests := []struct {
		text      string
		level     int
		remainder string
		ok        bool
	}{
		{"9강 나겔반지", 9, "나겔반지", true},
		{"나겔반지 15강", 15, "나겔반지", true},
		{"노강 나겔반지", 0, "나겔반지", true},
		{"나겔반지8", 8, "나겔반지", true},
		{"8나겔반지", 8, "나겔반지", true},
		{"나겔반지", 0, "나겔반지", false},
		{"나겔반지 450", 0, "나겔반지 450", false}, // price-sized number untouched
		{"27강 나겔반지", 0, "27강 나겔반지", false}, // past the enhancement cap
	}
	for _, tt := range tests {
		level, remainder, ok := ExtractEnhancement(tt.text)
		if ok != tt.ok || level != tt.level || remainder != tt.remainder {
			t.Errorf("%q: got (%d, %q, %v), want (%d, %q, %v)",
				tt.text, level, remainder, ok, tt.level, tt.remainder, tt.ok)
		}
	}
}

func TestExtractEnhancement_LotTokensIgnored(t *testing.T) {
	for _, text := range []string{"에테르 5개당", "주작반지 2쌍"} {
		if _, _, ok := ExtractEnhancement(text); ok {
			t.Errorf("%q: lot-size digits must not read as enhancement", text)
		}
	}
}
