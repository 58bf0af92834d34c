package extractor

import (
	"reflect"
	"testing"
)

func TestExtractOptions(t *testing.T) {
	tests := []struct {
		text      string
		options   []string
		remainder string
	}{
		{"나겔반지 쌍", []string{"쌍"}, "나겔반지"},
		{"암셋 (흥정가능)", []string{"흥정가능"}, "암셋"},
		{"주작반지 (가격협의)", []string{"가격협의"}, "주작반지"},
		{"매프 시무 제공", []string{"시무제공"}, "매프"},
		{"돈파 코어 제공", []string{"코어제공"}, "돈파"},
		{"글럽 에테르 제공", []string{"에테제공"}, "글럽"},
		{"에테르 100개당", []string{"100개당"}, "에테르"},
		{"에테르 개당", []string{"개당"}, "에테르"},
		{"코어스톤 장당", []string{"장당"}, "코어스톤"},
		{"루딘블 일반", []string{"일반"}, "루딘블"},
		{"테레지아 무형", []string{"무형"}, "테레지아"},
		{"나겔반지", nil, "나겔반지"},
	}
	for _, tt := range tests {
		options, remainder := ExtractOptions(tt.text)
		if !reflect.DeepEqual(options, tt.options) || remainder != tt.remainder {
			t.Errorf("%q: got (%v, %q), want (%v, %q)",
				tt.text, options, remainder, tt.options, tt.remainder)
		}
	}
}

func TestExtractOptions_IgnoresPlainParens(t *testing.T) {
	options, remainder := ExtractOptions("나겔반지 (new)")
	if len(options) != 0 {
		t.Errorf("unexpected options: %v", options)
	}
	if remainder != "나겔반지 (new)" {
		t.Errorf("remainder = %q", remainder)
	}
}

func TestLotMultiplier(t *testing.T) {
	tests := []struct {
		options []string
		want    int
	}{
		{nil, 0},
		{[]string{"쌍"}, 0},
		{[]string{"개당"}, 1},
		{[]string{"장당"}, 1},
		{[]string{"100개당"}, 100},
		{[]string{"흥정가능", "100개당"}, 100},
	}
	for _, tt := range tests {
		if got := LotMultiplier(tt.options); got != tt.want {
			t.Errorf("%v: got %d, want %d", tt.options, got, tt.want)
		}
	}
}
