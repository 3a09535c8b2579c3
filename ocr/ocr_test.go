package ocr

import (
	"reflect"
	"testing"
)

func TestSplitLangs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"eng+ara", []string{"eng", "ara"}},
		{"ara", []string{"ara"}},
		{"eng + ara", []string{"eng", "ara"}},
		{"", []string{"eng"}},
		{"+", []string{"eng"}},
	}
	for _, tt := range tests {
		if got := splitLangs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLangs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
