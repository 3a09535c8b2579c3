package answer

import "testing"

func TestFormat_PrefixFollowsSourceScript(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		source string
		want   string
	}{
		{"LatinSourceLatinAnswer", "Paris", "What is the capital of France?", "Answer: Paris"},
		{"ArabicSourceArabicAnswer", "باريس", "ما هي عاصمة فرنسا؟", "الإجابة: باريس"},
		{"ArabicSourceLatinAnswer", "Paris", "ما هي عاصمة فرنسا؟", "الإجابة: Paris"},
		{"LatinSourceArabicAnswer", "باريس", "What is the capital of France?", "Answer: باريس"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.raw, tt.source); got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.raw, tt.source, got, tt.want)
			}
		})
	}
}

func TestFormat_LeadingNumericToken(t *testing.T) {
	got := Format("42% of respondents agreed", "What share agreed?")
	want := "42% Answer: of respondents agreed"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_ArabicIndicDigits(t *testing.T) {
	got := Format("٤٢٪ نسبة الموافقين", "ما النسبة؟")
	want := "٤٢٪ الإجابة: نسبة الموافقين"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_NoNumericTokenNoStraySpace(t *testing.T) {
	got := Format("Paris", "What is the capital of France?")
	if got != "Answer: Paris" {
		t.Errorf("Format = %q, want %q", got, "Answer: Paris")
	}
}

func TestFormat_NumberWithoutBodyIsBody(t *testing.T) {
	// A bare number has nothing after the separator, so it stays the body.
	got := Format("42", "How many?")
	if got != "Answer: 42" {
		t.Errorf("Format = %q, want %q", got, "Answer: 42")
	}
}

func TestFormat_BodyKeepsLaterLines(t *testing.T) {
	got := Format("42% agreed\nwith the plan", "What share agreed?")
	want := "42% Answer: agreed\nwith the plan"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestContainsArabic(t *testing.T) {
	if ContainsArabic("plain latin text?") {
		t.Error("Latin text misdetected as Arabic")
	}
	if !ContainsArabic("mixed ما هي text") {
		t.Error("Arabic characters not detected")
	}
}
