package pipeline

import "testing"

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no blank lines", input: "a\nb", want: "a\nb"},
		{name: "single blank kept", input: "a\n\nb", want: "a\n\nb"},
		{name: "three newlines compressed", input: "a\n\n\nb", want: "a\n\nb"},
		{name: "many newlines compressed", input: "a\n\n\n\n\n\nb", want: "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := compressBlankLines(tt.input); got != tt.want {
				t.Errorf("compressBlankLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHighlightPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single highlight", input: "a ==b== c", want: "a <mark>b</mark> c"},
		{name: "multiple highlights", input: "==x== and ==y==", want: "<mark>x</mark> and <mark>y</mark>"},
		{name: "no highlight", input: "plain text", want: "plain text"},
		{name: "empty highlight", input: "====", want: "<mark></mark>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertMarkPlaceholders(convertHighlights(tt.input))
			if got != tt.want {
				t.Errorf("round trip of %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessProse(t *testing.T) {
	t.Parallel()

	got := preprocessProse("a ==b==\n\n\n\nc")
	want := "a " + markStartPlaceholder + "b" + markEndPlaceholder + "\n\nc"
	if got != want {
		t.Errorf("preprocessProse() = %q, want %q", got, want)
	}
}
