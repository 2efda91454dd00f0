package parse

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind Kind
		wantText string
	}{
		{name: "bare marker is a sentinel", line: "//", wantKind: CommentStart},
		{name: "marker with trailing spaces is a sentinel", line: "//   ", wantKind: CommentStart},
		{name: "indented marker is a sentinel", line: " \t//", wantKind: CommentStart},
		{name: "comment with body", line: "// hello", wantKind: CommentBody, wantText: "hello"},
		{name: "indented comment with body", line: "\t// hello", wantKind: CommentBody, wantText: "hello"},
		{name: "tab after marker", line: "//\thello", wantKind: CommentBody, wantText: "hello"},
		{name: "leading whitespace run stripped once", line: "//   spaced  out  ", wantKind: CommentBody, wantText: "spaced  out  "},
		{name: "marker glued to text is code", line: "//x = 1", wantKind: Code, wantText: "//x = 1"},
		{name: "triple slash is code", line: "///", wantKind: Code, wantText: "///"},
		{name: "empty line is blank", line: "", wantKind: Blank},
		{name: "whitespace line is blank", line: " \t ", wantKind: Blank},
		{name: "plain code", line: "x = 1", wantKind: Code, wantText: "x = 1"},
		{name: "trailing comment stays code", line: "x = 1 // inline", wantKind: Code, wantText: "x = 1 // inline"},
		{name: "indented code", line: "    return x", wantKind: Code, wantText: "    return x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, text := Classify(tt.line)
			if kind != tt.wantKind {
				t.Errorf("Classify(%q) kind = %v, want %v", tt.line, kind, tt.wantKind)
			}
			if text != tt.wantText {
				t.Errorf("Classify(%q) text = %q, want %q", tt.line, text, tt.wantText)
			}
		})
	}
}

func TestClassifyCodeIsStable(t *testing.T) {
	t.Parallel()

	lines := []string{"x = 1", "//x", "///", "foo() // call"}
	for _, line := range lines {
		kind, text := Classify(line)
		if kind != Code {
			t.Fatalf("Classify(%q) = %v, want Code", line, kind)
		}
		if again, _ := Classify(text); again != Code {
			t.Errorf("reclassifying %q = %v, want Code", text, again)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Blank, "Blank"},
		{CommentStart, "CommentStart"},
		{CommentBody, "CommentBody"},
		{Code, "Code"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "empty source", source: "", want: []string{""}},
		{name: "single line without newline", source: "a", want: []string{"a"}},
		{name: "trailing newline dropped", source: "a\nb\n", want: []string{"a", "b"}},
		{name: "double trailing newline keeps one blank", source: "a\n\n", want: []string{"a", ""}},
		{name: "crlf normalized", source: "a\r\nb", want: []string{"a", "b"}},
		{name: "lone cr normalized", source: "a\rb", want: []string{"a", "b"}},
		{name: "crlf with trailing newline", source: "a\r\n", want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Lines(tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}
