package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<div>", "&lt;div&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{"", ""},
		{"unicode ✓", "unicode ✓"},
	}

	for _, tt := range tests {
		if got := escapeHTML(tt.input); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line&#10;break"},
		{"tab\there", "tab&#9;here"},
		{"cr\rhere", "cr&#13;here"},
		{`"quoted"`, "&quot;quoted&quot;"},
	}

	for _, tt := range tests {
		if got := escapeAttr(tt.input); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
