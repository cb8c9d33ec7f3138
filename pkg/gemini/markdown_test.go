package gemini

import (
	"testing"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold and italic",
			in:   "This is **serious** but *treatable*.",
			want: "This is serious but treatable.",
		},
		{
			name: "underscore emphasis",
			in:   "Take __rest__ and _fluids_.",
			want: "Take rest and fluids.",
		},
		{
			name: "headings",
			in:   "## Causes\nViral infection",
			want: "Causes\nViral infection",
		},
		{
			name: "links keep label",
			in:   "See [WHO guidance](https://who.int) for details.",
			want: "See WHO guidance for details.",
		},
		{
			name: "inline code",
			in:   "Dosage is `500mg` twice daily.",
			want: "Dosage is 500mg twice daily.",
		},
		{
			name: "bullet and numbered items",
			in:   "- rest\n* fluids\n1. paracetamol",
			want: "rest\nfluids\nparacetamol",
		},
		{
			name: "fence markers removed, content kept",
			in:   "```json\n{\"finalDisease\":\"Flu\"}\n```",
			want: "{\"finalDisease\":\"Flu\"}",
		},
		{
			name: "blank line runs collapse",
			in:   "first\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "plain text untouched",
			in:   "Drink water and rest well.",
			want: "Drink water and rest well.",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanMarkdown(tt.in)
			if got != tt.want {
				t.Errorf("CleanMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}

			// Cleaning must be idempotent: a second pass changes nothing.
			if again := CleanMarkdown(got); again != got {
				t.Errorf("second pass changed output: %q -> %q", got, again)
			}
		})
	}
}

func TestStripCodeFenceWrapper(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"a\":1}\n```",
			want: "{\"a\":1}",
		},
		{
			name: "bare fence",
			in:   "```\n[1,2]\n```",
			want: "[1,2]",
		},
		{
			name: "no fence",
			in:   "{\"a\":1}",
			want: "{\"a\":1}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFenceWrapper(tt.in); got != tt.want {
				t.Errorf("StripCodeFenceWrapper(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
