package wordml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/typeset/docxmd/wordml"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []wordml.Block
	}{
		{
			name:   "headings",
			source: "# One\n## Two\n### Three\n",
			want: []wordml.Block{
				&wordml.Heading{Level: 1, Text: "One"},
				&wordml.Heading{Level: 2, Text: "Two"},
				&wordml.Heading{Level: 3, Text: "Three"},
			},
		},
		{
			name:   "paragraph joins adjacent lines",
			source: "first line\nsecond line\n\nnext para",
			want: []wordml.Block{
				&wordml.Paragraph{Text: "first line\nsecond line"},
				&wordml.Paragraph{Text: "next para"},
			},
		},
		{
			name:   "paragraph stops at block start",
			source: "text\n# Title",
			want: []wordml.Block{
				&wordml.Paragraph{Text: "text"},
				&wordml.Heading{Level: 1, Text: "Title"},
			},
		},
		{
			name:   "table",
			source: "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |",
			want: []wordml.Block{
				&wordml.Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}, {"3", "4"}}},
			},
		},
		{
			name:   "table without separator line is dropped",
			source: "| A | B |",
			want:   nil,
		},
		{
			name:   "code fence",
			source: "```\nfoo()\n  bar()\n```\nafter",
			want: []wordml.Block{
				&wordml.Code{Text: "foo()\n  bar()"},
				&wordml.Paragraph{Text: "after"},
			},
		},
		{
			name:   "unterminated code fence runs to the end",
			source: "```\nfoo()",
			want: []wordml.Block{
				&wordml.Code{Text: "foo()"},
			},
		},
		{
			name:   "single line formula",
			source: "$$x+1$$",
			want: []wordml.Block{
				&wordml.Formula{Source: "$$x+1$$"},
			},
		},
		{
			name:   "multi line formula",
			source: "$$\nx+1\n$$",
			want: []wordml.Block{
				&wordml.Formula{Source: "$$\nx+1\n$$"},
			},
		},
		{
			name:   "inline math stays in the paragraph",
			source: "value $x$ here",
			want: []wordml.Block{
				&wordml.Paragraph{Text: "value $x$ here"},
			},
		},
		{
			name:   "blank lines are skipped",
			source: "\n\n\n",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wordml.Split(tc.source))
		})
	}
}
