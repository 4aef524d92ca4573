package wordml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCells(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, cells("| a | b |"))
	assert.Equal(t, []string{"", "b", ""}, cells("|| b ||"))
	assert.Nil(t, cells("| a "))
	assert.Nil(t, cells("no pipes"))
}

func TestMathSpans(t *testing.T) {
	assert.Equal(t,
		[]span{{text: "a "}, {marked: true, text: "$x$"}, {text: " b"}},
		mathSpans("a $x$ b"))

	// dollar pairs match from the left, prose dollars become math
	assert.Equal(t,
		[]span{{text: "costs "}, {marked: true, text: "$5 and $"}, {text: "6 total"}},
		mathSpans("costs $5 and $6 total"))

	assert.Equal(t, []span{{text: "no math"}}, mathSpans("no math"))
	assert.Equal(t, []span{{text: "lone $ sign"}}, mathSpans("lone $ sign"))
}

func TestBoldSpans(t *testing.T) {
	assert.Equal(t,
		[]span{{text: "a "}, {marked: true, text: "**b**"}, {text: " c"}},
		boldSpans("a **b** c"))

	assert.Equal(t, []span{{text: "**"}}, boldSpans("**"))
	assert.Equal(t, []span{{text: "**a*"}}, boldSpans("**a*"))
	assert.Equal(t,
		[]span{{marked: true, text: "**a**"}, {marked: true, text: "**b**"}},
		boldSpans("**a****b**"))
}
