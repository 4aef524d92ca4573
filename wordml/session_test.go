package wordml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionParaIDs(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "10000000", s.nextParaID())
	assert.Equal(t, "10000001", s.nextParaID())
	assert.Equal(t, "10000002", s.nextParaID())

	// a fresh session starts over
	assert.Equal(t, "10000000", NewSession().nextParaID())
}
