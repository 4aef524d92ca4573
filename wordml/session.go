package wordml

import (
	"fmt"

	"github.com/typeset/docxmd/omml"
)

// style identifiers of the thesis template the output is tuned against
const (
	styleHeading1 = "2"
	styleHeading2 = "3"
	styleHeading3 = "4"
	styleBody     = "29"
	styleFormula  = "41"
	styleTable    = "46"
	styleCode     = "58"
)

// Session assembles one document. It owns the paragraph-ID counter, so two
// sessions never share state and a single document gets a monotonically
// increasing, unique sequence of IDs.
type Session struct {
	// Formulas configures the equation parser used for $ and $$ spans.
	Formulas omml.Parser

	paraID uint32
}

func NewSession() *Session {
	return &Session{paraID: 0x10000000}
}

// nextParaID returns the w14:paraId value for the next paragraph.
func (s *Session) nextParaID() string {
	if s.paraID == 0 {
		s.paraID = 0x10000000
	}

	id := fmt.Sprintf("%08X", s.paraID)
	s.paraID++

	return id
}
