package omml

// greek maps macro names to glyphs. Matching is exact and case sensitive:
// capitalized names map to capital letters. Names not listed here are not
// symbols at all, they fall through to the literal rules and end up in the
// output as raw text.
var greek = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",

	"Gamma":  "Γ",
	"Delta":  "Δ",
	"Theta":  "Θ",
	"Lambda": "Λ",
	"Xi":     "Ξ",
	"Pi":     "Π",
	"Sigma":  "Σ",
	"Phi":    "Φ",
	"Psi":    "Ψ",
	"Omega":  "Ω",
}

// glyphRun resolves a script operand: a known symbol name becomes its glyph
// with the east-asian font hint, anything else stays literal text. The hint
// matters downstream, it selects which font shaping the renderer applies.
func glyphRun(name string) *Run {
	if glyph, ok := greek[name]; ok {
		return &Run{Text: glyph, Hint: HintEastAsian}
	}

	return &Run{Text: name, Hint: HintDefault}
}
