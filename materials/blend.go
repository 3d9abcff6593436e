package materials

// BlendFactor is a source or destination blend weight.
type BlendFactor int

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
)

// BlendEquation combines the weighted source and destination.
type BlendEquation int

const (
	EquationAdd BlendEquation = iota
	EquationSubtract
)

// BlendState is the fixed-function blend configuration applied with a material.
type BlendState struct {
	Enabled  bool
	Src      BlendFactor
	Dst      BlendFactor
	Equation BlendEquation
}

// DefaultBlend is additive and fully opaque, and disabled.
func DefaultBlend() BlendState {
	return BlendState{Src: FactorOne, Dst: FactorZero, Equation: EquationAdd}
}

// ParseBlendFactor maps a description token to a factor.
// Unknown tokens give FactorOne.
func ParseBlendFactor(token string) BlendFactor {
	switch token {
	case "GL_ZERO":
		return FactorZero
	case "GL_ONE":
		return FactorOne
	case "GL_SRC_ALPHA":
		return FactorSrcAlpha
	case "GL_ONE_MINUS_SRC_ALPHA":
		return FactorOneMinusSrcAlpha
	}
	return FactorOne
}

// ParseBlendEquation maps a description token to an equation.
// Unknown tokens give EquationAdd.
func ParseBlendEquation(token string) BlendEquation {
	if token == "GL_FUNC_SUBTRACT" {
		return EquationSubtract
	}
	return EquationAdd
}
