package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlendFactor(t *testing.T) {
	assert.Equal(t, FactorZero, ParseBlendFactor("GL_ZERO"))
	assert.Equal(t, FactorOne, ParseBlendFactor("GL_ONE"))
	assert.Equal(t, FactorSrcAlpha, ParseBlendFactor("GL_SRC_ALPHA"))
	assert.Equal(t, FactorOneMinusSrcAlpha, ParseBlendFactor("GL_ONE_MINUS_SRC_ALPHA"))
	assert.Equal(t, FactorOne, ParseBlendFactor("BOGUS"))
	assert.Equal(t, FactorOne, ParseBlendFactor("gl_zero"))
}

func TestParseBlendEquation(t *testing.T) {
	assert.Equal(t, EquationAdd, ParseBlendEquation("GL_FUNC_ADD"))
	assert.Equal(t, EquationSubtract, ParseBlendEquation("GL_FUNC_SUBTRACT"))
	assert.Equal(t, EquationAdd, ParseBlendEquation("GL_MAX"))
}

func TestDefaultBlend(t *testing.T) {
	b := DefaultBlend()
	assert.False(t, b.Enabled)
	assert.Equal(t, FactorOne, b.Src)
	assert.Equal(t, FactorZero, b.Dst)
	assert.Equal(t, EquationAdd, b.Equation)
}
