package curve_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/imgfx/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveString(t *testing.T) {
	assert.Equal(t, "linear", curve.Linear.String())
	assert.Equal(t, "ease-in-out", curve.Keyword("Ease-In-Out").String())
	assert.Equal(t, "cubic-bezier(0.8, 0, 0.2, 1)", curve.Bezier(0.8, 0, 0.2, 1).String())
	assert.Equal(t, "cubic-bezier(0.4, -0.5, 0.6, 1.5)", curve.Bezier(0.4, -0.5, 0.6, 1.5).String())
	var zero curve.Curve
	assert.Equal(t, "ease", zero.String())
}

func TestCurveMatch(t *testing.T) {
	c := curve.Bezier(0.4, 0, 0.2, 1)
	var pts curve.Points
	var name string
	switch m := c.Match(); m {
	case m.Keyword(&name):
		t.Errorf("expected Bézier curve not to match a keyword, matched %q", name)
	case m.Bezier(&pts):
		t.Logf("control points = %v", pts)
	default:
		t.Errorf("expected Bézier curve to match, didn't: %#v", c)
	}
	assert.Equal(t, curve.Points{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}, pts)

	switch m := curve.EaseOut.Match(); m {
	case m.Bezier(nil):
		t.Error("expected keyword curve not to match a Bézier curve")
	case m.Keyword(&name):
	}
	assert.Equal(t, "ease-out", name)
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imgfx.css")
	defer teardown()
	//
	for in, out := range map[string]curve.Curve{
		"linear":                             curve.Linear,
		"  EASE-IN ":                         curve.EaseIn,
		"step-end":                           curve.Keyword("step-end"),
		"cubic-bezier(0.8, 0, 0.2, 1)":       curve.Bezier(0.8, 0, 0.2, 1),
		"cubic-bezier(.25,.1,.25,1)":         curve.Bezier(0.25, 0.1, 0.25, 1),
		"cubic-bezier(0.4, -0.5, 0.6, 1.5)":  curve.Bezier(0.4, -0.5, 0.6, 1.5),
		"cubic-bezier( 0 , 0 , 1 , 1 )":      curve.Bezier(0, 0, 1, 1),
		"cubic-bezier(0, 0, 1, 1) /* x */":   curve.Bezier(0, 0, 1, 1),
	} {
		c, err := curve.Parse(in)
		if assert.NoError(t, err, "parsing %q", in) {
			assert.Equal(t, out, c, "parsing %q", in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"bouncy",
		"linear ease",
		"steps(4, end)",
		"cubic-bezier(0.1, 0.2, 0.3)",
		"cubic-bezier(0.1, 0.2, 0.3, 0.4, 0.5)",
		"cubic-bezier(1.5, 0, 0.2, 1)",
		"cubic-bezier(0.5, 0, -0.2, 1)",
		"cubic-bezier(0.5, 0, 0.2, 1",
		"cubic-bezier(0.5,, 0.2, 1)",
		"cubic-bezier(0.5, 0, 0.2, 1) x",
		"cubic-bezier(0.5px, 0, 0.2, 1)",
	} {
		_, err := curve.Parse(in)
		require.Error(t, err, "expected %q to fail", in)
		assert.True(t, errors.Is(err, curve.ErrSyntax), "error for %q should wrap ErrSyntax", in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []curve.Curve{curve.Ease, curve.Bezier(0.3, 0.7, 0.1, 1.25)} {
		back, err := curve.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}
