package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/imgfx/dom/style/cssom"
	"github.com/npillmayer/imgfx/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const sheetText = `
img.lightbox { opacity: 0 !important; }

@keyframes fade-in {
  from { opacity: 0; }
  to { opacity: 1; }
}
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imgfx.css")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(sheetText)
	require.NoError(t, err)
	require.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	//
	assert.Equal(t, "", rules[0].Name())
	assert.Equal(t, "img.lightbox", rules[0].Selector())
	assert.Equal(t, []string{"opacity"}, rules[0].Properties())
	assert.True(t, rules[0].IsImportant("opacity"))
	assert.Empty(t, rules[0].Rules())
	//
	assert.Equal(t, cssom.KeyframesAtRule, rules[1].Name())
	assert.Equal(t, "fade-in", rules[1].Selector())
	frames := rules[1].Rules()
	require.Len(t, frames, 2)
	assert.Equal(t, "from", frames[0].Selector())
	assert.Equal(t, "1", frames[1].Value("opacity").String())
}

func TestKeyframesNames(t *testing.T) {
	sheet, err := douceuradapter.Parse(sheetText)
	require.NoError(t, err)
	other, err := douceuradapter.Parse("@keyframes zoom-scale { from { opacity: 0; } }")
	require.NoError(t, err)
	sheet.AppendRules(other)
	assert.Equal(t, []string{"fade-in", "zoom-scale"}, cssom.KeyframesNames(sheet))
	assert.Nil(t, cssom.KeyframesNames(nil))
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style>@keyframes a-scale { to { opacity: 1; } }</style>
</head><body><style>p { color: red; }</style><p>x</p></body></html>`))
	require.NoError(t, err)
	sheets := douceuradapter.ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Equal(t, []string{"a-scale"}, cssom.KeyframesNames(sheets[0]))
	assert.Empty(t, cssom.KeyframesNames(sheets[1]))
}
