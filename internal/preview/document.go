// Package preview renders learner CSS into an isolated document and
// publishes it to a sandboxed surface.
package preview

import (
	"regexp"
	"strings"
)

// baseStyles is the reset plus the demo element library. User CSS is
// appended after it so it can override any of these rules.
const baseStyles = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}
body {
  display: flex;
  align-items: center;
  justify-content: center;
  min-height: 100vh;
  background: #111827;
  overflow: hidden;
}
.box {
  width: 80px;
  height: 80px;
  background: linear-gradient(135deg, #06b6d4, #0891b2);
  border-radius: 12px;
  cursor: pointer;
}
.card {
  width: 200px;
  padding: 24px;
  background: #1e293b;
  border-radius: 12px;
  border: 1px solid #334155;
  cursor: pointer;
}
.card h3 {
  color: #f0f6fc;
  font-size: 16px;
  margin-bottom: 8px;
}
.card p {
  color: #94a3b8;
  font-size: 14px;
}
.button {
  padding: 12px 24px;
  background: #06b6d4;
  color: #0a0f1a;
  border: none;
  border-radius: 8px;
  font-weight: 600;
  cursor: pointer;
}
.circle {
  width: 60px;
  height: 60px;
  background: #06b6d4;
  border-radius: 50%;
}
.loader {
  display: flex;
  gap: 8px;
}
.loader .dot {
  width: 12px;
  height: 12px;
  background: #06b6d4;
  border-radius: 50%;
}
.scroller {
  width: 100%;
  height: 100vh;
  overflow-y: scroll;
  display: flex;
  flex-direction: column;
  align-items: center;
}
.scroller .spacer {
  flex: none;
  height: 120vh;
}
.scroller .layer {
  flex: none;
  margin: 40px 0;
}
.scroller .layer.back {
  width: 160px;
  height: 160px;
  background: #1e293b;
  border-radius: 12px;
}
`

// styleClose matches a closing style tag in any letter case.
var styleClose = regexp.MustCompile(`(?i)</style`)

// Document is the pair the preview surface renders: the lesson's demo
// markup and the learner's committed CSS.
type Document struct {
	HTML string
	CSS  string
}

// String returns the self-contained page for the document.
func (d Document) String() string {
	return BuildDocument(d.CSS, d.HTML)
}

// BuildDocument assembles a standalone HTML page: reset rules and the demo
// library, then css, then html as the body. css is inserted verbatim except
// that it cannot close the style element.
func BuildDocument(css, html string) string {
	var b strings.Builder
	b.Grow(len(baseStyles) + len(css) + len(html) + 128)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(baseStyles)
	b.WriteString(neutralizeCSS(css))
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(html)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// neutralizeCSS escapes "</style" so the text stays inside the style
// element. In CSS "\/" is just "/", so the stylesheet reads the same.
func neutralizeCSS(css string) string {
	return styleClose.ReplaceAllStringFunc(css, func(m string) string {
		return m[:1] + `\` + m[1:]
	})
}
