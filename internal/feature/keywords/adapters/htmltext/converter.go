// Package htmltext はHTMLマークアップから表示テキストを取り出します。
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"keyword_backend/internal/feature/keywords/usecase"
)

// hiddenElements は表示テキストに含めない要素です。
const hiddenElements = "script, style, noscript, template, iframe, svg, head"

// blockElements はテキストの区切りとして扱うブロック要素です。
const blockElements = "p, div, br, li, h1, h2, h3, h4, h5, h6, tr, td, th, section, article, header, footer, blockquote, pre"

// Converter はgoqueryでHTMLを解析し、表示されるテキストを返します。
type Converter struct{}

// ConverterがHTMLConverterを実装していることをコンパイル時に検証します。
var _ usecase.HTMLConverter = (*Converter)(nil)

// NewConverter はConverterの新しいインスタンスを生成します。
func NewConverter() *Converter {
	return &Converter{}
}

// ToText はスクリプトやスタイルを除いた本文テキストを、空白を詰めて返します。
func (c *Converter) ToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find(hiddenElements).Remove()
	// 隣接するブロックの単語が連結されないよう区切りを入れる
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Find("body").Text()), " "), nil
}
