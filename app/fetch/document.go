package fetch

import (
	"bytes"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	readability "codeberg.org/readeck/go-readability"
	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Document wraps a parsed job page. Text views are computed lazily and
// cached since several gates scan the same content.
type Document struct {
	doc      *goquery.Document
	raw      []byte
	pageURL  string
	text     string
	mainText string
	jsonLD   []map[string]any
	ldParsed bool
}

func NewDocument(raw []byte, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc, raw: raw, pageURL: pageURL}, nil
}

// NewDocumentFromHTML is a test helper wrapper around NewDocument.
func NewDocumentFromHTML(html, pageURL string) (*Document, error) {
	return NewDocument([]byte(html), pageURL)
}

func (d *Document) URL() string { return d.pageURL }

func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Title returns the trimmed <title> text.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Meta returns the content attribute of the first meta tag whose property
// or name attribute matches key.
func (d *Document) Meta(key string) string {
	var content string
	d.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		prop, _ := s.Attr("property")
		name, _ := s.Attr("name")
		if strings.EqualFold(prop, key) || strings.EqualFold(name, key) {
			content, _ = s.Attr("content")
			return false
		}
		return true
	})
	return strings.TrimSpace(content)
}

// Text returns the whole visible body text with whitespace collapsed.
func (d *Document) Text() string {
	if d.text == "" {
		body := d.doc.Find("body").Text()
		if body == "" {
			body = d.doc.Text()
		}
		d.text = strings.TrimSpace(whitespaceRe.ReplaceAllString(body, " "))
	}
	return d.text
}

// RawText returns the body text with line structure preserved. Line-based
// parsers (markdown tables) need this; everything else wants Text.
func (d *Document) RawText() string {
	body := d.doc.Find("body").Text()
	if body == "" {
		body = d.doc.Text()
	}
	return body
}

// MainText returns the readability-extracted main content text, falling
// back to the full body text when extraction finds nothing. Restriction and
// age scans prefer this view to avoid matching nav/footer boilerplate.
func (d *Document) MainText() string {
	if d.mainText != "" {
		return d.mainText
	}
	var base *url.URL
	if d.pageURL != "" {
		base, _ = url.Parse(d.pageURL)
	}
	article, err := readability.FromReader(bytes.NewReader(d.raw), base)
	if err == nil && article.TextContent != "" {
		d.mainText = strings.TrimSpace(whitespaceRe.ReplaceAllString(article.TextContent, " "))
	}
	if d.mainText == "" {
		d.mainText = d.Text()
	}
	return d.mainText
}

// JSONLD returns every top-level object parsed from ld+json script blocks.
// Arrays are flattened one level; malformed blocks are skipped.
func (d *Document) JSONLD() []map[string]any {
	if d.ldParsed {
		return d.jsonLD
	}
	d.ldParsed = true
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err == nil {
			d.jsonLD = append(d.jsonLD, obj)
			return
		}
		var arr []map[string]any
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			d.jsonLD = append(d.jsonLD, arr...)
		}
	})
	return d.jsonLD
}

// JobPosting returns the first JSON-LD object typed JobPosting, if any.
func (d *Document) JobPosting() map[string]any {
	for _, obj := range d.JSONLD() {
		if t, _ := obj["@type"].(string); strings.EqualFold(t, "JobPosting") {
			return obj
		}
	}
	return nil
}
