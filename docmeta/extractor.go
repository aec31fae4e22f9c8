// Package docmeta extracts document-level metadata from markdown text:
// YAML frontmatter properties, the heading outline, the set of fenced code
// languages, and a derived title. It complements the chunker: callers attach
// the extracted context to chunk sequences for retrieval.
package docmeta

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const frontMatterSeparator = "---"

// Heading is one entry of the document outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// Info holds the metadata extracted from one document.
type Info struct {
	Title         string            `json:"title"`
	FrontMatter   map[string]string `json:"front_matter,omitempty"`
	Headings      []Heading         `json:"headings,omitempty"`
	CodeLanguages []string          `json:"code_languages,omitempty"`
}

// Extractor parses markdown with goldmark and derives document metadata.
// It is stateless across calls and safe for concurrent use.
type Extractor struct {
	logger   *slog.Logger
	markdown goldmark.Markdown
}

// NewExtractor creates an Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		logger: logger.With("component", "docmeta"),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Extract derives metadata from content. The path is only used as a title
// fallback when neither frontmatter nor a level-1 heading provides one.
func (e *Extractor) Extract(content, path string) Info {
	info := Info{FrontMatter: make(map[string]string)}

	lines := strings.Split(content, "\n")
	frontMatterEnd := e.parseFrontMatter(lines, &info)

	contentToParse := content
	lineOffset := 0
	if frontMatterEnd > 0 {
		lineOffset = frontMatterEnd + 1
		if lineOffset < len(lines) {
			contentToParse = strings.Join(lines[lineOffset:], "\n")
		} else {
			contentToParse = ""
		}
	}

	if contentToParse != "" {
		source := []byte(contentToParse)
		doc := e.markdown.Parser().Parse(gtext.NewReader(source))
		e.collectOutline(doc, source, lineOffset, &info)
	}

	info.Title = e.deriveTitle(info, path)
	return info
}

// parseFrontMatter fills Info.FrontMatter from a leading YAML block and
// returns the index of the closing separator line, or -1 when absent.
func (e *Extractor) parseFrontMatter(lines []string, info *Info) int {
	if len(lines) < 3 || lines[0] != frontMatterSeparator {
		return -1
	}
	endIdx := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == frontMatterSeparator {
			endIdx = i
			break
		}
	}
	if endIdx <= 1 {
		e.logger.Debug("frontmatter has no closing separator, ignoring")
		return -1
	}

	raw := strings.Join(lines[1:endIdx], "\n")
	var data map[string]any
	if err := yaml.Unmarshal([]byte(raw), &data); err != nil {
		e.logger.Debug("frontmatter is not valid YAML, falling back to key-value parsing", "error", err)
		e.parseSimpleFrontMatter(lines[1:endIdx], info)
		return endIdx
	}
	for key, value := range data {
		info.FrontMatter[key] = fmt.Sprintf("%v", value)
	}
	return endIdx
}

// parseSimpleFrontMatter handles malformed YAML as plain "key: value" lines.
func (e *Extractor) parseSimpleFrontMatter(lines []string, info *Info) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key != "" {
			info.FrontMatter[key] = value
		}
	}
}

// collectOutline walks the goldmark AST gathering headings and fenced code
// languages.
func (e *Extractor) collectOutline(doc ast.Node, source []byte, lineOffset int, info *Info) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			heading := Heading{
				Level: node.Level,
				Text:  nodeText(node, source),
			}
			if segments := node.Lines(); segments.Len() > 0 {
				heading.Line = bytes.Count(source[:segments.At(0).Start], []byte("\n")) + lineOffset + 1
			}
			info.Headings = append(info.Headings, heading)

		case *ast.FencedCodeBlock:
			if node.Info == nil {
				break
			}
			lang := strings.TrimSpace(string(node.Info.Text(source))) //nolint:staticcheck // SA1019
			if lang != "" && !slices.Contains(info.CodeLanguages, lang) {
				info.CodeLanguages = append(info.CodeLanguages, lang)
			}
		}
		return ast.WalkContinue, nil
	})
}

// nodeText extracts the plain text of an AST node.
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindText {
			buf.Write(n.(*ast.Text).Segment.Value(source)) //nolint:errcheck // kind checked
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// deriveTitle picks the title from frontmatter, the first level-1 heading,
// or the filename.
func (e *Extractor) deriveTitle(info Info, path string) string {
	if title := info.FrontMatter["title"]; title != "" {
		return title
	}
	for _, h := range info.Headings {
		if h.Level == 1 && h.Text != "" {
			return h.Text
		}
	}
	return titleFromFilename(path)
}

func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		return "Document"
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return cases.Title(language.English).String(name)
}
