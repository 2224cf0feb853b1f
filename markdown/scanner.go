// Package markdown finds Mermaid code blocks inside markdown documents.
package markdown

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNoBlocks is returned when a document holds no mermaid block.
	ErrNoBlocks = errors.New("no mermaid code blocks found")
	// ErrBlockIndex is returned when a requested block does not exist.
	ErrBlockIndex = errors.New("block index out of range")
)

const fence = "```"

// Block is one fenced mermaid block.
type Block struct {
	Content   string // fence indentation removed
	StartLine int    // 1-based line of the opening fence
	EndLine   int    // 1-based line of the closing fence
	Indent    string // indentation before the opening fence
}

// IsMarkdownFile reports whether path has a markdown extension.
func IsMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// FindBlocks returns the mermaid blocks of content in document order.
// A block without a closing fence is ignored.
func FindBlocks(content string) []Block {
	var blocks []Block
	var current *Block
	var body []string

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, " \t")

		if current == nil {
			if !strings.HasPrefix(trimmed, fence) {
				continue
			}
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
			if strings.EqualFold(lang, "mermaid") {
				current = &Block{StartLine: i + 1, Indent: line[:len(line)-len(trimmed)]}
				body = body[:0]
			}
			continue
		}

		if strings.HasPrefix(trimmed, fence) {
			current.EndLine = i + 1
			current.Content = strings.Join(body, "\n")
			blocks = append(blocks, *current)
			current = nil
			continue
		}
		body = append(body, strings.TrimPrefix(line, current.Indent))
	}

	return blocks
}

// Select returns block n (1-based) or every block when n is 0.
func Select(blocks []Block, n int) ([]Block, error) {
	if len(blocks) == 0 {
		return nil, ErrNoBlocks
	}
	if n == 0 {
		return blocks, nil
	}
	if n < 0 || n > len(blocks) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBlockIndex, n, len(blocks))
	}
	return blocks[n-1 : n], nil
}
