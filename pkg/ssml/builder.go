// Package ssml assembles speech markup documents for the per-speaker
// exports. The builder guarantees matched tags and escaped text.
package ssml

import (
	"fmt"

	"github.com/beevik/etree"
)

// Builder writes one markup document. Elements open and close in stack
// order; misuse like closing the root panics because it is always a
// programming error, never an input error.
type Builder struct {
	doc   *etree.Document
	stack []*etree.Element
}

// NewBuilder starts a document with the given root element, normally
// "speak".
func NewBuilder(root string) *Builder {
	doc := etree.NewDocument()
	el := doc.CreateElement(root)
	return &Builder{doc: doc, stack: []*etree.Element{el}}
}

func (b *Builder) top() *etree.Element {
	return b.stack[len(b.stack)-1]
}

// Open starts a child element and makes it current. Attributes are given as
// alternating key/value pairs.
func (b *Builder) Open(name string, attrs ...string) *Builder {
	el := b.top().CreateElement(name)
	applyAttrs(el, attrs)
	b.stack = append(b.stack, el)
	return b
}

// Close ends the most recently opened element.
func (b *Builder) Close() *Builder {
	if len(b.stack) == 1 {
		panic("ssml: Close called with no open element")
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// Leaf writes an element wrapping a single text node, like
// <prosody rate="medium">line</prosody>.
func (b *Builder) Leaf(name, text string, attrs ...string) *Builder {
	el := b.top().CreateElement(name)
	applyAttrs(el, attrs)
	el.CreateText(text)
	return b
}

// Empty writes a childless element in place, like <break time="300ms"/>.
func (b *Builder) Empty(name string, attrs ...string) *Builder {
	el := b.top().CreateElement(name)
	applyAttrs(el, attrs)
	return b
}

// String renders the document indented by two spaces. Every opened element
// must have been closed.
func (b *Builder) String() (string, error) {
	if open := len(b.stack) - 1; open > 0 {
		return "", fmt.Errorf("ssml: %d element(s) left open", open)
	}
	b.doc.Indent(2)
	return b.doc.WriteToString()
}

func applyAttrs(el *etree.Element, attrs []string) {
	if len(attrs)%2 != 0 {
		panic("ssml: attribute key without a value")
	}
	for i := 0; i < len(attrs); i += 2 {
		el.CreateAttr(attrs[i], attrs[i+1])
	}
}
