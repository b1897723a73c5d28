package html

import (
	"github.com/lukehoban/contentcore/dom"
)

// Parser drives a Tokenizer and assembles its tokens into a dom.Node tree.
// It implements the parts of tree construction relevant to a content
// pipeline that never runs scripts: an open-elements stack, the void and
// raw-text/RCDATA/script-data content-model switches, and tolerant error
// recovery (an end tag with no matching open element is simply dropped).
type Parser struct {
	tokenizer *Tokenizer
	doc       *dom.Node
	stack     []*dom.Node // stack of open elements, root doc at index 0
}

// NewParser creates a Parser over input.
func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizerFromString(input),
		doc:       dom.NewDocument(),
	}
}

// Parse consumes the entire input and returns the resulting document node.
func (p *Parser) Parse() *dom.Node {
	p.stack = append(p.stack, p.doc)

	for {
		token := p.tokenizer.NextToken()
		if token.Type == EndOfFileToken {
			break
		}
		p.processToken(token)
	}

	return p.doc
}

func (p *Parser) processToken(token Token) {
	switch token.Type {
	case StartTagToken:
		p.handleStartTag(token)
	case EndTagToken:
		p.handleEndTag(token)
	case CharacterToken:
		p.handleText(token)
	case CommentToken:
		p.currentNode().AppendChild(dom.NewComment(token.Data))
	case DoctypeToken:
		// DOCTYPE has no tree representation in this pipeline beyond
		// having been observed; quirks-mode policy belongs to a layer
		// above the parser.
	}
}

func (p *Parser) handleStartTag(token Token) {
	elem := dom.NewElement(token.Name)
	for _, attr := range token.Attributes {
		if !elem.HasAttribute(attr.Name) {
			elem.SetAttribute(attr.Name, attr.Value)
		}
	}

	p.currentNode().AppendChild(elem)

	switch {
	case RawTextElements[token.Name]:
		p.tokenizer.SetState(RawtextState)
		p.stack = append(p.stack, elem)
	case RCDATAElements[token.Name]:
		p.tokenizer.SetState(RcdataState)
		p.stack = append(p.stack, elem)
	case token.Name == "script":
		p.tokenizer.SetState(ScriptDataState)
		p.stack = append(p.stack, elem)
	case PlaintextElements[token.Name]:
		p.tokenizer.SetState(PlaintextState)
		p.stack = append(p.stack, elem)
	case token.SelfClosing || VoidElements[token.Name]:
		// no stack entry: nothing can become its child
	default:
		p.stack = append(p.stack, elem)
	}
}

func (p *Parser) handleEndTag(token Token) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].Type == dom.ElementNode && p.stack[i].Data == token.Name {
			p.stack = p.stack[:i]
			return
		}
	}
	// No matching open element: per the tolerant-parser posture, drop
	// the stray end tag rather than treat it as a contract violation.
}

// handleText appends character data to the current node, merging with an
// immediately preceding text node rather than creating a new one per
// token - the tokenizer emits one CharacterToken per run between markup
// and entities, so naive per-token nodes would fragment "a&amp;b" into
// three text nodes instead of one.
func (p *Parser) handleText(token Token) {
	if len(p.stack) == 1 && isAllWhitespace(token.Data) {
		return
	}
	current := p.currentNode()
	if n := len(current.Children); n > 0 && current.Children[n-1].Type == dom.TextNode {
		current.Children[n-1].Data += token.Data
		return
	}
	current.AppendChild(dom.NewText(token.Data))
}

func isAllWhitespace(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\f' {
			return false
		}
	}
	return true
}

func (p *Parser) currentNode() *dom.Node {
	return p.stack[len(p.stack)-1]
}

// Parse is a convenience function that parses input into a document node.
func Parse(input string) *dom.Node {
	return NewParser(input).Parse()
}
