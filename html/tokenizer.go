// Package html provides HTML tokenization per the WHATWG tokenization
// state machine (https://html.spec.whatwg.org/multipage/parsing.html#tokenization),
// and a tree-construction pass that hands tokens to the dom package.
//
// The tokenizer is a deterministic pull iterator: NextToken advances the
// state machine until it has a complete token to emit, buffering
// multi-character emissions (a decoded entity, a failed raw-text close, a
// CDATA run) one rune at a time in a pending queue so every emission from
// NextToken is exactly one Token.
package html

import (
	"strconv"
	"strings"

	"github.com/lukehoban/contentcore/entity"
	"github.com/lukehoban/contentcore/scanner"
)

// State is a tokenizer state per the WHATWG state list. Callers may only
// set the subset the tokenizer does not infer on its own
// (RAWTEXT/RCDATA/ScriptData/PLAINTEXT) via SetState; the tokenizer drives
// every other transition itself.
type State int

const (
	DataState State = iota
	TagOpenState
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	RawtextState
	RawtextLessThanSignState
	RawtextEndTagOpenState
	RawtextEndTagNameState
	RcdataState
	RcdataLessThanSignState
	RcdataEndTagOpenState
	RcdataEndTagNameState
	ScriptDataState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	PlaintextState
	CDATASectionState
)

// TokenType classifies an emitted Token.
type TokenType int

const (
	StartTagToken TokenType = iota
	EndTagToken
	CharacterToken
	CommentToken
	DoctypeToken
	EndOfFileToken
)

// Attribute is one name/value pair on a tag. The tokenizer never
// deduplicates - first-wins is a DOM-builder policy, not a tokenizer one,
// so duplicate names on one tag are preserved here in insertion order.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged union the tokenizer emits.
type Token struct {
	Type        TokenType
	Name        string // tag name (lowercased) or doctype name (lowercased)
	Attributes  []Attribute
	SelfClosing bool
	Data        string // character/comment data

	// Doctype-only fields.
	ForceQuirks             bool
	PublicIdentifierPresent bool
	SystemIdentifierPresent bool
}

// Tokenizer is a stateful pull iterator over a UTF-8 byte slice.
type Tokenizer struct {
	s     *scanner.Scanner
	state State

	// lastStartTagName drives the "appropriate end tag" rule: inside
	// RAWTEXT/RCDATA/ScriptData, an end tag only closes the element if
	// its name matches the most recent start tag emitted.
	lastStartTagName string

	pending []Token // queue of already-built tokens not yet returned

	tagName    strings.Builder
	attrName   strings.Builder
	attrValue  strings.Builder
	attrs      []Attribute
	dataBuf    strings.Builder
	commentBuf strings.Builder
	doctypeBuf strings.Builder

	selfClosing bool
	endTag      bool // the tag being built was opened with "</"

	atEOF bool
}

// NewTokenizer creates a Tokenizer over input, starting in the Data state.
func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{s: scanner.New(input), state: DataState}
}

// NewTokenizerFromString is a convenience constructor over a string.
func NewTokenizerFromString(input string) *Tokenizer {
	return NewTokenizer([]byte(input))
}

// SetState switches the tokenizer's content model. External consumers call
// this after emitting specific start tags (script, style, textarea, title,
// iframe, noframes, xmp, plaintext) - the tokenizer itself carries no
// knowledge of that policy.
func (t *Tokenizer) SetState(s State) {
	t.state = s
}

// State returns the tokenizer's current state.
func (t *Tokenizer) State() State {
	return t.state
}

// NextToken returns the next token. Once EndOfFileToken has been returned,
// further calls keep returning EndOfFileToken.
func (t *Tokenizer) NextToken() Token {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok
	}
	if t.atEOF {
		return Token{Type: EndOfFileToken}
	}
	return t.run()
}

func (t *Tokenizer) emitPendingChar(r rune) {
	t.pending = append(t.pending, Token{Type: CharacterToken, Data: string(r)})
}

func (t *Tokenizer) emitPendingString(s string) {
	for _, r := range s {
		t.emitPendingChar(r)
	}
}

// run drives the state machine until it has produced at least one token
// (directly or via the pending queue), then returns the first one.
func (t *Tokenizer) run() Token {
	for {
		switch t.state {
		case DataState:
			if tok, ok := t.stepData(); ok {
				return tok
			}
		case RawtextState:
			if tok, ok := t.stepRawtext(); ok {
				return tok
			}
		case RcdataState:
			if tok, ok := t.stepRcdata(); ok {
				return tok
			}
		case ScriptDataState:
			if tok, ok := t.stepScriptData(); ok {
				return tok
			}
		case PlaintextState:
			if tok, ok := t.stepPlaintext(); ok {
				return tok
			}
		case TagOpenState:
			t.stepTagOpen()
		case EndTagOpenState:
			t.stepEndTagOpen()
		case TagNameState:
			if tok, ok := t.stepTagName(); ok {
				return tok
			}
		case BeforeAttributeNameState:
			t.stepBeforeAttributeName()
		case AttributeNameState:
			t.stepAttributeName()
		case AfterAttributeNameState:
			t.stepAfterAttributeName()
		case BeforeAttributeValueState:
			t.stepBeforeAttributeValue()
		case AttributeValueDoubleQuotedState:
			t.stepAttributeValueQuoted('"')
		case AttributeValueSingleQuotedState:
			t.stepAttributeValueQuoted('\'')
		case AttributeValueUnquotedState:
			if tok, ok := t.stepAttributeValueUnquoted(); ok {
				return tok
			}
		case AfterAttributeValueQuotedState:
			t.stepAfterAttributeValueQuoted()
		case SelfClosingStartTagState:
			if tok, ok := t.stepSelfClosingStartTag(); ok {
				return tok
			}
		case BogusCommentState:
			if tok, ok := t.stepBogusComment(); ok {
				return tok
			}
		case MarkupDeclarationOpenState:
			t.stepMarkupDeclarationOpen()
		case CommentStartState:
			t.stepCommentStart()
		case CommentStartDashState:
			t.stepCommentStartDash()
		case CommentState:
			t.stepComment()
		case CommentEndDashState:
			t.stepCommentEndDash()
		case CommentEndState:
			if tok, ok := t.stepCommentEnd(); ok {
				return tok
			}
		case CommentEndBangState:
			t.stepCommentEndBang()
		case DoctypeState:
			t.stepDoctype()
		case BeforeDoctypeNameState:
			t.stepBeforeDoctypeName()
		case DoctypeNameState:
			if tok, ok := t.stepDoctypeName(); ok {
				return tok
			}
		case AfterDoctypeNameState:
			if tok, ok := t.stepAfterDoctypeName(); ok {
				return tok
			}
		case RawtextLessThanSignState:
			t.stepRawtextLessThanSign()
		case RawtextEndTagOpenState:
			t.stepRawtextEndTagOpen()
		case RawtextEndTagNameState:
			if tok, ok := t.stepRawtextEndTagName(); ok {
				return tok
			}
		case RcdataLessThanSignState:
			t.stepRcdataLessThanSign()
		case RcdataEndTagOpenState:
			t.stepRcdataEndTagOpen()
		case RcdataEndTagNameState:
			if tok, ok := t.stepRcdataEndTagName(); ok {
				return tok
			}
		case ScriptDataLessThanSignState:
			t.stepScriptDataLessThanSign()
		case ScriptDataEndTagOpenState:
			t.stepScriptDataEndTagOpen()
		case ScriptDataEndTagNameState:
			if tok, ok := t.stepScriptDataEndTagName(); ok {
				return tok
			}
		case CDATASectionState:
			if tok, ok := t.stepCDATASection(); ok {
				return tok
			}
		default:
			t.state = DataState
		}
		if len(t.pending) > 0 {
			tok := t.pending[0]
			t.pending = t.pending[1:]
			return tok
		}
	}
}

// --- Data state family --------------------------------------------------

func (t *Tokenizer) stepData() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	switch b {
	case '&':
		t.consumeCharacterReference()
		return Token{}, false
	case '<':
		t.state = TagOpenState
		return Token{}, false
	case 0:
		return Token{Type: CharacterToken, Data: "�"}, true
	default:
		return t.consumeCharacterRun(b)
	}
}

// consumeCharacterRun greedily consumes a run of "plain" bytes starting
// with first so the common case (long text nodes) does not allocate one
// Token per byte.
func (t *Tokenizer) consumeCharacterRun(first byte) (Token, bool) {
	t.dataBuf.Reset()
	t.dataBuf.WriteByte(first)
	for {
		b, ok := t.s.Peek(0)
		if !ok || b == '<' || b == '&' || b == 0 {
			break
		}
		t.s.Consume()
		t.dataBuf.WriteByte(b)
	}
	return Token{Type: CharacterToken, Data: t.dataBuf.String()}, true
}

func (t *Tokenizer) stepPlaintext() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	if b == 0 {
		return Token{Type: CharacterToken, Data: "�"}, true
	}
	return t.consumeCharacterRunNoSpecial(b)
}

func (t *Tokenizer) consumeCharacterRunNoSpecial(first byte) (Token, bool) {
	t.dataBuf.Reset()
	t.dataBuf.WriteByte(first)
	for {
		b, ok := t.s.Peek(0)
		if !ok || b == 0 {
			break
		}
		t.s.Consume()
		t.dataBuf.WriteByte(b)
	}
	return Token{Type: CharacterToken, Data: t.dataBuf.String()}, true
}

// --- RAWTEXT / RCDATA / script data family ------------------------------

func (t *Tokenizer) stepRawtext() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	switch b {
	case '<':
		t.state = RawtextLessThanSignState
		return Token{}, false
	case 0:
		return Token{Type: CharacterToken, Data: "�"}, true
	default:
		return t.consumeCharacterRunRawtextLike(b)
	}
}

func (t *Tokenizer) consumeCharacterRunRawtextLike(first byte) (Token, bool) {
	t.dataBuf.Reset()
	t.dataBuf.WriteByte(first)
	for {
		b, ok := t.s.Peek(0)
		if !ok || b == '<' || b == 0 {
			break
		}
		t.s.Consume()
		t.dataBuf.WriteByte(b)
	}
	return Token{Type: CharacterToken, Data: t.dataBuf.String()}, true
}

func (t *Tokenizer) stepRcdata() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	switch b {
	case '<':
		t.state = RcdataLessThanSignState
		return Token{}, false
	case '&':
		t.consumeCharacterReference()
		return Token{}, false
	case 0:
		return Token{Type: CharacterToken, Data: "�"}, true
	default:
		return t.consumeCharacterRunRawtextLike(b)
	}
}

func (t *Tokenizer) stepScriptData() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	switch b {
	case '<':
		t.state = ScriptDataLessThanSignState
		return Token{}, false
	case 0:
		return Token{Type: CharacterToken, Data: "�"}, true
	default:
		return t.consumeCharacterRunRawtextLike(b)
	}
}

// genericLessThanSign implements the shared "<" handling for
// RAWTEXT/RCDATA/ScriptData: look for "</" to begin a possible end tag.
func (t *Tokenizer) genericLessThanSign(endTagOpen State, dataState State) {
	if b, ok := t.s.Peek(0); ok && b == '/' {
		t.s.Consume()
		t.state = endTagOpen
		return
	}
	t.emitPendingChar('<')
	t.state = dataState
}

func (t *Tokenizer) stepRawtextLessThanSign() {
	t.genericLessThanSign(RawtextEndTagOpenState, RawtextState)
}
func (t *Tokenizer) stepRcdataLessThanSign() {
	t.genericLessThanSign(RcdataEndTagOpenState, RcdataState)
}
func (t *Tokenizer) stepScriptDataLessThanSign() {
	t.genericLessThanSign(ScriptDataEndTagOpenState, ScriptDataState)
}

func (t *Tokenizer) genericEndTagOpen(nameState State, dataState State) {
	if b, ok := t.s.Peek(0); ok && isASCIIAlpha(b) {
		t.tagName.Reset()
		t.attrs = t.attrs[:0]
		t.selfClosing = false
		t.endTag = true
		t.state = nameState
		return
	}
	t.emitPendingString("</")
	t.state = dataState
}

func (t *Tokenizer) stepRawtextEndTagOpen() {
	t.genericEndTagOpen(RawtextEndTagNameState, RawtextState)
}
func (t *Tokenizer) stepRcdataEndTagOpen() {
	t.genericEndTagOpen(RcdataEndTagNameState, RcdataState)
}
func (t *Tokenizer) stepScriptDataEndTagOpen() {
	t.genericEndTagOpen(ScriptDataEndTagNameState, ScriptDataState)
}

// genericEndTagName implements the "appropriate end tag" rule: only if the
// accumulated name matches lastStartTagName and is followed by whitespace,
// '/' or '>' do we treat it as a real end tag; otherwise the "</" plus
// whatever was read is re-emitted as literal characters and we fall back
// into the raw-text-like state.
func (t *Tokenizer) genericEndTagName(dataState State) (Token, bool) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.emitPendingString("</" + t.tagName.String())
			t.state = dataState
			return Token{}, false
		}
		switch {
		case b == '\t' || b == '\n' || b == '\f' || b == ' ':
			if t.isAppropriateEndTag() {
				t.state = BeforeAttributeNameState
				return Token{}, false
			}
		case b == '/':
			if t.isAppropriateEndTag() {
				t.state = SelfClosingStartTagState
				return Token{}, false
			}
		case b == '>':
			if t.isAppropriateEndTag() {
				t.state = DataState
				return Token{Type: EndTagToken, Name: strings.ToLower(t.tagName.String())}, true
			}
		case isASCIIAlpha(b):
			t.tagName.WriteByte(toLowerASCII(b))
			continue
		}
		if !isASCIIAlpha(b) {
			t.emitPendingString("</" + t.tagName.String())
			t.s.Reconsume()
			t.state = dataState
			return Token{}, false
		}
	}
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.tagName.Len() > 0 && t.tagName.String() == t.lastStartTagName
}

func (t *Tokenizer) stepRawtextEndTagName() (Token, bool) {
	return t.genericEndTagName(RawtextState)
}
func (t *Tokenizer) stepRcdataEndTagName() (Token, bool) {
	return t.genericEndTagName(RcdataState)
}
func (t *Tokenizer) stepScriptDataEndTagName() (Token, bool) {
	return t.genericEndTagName(ScriptDataState)
}

// --- Tag open / names / attributes --------------------------------------

func (t *Tokenizer) stepTagOpen() {
	b, ok := t.s.Consume()
	if !ok {
		t.emitPendingChar('<')
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: EndOfFileToken})
		return
	}
	switch {
	case b == '!':
		t.state = MarkupDeclarationOpenState
	case b == '/':
		t.state = EndTagOpenState
	case isASCIIAlpha(b):
		t.tagName.Reset()
		t.attrs = t.attrs[:0]
		t.selfClosing = false
		t.endTag = false
		t.s.Reconsume()
		t.state = TagNameState
	case b == '?':
		t.commentBuf.Reset()
		t.s.Reconsume()
		t.state = BogusCommentState
	default:
		t.emitPendingChar('<')
		t.s.Reconsume()
		t.state = DataState
	}
}

func (t *Tokenizer) stepEndTagOpen() {
	b, ok := t.s.Consume()
	if !ok {
		t.emitPendingString("</")
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: EndOfFileToken})
		return
	}
	switch {
	case isASCIIAlpha(b):
		t.tagName.Reset()
		t.attrs = t.attrs[:0]
		t.selfClosing = false
		t.endTag = true
		t.s.Reconsume()
		t.state = TagNameState
	case b == '>':
		t.state = DataState
	default:
		t.commentBuf.Reset()
		t.s.Reconsume()
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stepTagName() (Token, bool) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.atEOF = true
			return Token{Type: EndOfFileToken}, true
		}
		switch {
		case b == '\t' || b == '\n' || b == '\f' || b == ' ':
			t.state = BeforeAttributeNameState
			return Token{}, false
		case b == '/':
			t.state = SelfClosingStartTagState
			return Token{}, false
		case b == '>':
			t.state = DataState
			return t.emitStartTag(), true
		case b == 0:
			t.tagName.WriteString("�")
		case b >= 'A' && b <= 'Z':
			t.tagName.WriteByte(b + ('a' - 'A'))
		default:
			t.tagName.WriteByte(b)
		}
	}
}

func (t *Tokenizer) emitStartTag() Token {
	name := strings.ToLower(t.tagName.String())
	if t.endTag {
		return Token{Type: EndTagToken, Name: name, Attributes: append([]Attribute(nil), t.attrs...)}
	}
	t.lastStartTagName = name
	return Token{Type: StartTagToken, Name: name, Attributes: append([]Attribute(nil), t.attrs...), SelfClosing: t.selfClosing}
}

func (t *Tokenizer) stepBeforeAttributeName() {
	b, ok := t.s.Consume()
	if !ok {
		t.s.Reconsume()
		t.state = AfterAttributeNameState
		return
	}
	switch {
	case b == '\t' || b == '\n' || b == '\f' || b == ' ':
		// stay
	case b == '/' || b == '>':
		t.s.Reconsume()
		t.state = AfterAttributeNameState
	default:
		t.attrName.Reset()
		t.attrValue.Reset()
		t.s.Reconsume()
		t.state = AttributeNameState
	}
}

func (t *Tokenizer) stepAttributeName() {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.s.Reconsume()
			t.finishAttributeName()
			t.state = AfterAttributeNameState
			return
		}
		switch {
		case b == '\t' || b == '\n' || b == '\f' || b == ' ' || b == '/' || b == '>':
			t.s.Reconsume()
			t.finishAttributeName()
			t.state = AfterAttributeNameState
			return
		case b == '=':
			t.finishAttributeName()
			t.state = BeforeAttributeValueState
			return
		case b >= 'A' && b <= 'Z':
			t.attrName.WriteByte(b + ('a' - 'A'))
		case b == 0:
			t.attrName.WriteString("�")
		default:
			t.attrName.WriteByte(b)
		}
	}
}

// finishAttributeName records the completed attribute name into attrs with
// an empty value, which AttributeValue states may later fill in. A name
// that duplicates an already-present attribute on this tag is still
// appended; the tree builder is responsible for first-wins dedup.
func (t *Tokenizer) finishAttributeName() {
	t.attrs = append(t.attrs, Attribute{Name: t.attrName.String()})
}

func (t *Tokenizer) stepAfterAttributeName() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: EndOfFileToken})
		return
	}
	switch {
	case b == '\t' || b == '\n' || b == '\f' || b == ' ':
		// stay
	case b == '/':
		t.state = SelfClosingStartTagState
	case b == '=':
		t.attrValue.Reset()
		t.state = BeforeAttributeValueState
	case b == '>':
		t.state = DataState
		t.pending = append(t.pending, t.emitStartTag())
	default:
		t.attrName.Reset()
		t.attrValue.Reset()
		t.s.Reconsume()
		t.state = AttributeNameState
	}
}

func (t *Tokenizer) stepBeforeAttributeValue() {
	b, ok := t.s.Consume()
	if !ok {
		t.s.Reconsume()
		t.state = AttributeValueUnquotedState
		return
	}
	switch {
	case b == '\t' || b == '\n' || b == '\f' || b == ' ':
		// stay
	case b == '"':
		t.state = AttributeValueDoubleQuotedState
	case b == '\'':
		t.state = AttributeValueSingleQuotedState
	case b == '>':
		t.commitCurrentAttributeValue("")
		t.state = DataState
		t.pending = append(t.pending, t.emitStartTag())
	default:
		t.s.Reconsume()
		t.state = AttributeValueUnquotedState
	}
}

func (t *Tokenizer) commitCurrentAttributeValue(v string) {
	if len(t.attrs) == 0 {
		return
	}
	t.attrs[len(t.attrs)-1].Value = v
}

func (t *Tokenizer) stepAttributeValueQuoted(quote byte) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.commitCurrentAttributeValue(t.attrValue.String())
			t.atEOF = true
			t.pending = append(t.pending, Token{Type: EndOfFileToken})
			return
		}
		switch {
		case b == quote:
			t.commitCurrentAttributeValue(t.attrValue.String())
			t.state = AfterAttributeValueQuotedState
			return
		case b == '&':
			t.consumeCharacterReferenceIntoBuilder(&t.attrValue)
		case b == 0:
			t.attrValue.WriteString("�")
		default:
			t.attrValue.WriteByte(b)
		}
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted() (Token, bool) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.commitCurrentAttributeValue(t.attrValue.String())
			t.atEOF = true
			return Token{Type: EndOfFileToken}, true
		}
		switch {
		case b == '\t' || b == '\n' || b == '\f' || b == ' ':
			t.commitCurrentAttributeValue(t.attrValue.String())
			t.state = BeforeAttributeNameState
			return Token{}, false
		case b == '&':
			t.consumeCharacterReferenceIntoBuilder(&t.attrValue)
		case b == '>':
			t.commitCurrentAttributeValue(t.attrValue.String())
			t.state = DataState
			return t.emitStartTag(), true
		case b == 0:
			t.attrValue.WriteString("�")
		default:
			t.attrValue.WriteByte(b)
		}
	}
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: EndOfFileToken})
		return
	}
	switch {
	case b == '\t' || b == '\n' || b == '\f' || b == ' ':
		t.state = BeforeAttributeNameState
	case b == '/':
		t.state = SelfClosingStartTagState
	case b == '>':
		t.state = DataState
		t.pending = append(t.pending, t.emitStartTag())
	default:
		t.s.Reconsume()
		t.state = BeforeAttributeNameState
	}
}

func (t *Tokenizer) stepSelfClosingStartTag() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	switch b {
	case '>':
		t.selfClosing = true
		t.state = DataState
		return t.emitStartTag(), true
	default:
		t.s.Reconsume()
		t.state = BeforeAttributeNameState
		return Token{}, false
	}
}

// --- Bogus comment / markup declaration ---------------------------------

func (t *Tokenizer) stepBogusComment() (Token, bool) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.atEOF = true
			return Token{Type: CommentToken, Data: t.commentBuf.String()}, true
		}
		switch b {
		case '>':
			t.state = DataState
			return Token{Type: CommentToken, Data: t.commentBuf.String()}, true
		case 0:
			t.commentBuf.WriteString("�")
		default:
			t.commentBuf.WriteByte(b)
		}
	}
}

func (t *Tokenizer) stepMarkupDeclarationOpen() {
	if t.s.HasPrefix("--") {
		t.s.Advance(2)
		t.commentBuf.Reset()
		t.state = CommentStartState
		return
	}
	if t.s.HasPrefixFold("DOCTYPE") {
		t.s.Advance(7)
		t.doctypeBuf.Reset()
		t.state = DoctypeState
		return
	}
	if t.s.HasPrefix("[CDATA[") {
		t.s.Advance(7)
		t.state = CDATASectionState
		return
	}
	t.commentBuf.Reset()
	t.state = BogusCommentState
}

// --- Comment states ------------------------------------------------------

func (t *Tokenizer) stepCommentStart() {
	b, ok := t.s.Consume()
	if !ok {
		t.s.Reconsume()
		t.state = CommentState
		return
	}
	switch b {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.state = DataState
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()})
	default:
		t.s.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCommentStartDash() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()}, Token{Type: EndOfFileToken})
		return
	}
	switch b {
	case '-':
		t.state = CommentEndState
	case '>':
		t.state = DataState
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()})
	default:
		t.commentBuf.WriteByte('-')
		t.s.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepComment() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()}, Token{Type: EndOfFileToken})
		return
	}
	switch b {
	case '-':
		t.state = CommentEndDashState
	case 0:
		t.commentBuf.WriteString("�")
	default:
		t.commentBuf.WriteByte(b)
	}
}

func (t *Tokenizer) stepCommentEndDash() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()}, Token{Type: EndOfFileToken})
		return
	}
	switch b {
	case '-':
		t.state = CommentEndState
	default:
		t.commentBuf.WriteByte('-')
		t.s.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCommentEnd() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: CommentToken, Data: t.commentBuf.String()}, true
	}
	switch b {
	case '>':
		t.state = DataState
		return Token{Type: CommentToken, Data: t.commentBuf.String()}, true
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.commentBuf.WriteByte('-')
	default:
		t.commentBuf.WriteString("--")
		t.s.Reconsume()
		t.state = CommentState
	}
	return Token{}, false
}

func (t *Tokenizer) stepCommentEndBang() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()}, Token{Type: EndOfFileToken})
		return
	}
	switch b {
	case '-':
		t.commentBuf.WriteString("--!")
		t.state = CommentEndDashState
	case '>':
		t.commentBuf.WriteString("--!")
		t.state = DataState
		t.pending = append(t.pending, Token{Type: CommentToken, Data: t.commentBuf.String()})
	default:
		t.commentBuf.WriteString("--!")
		t.s.Reconsume()
		t.state = CommentState
	}
}

// --- DOCTYPE states --------------------------------------------------

func (t *Tokenizer) stepDoctype() {
	t.state = BeforeDoctypeNameState
}

func (t *Tokenizer) stepBeforeDoctypeName() {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		t.pending = append(t.pending, Token{Type: DoctypeToken, ForceQuirks: true}, Token{Type: EndOfFileToken})
		return
	}
	switch {
	case b == '\t' || b == '\n' || b == '\f' || b == ' ':
		// stay
	case b == '>':
		t.state = DataState
		t.pending = append(t.pending, Token{Type: DoctypeToken, ForceQuirks: true})
	case b >= 'A' && b <= 'Z':
		t.doctypeBuf.Reset()
		t.doctypeBuf.WriteByte(b + ('a' - 'A'))
		t.state = DoctypeNameState
	case b == 0:
		t.doctypeBuf.Reset()
		t.doctypeBuf.WriteString("�")
		t.state = DoctypeNameState
	default:
		t.doctypeBuf.Reset()
		t.doctypeBuf.WriteByte(b)
		t.state = DoctypeNameState
	}
}

func (t *Tokenizer) stepDoctypeName() (Token, bool) {
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.atEOF = true
			return Token{Type: DoctypeToken, Name: t.doctypeBuf.String(), ForceQuirks: true}, true
		}
		switch {
		case b == '\t' || b == '\n' || b == '\f' || b == ' ':
			t.state = AfterDoctypeNameState
			return Token{}, false
		case b == '>':
			t.state = DataState
			return Token{Type: DoctypeToken, Name: t.doctypeBuf.String()}, true
		case b >= 'A' && b <= 'Z':
			t.doctypeBuf.WriteByte(b + ('a' - 'A'))
		case b == 0:
			t.doctypeBuf.WriteString("�")
		default:
			t.doctypeBuf.WriteByte(b)
		}
	}
}

// stepAfterDoctypeName is a best-effort scan to the next '>', recording
// whether a PUBLIC or SYSTEM keyword was present so the tree builder can
// still decide quirks-mode without a full identifier grammar.
func (t *Tokenizer) stepAfterDoctypeName() (Token, bool) {
	name := t.doctypeBuf.String()
	publicPresent := t.s.HasPrefixFold("PUBLIC")
	systemPresent := !publicPresent && t.s.HasPrefixFold("SYSTEM")
	for {
		b, ok := t.s.Consume()
		if !ok {
			t.atEOF = true
			return Token{Type: DoctypeToken, Name: name, ForceQuirks: true,
				PublicIdentifierPresent: publicPresent, SystemIdentifierPresent: systemPresent}, true
		}
		if b == '>' {
			t.state = DataState
			return Token{Type: DoctypeToken, Name: name,
				PublicIdentifierPresent: publicPresent, SystemIdentifierPresent: systemPresent}, true
		}
	}
}

// --- CDATA ---------------------------------------------------------------

// stepCDATASection passes the body through as characters until "]]>",
// only reached via MarkupDeclarationOpenState.
func (t *Tokenizer) stepCDATASection() (Token, bool) {
	b, ok := t.s.Consume()
	if !ok {
		t.atEOF = true
		return Token{Type: EndOfFileToken}, true
	}
	if b == ']' && t.s.HasPrefix("]>") {
		t.s.Advance(2)
		t.state = DataState
		return Token{}, false
	}
	return Token{Type: CharacterToken, Data: string(rune(b))}, true
}

// --- Character references -----------------------------------------------

// consumeCharacterReference resolves a reference starting just after the
// already-consumed '&' and queues its result as pending character tokens,
// falling back to a literal '&' when nothing resolves.
func (t *Tokenizer) consumeCharacterReference() {
	if decoded, ok := t.resolveCharacterReference(); ok {
		t.emitPendingString(decoded)
		return
	}
	t.emitPendingChar('&')
}

// consumeCharacterReferenceIntoBuilder is the attribute-value variant: the
// decoded text (or a literal '&' on failure) is appended directly to sb.
func (t *Tokenizer) consumeCharacterReferenceIntoBuilder(sb *strings.Builder) {
	if decoded, ok := t.resolveCharacterReference(); ok {
		sb.WriteString(decoded)
		return
	}
	sb.WriteByte('&')
}

// resolveCharacterReference assumes the leading '&' has already been
// consumed and attempts to decode the reference at the cursor. On failure
// it rewinds to just after the '&' so the caller falls back to a literal.
func (t *Tokenizer) resolveCharacterReference() (string, bool) {
	start := t.s.Pos()
	b, ok := t.s.Peek(0)
	if !ok {
		return "", false
	}
	if b == '#' {
		t.s.Consume()
		return t.resolveNumericReference(start)
	}
	return t.resolveNamedReference(start)
}

func (t *Tokenizer) resolveNumericReference(ampPos int) (string, bool) {
	hex := false
	if b, ok := t.s.Peek(0); ok && (b == 'x' || b == 'X') {
		hex = true
		t.s.Consume()
	}
	var digits strings.Builder
	for {
		b, ok := t.s.Peek(0)
		if !ok {
			break
		}
		if hex && isHexDigit(b) {
			t.s.Consume()
			digits.WriteByte(b)
			continue
		}
		if !hex && b >= '0' && b <= '9' {
			t.s.Consume()
			digits.WriteByte(b)
			continue
		}
		break
	}
	if digits.Len() == 0 {
		t.s.SetPos(ampPos)
		return "", false
	}
	if b, ok := t.s.Peek(0); ok && b == ';' {
		t.s.Consume()
	}
	base := 10
	if hex {
		base = 16
	}
	cp, err := strconv.ParseInt(digits.String(), base, 64)
	if err != nil {
		cp = 0
	}
	return entity.ResolveNumeric(cp), true
}

// resolveNamedReference consumes the longest run of alphanumerics (plus a
// possible trailing ';'), tracking the longest prefix that is itself a
// table entry, per the "consume the maximum number of characters possible"
// named-reference rule. Entries without a trailing ';' only match when they
// are in the legacy no-semicolon set.
func (t *Tokenizer) resolveNamedReference(ampPos int) (string, bool) {
	var name strings.Builder
	longestMatch := ""
	longestConsumed := 0
	for i := 0; ; i++ {
		b, ok := t.s.Peek(i)
		if !ok {
			break
		}
		if b == ';' {
			candidate := name.String()
			if v, ok := entity.ResolveNamed(candidate); ok {
				longestMatch = v
				longestConsumed = i + 1
			}
			break
		}
		if !isASCIIAlnum(b) {
			break
		}
		name.WriteByte(b)
		candidate := name.String()
		if v, ok := entity.ResolveNamed(candidate); ok && entity.NoSemicolonNames[candidate] {
			longestMatch = v
			longestConsumed = i + 1
		}
		if i > 64 {
			break
		}
	}
	if longestConsumed == 0 {
		t.s.SetPos(ampPos)
		return "", false
	}
	t.s.Advance(longestConsumed)
	return longestMatch, true
}

// --- character classes ----------------------------------------------------

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIAlnum(b byte) bool {
	return isASCIIAlpha(b) || (b >= '0' && b <= '9')
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// VoidElements are the HTML elements that never have children; used by the
// tree builder, not the tokenizer itself.
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// RawTextElements, RCDATAElements and PlaintextElements drive the SetState
// policy a caller applies after seeing a given start tag; exported as data
// since the tokenizer declines to own this policy itself.
var (
	RawTextElements = map[string]bool{
		"script": true, "style": true, "iframe": true, "noframes": true, "xmp": true,
	}
	RCDATAElements = map[string]bool{
		"textarea": true, "title": true,
	}
	PlaintextElements = map[string]bool{
		"plaintext": true,
	}
)
