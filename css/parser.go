package css

import "strings"

// Stylesheet represents a CSS stylesheet.
// CSS 2.1 §4 Syntax and basic data types
type Stylesheet struct {
	Rules []*Rule
	// AtRules holds every top-level @-rule (@media, @import, @keyframes,
	// @font-face, @supports, @layer, @container, @scope, @property,
	// @counter-style, @starting-style, @font-palette-values, ...),
	// structured rather than discarded. Rules nested inside a conditional
	// at-rule (@media, @supports, @layer, @container, @scope) are not
	// promoted into Rules above: nothing in this pipeline evaluates media
	// features, so applying them unconditionally would be more wrong than
	// the prior behavior of skipping them outright.
	AtRules []*AtRule
	// LayerOrder records cascade layer names in first-declaration order,
	// per the CSS Cascade 5 rule that an @layer statement establishes a
	// layer's position even before any rules are assigned to it.
	LayerOrder []string
}

// Rule represents a CSS rule.
// CSS 2.1 §4.1.7 Rule sets, declaration blocks, and selectors
type Rule struct {
	Selectors    []*Selector
	Declarations []*Declaration
}

// Selector represents a CSS selector.
// CSS 2.1 §5 Selectors
type Selector struct {
	Simple []*SimpleSelector // List of simple selectors (for descendant combinator)
}

// SimpleSelector represents a simple selector.
// CSS 2.1 §5.2 Selector syntax
type SimpleSelector struct {
	TagName   string   // Element type selector (e.g., "div", "*" for universal)
	ID        string   // ID selector (e.g., "header")
	Classes   []string // Class selectors (e.g., ["container", "main"])
	Ampersand bool      // CSS Nesting's '&' nesting selector; ID/Classes attached directly to it (e.g. "&.active") still populate the fields above
}

// Declaration represents a CSS declaration.
// CSS 2.1 §4.1.8 Declarations and properties
type Declaration struct {
	Property string
	Value    string
}

// ComponentKind classifies a ComponentValue per CSS Syntax 3's component
// value grammar.
type ComponentKind int

const (
	// ComponentPreservedToken wraps a single token that is neither a
	// function nor the start of a simple block.
	ComponentPreservedToken ComponentKind = iota
	// ComponentFunction is an ident-followed-by-'(' and its arguments,
	// up to the matching ')'.
	ComponentFunction
	// ComponentBlock is a {}/[]/() delimited run of component values.
	ComponentBlock
)

// ComponentValue is one node of a CSS Syntax 3 component-value tree: a
// preserved token, a function call, or a simple block. At-rule preludes
// and declaration values too complex for the flat string concatenation
// `Declaration.Value` uses (var() fallbacks, nested functions) are
// represented this way instead.
type ComponentValue struct {
	Kind     ComponentKind
	Token    Token
	Function *Function
	Block    *SimpleBlock
}

// Function is a component value of the form name(arg1 arg2 ...).
type Function struct {
	Name string // without the trailing '('
	Args []ComponentValue
}

// SimpleBlock is a {...}, [...], or (...) delimited component-value run.
type SimpleBlock struct {
	Open  TokenType // LeftBraceToken, LeftBracketToken, or LeftParenToken
	Value []ComponentValue
}

// AtRule is a parsed @-rule: its name, its prelude as a component-value
// list (since a prelude's grammar is at-rule-specific and not something
// this package tries to parse further), and a body appropriate to that
// at-rule's kind.
type AtRule struct {
	Name    string
	Prelude []ComponentValue

	// Rules holds the body for at-rules whose block contains other rules
	// (@media, @supports, @layer, @container, @scope, @starting-style) or
	// keyframe rules
	// (@keyframes' "from"/"to"/"50%" selectors reuse SimpleSelector.TagName).
	Rules []*Rule
	// NestedAtRules holds any @-rule nested directly inside this one's
	// block (e.g. an @supports inside an @media).
	NestedAtRules []*AtRule
	// Declarations holds the body for at-rules whose block is a plain
	// declaration list (@font-face, @property, @counter-style,
	// @font-palette-values).
	Declarations []*Declaration
}

// atRuleBodyKind classifies how an at-rule's block (if any) should be
// parsed. At-rules absent from this table are treated as statement-only,
// matching the conservative default for an unrecognized at-rule.
var atRuleBodyKind = map[string]string{
	"media":               "rules",
	"supports":            "rules",
	"layer":               "rules",
	"container":           "rules",
	"scope":               "rules",
	"starting-style":      "rules",
	"keyframes":           "keyframes",
	"font-face":           "declarations",
	"property":            "declarations",
	"counter-style":       "declarations",
	"font-palette-values": "declarations",
	"import":              "statement",
	"charset":             "statement",
	"namespace":           "statement",
}

// Parser parses CSS stylesheets.
type Parser struct {
	tokenizer *Tokenizer
}

// NewParser creates a new CSS parser.
func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
	}
}

// Parse parses the CSS input and returns a stylesheet.
func (p *Parser) Parse() *Stylesheet {
	stylesheet := &Stylesheet{
		Rules: make([]*Rule, 0),
	}

	for {
		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Peek()
		if token.Type == EOFToken {
			break
		}

		if token.Type == AtKeywordToken {
			atRule := p.parseAtRule(stylesheet)
			if atRule != nil {
				stylesheet.AtRules = append(stylesheet.AtRules, atRule)
			}
			continue
		}

		rule, nested := p.parseRule()
		if rule != nil {
			stylesheet.Rules = append(stylesheet.Rules, rule)
		}
		stylesheet.Rules = append(stylesheet.Rules, nested...)
		if rule == nil && len(nested) == 0 {
			// parseSelectors consumed nothing parseable; force progress.
			if p.tokenizer.Peek().Type != EOFToken {
				p.tokenizer.Next()
			}
		}
	}

	return stylesheet
}

// parseAtRule parses a single @-rule starting at the current AtKeywordToken
// and dispatches its body according to atRuleBodyKind.
func (p *Parser) parseAtRule(sheet *Stylesheet) *AtRule {
	token := p.tokenizer.Next() // consume '@name'
	name := strings.ToLower(token.Value)
	atRule := &AtRule{Name: name}
	atRule.Prelude = p.consumeComponentValueList(LeftBraceToken, SemicolonToken)

	p.tokenizer.SkipWhitespace()
	next := p.tokenizer.Peek()

	if name == "layer" {
		registerLayerNames(sheet, atRule.Prelude)
	}

	switch atRuleBodyKind[name] {
	case "rules", "keyframes":
		if next.Type != LeftBraceToken {
			p.consumeStatementEnd()
			return atRule
		}
		p.tokenizer.Next() // consume '{'
		atRule.Rules, atRule.NestedAtRules = p.parseRulesUntilBrace(sheet)
		return atRule
	case "declarations":
		if next.Type != LeftBraceToken {
			p.consumeStatementEnd()
			return atRule
		}
		p.tokenizer.Next() // consume '{'
		atRule.Declarations, _ = p.parseDeclarations(nil)
		p.expectRightBrace()
		return atRule
	default: // "statement" or unrecognized
		p.consumeStatementEnd()
		return atRule
	}
}

// registerLayerNames records each comma-separated layer name named by an
// @layer prelude into sheet.LayerOrder, in first-seen order.
func registerLayerNames(sheet *Stylesheet, prelude []ComponentValue) {
	seen := make(map[string]bool, len(sheet.LayerOrder))
	for _, name := range sheet.LayerOrder {
		seen[name] = true
	}
	for _, cv := range prelude {
		if cv.Kind != ComponentPreservedToken || cv.Token.Type != IdentToken {
			continue
		}
		if !seen[cv.Token.Value] {
			seen[cv.Token.Value] = true
			sheet.LayerOrder = append(sheet.LayerOrder, cv.Token.Value)
		}
	}
}

// consumeStatementEnd consumes up to and including the next top-level ';',
// or stops at EOF; used for statement-only at-rules like @import.
func (p *Parser) consumeStatementEnd() {
	for {
		token := p.tokenizer.Next()
		if token.Type == SemicolonToken || token.Type == EOFToken {
			return
		}
	}
}

func (p *Parser) expectRightBrace() {
	p.tokenizer.SkipWhitespace()
	if p.tokenizer.Peek().Type == RightBraceToken {
		p.tokenizer.Next()
	}
}

// parseRulesUntilBrace parses qualified rules and nested at-rules up to
// and including the next unmatched '}' (or EOF).
func (p *Parser) parseRulesUntilBrace(sheet *Stylesheet) ([]*Rule, []*AtRule) {
	var rules []*Rule
	var atRules []*AtRule

	for {
		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Peek()
		if token.Type == RightBraceToken {
			p.tokenizer.Next()
			break
		}
		if token.Type == EOFToken {
			break
		}
		if token.Type == AtKeywordToken {
			if nested := p.parseAtRule(sheet); nested != nil {
				atRules = append(atRules, nested)
			}
			continue
		}

		rule, nested := p.parseRule()
		if rule != nil {
			rules = append(rules, rule)
		}
		rules = append(rules, nested...)
		if rule == nil && len(nested) == 0 && p.tokenizer.Peek().Type != RightBraceToken && p.tokenizer.Peek().Type != EOFToken {
			p.tokenizer.Next()
		}
	}

	return rules, atRules
}

// parseSelectors parses a comma-separated list of selectors.
// CSS 2.1 §5.2 Selector syntax
func (p *Parser) parseSelectors() []*Selector {
	selectors := make([]*Selector, 0)

	for {
		p.tokenizer.SkipWhitespace()

		selector := p.parseSelector()
		if selector != nil {
			selectors = append(selectors, selector)
		}

		p.tokenizer.SkipWhitespace()
		token := p.tokenizer.Peek()

		if token.Type == CommaToken {
			p.tokenizer.Next() // consume comma
			continue
		}

		break
	}

	return selectors
}

// parseSelector parses a single selector.
// This handles descendant combinators (space-separated).
// CSS 2.1 §5.5 Descendant selectors
func (p *Parser) parseSelector() *Selector {
	selector := &Selector{
		Simple: make([]*SimpleSelector, 0),
	}

	for {
		p.tokenizer.SkipWhitespace()

		simple := p.parseSimpleSelector()
		if simple == nil {
			break
		}

		selector.Simple = append(selector.Simple, simple)

		// Check for descendant combinator (whitespace followed by another selector)
		savedPos := p.tokenizer.pos
		p.tokenizer.SkipWhitespace()
		next := p.tokenizer.Peek()

		if !startsSimpleSelector(next) {
			p.tokenizer.pos = savedPos
			break
		}
	}

	if len(selector.Simple) == 0 {
		return nil
	}

	return selector
}

func startsSimpleSelector(token Token) bool {
	if token.Type == IdentToken || token.Type == HashToken || token.Type == DotToken || token.Type == PercentageToken {
		return true
	}
	return token.Type == DelimToken && token.Value == "&"
}

// parseSimpleSelector parses a simple selector.
// CSS 2.1 §5.2 Selector syntax, extended with CSS Nesting's '&' selector
// and the bare-percentage/ident selectors @keyframes bodies use
// ("from", "to", "50%").
func (p *Parser) parseSimpleSelector() *SimpleSelector {
	simple := &SimpleSelector{
		Classes: make([]string, 0),
	}

	token := p.tokenizer.Peek()

	switch {
	case token.Type == IdentToken || token.Type == PercentageToken:
		p.tokenizer.Next()
		simple.TagName = token.Value
	case token.Type == DelimToken && token.Value == "&":
		p.tokenizer.Next()
		simple.Ampersand = true
	}

	// ID and class selectors
	for {
		token = p.tokenizer.Peek()

		if token.Type == HashToken {
			p.tokenizer.Next()
			simple.ID = token.Value
		} else if token.Type == DotToken {
			p.tokenizer.Next()
			// Next token should be class name
			token = p.tokenizer.Next()
			if token.Type == IdentToken {
				simple.Classes = append(simple.Classes, token.Value)
			}
		} else if token.Type == LeftBracketToken {
			// Skip attribute selectors [attr=value]
			// CSS 2.1 §5.8 Attribute selectors - not implementing for simplicity
			// Note: Attribute selectors are part of CSS 2.1 but not core to basic rendering
			p.tokenizer.Next() // consume '['
			// Skip everything until ']'
			for {
				token = p.tokenizer.Next()
				if token.Type == RightBracketToken || token.Type == EOFToken {
					break
				}
			}
		} else {
			break
		}
	}

	// Check if we actually parsed anything
	if simple.TagName == "" && simple.ID == "" && len(simple.Classes) == 0 && !simple.Ampersand {
		return nil
	}

	return simple
}

// parseRule parses one top-level qualified rule. Its own selectors are
// never nested against anything (there is no parent at the top level);
// any rules nested inside its body (CSS Nesting) come back already
// flattened via nestedRules, for the caller to splice in alongside rule.
func (p *Parser) parseRule() (*Rule, []*Rule) {
	selectors := p.parseSelectors()
	if len(selectors) == 0 {
		return nil, nil
	}

	p.tokenizer.SkipWhitespace()

	// Expect '{'
	token := p.tokenizer.Next()
	if token.Type != LeftBraceToken {
		return nil, nil
	}

	declarations, nestedRules := p.parseDeclarations(selectors)

	p.tokenizer.SkipWhitespace()

	// Expect '}'
	token = p.tokenizer.Next()
	if token.Type != RightBraceToken {
		// Error recovery: skip to next '}'
		for token.Type != RightBraceToken && token.Type != EOFToken {
			token = p.tokenizer.Next()
		}
	}

	rule := &Rule{
		Selectors:    selectors,
		Declarations: declarations,
	}

	return rule, nestedRules
}

// flattenNested resolves CSS Nesting's implicit-descendant and '&'
// substitution rules for one nested selector against each of its parent's
// selectors, producing the cross product CSS Nesting specifies. Combinators
// and pseudo-classes within the nested selector itself are not supported,
// matching this selector engine's existing CSS 2.1-level scope.
func flattenNested(parentSelectors []*Selector, nestedSelectors []*Selector) []*Selector {
	var result []*Selector
	for _, parent := range parentSelectors {
		for _, nested := range nestedSelectors {
			result = append(result, flattenOne(parent, nested))
		}
	}
	return result
}

func flattenOne(parent, nested *Selector) *Selector {
	if len(nested.Simple) > 0 && nested.Simple[0].Ampersand {
		merged := mergeAmpersand(parent, nested.Simple[0])
		combined := append(append([]*SimpleSelector{}, merged...), nested.Simple[1:]...)
		return &Selector{Simple: combined}
	}
	// No leading '&': CSS Nesting treats the nested selector as an
	// implicit descendant of the parent.
	combined := append(append([]*SimpleSelector{}, parent.Simple...), nested.Simple...)
	return &Selector{Simple: combined}
}

// mergeAmpersand folds ID/classes attached directly to '&' (e.g.
// "&.active") into the parent selector's last compound, leaving the rest
// of the parent chain untouched.
func mergeAmpersand(parent *Selector, amp *SimpleSelector) []*SimpleSelector {
	if len(parent.Simple) == 0 {
		return []*SimpleSelector{amp}
	}
	last := *parent.Simple[len(parent.Simple)-1]
	if amp.ID != "" {
		last.ID = amp.ID
	}
	last.Classes = append(append([]string{}, last.Classes...), amp.Classes...)
	merged := append(append([]*SimpleSelector{}, parent.Simple[:len(parent.Simple)-1]...), &last)
	return merged
}

// parseDeclarations parses declarations within a rule, splicing in any
// nested rules it finds (CSS Nesting) flattened against parentSelectors.
// CSS 2.1 §4.1.8 Declarations and properties
func (p *Parser) parseDeclarations(parentSelectors []*Selector) ([]*Declaration, []*Rule) {
	declarations := make([]*Declaration, 0)
	var nestedRules []*Rule

	for {
		p.tokenizer.SkipWhitespace()

		token := p.tokenizer.Peek()
		if token.Type == RightBraceToken || token.Type == EOFToken {
			break
		}

		if token.Type == AtKeywordToken {
			// A conditional at-rule nested directly inside a style rule
			// (CSS Nesting permits @media/@supports here); its rule
			// bodies flatten against this rule's own selectors.
			atRule := p.parseAtRule(&Stylesheet{})
			if atRule != nil && parentSelectors != nil {
				for _, r := range atRule.Rules {
					nestedRules = append(nestedRules, &Rule{
						Selectors:    flattenNested(parentSelectors, r.Selectors),
						Declarations: r.Declarations,
					})
				}
			}
			continue
		}

		if parentSelectors != nil && startsSimpleSelector(token) {
			if rule, nested := p.tryParseNestedRule(parentSelectors); rule != nil {
				nestedRules = append(nestedRules, rule)
				nestedRules = append(nestedRules, nested...)
				continue
			}
		}

		decl := p.parseDeclaration()
		if decl != nil {
			declarations = append(declarations, decl)
		}

		p.tokenizer.SkipWhitespace()

		// Expect ';' or '}'
		token = p.tokenizer.Peek()
		if token.Type == SemicolonToken {
			p.tokenizer.Next()
		} else if token.Type == RightBraceToken {
			break
		}
	}

	return declarations, nestedRules
}

// tryParseNestedRule attempts to parse a nested style rule at the current
// position, restoring position and returning nil if what follows turns out
// not to be a selector-then-'{' (e.g. a property name that happens to look
// selector-like, such as a bare type-selector-shaped property).
func (p *Parser) tryParseNestedRule(parentSelectors []*Selector) (*Rule, []*Rule) {
	saved := p.tokenizer.pos
	selectors := p.parseSelectors()
	p.tokenizer.SkipWhitespace()
	if len(selectors) == 0 || p.tokenizer.Peek().Type != LeftBraceToken {
		p.tokenizer.pos = saved
		return nil, nil
	}
	p.tokenizer.Next() // consume '{'

	// Flatten before descending so a grandchild's own '&' or implicit
	// descendant combination resolves against this level's fully resolved
	// selector chain, not just its own unflattened one.
	flattened := flattenNested(parentSelectors, selectors)
	declarations, nested := p.parseDeclarations(flattened)
	p.tokenizer.SkipWhitespace()
	if p.tokenizer.Peek().Type == RightBraceToken {
		p.tokenizer.Next()
	}

	return &Rule{Selectors: flattened, Declarations: declarations}, nested
}

// parseDeclaration parses a single declaration.
// CSS 2.1 §4.1.8 Declarations and properties
func (p *Parser) parseDeclaration() *Declaration {
	p.tokenizer.SkipWhitespace()

	// Property name
	token := p.tokenizer.Next()
	if token.Type != IdentToken {
		return nil
	}
	property := token.Value

	p.tokenizer.SkipWhitespace()

	// Expect ':'
	token = p.tokenizer.Next()
	if token.Type != ColonToken {
		return nil
	}

	p.tokenizer.SkipWhitespace()

	// Parse value (simplified - just concatenate tokens until ';' or '}')
	value := ""
	for {
		token = p.tokenizer.Peek()
		if token.Type == SemicolonToken || token.Type == RightBraceToken || token.Type == EOFToken {
			break
		}

		p.tokenizer.Next()

		if token.Type == WhitespaceToken {
			if value != "" {
				value += " "
			}
		} else {
			value += token.Value
		}
	}

	return &Declaration{
		Property: property,
		Value:    value,
	}
}

// consumeComponentValueList consumes a CSS Syntax 3 component-value list
// up to (but not including) the first top-level token whose type is in
// stopAt, or EOF.
func (p *Parser) consumeComponentValueList(stopAt ...TokenType) []ComponentValue {
	var values []ComponentValue
	for {
		token := p.tokenizer.Peek()
		if token.Type == EOFToken {
			break
		}
		stop := false
		for _, s := range stopAt {
			if token.Type == s {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		token = p.tokenizer.Next()
		values = append(values, p.consumeComponentValue(token))
	}
	return values
}

// consumeComponentValue consumes one component value starting at an
// already-dequeued token, per CSS Syntax 3's consume-a-component-value.
func (p *Parser) consumeComponentValue(token Token) ComponentValue {
	switch token.Type {
	case FunctionToken:
		return ComponentValue{Kind: ComponentFunction, Function: p.consumeFunction(token)}
	case LeftBraceToken, LeftBracketToken, LeftParenToken:
		return ComponentValue{Kind: ComponentBlock, Block: p.consumeSimpleBlock(token)}
	default:
		return ComponentValue{Kind: ComponentPreservedToken, Token: token}
	}
}

func (p *Parser) consumeFunction(start Token) *Function {
	fn := &Function{Name: strings.TrimSuffix(start.Value, "(")}
	for {
		token := p.tokenizer.Next()
		if token.Type == RightParenToken || token.Type == EOFToken {
			break
		}
		fn.Args = append(fn.Args, p.consumeComponentValue(token))
	}
	return fn
}

func (p *Parser) consumeSimpleBlock(start Token) *SimpleBlock {
	closing := matchingCloseToken(start.Type)
	block := &SimpleBlock{Open: start.Type}
	for {
		token := p.tokenizer.Next()
		if token.Type == closing || token.Type == EOFToken {
			break
		}
		block.Value = append(block.Value, p.consumeComponentValue(token))
	}
	return block
}

func matchingCloseToken(open TokenType) TokenType {
	switch open {
	case LeftBraceToken:
		return RightBraceToken
	case LeftBracketToken:
		return RightBracketToken
	case LeftParenToken:
		return RightParenToken
	default:
		return EOFToken
	}
}

// ParseInlineStyle parses the contents of an HTML style="..." attribute: a
// bare declaration list with no surrounding braces.
// CSS 2.1 §6.4.3 Inline styles have the highest specificity.
func ParseInlineStyle(input string) []*Declaration {
	if input == "" {
		return nil
	}
	p := &Parser{tokenizer: NewTokenizer(input)}
	declarations, _ := p.parseDeclarations(nil)
	return declarations
}

// Parse is a convenience function to parse CSS.
func Parse(input string) *Stylesheet {
	parser := NewParser(input)
	return parser.Parse()
}
