// Package parser assembles the expression tree from the token stream.
//
// The grammar, lowest to highest precedence, both binary operators
// left-associative:
//
//	Or      := And ( '|' And )*
//	And     := Not ( '&' Not )*
//	Not     := '!' Not | Primary
//	Primary := Identifier | '0' | '1' | '(' Or ')'
//
// Parentheses affect tree shape only; the parser never produces redundant
// wrapper nodes, and it emits And/Or operand lists already flat, so an And
// never has an And child at construction time.
package parser

import (
	"github.com/logic-lang/logicopt/core/ast"
	oerrors "github.com/logic-lang/logicopt/core/errors"
	"github.com/logic-lang/logicopt/runtime/lexer"
)

// Parser is a recursive descent parser over a pre-lexed token slice.
// It trusts the lexer to have handled whitespace and the alphabet, focusing
// purely on assembling the tree.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes and parses the input string into an expression tree
func Parse(input string) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a pre-lexed token stream, consuming it fully
func ParseTokens(tokens []lexer.Token) (*ast.Node, error) {
	p := &Parser{tokens: tokens}

	if p.current().Type == lexer.EOF {
		return nil, oerrors.New(oerrors.ErrEmptyExpression, "empty expression")
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	switch p.current().Type {
	case lexer.EOF:
		return node, nil
	case lexer.RPAREN:
		return nil, oerrors.NewAt(oerrors.ErrUnbalancedParentheses,
			"unmatched closing parenthesis", p.current().Offset)
	default:
		return nil, oerrors.NewAt(oerrors.ErrUnexpectedToken,
			"unexpected token "+p.current().String(), p.current().Offset)
	}
}

// parseOr handles the lowest precedence level, collecting a flat operand list
func (p *Parser) parseOr() (*ast.Node, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	kids := []*ast.Node{first}
	for p.current().Type == lexer.OR {
		p.advance()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		kids = append(kids, next)
	}

	if len(kids) == 1 {
		return first, nil
	}
	return ast.Or(kids...), nil
}

// parseAnd handles the conjunction level, collecting a flat operand list
func (p *Parser) parseAnd() (*ast.Node, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	kids := []*ast.Node{first}
	for p.current().Type == lexer.AND {
		p.advance()
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		kids = append(kids, next)
	}

	if len(kids) == 1 {
		return first, nil
	}
	return ast.And(kids...), nil
}

// parseNot handles prefix negation
func (p *Parser) parseNot() (*ast.Node, error) {
	if p.current().Type == lexer.NOT {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.Not(operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary handles leaves and parenthesised groups
func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.IDENTIFIER:
		p.advance()
		return ast.Var(tok.Value), nil

	case lexer.ZERO:
		p.advance()
		return ast.Zero(), nil

	case lexer.ONE:
		p.advance()
		return ast.One(), nil

	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != lexer.RPAREN {
			return nil, oerrors.NewAt(oerrors.ErrUnbalancedParentheses,
				"missing closing parenthesis", p.current().Offset)
		}
		p.advance()
		// parentheses affect tree shape only; ForceParens stays false on
		// every parsed node and is set solely by the factorisation rules
		return inner, nil

	case lexer.EOF:
		return nil, oerrors.NewAt(oerrors.ErrUnexpectedToken,
			"unexpected end of expression", tok.Offset)

	default:
		return nil, oerrors.NewAt(oerrors.ErrUnexpectedToken,
			"unexpected token "+tok.String(), tok.Offset)
	}
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}
