package syntax

import (
	"fmt"
	"strconv"

	"github.com/rouge-lang/rouge/internal/ast"
	"github.com/rouge-lang/rouge/internal/token"
)

// Precedence levels, lowest to highest, following the reference parser's
// Pratt-parsing layout (a precedence table plus prefix/infix dispatch by
// token type), pared down to the operators this grammar has.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALS_PREC
	COMPARE_PREC
	SUM_PREC
	PRODUCT_PREC
	PREFIX_PREC
	CALL_PREC
)

var precedences = map[token.Type]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALS_PREC,
	token.NOT_EQ:   EQUALS_PREC,
	token.LT:       COMPARE_PREC,
	token.GT:       COMPARE_PREC,
	token.LT_EQ:    COMPARE_PREC,
	token.GT_EQ:    COMPARE_PREC,
	token.PLUS:     SUM_PREC,
	token.MINUS:    SUM_PREC,
	token.ASTERISK: PRODUCT_PREC,
	token.SLASH:    PRODUCT_PREC,
	token.DOT:      CALL_PREC,
	token.LPAREN:   CALL_PREC,
	token.LBRACKET: CALL_PREC,
}

// Parser turns a token stream into the ast package's node kinds. It has
// no error-recovery/synchronize machinery: on a malformed construct it
// records an error and returns a best-effort nil, the caller skips to
// the next statement.
type Parser struct {
	l    *Lexer
	cur  token.Token
	peek token.Token

	prevPos token.Position
	errors  []string
}

// New builds a Parser over source.
func New(source string) *Parser {
	p := &Parser{l: NewLexer(source)}
	p.cur = p.l.Next()
	p.peek = p.l.Next()
	return p
}

// Parse scans and parses source into a top-level Statements node. Parse
// errors (distinct from the analyzer's Findings) are returned alongside;
// a non-empty error slice means the returned tree is incomplete.
func Parse(source string) (*ast.Statements, []string) {
	p := New(source)
	start := p.cur.Pos
	var items []ast.Statement
	for p.cur.Type != token.EOF && len(p.errors) < 20 {
		stmt := p.parseStatement()
		if stmt != nil {
			items = append(items, stmt)
		}
	}
	return ast.NewStatements(token.Range{Begin: start, End: p.cur.Pos}, items...), p.errors
}

func (p *Parser) next() {
	p.prevPos = p.cur.Pos
	p.cur = p.peek
	p.peek = p.l.Next()
}

func (p *Parser) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s: %s", p.cur.Pos.String(), msg))
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type == t {
		p.next()
		return true
	}
	p.errorf("unexpected token %q", p.cur.Literal)
	return false
}

func (p *Parser) rangeFrom(start token.Position) token.Range {
	return token.Range{Begin: start, End: p.prevPos}
}

// --- statements ---

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.STRUCT:
		return p.parseStructDef()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		start := p.cur.Pos
		p.next()
		return ast.NewControlFlowModifier(p.rangeFrom(start), ast.Break)
	case token.CONTINUE:
		start := p.cur.Pos
		p.next()
		return ast.NewControlFlowModifier(p.rangeFrom(start), ast.Continue)
	case token.ILLEGAL:
		p.errorf("illegal token %q", p.cur.Literal)
		p.next()
		return nil
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseBlock() *ast.Statements {
	start := p.cur.Pos
	if !p.expect(token.LBRACE) {
		return ast.NewStatements(p.rangeFrom(start))
	}
	var items []ast.Statement
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			items = append(items, stmt)
		}
	}
	p.expect(token.RBRACE)
	return ast.NewStatements(p.rangeFrom(start), items...)
}

func (p *Parser) parseStructDef() ast.Statement {
	start := p.cur.Pos
	p.next() // consume 'struct'
	if p.cur.Type != token.IDENT {
		p.errorf("expected a type name after 'struct'")
		return nil
	}
	id := p.cur.Literal
	p.next()

	placeholders := p.parseOptionalIdentList()

	if !p.expect(token.LBRACE) {
		return nil
	}
	var fields []ast.FieldDeclaration
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.errorf("expected a field name")
			p.next()
			continue
		}
		name := p.cur.Literal
		p.next()
		if !p.expect(token.COLON) {
			continue
		}
		typ := p.parseTypeAnnotation()
		fields = append(fields, ast.FieldDeclaration{Name: name, TypeName: typ})
	}
	p.expect(token.RBRACE)
	return ast.NewTypeDefinition(p.rangeFrom(start), id, placeholders, fields)
}

// parseOptionalIdentList parses a bracketed, comma-separated identifier
// list used to declare generic placeholders: "[" IDENT {"," IDENT} "]".
// It returns nil when no bracket is present.
func (p *Parser) parseOptionalIdentList() []string {
	if p.cur.Type != token.LBRACKET {
		return nil
	}
	p.next()
	var names []string
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.errorf("expected a placeholder name")
			p.next()
			continue
		}
		names = append(names, p.cur.Literal)
		p.next()
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RBRACKET)
	return names
}

func (p *Parser) parseIf() ast.Statement {
	start := p.cur.Pos
	p.next() // consume 'if'
	cond := p.parseExpression(LOWEST)
	trueStmts := p.parseBlock()

	var falseStmts *ast.Statements
	if p.cur.Type == token.ELSE {
		elseStart := p.cur.Pos
		p.next()
		if p.cur.Type == token.IF {
			nested := p.parseIf()
			falseStmts = ast.NewStatements(p.rangeFrom(elseStart), nested)
		} else {
			falseStmts = p.parseBlock()
		}
	}
	return ast.NewCondition(p.rangeFrom(start), cond, trueStmts, falseStmts)
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.cur.Pos
	p.next() // consume 'while'
	cond := p.parseExpression(LOWEST)
	body := p.parseBlock()
	return ast.NewLoop(p.rangeFrom(start), cond, body)
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.cur.Pos
	p.next() // consume 'return'
	if p.cur.Type == token.RBRACE || p.cur.Type == token.EOF {
		return ast.NewReturnStatement(p.rangeFrom(start), nil)
	}
	value := p.parseExpression(LOWEST)
	return ast.NewReturnStatement(p.rangeFrom(start), value)
}

// parseSimpleStatement parses a variable assignment, property write, or
// a bare expression statement, disambiguated after parsing a full
// expression (spec §4.3's three statement shapes).
func (p *Parser) parseSimpleStatement() ast.Statement {
	start := p.cur.Pos
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.next()
		return nil
	}

	switch p.cur.Type {
	case token.COLON:
		ref, ok := expr.(*ast.ReferenceExpression)
		if !ok {
			p.errorf("a type annotation may only follow a plain variable name")
			return nil
		}
		p.next() // consume ':'
		annotation := p.parseTypeAnnotation()
		if !p.expect(token.ASSIGN) {
			return nil
		}
		value := p.parseExpression(LOWEST)
		return ast.NewVariableAssignment(p.rangeFrom(start), ref.Name, annotation, value)

	case token.ASSIGN:
		p.next() // consume '='
		value := p.parseExpression(LOWEST)
		switch e := expr.(type) {
		case *ast.ReferenceExpression:
			return ast.NewVariableAssignment(p.rangeFrom(start), e.Name, nil, value)
		case *ast.PropertyAccess:
			return ast.NewPropertyWrite(p.rangeFrom(start), e.Parent, e.Child, value)
		default:
			p.errorf("left-hand side of '=' must be a variable or a field")
			return nil
		}

	default:
		return ast.NewExpressionStatement(p.rangeFrom(start), expr)
	}
}

// --- type annotations ---

func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	start := p.cur.Pos
	if p.cur.Type != token.IDENT {
		p.errorf("expected a type name")
		return ast.NewTypeAnnotation(p.rangeFrom(start), "")
	}
	name := p.cur.Literal
	p.next()

	var args []*ast.TypeAnnotation
	if p.cur.Type == token.LBRACKET {
		p.next()
		for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
			args = append(args, p.parseTypeAnnotation())
			if p.cur.Type == token.COMMA {
				p.next()
			}
		}
		p.expect(token.RBRACKET)
	}
	return ast.NewTypeAnnotation(p.rangeFrom(start), name, args...)
}

// --- expressions ---

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	for p.cur.Type != token.EOF && precedence < p.curPrecedence() {
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	start := p.cur.Pos
	switch p.cur.Type {
	case token.IDENT:
		name := p.cur.Literal
		p.next()
		return ast.NewReferenceExpression(p.rangeFrom(start), name)
	case token.FLOAT:
		v, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			p.errorf("invalid number literal %q", p.cur.Literal)
		}
		p.next()
		return ast.NewNumberLiteral(p.rangeFrom(start), v)
	case token.STRING:
		v := p.cur.Literal
		p.next()
		return ast.NewStringLiteral(p.rangeFrom(start), v)
	case token.TRUE:
		p.next()
		return ast.NewBooleanLiteral(p.rangeFrom(start), true)
	case token.FALSE:
		p.next()
		return ast.NewBooleanLiteral(p.rangeFrom(start), false)
	case token.MINUS:
		p.next()
		operand := p.parseExpression(PREFIX_PREC)
		return ast.NewUnaryExpression(p.rangeFrom(start), "-", operand)
	case token.NOT, token.BANG:
		p.next()
		operand := p.parseExpression(PREFIX_PREC)
		return ast.NewUnaryExpression(p.rangeFrom(start), "not", operand)
	case token.LPAREN:
		p.next()
		inner := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		return inner
	case token.FUNCTION:
		return p.parseFunctionLiteral()
	default:
		p.errorf("unexpected token %q in expression", p.cur.Literal)
		p.next()
		return nil
	}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	start := p.prevPos
	switch p.cur.Type {
	case token.DOT:
		p.next()
		if p.cur.Type != token.IDENT {
			p.errorf("expected a field name after '.'")
			return nil
		}
		child := p.cur.Literal
		p.next()
		return ast.NewPropertyAccess(p.rangeFrom(start), left, child)

	case token.LBRACKET:
		placeholders := p.parseTypeArgList()
		if !p.expect(token.LPAREN) {
			return nil
		}
		args := p.parseArgList()
		return ast.NewInvocation(p.rangeFrom(start), left, placeholders, args)

	case token.LPAREN:
		p.next()
		args := p.parseArgList()
		return ast.NewInvocation(p.rangeFrom(start), left, nil, args)

	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.EQ, token.NOT_EQ, token.LT, token.GT, token.LT_EQ, token.GT_EQ,
		token.AND, token.OR:
		op := p.cur.Literal
		precedence := p.curPrecedence()
		p.next()
		right := p.parseExpression(precedence)
		return ast.NewBinaryExpression(p.rangeFrom(start), left, op, right)

	default:
		p.errorf("unexpected token %q", p.cur.Literal)
		p.next()
		return nil
	}
}

// parseTypeArgList parses "[" TypeAnnotation {"," TypeAnnotation} "]".
func (p *Parser) parseTypeArgList() []*ast.TypeAnnotation {
	p.next() // consume '['
	var args []*ast.TypeAnnotation
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		args = append(args, p.parseTypeAnnotation())
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RBRACKET)
	return args
}

// parseArgList parses a parenthesized, comma-separated argument list,
// with the opening '(' already consumed.
func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		args = append(args, p.parseExpression(LOWEST))
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	start := p.cur.Pos
	p.next() // consume 'function'

	placeholders := p.parseOptionalIdentList()

	if !p.expect(token.LPAREN) {
		return nil
	}
	var params []ast.Parameter
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.errorf("expected a parameter name")
			p.next()
			continue
		}
		name := p.cur.Literal
		p.next()
		if !p.expect(token.COLON) {
			continue
		}
		typ := p.parseTypeAnnotation()
		params = append(params, ast.Parameter{Name: name, TypeName: typ})
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RPAREN)

	var returnType *ast.TypeAnnotation
	if p.cur.Type == token.ARROW {
		p.next()
		returnType = p.parseTypeAnnotation()
	}

	body := p.parseBlock()
	return ast.NewFunction(p.rangeFrom(start), params, returnType, placeholders, body)
}
