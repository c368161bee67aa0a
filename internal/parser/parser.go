// Package parser implements the LL(1) recursive-descent parser that
// turns a decafc token stream into an *ast.Program. The grammar is the
// one in spec §4.3: one function per nonterminal, single-token
// lookahead, fail-fast on the first syntax error.
package parser

import (
	"fmt"

	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/lexer"
	"github.com/csssaz/decafc/internal/symtab"
	"github.com/csssaz/decafc/internal/token"
)

// SyntaxError is the error returned for any grammar mismatch. Parsing
// aborts on the first one — there is no error-recovery or synchronize
// pass in this parser.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ERROR: line %d: %s", e.Line, e.Message)
}

// Parser holds the single-token lookahead state over a lexer's token
// stream.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Parser over l, priming the current and lookahead tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead token into current and pulls a fresh one
// from the lexer.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: p.cur.Line, Message: fmt.Sprintf(format, args...)}
}

// match consumes the current token if it has kind k, otherwise reports a
// syntax error without advancing.
func (p *Parser) match(k token.Kind) (token.Token, error) {
	if p.cur.Kind != k {
		return token.Token{}, p.errorf("expected %s, got %s", k, p.cur)
	}
	t := p.cur
	p.advance()
	return t, nil
}

// Parse runs program = "class" Ident "{" var_decls method_decls "}" EOI.
func Parse(l *lexer.Lexer) (*ast.Program, error) {
	return New(l).parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	if _, err := p.match(token.KwClass); err != nil {
		return nil, err
	}
	nameTok, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LBrace); err != nil {
		return nil, err
	}
	vars, err := p.parseVarDecls()
	if err != nil {
		return nil, err
	}
	methods, err := p.parseMethodDecls()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RBrace); err != nil {
		return nil, err
	}
	if _, err := p.match(token.EOI); err != nil {
		return nil, err
	}
	return &ast.Program{ClassName: nameTok.Lexeme, Vars: vars, Methods: methods}, nil
}

// var_decls = { type var_list ";" }
func (p *Parser) parseVarDecls() ([]*ast.VarDecl, error) {
	var decls []*ast.VarDecl
	for p.cur.Kind == token.KwInt || p.cur.Kind == token.KwReal {
		vt, err := p.parseType()
		if err != nil {
			return nil, err
		}
		names, err := p.parseVarList()
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ast.VarDecl{Type: vt, Names: names})
	}
	return decls, nil
}

// type = "int" | "real"
func (p *Parser) parseType() (symtab.ValueType, error) {
	switch p.cur.Kind {
	case token.KwInt:
		p.advance()
		return symtab.Int, nil
	case token.KwReal:
		p.advance()
		return symtab.Real, nil
	default:
		return symtab.Void, p.errorf("expected a type, got %s", p.cur)
	}
}

// var_list = Ident { "," Ident } ";"
func (p *Parser) parseVarList() ([]string, error) {
	first, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	names := []string{first.Lexeme}
	for p.cur.Kind == token.Comma {
		p.advance()
		id, err := p.match(token.Identifier)
		if err != nil {
			return nil, err
		}
		names = append(names, id.Lexeme)
	}
	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}
	return names, nil
}

// method_decls = method_decl { method_decl }  -- at least one
func (p *Parser) parseMethodDecls() ([]*ast.Method, error) {
	first, err := p.parseMethodDecl()
	if err != nil {
		return nil, err
	}
	methods := []*ast.Method{first}
	for p.cur.Kind == token.KwStatic {
		m, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// method_decl = "static" ret_type Ident "(" params ")" "{" var_decls stmt_list "}"
func (p *Parser) parseMethodDecl() (*ast.Method, error) {
	if _, err := p.match(token.KwStatic); err != nil {
		return nil, err
	}
	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.match(token.LBrace); err != nil {
		return nil, err
	}
	locals, err := p.parseVarDecls()
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Method{
		ReturnType: retType,
		Name:       nameTok.Lexeme,
		Params:     params,
		Locals:     locals,
		Body:       stmts,
	}, nil
}

// ret_type = "void" | type
func (p *Parser) parseReturnType() (symtab.ValueType, error) {
	if p.cur.Kind == token.KwVoid {
		p.advance()
		return symtab.Void, nil
	}
	return p.parseType()
}

// params = [ type Ident { "," type Ident } ]
func (p *Parser) parseParams() ([]*ast.Param, error) {
	if p.cur.Kind != token.KwInt && p.cur.Kind != token.KwReal {
		return nil, nil
	}
	var params []*ast.Param
	for {
		vt, err := p.parseType()
		if err != nil {
			return nil, err
		}
		id, err := p.match(token.Identifier)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Param{Type: vt, Name: id.Lexeme})
		if p.cur.Kind != token.Comma {
			break
		}
		p.advance()
	}
	return params, nil
}
