package parser

import (
	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/token"
)

// stmt_list = { stmt }
func (p *Parser) parseStmtList() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.startsStmt() {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) startsStmt() bool {
	switch p.cur.Kind {
	case token.Identifier, token.KwIf, token.KwFor, token.KwReturn,
		token.KwBreak, token.KwContinue, token.LBrace:
		return true
	default:
		return false
	}
}

// stmt = id_stmt | if_stmt | for_stmt | return_stmt
//      | "break" ";" | "continue" ";" | block
func (p *Parser) parseStmt() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Identifier:
		return p.parseIDStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak:
		p.advance()
		if _, err := p.match(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{}, nil
	case token.KwContinue:
		p.advance()
		if _, err := p.match(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{}, nil
	case token.LBrace:
		return p.parseBlock()
	default:
		return nil, p.errorf("expected a statement, got %s", p.cur)
	}
}

// id_stmt = Ident ( "=" expr | "++" | "--" | "(" args ")" ) ";"
func (p *Parser) parseIDStmt() (ast.Statement, error) {
	nameTok, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case token.Assign:
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Target: &ast.VarExpr{Name: nameTok.Lexeme}, Value: val}, nil
	case token.Incr, token.Decr:
		op := "++"
		if p.cur.Kind == token.Decr {
			op = "--"
		}
		p.advance()
		if _, err := p.match(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.IncrDecrStmt{Op: op, Var: &ast.VarExpr{Name: nameTok.Lexeme}}, nil
	case token.LParen:
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.RParen); err != nil {
			return nil, err
		}
		if _, err := p.match(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.CallExpr{Name: nameTok.Lexeme, Args: args}, nil
	default:
		return nil, p.errorf("expected '=', '++', '--' or '(' after identifier, got %s", p.cur)
	}
}

// if_stmt = "if" "(" expr ")" block [ "else" block ]
func (p *Parser) parseIfStmt() (ast.Statement, error) {
	if _, err := p.match(token.KwIf); err != nil {
		return nil, err
	}
	if _, err := p.match(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.cur.Kind == token.KwElse {
		p.advance()
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// for_stmt = "for" "(" Ident "=" expr ";" expr ";" Ident ("++"|"--") ")" block
func (p *Parser) parseForStmt() (ast.Statement, error) {
	if _, err := p.match(token.KwFor); err != nil {
		return nil, err
	}
	if _, err := p.match(token.LParen); err != nil {
		return nil, err
	}
	initName, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.Assign); err != nil {
		return nil, err
	}
	initVal, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	init := &ast.AssignStmt{Target: &ast.VarExpr{Name: initName.Lexeme}, Value: initVal}
	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}
	stepName, err := p.match(token.Identifier)
	if err != nil {
		return nil, err
	}
	stepOp := "++"
	switch p.cur.Kind {
	case token.Incr:
		p.advance()
	case token.Decr:
		stepOp = "--"
		p.advance()
	default:
		return nil, p.errorf("expected '++' or '--' in for-step, got %s", p.cur)
	}
	step := &ast.IncrDecrStmt{Op: stepOp, Var: &ast.VarExpr{Name: stepName.Lexeme}}
	if _, err := p.match(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Init: init, Cond: cond, Step: step, Body: body}, nil
}

// return_stmt = "return" [ expr ] ";"
func (p *Parser) parseReturnStmt() (ast.Statement, error) {
	if _, err := p.match(token.KwReturn); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.Semicolon {
		p.advance()
		return &ast.ReturnStmt{}, nil
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: val}, nil
}

// block = "{" stmt_list "}"
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	if _, err := p.match(token.LBrace); err != nil {
		return nil, err
	}
	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Statements: stmts}, nil
}

// arg_list = [ expr { "," expr } ]
func (p *Parser) parseArgList() ([]ast.Expression, error) {
	if p.cur.Kind == token.RParen {
		return nil, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []ast.Expression{first}
	for p.cur.Kind == token.Comma {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return args, nil
}
