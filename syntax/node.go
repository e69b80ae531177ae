package syntax

import "fmt"

// Kind is a syntax node: a Token, a Keyword, an expression or a statement.
//
// Every implementation is a comparable value type whose children are Nodes held
// by value, so == on two Kinds compares whole subtrees.
type Kind interface {
	isKind()
	String() string
}

// Node pairs a Kind with the byte offset of its first character in the source.
type Node struct {
	Pos  int
	Kind Kind
}

func At(pos int, kind Kind) Node {
	return Node{Pos: pos, Kind: kind}
}

func (n Node) String() string {
	if n.Kind == nil {
		return fmt.Sprintf("<nil>@%d", n.Pos)
	}
	return fmt.Sprintf("%s@%d", n.Kind, n.Pos)
}

// Token returns the node as a token, if it is one.
func (n Node) Token() (Token, bool) {
	t, ok := n.Kind.(Token)
	return t, ok
}

// Is reports whether the node is a token of kind.
func (n Node) Is(kind TokenKind) bool {
	t, ok := n.Kind.(Token)
	return ok && t.Kind == kind
}

// Equal is structural equality of two kinds.
func Equal(a, b Kind) bool {
	return a == b
}

// expressions

type BinaryExpression struct {
	Left     Node
	Operator Node
	Right    Node
}

type UnaryExpression struct {
	Operator Node
	Operand  Node
}

type ParenthesizedExpression struct {
	Open  Node
	Inner Node
	Close Node
}

// LiteralExpression wraps a literal token or an identifier token.
type LiteralExpression struct {
	Token Node
}

type IdentifierExpression struct {
	Identifier Node
}

func (BinaryExpression) isKind()        {}
func (UnaryExpression) isKind()         {}
func (ParenthesizedExpression) isKind() {}
func (LiteralExpression) isKind()       {}
func (IdentifierExpression) isKind()    {}

func (b BinaryExpression) String() string {
	return fmt.Sprintf("BinaryExpression(%s %s %s)", b.Left.Kind, b.Operator.Kind, b.Right.Kind)
}

func (u UnaryExpression) String() string {
	return fmt.Sprintf("UnaryExpression(%s %s)", u.Operator.Kind, u.Operand.Kind)
}

func (p ParenthesizedExpression) String() string {
	return fmt.Sprintf("ParenthesizedExpression(%s)", p.Inner.Kind)
}

func (l LiteralExpression) String() string {
	return fmt.Sprintf("LiteralExpression(%s)", l.Token.Kind)
}

func (i IdentifierExpression) String() string {
	return fmt.Sprintf("IdentifierExpression(%s)", i.Identifier.Kind)
}

// statements

type BlockStatement struct {
	Open  Node
	Inner Node
	Close Node
}

type ExpressionStatement struct {
	Expression Node
	Semicolon  Node
}

type VariableDeclaration struct {
	Keyword    Node
	Identifier Node
	Equals     Node
	Expression Node
	Semicolon  Node
}

type VariableAssignment struct {
	Identifier Node
	Equals     Node
	Expression Node
}

type IfStatement struct {
	Keyword    Node
	OpenParen  Node
	Condition  Node
	CloseParen Node
	OpenBrace  Node
	Body       Node
	CloseBrace Node
}

// The following statements have no parser production yet.

type WhileStatement struct {
	Keyword    Node
	OpenParen  Node
	Condition  Node
	CloseParen Node
	OpenBrace  Node
	Body       Node
	CloseBrace Node
}

type ForStatement struct {
	Keyword         Node
	OpenParen       Node
	Initializer     Node
	FirstSemicolon  Node
	Condition       Node
	SecondSemicolon Node
	Incrementor     Node
	CloseParen      Node
	OpenBrace       Node
	Body            Node
	CloseBrace      Node
}

// Label is the zero Node when absent.
type BreakStatement struct {
	Keyword   Node
	Label     Node
	Semicolon Node
}

type ContinueStatement struct {
	Keyword   Node
	Label     Node
	Semicolon Node
}

// Expression is the zero Node when absent.
type ReturnStatement struct {
	Keyword    Node
	Expression Node
	Semicolon  Node
}

type MatchStatement struct {
	Keyword    Node
	OpenParen  Node
	Expression Node
	CloseParen Node
	OpenBrace  Node
	Arms       Node
	CloseBrace Node
}

func (BlockStatement) isKind()      {}
func (ExpressionStatement) isKind() {}
func (VariableDeclaration) isKind() {}
func (VariableAssignment) isKind()  {}
func (IfStatement) isKind()         {}
func (WhileStatement) isKind()      {}
func (ForStatement) isKind()        {}
func (BreakStatement) isKind()      {}
func (ContinueStatement) isKind()   {}
func (ReturnStatement) isKind()     {}
func (MatchStatement) isKind()      {}

func (b BlockStatement) String() string {
	return fmt.Sprintf("BlockStatement(%s)", b.Inner.Kind)
}

func (e ExpressionStatement) String() string {
	return fmt.Sprintf("ExpressionStatement(%s)", e.Expression.Kind)
}

func (v VariableDeclaration) String() string {
	return fmt.Sprintf("VariableDeclaration(%s = %s)", v.Identifier.Kind, v.Expression.Kind)
}

func (v VariableAssignment) String() string {
	return fmt.Sprintf("VariableAssignment(%s = %s)", v.Identifier.Kind, v.Expression.Kind)
}

func (i IfStatement) String() string {
	return fmt.Sprintf("IfStatement(%s { %s })", i.Condition.Kind, i.Body.Kind)
}

func (w WhileStatement) String() string {
	return fmt.Sprintf("WhileStatement(%s { %s })", w.Condition.Kind, w.Body.Kind)
}

func (f ForStatement) String() string {
	return fmt.Sprintf("ForStatement(%s; %s; %s { %s })",
		f.Initializer.Kind, f.Condition.Kind, f.Incrementor.Kind, f.Body.Kind)
}

func (BreakStatement) String() string {
	return "BreakStatement"
}

func (ContinueStatement) String() string {
	return "ContinueStatement"
}

func (r ReturnStatement) String() string {
	return fmt.Sprintf("ReturnStatement(%v)", r.Expression.Kind)
}

func (m MatchStatement) String() string {
	return fmt.Sprintf("MatchStatement(%s)", m.Expression.Kind)
}
