package ast

type (
	// ExprID indexes Tree.exprs.
	ExprID uint32
	// StmtID indexes Tree.stmts.
	StmtID uint32
	// DeclID indexes Tree.decls.
	DeclID uint32
)

// Index 0 of every primary table holds the sentinel, so 0 doubles as the
// null id. A 0 returned from a push also means the push failed; callers that
// need to tell the two apart must check the producing operation's status.
const (
	NoExprID ExprID = 0
	NoStmtID StmtID = 0
	NoDeclID DeclID = 0
)

func (id ExprID) IsValid() bool { return id != NoExprID }
func (id StmtID) IsValid() bool { return id != NoStmtID }
func (id DeclID) IsValid() bool { return id != NoDeclID }
