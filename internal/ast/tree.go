package ast

import (
	"fmt"

	"fortio.org/safecast"

	"m2l/internal/arena"
)

// Hints are initial table capacities; zero fields take the defaults.
type Hints struct {
	Exprs, Stmts, Decls, Root, Args, Params int
}

func (h *Hints) fill() {
	if h.Exprs <= 0 {
		h.Exprs = 1 << 9
	}
	if h.Stmts <= 0 {
		h.Stmts = 1 << 7
	}
	if h.Decls <= 0 {
		h.Decls = 1 << 6
	}
	if h.Root <= 0 {
		h.Root = 1 << 6
	}
	if h.Args <= 0 {
		h.Args = 1 << 6
	}
	if h.Params <= 0 {
		h.Params = 1 << 5
	}
}

// Tree stores every node of one parse in index-addressed tables. Accessors
// return copies; hold ExprIDs, not Exprs, across pushes.
type Tree struct {
	exprs  *arena.List[Expr]
	stmts  *arena.List[Expr]
	decls  *arena.List[Expr]
	root   *arena.List[Expr]
	args   *arena.List[Arg]
	params *arena.List[ExprID]
}

// New allocates the six tables and seeds the sentinel into the primary ones.
func New(hints Hints) (*Tree, error) {
	hints.fill()
	t := &Tree{}
	var err error
	if t.exprs, err = arena.New[Expr](hints.Exprs); err != nil {
		return nil, fmt.Errorf("ast exprs: %w", err)
	}
	if t.stmts, err = arena.New[Expr](hints.Stmts); err != nil {
		return nil, fmt.Errorf("ast stmts: %w", err)
	}
	if t.decls, err = arena.New[Expr](hints.Decls); err != nil {
		return nil, fmt.Errorf("ast decls: %w", err)
	}
	if t.root, err = arena.New[Expr](hints.Root); err != nil {
		return nil, fmt.Errorf("ast root: %w", err)
	}
	if t.args, err = arena.New[Arg](hints.Args); err != nil {
		return nil, fmt.Errorf("ast args: %w", err)
	}
	if t.params, err = arena.New[ExprID](hints.Params); err != nil {
		return nil, fmt.Errorf("ast params: %w", err)
	}
	for _, table := range t.primary() {
		table.Push(Expr{})
	}
	return t, nil
}

func (t *Tree) primary() [4]*arena.List[Expr] {
	return [4]*arena.List[Expr]{t.exprs, t.stmts, t.decls, t.root}
}

// IsValid reports whether all tables are live and the sentinels are present.
func (t *Tree) IsValid() bool {
	if t == nil || !t.args.IsValid() || !t.params.IsValid() {
		return false
	}
	for _, table := range t.primary() {
		if !table.IsValid() || table.Len() < 1 {
			return false
		}
	}
	return true
}

// pushInto returns the index of the new entry, or 0 if the push failed.
func pushInto[T any](table *arena.List[T], v T) uint32 {
	idx := table.Len()
	if !table.Push(v).Succeeded() {
		return 0
	}
	id, err := safecast.Conv[uint32](idx)
	if err != nil {
		panic(fmt.Errorf("ast index overflow: %w", err))
	}
	return id
}

// PushExpr stores e and returns its id, or NoExprID if storage failed.
func (t *Tree) PushExpr(e Expr) ExprID {
	if t == nil {
		return NoExprID
	}
	return ExprID(pushInto(t.exprs, e))
}

// PushStmt stores a statement-shaped node.
func (t *Tree) PushStmt(e Expr) StmtID {
	if t == nil {
		return NoStmtID
	}
	return StmtID(pushInto(t.stmts, e))
}

// PushDecl stores a declaration-shaped node.
func (t *Tree) PushDecl(e Expr) DeclID {
	if t == nil {
		return NoDeclID
	}
	return DeclID(pushInto(t.decls, e))
}

// PushRoot appends a top-level node and returns its position in root.
func (t *Tree) PushRoot(e Expr) uint32 {
	if t == nil {
		return 0
	}
	return pushInto(t.root, e)
}

// PushArg appends a call argument and returns its index in args.
func (t *Tree) PushArg(a Arg) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	idx := t.args.Len()
	if !t.args.Push(a).Succeeded() {
		return 0, false
	}
	return uint32(idx), true
}

// PushParam appends a parameter reference and returns its index in params.
func (t *Tree) PushParam(id ExprID) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	idx := t.params.Len()
	if !t.params.Push(id).Succeeded() {
		return 0, false
	}
	return uint32(idx), true
}

// Expr returns a copy of the node. The sentinel id yields false.
func (t *Tree) Expr(id ExprID) (Expr, bool) {
	if t == nil || !id.IsValid() {
		return Expr{}, false
	}
	return t.exprs.Get(int(id))
}

// Stmt returns a copy of a statement node.
func (t *Tree) Stmt(id StmtID) (Expr, bool) {
	if t == nil || !id.IsValid() {
		return Expr{}, false
	}
	return t.stmts.Get(int(id))
}

// Decl returns a copy of a declaration node.
func (t *Tree) Decl(id DeclID) (Expr, bool) {
	if t == nil || !id.IsValid() {
		return Expr{}, false
	}
	return t.decls.Get(int(id))
}

// Root returns the i-th top-level node; 0 is the sentinel.
func (t *Tree) Root(i uint32) (Expr, bool) {
	if t == nil || i == 0 {
		return Expr{}, false
	}
	return t.root.Get(int(i))
}

// Arg returns the i-th entry of the args table.
func (t *Tree) Arg(i uint32) (Arg, bool) {
	if t == nil {
		return Arg{}, false
	}
	return t.args.Get(int(i))
}

// Param returns the i-th entry of the params table.
func (t *Tree) Param(i uint32) (ExprID, bool) {
	if t == nil {
		return NoExprID, false
	}
	return t.params.Get(int(i))
}

// Counts reports the length of every table, sentinels included.
type Counts struct {
	Exprs, Stmts, Decls, Root, Args, Params int
}

// Counts returns the current table sizes.
func (t *Tree) Counts() Counts {
	if t == nil {
		return Counts{}
	}
	return Counts{
		Exprs:  t.exprs.Len(),
		Stmts:  t.stmts.Len(),
		Decls:  t.decls.Len(),
		Root:   t.root.Len(),
		Args:   t.args.Len(),
		Params: t.params.Len(),
	}
}

// Destroy releases every table. A second call reports ResultNullPointer.
func (t *Tree) Destroy() arena.Result {
	if !t.IsValid() {
		return arena.ResultNullPointer
	}
	for _, table := range t.primary() {
		table.Destroy()
	}
	t.args.Destroy()
	t.params.Destroy()
	return arena.ResultOK
}
