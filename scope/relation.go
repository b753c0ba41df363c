package scope

import "stylec/css"

// Relation composes a compound selector relating a previously generated
// class to a target class via a combinator, optionally conditioned on a
// pseudo-state of the source. Relation is an immutable value: every chained
// call returns a fresh one, so a partially built relation can be stored and
// reused without aliasing surprises.
type Relation struct {
	scope  *Scope
	source string
	pseudo string
}

// Hover conditions the relation on the source class being hovered.
func (r Relation) Hover() Relation {
	r.pseudo = ":hover"
	return r
}

// Focus conditions the relation on the source class having focus.
func (r Relation) Focus() Relation {
	r.pseudo = ":focus"
	return r
}

// Active conditions the relation on the source class being active.
func (r Relation) Active() Relation {
	r.pseudo = ":active"
	return r
}

// Adjacent styles a target class immediately following the source.
func (r Relation) Adjacent(target string, st css.Style) {
	r.emit("+", target, st)
}

// Child styles a target class that is a direct child of the source.
func (r Relation) Child(target string, st css.Style) {
	r.emit(">", target, st)
}

// Sibling styles a target class that is a later sibling of the source.
func (r Relation) Sibling(target string, st css.Style) {
	r.emit("~", target, st)
}

// Descendant styles a target class anywhere below the source.
func (r Relation) Descendant(target string, st css.Style) {
	r.emit(" ", target, st)
}

func (r Relation) emit(combinator, target string, st css.Style) {
	r.scope.Global("."+r.source+r.pseudo+combinator+"."+target, st)
}
