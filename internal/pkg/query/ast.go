package query

// Node is implemented by every expression of a filter.
type Node interface {
	node()
}

// Op is a logical or comparison operator.
type Op string

const (
	OpAnd      Op = "AND"
	OpOr       Op = "OR"
	OpEq       Op = "="
	OpNeq      Op = "!="
	OpContains Op = "CONTAINS"
)

// Binary joins two expressions with AND or OR.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (Binary) node() {}

// Term compares one column with a literal.
// An empty Column searches every field of the row.
type Term struct {
	Column string
	Value  string
	Op     Op
}

func (Term) node() {}

// Not negates its operand.
type Not struct {
	Operand Node
}

func (Not) node() {}
