package docstore

// Op is a comparison operator usable in a query condition.
type Op string

const (
	OpEq  Op = "="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

// Cond constrains one field. Conditions on declared index fields are pushed
// down to SQL; anything else is filtered during a scan.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Query is a conjunction of conditions. A nil or empty query matches every
// document in the collection.
type Query []Cond

func Eq(field string, value any) Cond { return Cond{Field: field, Op: OpEq, Value: value} }
func Gt(field string, value any) Cond { return Cond{Field: field, Op: OpGt, Value: value} }
func Gte(field string, value any) Cond { return Cond{Field: field, Op: OpGte, Value: value} }
func Lt(field string, value any) Cond { return Cond{Field: field, Op: OpLt, Value: value} }
func Lte(field string, value any) Cond { return Cond{Field: field, Op: OpLte, Value: value} }

// Where builds a query from conditions.
func Where(conds ...Cond) Query { return Query(conds) }

// Matches reports whether doc satisfies every condition.
func (q Query) Matches(doc Document) bool {
	for _, c := range q {
		if !c.matches(doc) {
			return false
		}
	}
	return true
}

func (c Cond) matches(doc Document) bool {
	v, present := doc[c.Field]
	if !present {
		return false
	}
	cmp, comparable := compare(v, c.Value)
	if !comparable {
		return false
	}
	switch c.Op {
	case OpEq:
		return cmp == 0
	case OpGt:
		return cmp > 0
	case OpGte:
		return cmp >= 0
	case OpLt:
		return cmp < 0
	case OpLte:
		return cmp <= 0
	}
	return false
}

// compare orders two document values. Numbers compare numerically with the
// usual JSON float64 coercion, strings lexically, bools by equality only.
func compare(a, b any) (int, bool) {
	if na, aok := toFloat(a); aok {
		nb, bok := toFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case na < nb:
			return -1, true
		case na > nb:
			return 1, true
		}
		return 0, true
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		if av == bv {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
