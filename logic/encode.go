package logic

import (
	"fmt"
)

// Encode returns a tree of maps and slices representing the clause, suitable
// for encoding/json or YAML marshalers.
//
//	{"fact": {"name": "parent", "terms": [{"var": "john"}, {"var": "mary"}]}}
//	{"rule": {"head": {...}, "body": [{...}, ...]}}
func Encode(c Clause) map[string]interface{} {
	switch c := c.(type) {
	case *Fact:
		return map[string]interface{}{"fact": encodeAtom(c.Head)}
	case *Rule:
		body := make([]interface{}, len(c.Body))
		for i, a := range c.Body {
			body[i] = encodeAtom(a)
		}
		return map[string]interface{}{
			"rule": map[string]interface{}{
				"head": encodeAtom(c.Head),
				"body": body,
			},
		}
	default:
		panic(fmt.Sprintf("logic.Encode: unhandled type %T", c))
	}
}

// EncodeAll encodes a sequence of clauses.
func EncodeAll(cs []Clause) []interface{} {
	xs := make([]interface{}, len(cs))
	for i, c := range cs {
		xs[i] = Encode(c)
	}
	return xs
}

func encodeAtom(a Atom) map[string]interface{} {
	return map[string]interface{}{
		"name":  a.Name,
		"terms": encodeTerms(a.Terms),
	}
}

func encodeTerms(ts []Term) []interface{} {
	xs := make([]interface{}, len(ts))
	for i, t := range ts {
		xs[i] = EncodeTerm(t)
	}
	return xs
}

// EncodeTerm returns a single-key map tagging the term's variant.
func EncodeTerm(t Term) map[string]interface{} {
	switch t := t.(type) {
	case Constant:
		return map[string]interface{}{"const": t.Value}
	case Variable:
		return map[string]interface{}{"var": t.Name}
	case *Compound:
		return map[string]interface{}{
			"comp": map[string]interface{}{
				"functor": t.Functor,
				"args":    encodeTerms(t.Args),
			},
		}
	default:
		panic(fmt.Sprintf("logic.EncodeTerm: unhandled type %T", t))
	}
}
