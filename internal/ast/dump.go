package ast

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON object.
type Object = orderedmap.OrderedMap[string, any]

// Dump converts a tree into nested ordered objects keyed "$type", "$loc"
// and then the node fields. Locations are omitted unless withLocs is set.
func Dump(n Node, withLocs bool) *Object {
	d := dumper{withLocs: withLocs}
	return d.node(n)
}

// DumpJSON renders Dump as JSON indented by two spaces.
func DumpJSON(n Node, withLocs bool) (string, error) {
	b, err := json.MarshalIndent(Dump(n, withLocs), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type dumper struct {
	withLocs bool
}

func (d dumper) node(n Node) *Object {
	o := orderedmap.New[string, any]()
	o.Set("$type", n.Type())
	if d.withLocs && n.Location() != nil {
		o.Set("$loc", n.Location().String())
	}

	switch x := n.(type) {
	case *Program:
		stmts := make([]any, len(x.Statements))
		for i, s := range x.Statements {
			stmts[i] = d.node(s)
		}
		o.Set("statements", stmts)
	case *Statement:
		o.Set("expr", d.expr(x.Expr))
	case *ParenthesesExpr:
		o.Set("expr", d.expr(x.Expr))
	case *NumberLiteral:
		o.Set("value", x.Value)
	case *PercentExpr:
		o.Set("value", d.expr(x.Value))
	case *ArrayLiteral:
		o.Set("value", d.list(x.Elements))
	case *ColorNameLiteral:
		o.Set("value", x.Name)
	case *ColorHexLiteral:
		o.Set("value", x.Hex)
	case *ColorByNumber:
		o.Set("value", d.expr(x.Value))
	case *ColorByTemperature:
		o.Set("value", d.expr(x.Value))
	case *ColorByWavelength:
		o.Set("value", d.expr(x.Value))
	case *ColorBySpaceParams:
		o.Set("space", x.Space)
		o.Set("params", d.list(x.Params))
	case *ScaleExpr:
		if x.Source != nil {
			o.Set("colors", d.expr(x.Source))
		} else {
			o.Set("colors", d.list(x.Colors))
		}
		if x.Domain != nil {
			o.Set("domain", d.list(x.Domain))
		}
		if x.Mode != "" {
			o.Set("mode", x.Mode)
		}
	case *BezierExpr:
		o.Set("colors", d.expr(x.Colors))
	case *BrewerConst:
		o.Set("name", x.Name)
	case *ParamExpr:
		o.Set("obj", d.expr(x.Obj))
		o.Set("name", x.Name)
		if x.Value != nil {
			o.Set("value", d.expr(x.Value))
			if x.Operator != "" {
				o.Set("operator", x.Operator)
			}
		}
	case *UnaryExpr:
		o.Set("operator", x.Operator)
		o.Set("value", d.expr(x.Value))
	case *BinaryExpr:
		o.Set("operator", x.Operator)
		if x.Options != nil {
			opts := orderedmap.New[string, any]()
			if x.Options.Ratio != nil {
				opts.Set("ratio", d.expr(x.Options.Ratio))
			}
			if x.Options.Mode != "" {
				opts.Set("mode", x.Options.Mode)
			}
			o.Set("options", opts)
		}
		o.Set("left", d.expr(x.Left))
		o.Set("right", d.expr(x.Right))
	case *GetVar:
		o.Set("name", x.Name)
	case *SetVar:
		o.Set("name", x.Name)
		o.Set("value", d.expr(x.Value))
	}
	return o
}

func (d dumper) expr(e Expression) any {
	if e == nil {
		return nil
	}
	return d.node(e)
}

func (d dumper) list(es []Expression) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = d.node(e)
	}
	return out
}
