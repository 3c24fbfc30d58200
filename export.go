package designtokens

import (
	"bytes"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"
)

// ToJSON returns the token as a DTCG object with its raw value.
func (t *Token) ToJSON() *ir.Node {
	return t.toJSON(t.value.Clone(), t.typ)
}

func (t *Token) toJSON(value *ir.Node, typ Type) *ir.Node {
	res := ir.Object()
	res.Set("$value", value)
	if typ != "" {
		res.Set("$type", ir.FromString(string(typ)))
	}
	if t.Description != "" {
		res.Set("$description", ir.FromString(t.Description))
	}
	if t.Extensions != nil {
		res.Set("$extensions", t.Extensions.Clone())
	}
	setExtra(res, t.Extra)
	return res
}

// ToJSON returns the group and its descendants as a DTCG document.
func (g *Group) ToJSON() *ir.Node {
	res, _ := g.toJSON(func(t *Token) (*ir.Node, error) {
		return t.ToJSON(), nil
	})
	return res
}

// ResolvedJSON is like ToJSON with the value and type resolved.
func (t *Token) ResolvedJSON() (*ir.Node, error) {
	v, err := t.ResolvedValue()
	if err != nil {
		return nil, err
	}
	typ, err := t.ResolvedType()
	if err != nil {
		return nil, err
	}
	return t.toJSON(v, typ), nil
}

// ResolvedJSON is like ToJSON with every token value and type resolved.
func (g *Group) ResolvedJSON() (*ir.Node, error) {
	return g.toJSON((*Token).ResolvedJSON)
}

// MetaJSON is like ToJSON without the children.
func (g *Group) MetaJSON() *ir.Node {
	res, _ := (&Group{
		Type:        g.Type,
		Description: g.Description,
		Extensions:  g.Extensions,
		Extra:       g.Extra,
	}).toJSON(nil)
	return res
}

func (g *Group) toJSON(token func(*Token) (*ir.Node, error)) (*ir.Node, error) {
	res := ir.Object()
	if g.Type != "" {
		res.Set("$type", ir.FromString(string(g.Type)))
	}
	if g.Description != "" {
		res.Set("$description", ir.FromString(g.Description))
	}
	if g.Extensions != nil {
		res.Set("$extensions", g.Extensions.Clone())
	}
	setExtra(res, g.Extra)
	for _, child := range g.Children() {
		var (
			v   *ir.Node
			err error
		)
		switch c := child.(type) {
		case *Token:
			v, err = token(c)
		case *Group:
			v, err = c.toJSON(token)
		}
		if err != nil {
			return nil, err
		}
		res.Set(child.Name(), v)
	}
	return res, nil
}

func setExtra(dst, extra *ir.Node) {
	if extra == nil {
		return
	}
	for i, f := range extra.Fields {
		if dst.Has(f.String) {
			continue
		}
		dst.Set(f.String, extra.Values[i].Clone())
	}
}

func (t *Token) MarshalJSON() ([]byte, error) {
	return marshal(t.ToJSON())
}

func (g *Group) MarshalJSON() ([]byte, error) {
	return marshal(g.ToJSON())
}

func marshal(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
