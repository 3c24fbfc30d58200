package designtokens

import "slices"

// Type is a DTCG token type tag.
//
// See https://design-tokens.github.io/community-group/format/#types
type Type string

const (
	TypeString      Type = "string"
	TypeNumber      Type = "number"
	TypeBoolean     Type = "boolean"
	TypeObject      Type = "object"
	TypeArray       Type = "array"
	TypeNull        Type = "null"
	TypeColor       Type = "color"
	TypeDimension   Type = "dimension"
	TypeFontFamily  Type = "fontFamily"
	TypeFontWeight  Type = "fontWeight"
	TypeFontStyle   Type = "fontStyle"
	TypeDuration    Type = "duration"
	TypeStrokeStyle Type = "strokeStyle"
	TypeBorder      Type = "border"
	TypeTransition  Type = "transition"
	TypeShadow      Type = "shadow"
	TypeGradient    Type = "gradient"
	TypeTypography  Type = "typography"
	TypeCubicBezier Type = "cubicBezier"
)

var types = []Type{
	TypeString,
	TypeNumber,
	TypeBoolean,
	TypeObject,
	TypeArray,
	TypeNull,
	TypeColor,
	TypeDimension,
	TypeFontFamily,
	TypeFontWeight,
	TypeFontStyle,
	TypeDuration,
	TypeStrokeStyle,
	TypeBorder,
	TypeTransition,
	TypeShadow,
	TypeGradient,
	TypeTypography,
	TypeCubicBezier,
}

// Types returns every type tag known to this package.
func Types() []Type {
	return slices.Clone(types)
}

// Known reports whether t is one of Types. Unknown tags are still accepted
// everywhere, so documents written for newer versions of the format load.
func (t Type) Known() bool {
	return slices.Contains(types, t)
}

func (t Type) String() string {
	return string(t)
}
