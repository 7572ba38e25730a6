package ast

// NodeType represents the type of an expression
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeSymbol = nodeTypeValue | 4
	NodeTypeBool   = nodeTypeValue | 8
	NodeTypeString = nodeTypeValue | 16

	NodeTypeNil  = nodeTypeVector | 1
	NodeTypePair = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true for atom types
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for the empty list and pairs
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeFloat:  "float",
	NodeTypeSymbol: "symbol",
	NodeTypeBool:   "bool",
	NodeTypeString: "string",
	NodeTypeNil:    "nil",
	NodeTypePair:   "pair",
}
