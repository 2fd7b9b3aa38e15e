package export

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/logic-lang/logicopt/core/ast"
)

// canonicalNode is the intermediate form for deterministic hashing. Printer
// hints do not participate: two trees that print differently but share
// structure fingerprint identically.
type canonicalNode struct {
	Kind uint8           `cbor:"1,keyasint"`
	Name string          `cbor:"2,keyasint,omitempty"`
	Kids []canonicalNode `cbor:"3,keyasint,omitempty"`
}

func canonicalize(n *ast.Node) canonicalNode {
	out := canonicalNode{Kind: uint8(n.Kind), Name: n.Name}
	if len(n.Kids) > 0 {
		out.Kids = make([]canonicalNode, len(n.Kids))
		for i, k := range n.Kids {
			out.Kids[i] = canonicalize(k)
		}
	}
	return out
}

// Fingerprint computes a stable hash of the tree's structure: the canonical
// form is encoded with CBOR core deterministic encoding and digested with
// SHA-256. Equal trees fingerprint equal across processes and platforms.
func Fingerprint(n *ast.Node) (string, error) {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return "", fmt.Errorf("building cbor encoder: %w", err)
	}
	encoded, err := mode.Marshal(canonicalize(n))
	if err != nil {
		return "", fmt.Errorf("encoding canonical form: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

// ShortFingerprint is the 16-character prefix used for display
func ShortFingerprint(n *ast.Node) (string, error) {
	full, err := Fingerprint(n)
	if err != nil {
		return "", err
	}
	return full[:16], nil
}
