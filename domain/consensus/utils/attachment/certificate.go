package attachment

import (
	"io"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
)

// Certificate grants its owner a right over an asset symbol, such as the
// right to issue more of it.
type Certificate struct {
	Symbol   string
	Owner    string
	Address  string
	CertType uint32
	Status   uint8
}

// Type implements Payload.
func (c *Certificate) Type() Type {
	return TypeCertificate
}

// IsValid implements Payload.
func (c *Certificate) IsValid() bool {
	return *c != Certificate{}
}

// Reset implements Payload.
func (c *Certificate) Reset() {
	*c = Certificate{}
}

// SerializeSize implements Payload.
func (c *Certificate) SerializeSize() int {
	return serialization.VarStringSerializeSize(c.Symbol) +
		serialization.VarStringSerializeSize(c.Owner) +
		serialization.VarStringSerializeSize(c.Address) + 4 + 1
}

// Serialize implements Payload.
func (c *Certificate) Serialize(w io.Writer) error {
	return serialization.WriteElements(w, c.Symbol, c.Owner, c.Address, c.CertType, c.Status)
}

// Deserialize implements Payload.
func (c *Certificate) Deserialize(r io.Reader) error {
	var decoded Certificate
	err := serialization.ReadElements(r, &decoded.Symbol, &decoded.Owner, &decoded.Address,
		&decoded.CertType, &decoded.Status)
	if err != nil {
		return ruleerrors.NewErrMalformedAttachment(err)
	}
	*c = decoded
	return nil
}

func (*Certificate) sealed() {}
