package attachment

import (
	"io"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
)

// AssetIssue registers a new asset symbol and its supply.
type AssetIssue struct {
	Symbol        string
	MaximumSupply uint64
	DecimalNumber uint8
	Issuer        string
	Address       string
	Description   string
}

// Type implements Payload.
func (a *AssetIssue) Type() Type {
	return TypeAssetIssue
}

// IsValid implements Payload.
func (a *AssetIssue) IsValid() bool {
	return *a != AssetIssue{}
}

// Reset implements Payload.
func (a *AssetIssue) Reset() {
	*a = AssetIssue{}
}

// SerializeSize implements Payload.
func (a *AssetIssue) SerializeSize() int {
	return serialization.VarStringSerializeSize(a.Symbol) + 8 + 1 +
		serialization.VarStringSerializeSize(a.Issuer) +
		serialization.VarStringSerializeSize(a.Address) +
		serialization.VarStringSerializeSize(a.Description)
}

// Serialize implements Payload.
func (a *AssetIssue) Serialize(w io.Writer) error {
	return serialization.WriteElements(w, a.Symbol, a.MaximumSupply, a.DecimalNumber,
		a.Issuer, a.Address, a.Description)
}

// Deserialize implements Payload.
func (a *AssetIssue) Deserialize(r io.Reader) error {
	var decoded AssetIssue
	err := serialization.ReadElements(r, &decoded.Symbol, &decoded.MaximumSupply, &decoded.DecimalNumber,
		&decoded.Issuer, &decoded.Address, &decoded.Description)
	if err != nil {
		return ruleerrors.NewErrMalformedAttachment(err)
	}
	*a = decoded
	return nil
}

func (*AssetIssue) sealed() {}
