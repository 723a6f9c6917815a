package attachment

import (
	"fmt"
	"io"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
)

// AssetTransfer moves a quantity of an asset between two addresses.
//
// Wire layout, in order: symbol, sender, recipient (var strings), status
// (4 bytes), maximum supply, quantity, timestamp, height (8 bytes each).
// No relation between Quantity and MaximumSupply is enforced here.
type AssetTransfer struct {
	Symbol        string
	Sender        string
	Recipient     string
	Status        uint32
	MaximumSupply uint64
	Quantity      uint64
	Timestamp     uint64
	Height        uint64
}

const assetTransferFixedSize = 4 + 8*4

// Type implements Payload.
func (a *AssetTransfer) Type() Type {
	return TypeAssetTransfer
}

// IsValid implements Payload.
func (a *AssetTransfer) IsValid() bool {
	return *a != AssetTransfer{}
}

// Reset implements Payload.
func (a *AssetTransfer) Reset() {
	*a = AssetTransfer{}
}

// SerializeSize implements Payload.
func (a *AssetTransfer) SerializeSize() int {
	return serialization.VarStringSerializeSize(a.Symbol) +
		serialization.VarStringSerializeSize(a.Sender) +
		serialization.VarStringSerializeSize(a.Recipient) +
		assetTransferFixedSize
}

// Serialize implements Payload.
func (a *AssetTransfer) Serialize(w io.Writer) error {
	return serialization.WriteElements(w, a.Symbol, a.Sender, a.Recipient, a.Status,
		a.MaximumSupply, a.Quantity, a.Timestamp, a.Height)
}

// Deserialize implements Payload.
func (a *AssetTransfer) Deserialize(r io.Reader) error {
	var decoded AssetTransfer
	err := serialization.ReadElements(r, &decoded.Symbol, &decoded.Sender, &decoded.Recipient,
		&decoded.Status, &decoded.MaximumSupply, &decoded.Quantity, &decoded.Timestamp, &decoded.Height)
	if err != nil {
		return ruleerrors.NewErrMalformedAttachment(err)
	}
	*a = decoded
	return nil
}

func (a *AssetTransfer) String() string {
	return fmt.Sprintf("\t symbol = %s\n\t sender = %s\n\t recipient = %s\n\t status = %d\n"+
		"\t maximum_supply = %d\n\t quantity = %d\n\t timestamp = %d\n\t height = %d\n",
		a.Symbol, a.Sender, a.Recipient, a.Status, a.MaximumSupply, a.Quantity, a.Timestamp, a.Height)
}

func (*AssetTransfer) sealed() {}
