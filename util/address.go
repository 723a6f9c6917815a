package util

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/mvsnet/mvsd/domain/dagconfig"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address can not
	// be decoded as the requested address type, either because of its
	// version byte or because of its payload length.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// DecodePubKeyHashAddress decodes the base58check encoding of a
// pay-to-pubkey-hash address of the network described by params.
func DecodePubKeyHashAddress(addr string, params *dagconfig.Params) (*btcutil.AddressPubKeyHash, error) {
	hash, err := decodeHash160(addr, params.PubKeyHashAddrID)
	if err != nil {
		return nil, err
	}
	return btcutil.NewAddressPubKeyHash(hash, params.ChainParams())
}

// DecodeScriptHashAddress decodes the base58check encoding of a
// pay-to-script-hash address of the network described by params.
func DecodeScriptHashAddress(addr string, params *dagconfig.Params) (*btcutil.AddressScriptHash, error) {
	hash, err := decodeHash160(addr, params.ScriptHashAddrID)
	if err != nil {
		return nil, err
	}
	return btcutil.NewAddressScriptHashFromHash(hash, params.ChainParams())
}

func decodeHash160(addr string, expectedVersion byte) ([]byte, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, errors.Wrapf(ErrChecksumMismatch, "address %s", addr)
		}
		return nil, errors.Wrapf(err, "decoding address %s", addr)
	}
	if len(decoded) != ripemd160.Size {
		return nil, errors.Wrapf(ErrUnknownAddressType, "address %s carries a %d byte payload", addr, len(decoded))
	}
	if version != expectedVersion {
		return nil, errors.Wrapf(ErrUnknownAddressType, "address %s has version byte %d, expected %d",
			addr, version, expectedVersion)
	}
	return decoded, nil
}
