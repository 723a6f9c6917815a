package stealth

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	// OptionReuseScanKey signals that the scan key doubles as the spend key.
	OptionReuseScanKey byte = 0x01

	compressedPubKeyLen = 33
	maxPrefixBits       = 32
)

// ErrMalformedAddress indicates a string that is not a stealth address.
var ErrMalformedAddress = errors.New("malformed stealth address")

// Prefix is the optional filter a recipient publishes so that it only has to
// scan the subset of transactions whose metadata hash starts with it.
type Prefix struct {
	NumberBits uint8
	Bitfield   []byte
}

// Address is a reusable stealth payment address. Every payment to it derives
// a fresh one-time key.
type Address struct {
	Options    byte
	ScanKey    *btcec.PublicKey
	SpendKeys  []*btcec.PublicKey
	Signatures uint8
	Prefix     Prefix
}

// DecodeAddress decodes the base58check form of a stealth address carrying
// the given version byte. Layout after the version byte:
// options | scan key | spend key count | spend keys | signatures |
// prefix bits | prefix bitfield.
func DecodeAddress(text string, version byte) (*Address, error) {
	payload, decodedVersion, err := base58.CheckDecode(text)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedAddress, "%s", err)
	}
	if decodedVersion != version {
		return nil, errors.Wrapf(ErrMalformedAddress, "version byte %d, expected %d", decodedVersion, version)
	}

	r := bytes.NewReader(payload)
	address := &Address{}
	address.Options, err = r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "missing options")
	}

	address.ScanKey, err = readPubKey(r)
	if err != nil {
		return nil, err
	}

	spendKeyCount, err := r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "missing spend key count")
	}
	address.SpendKeys = make([]*btcec.PublicKey, 0, spendKeyCount)
	for i := byte(0); i < spendKeyCount; i++ {
		spendKey, err := readPubKey(r)
		if err != nil {
			return nil, err
		}
		address.SpendKeys = append(address.SpendKeys, spendKey)
	}

	address.Signatures, err = r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "missing signature count")
	}

	address.Prefix.NumberBits, err = r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "missing prefix length")
	}
	if address.Prefix.NumberBits > maxPrefixBits {
		return nil, errors.Wrapf(ErrMalformedAddress, "prefix of %d bits", address.Prefix.NumberBits)
	}
	address.Prefix.Bitfield = make([]byte, (int(address.Prefix.NumberBits)+7)/8)
	if _, err := io.ReadFull(r, address.Prefix.Bitfield); err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "missing prefix bitfield")
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(ErrMalformedAddress, "%d trailing bytes", r.Len())
	}

	if len(address.SpendKeys) == 0 && address.Options&OptionReuseScanKey == 0 {
		return nil, errors.Wrap(ErrMalformedAddress, "no spend key")
	}
	return address, nil
}

// Encode returns the base58check form of a using the given version byte.
func (a *Address) Encode(version byte) string {
	var buf bytes.Buffer
	buf.WriteByte(a.Options)
	buf.Write(a.ScanKey.SerializeCompressed())
	buf.WriteByte(byte(len(a.SpendKeys)))
	for _, spendKey := range a.SpendKeys {
		buf.Write(spendKey.SerializeCompressed())
	}
	buf.WriteByte(a.Signatures)
	buf.WriteByte(a.Prefix.NumberBits)
	buf.Write(a.Prefix.Bitfield)
	return base58.CheckEncode(buf.Bytes(), version)
}

// SpendKey returns the key the one-time payment keys are derived from.
func (a *Address) SpendKey() (*btcec.PublicKey, error) {
	switch {
	case len(a.SpendKeys) == 0:
		return a.ScanKey, nil
	case len(a.SpendKeys) == 1 && a.Signatures <= 1:
		return a.SpendKeys[0], nil
	}
	return nil, errors.Errorf("multi-signature stealth addresses (%d of %d) are not supported",
		a.Signatures, len(a.SpendKeys))
}

func readPubKey(r *bytes.Reader) (*btcec.PublicKey, error) {
	serialized := make([]byte, compressedPubKeyLen)
	if _, err := io.ReadFull(r, serialized); err != nil {
		return nil, errors.Wrap(ErrMalformedAddress, "truncated public key")
	}
	key, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedAddress, "%s", err)
	}
	return key, nil
}
