package stealth

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// MinSeedLength is the minimum number of seed bytes needed to derive an
// ephemeral key.
const MinSeedLength = 16

// MetadataLength is the length of the data pushed by the metadata output:
// a 4 byte nonce followed by the compressed ephemeral public key.
const MetadataLength = 4 + compressedPubKeyLen

var ephemeralKeyInfo = []byte("mvs stealth ephemeral key")

// Payment is a single payment to a stealth address.
type Payment struct {
	// Metadata is the data carried by the zero value output that lets the
	// recipient recover the payment.
	Metadata []byte

	// EphemeralKey is the sender's one-time public key.
	EphemeralKey *btcec.PublicKey

	// PaymentKey is the one-time key of the recipient the funds are sent
	// to.
	PaymentKey *btcec.PublicKey
}

// NewPayment derives the one-time payment key for a from seed. The same seed
// always yields the same payment, so seeds must never be reused.
func (a *Address) NewPayment(seed []byte) (*Payment, error) {
	if len(seed) < MinSeedLength {
		return nil, errors.Errorf("stealth seed must be at least %d bytes, got %d", MinSeedLength, len(seed))
	}

	spendKey, err := a.SpendKey()
	if err != nil {
		return nil, err
	}

	ephemeralPrivateKey, err := ephemeralKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	ephemeralKey := ephemeralPrivateKey.PubKey()

	tweak, err := sharedTweak(ephemeralPrivateKey, a.ScanKey)
	if err != nil {
		return nil, err
	}
	paymentKey, err := tweakPublicKey(spendKey, tweak)
	if err != nil {
		return nil, err
	}

	metadata, err := grindMetadata(ephemeralKey, a.Prefix)
	if err != nil {
		return nil, err
	}

	return &Payment{
		Metadata:     metadata,
		EphemeralKey: ephemeralKey,
		PaymentKey:   paymentKey,
	}, nil
}

// UncoverPaymentKey is the recipient side of NewPayment: given the scan
// private key and the ephemeral key found in the metadata it returns the
// one-time public key the payment was sent to.
func UncoverPaymentKey(scanPrivateKey *btcec.PrivateKey, spendKey, ephemeralKey *btcec.PublicKey) (*btcec.PublicKey, error) {
	tweak, err := sharedTweak(scanPrivateKey, ephemeralKey)
	if err != nil {
		return nil, err
	}
	return tweakPublicKey(spendKey, tweak)
}

func ephemeralKeyFromSeed(seed []byte) (*btcec.PrivateKey, error) {
	reader := hkdf.New(sha256.New, seed, nil, ephemeralKeyInfo)
	candidate := make([]byte, 32)
	for attempt := 0; attempt < 8; attempt++ {
		if _, err := io.ReadFull(reader, candidate); err != nil {
			return nil, errors.WithStack(err)
		}
		var scalar btcec.ModNScalar
		overflow := scalar.SetByteSlice(candidate)
		if !overflow && !scalar.IsZero() {
			privateKey, _ := btcec.PrivKeyFromBytes(candidate)
			return privateKey, nil
		}
	}
	return nil, errors.New("could not derive an ephemeral key from the seed")
}

func sharedTweak(privateKey *btcec.PrivateKey, publicKey *btcec.PublicKey) (*btcec.ModNScalar, error) {
	shared := sha256.Sum256(btcec.GenerateSharedSecret(privateKey, publicKey))
	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(shared[:]); overflow || tweak.IsZero() {
		return nil, errors.New("shared secret is not a valid scalar")
	}
	return &tweak, nil
}

// tweakPublicKey returns key + tweak*G.
func tweakPublicKey(key *btcec.PublicKey, tweak *btcec.ModNScalar) (*btcec.PublicKey, error) {
	var keyPoint, tweakPoint, result btcec.JacobianPoint
	key.AsJacobian(&keyPoint)
	btcec.ScalarBaseMultNonConst(tweak, &tweakPoint)
	btcec.AddNonConst(&keyPoint, &tweakPoint, &result)
	if (result.X.IsZero() && result.Y.IsZero()) || result.Z.IsZero() {
		return nil, errors.New("tweaked key is the point at infinity")
	}
	result.ToAffine()
	return btcec.NewPublicKey(&result.X, &result.Y), nil
}

// grindMetadata searches for the first nonce whose metadata hash matches the
// recipient's prefix filter.
func grindMetadata(ephemeralKey *btcec.PublicKey, prefix Prefix) ([]byte, error) {
	metadata := make([]byte, MetadataLength)
	copy(metadata[4:], ephemeralKey.SerializeCompressed())
	for nonce := uint64(0); nonce <= math.MaxUint32; nonce++ {
		binary.LittleEndian.PutUint32(metadata[:4], uint32(nonce))
		if prefix.Matches(chainhash.DoubleHashB(metadata)) {
			return metadata, nil
		}
	}
	return nil, errors.Errorf("no nonce satisfies a %d bit prefix", prefix.NumberBits)
}

// Matches returns whether the first NumberBits bits of hash equal the
// prefix bitfield.
func (p Prefix) Matches(hash []byte) bool {
	for bit := 0; bit < int(p.NumberBits); bit++ {
		byteIndex, mask := bit/8, byte(0x80)>>(bit%8)
		if byteIndex >= len(hash) || byteIndex >= len(p.Bitfield) {
			return false
		}
		if hash[byteIndex]&mask != p.Bitfield[byteIndex]&mask {
			return false
		}
	}
	return true
}
