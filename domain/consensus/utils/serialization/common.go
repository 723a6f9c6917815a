package serialization

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/mvsnet/mvsd/util/binaryserializer"
	"github.com/pkg/errors"
)

// protocolVersion is passed to the wire var-length primitives. Their
// encoding does not depend on it.
const protocolVersion = wire.ProtocolVersion

// maxScriptLength bounds the var-bytes fields read by ReadElement.
const maxScriptLength = wire.MaxMessagePayload

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

// WriteElement writes the little endian representation of element to w.
// Strings and byte slices are written as a var-int length followed by the raw
// bytes, with no terminator.
func WriteElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case uint8:
		return binaryserializer.PutUint8(w, e)

	case uint32:
		return binaryserializer.PutUint32(w, e)

	case uint64:
		return binaryserializer.PutUint64(w, e)

	case string:
		return errors.WithStack(wire.WriteVarString(w, protocolVersion, e))

	case []byte:
		return errors.WithStack(wire.WriteVarBytes(w, protocolVersion, e))

	case chainhash.Hash:
		_, err := w.Write(e[:])
		return errors.WithStack(err)

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return errors.WithStack(err)
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *uint8:
		rv, err := binaryserializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *uint32:
		rv, err := binaryserializer.Uint32(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *uint64:
		rv, err := binaryserializer.Uint64(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *string:
		rv, err := wire.ReadVarString(r, protocolVersion)
		if err != nil {
			return errors.WithStack(err)
		}
		*e = rv
		return nil

	case *[]byte:
		rv, err := wire.ReadVarBytes(r, protocolVersion, maxScriptLength, "bytes")
		if err != nil {
			return errors.WithStack(err)
		}
		*e = rv
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return errors.WithStack(err)
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ElementSerializeSize returns the number of bytes WriteElement would write
// for element, without writing it.
func ElementSerializeSize(element interface{}) (int, error) {
	switch e := element.(type) {
	case uint8:
		return 1, nil
	case uint32:
		return 4, nil
	case uint64:
		return 8, nil
	case string:
		return VarStringSerializeSize(e), nil
	case []byte:
		return VarBytesSerializeSize(e), nil
	case chainhash.Hash, *chainhash.Hash:
		return chainhash.HashSize, nil
	}

	return 0, errors.Wrapf(errNoEncodingForType, "couldn't find the size of type %T", element)
}

// ElementsSerializeSize returns the sum of ElementSerializeSize over elements.
func ElementsSerializeSize(elements ...interface{}) (int, error) {
	total := 0
	for _, element := range elements {
		size, err := ElementSerializeSize(element)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// VarStringSerializeSize returns the number of bytes a length prefixed string
// occupies once written by WriteElement.
func VarStringSerializeSize(s string) int {
	return wire.VarIntSerializeSize(uint64(len(s))) + len(s)
}

// VarBytesSerializeSize returns the number of bytes a length prefixed byte
// slice occupies once written by WriteElement.
func VarBytesSerializeSize(b []byte) int {
	return wire.VarIntSerializeSize(uint64(len(b))) + len(b)
}
