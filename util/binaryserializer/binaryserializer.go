package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// byteOrder is the byte order used for every fixed-width integer of the
// transaction and attachment formats.
var byteOrder = binary.LittleEndian

// Uint8 reads a single byte from the provided reader and returns it as a
// uint8.
func Uint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return buf[0], nil
}

// Uint32 reads four little endian bytes from the provided reader and returns
// the resulting uint32.
//
// The buffer lives on the caller's stack, so concurrent readers never share
// scratch space.
func Uint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return byteOrder.Uint32(buf[:]), nil
}

// Uint64 reads eight little endian bytes from the provided reader and returns
// the resulting uint64.
func Uint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return byteOrder.Uint64(buf[:]), nil
}

// PutUint8 writes the provided uint8 to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	buf := [1]byte{val}
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint32 serializes the provided uint32 in little endian order and writes
// the resulting four bytes to the given writer.
func PutUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	byteOrder.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint64 serializes the provided uint64 in little endian order and writes
// the resulting eight bytes to the given writer.
func PutUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	byteOrder.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}
