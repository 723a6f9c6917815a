package attachment

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/constants"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// Type identifies the payload variant carried by an attachment.
type Type uint32

// Attachment types. The numeric values are part of the wire format.
const (
	TypeNone Type = iota
	TypeAssetIssue
	TypeAssetTransfer
	TypeMessage
	TypeCertificate
)

var typeNames = map[Type]string{
	TypeNone:          "none",
	TypeAssetIssue:    "asset-issue",
	TypeAssetTransfer: "asset-transfer",
	TypeMessage:       "message",
	TypeCertificate:   "certificate",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint32(t))
}

// Payload is the typed body of an attachment. The set of payloads is closed:
// only the variants defined in this package implement it.
type Payload interface {
	// Type returns the tag written in front of the payload.
	Type() Type

	// IsValid returns false when every field holds its default value.
	IsValid() bool

	// Reset restores every field to its default value.
	Reset()

	// SerializeSize returns the exact number of bytes Serialize writes.
	SerializeSize() int

	// Serialize writes the canonical encoding of the payload to w.
	Serialize(w io.Writer) error

	// Deserialize replaces the payload with the one decoded from r. On
	// failure the receiver is left untouched.
	Deserialize(r io.Reader) error

	sealed()
}

// Attachment is the structured metadata carried by a transaction output.
// A nil Payload means the output carries no typed metadata.
type Attachment struct {
	Version uint32
	Payload Payload
}

// New returns an attachment of the current version carrying payload.
func New(payload Payload) *Attachment {
	return &Attachment{
		Version: constants.AttachmentVersion,
		Payload: payload,
	}
}

// Type returns the tag of the carried payload.
func (a *Attachment) Type() Type {
	if a.Payload == nil {
		return TypeNone
	}
	return a.Payload.Type()
}

// IsValid returns whether the attachment either carries no payload or carries
// a payload that is set.
func (a *Attachment) IsValid() bool {
	return a.Payload == nil || a.Payload.IsValid()
}

// SerializeSize returns the number of bytes Serialize writes.
func (a *Attachment) SerializeSize() int {
	size := 4 + 4
	if a.Payload != nil {
		size += a.Payload.SerializeSize()
	}
	return size
}

// Serialize writes version, type and payload to w.
func (a *Attachment) Serialize(w io.Writer) error {
	err := serialization.WriteElements(w, a.Version, uint32(a.Type()))
	if err != nil {
		return err
	}
	if a.Payload == nil {
		return nil
	}
	return a.Payload.Serialize(w)
}

// Deserialize decodes an attachment from r. It reads the type tag first and
// dispatches to the matching payload layout.
func Deserialize(r io.Reader) (*Attachment, error) {
	var version, typ uint32
	err := serialization.ReadElements(r, &version, &typ)
	if err != nil {
		return nil, ruleerrors.NewErrMalformedAttachment(err)
	}

	payload, err := newPayload(Type(typ))
	if err != nil {
		return nil, err
	}
	if payload != nil {
		err = payload.Deserialize(r)
		if err != nil {
			return nil, err
		}
	}

	return &Attachment{Version: version, Payload: payload}, nil
}

// ToBytes returns the canonical encoding of a.
func (a *Attachment) ToBytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, a.SerializeSize()))
	err := a.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromBytes decodes an attachment from the start of data.
func FromBytes(data []byte) (*Attachment, error) {
	return Deserialize(bytes.NewReader(data))
}

func newPayload(typ Type) (Payload, error) {
	switch typ {
	case TypeNone:
		return nil, nil
	case TypeAssetIssue:
		return &AssetIssue{}, nil
	case TypeAssetTransfer:
		return &AssetTransfer{}, nil
	case TypeMessage:
		return &Message{}, nil
	case TypeCertificate:
		return &Certificate{}, nil
	}
	return nil, errors.Wrapf(ruleerrors.ErrUnknownAttachmentType, "attachment type %d", uint32(typ))
}

// PayloadToBytes returns the canonical encoding of a single payload, without
// the attachment envelope.
func PayloadToBytes(payload Payload) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, payload.SerializeSize()))
	err := payload.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PayloadFromBytes decodes data into payload. It is a projection of
// payload.Deserialize over a flat buffer.
func PayloadFromBytes(payload Payload, data []byte) error {
	return payload.Deserialize(bytes.NewReader(data))
}
