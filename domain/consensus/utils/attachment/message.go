package attachment

import (
	"io"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
)

// Message is free-form text attached to an output.
type Message struct {
	Content string
}

// Type implements Payload.
func (m *Message) Type() Type {
	return TypeMessage
}

// IsValid implements Payload.
func (m *Message) IsValid() bool {
	return m.Content != ""
}

// Reset implements Payload.
func (m *Message) Reset() {
	m.Content = ""
}

// SerializeSize implements Payload.
func (m *Message) SerializeSize() int {
	return serialization.VarStringSerializeSize(m.Content)
}

// Serialize implements Payload.
func (m *Message) Serialize(w io.Writer) error {
	return serialization.WriteElement(w, m.Content)
}

// Deserialize implements Payload.
func (m *Message) Deserialize(r io.Reader) error {
	var content string
	err := serialization.ReadElement(r, &content)
	if err != nil {
		return ruleerrors.NewErrMalformedAttachment(err)
	}
	m.Content = content
	return nil
}

func (*Message) sealed() {}
