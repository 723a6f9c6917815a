package main

import (
	"strconv"
	"strings"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/txbuilder"
	"github.com/pkg/errors"
)

// attachPayloads attaches the --transfer and --message payloads to the
// outputs they index. An output carries at most one attachment.
func attachPayloads(outputs []*txbuilder.OutputSpec, transfers []string, messages []string) error {
	for _, transfer := range transfers {
		index, payload, err := parseTransfer(transfer)
		if err != nil {
			return err
		}
		err = attachPayload(outputs, index, payload)
		if err != nil {
			return err
		}
	}
	for _, message := range messages {
		index, payload, err := parseMessage(message)
		if err != nil {
			return err
		}
		err = attachPayload(outputs, index, payload)
		if err != nil {
			return err
		}
	}
	return nil
}

func attachPayload(outputs []*txbuilder.OutputSpec, index int, payload attachment.Payload) error {
	if index >= len(outputs) {
		return errors.Wrapf(ruleerrors.ErrInvalidInput, "attachment for output %d, but there are only %d outputs",
			index, len(outputs))
	}
	if outputs[index].Attachment != nil {
		return errors.Wrapf(ruleerrors.ErrInvalidInput, "output %d already carries a %s attachment",
			index, outputs[index].Attachment.Type())
	}
	outputs[index].Attachment = attachment.New(payload)
	return nil
}

// parseTransfer parses INDEX:SYMBOL:SENDER:RECIPIENT:QUANTITY.
func parseTransfer(text string) (int, *attachment.AssetTransfer, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 5 {
		return 0, nil, errors.Wrapf(ruleerrors.ErrInvalidInput,
			"transfer %q is not INDEX:SYMBOL:SENDER:RECIPIENT:QUANTITY", text)
	}
	index, err := parseOutputIndex(fields[0])
	if err != nil {
		return 0, nil, err
	}
	quantity, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return 0, nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "quantity %q is not a number", fields[4])
	}
	return index, &attachment.AssetTransfer{
		Symbol:    fields[1],
		Sender:    fields[2],
		Recipient: fields[3],
		Quantity:  quantity,
	}, nil
}

// parseMessage parses INDEX:TEXT. TEXT may itself contain colons.
func parseMessage(text string) (int, *attachment.Message, error) {
	fields := strings.SplitN(text, ":", 2)
	if len(fields) != 2 || fields[1] == "" {
		return 0, nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "message %q is not INDEX:TEXT", text)
	}
	index, err := parseOutputIndex(fields[0])
	if err != nil {
		return 0, nil, err
	}
	return index, &attachment.Message{Content: fields[1]}, nil
}

func parseOutputIndex(text string) (int, error) {
	index, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(ruleerrors.ErrInvalidInput, "output index %q", text)
	}
	return int(index), nil
}
