package txbuilder

import (
	"encoding/hex"

	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/consensus/utils/constants"
	"github.com/mvsnet/mvsd/domain/consensus/utils/txscript"
	"github.com/mvsnet/mvsd/domain/dagconfig"
	"github.com/mvsnet/mvsd/util"
	"github.com/mvsnet/mvsd/util/stealth"
	"github.com/pkg/errors"
)

// outputResolver turns output specs into transaction outputs. It lives for
// a single build so that it can reject stealth seeds used more than once.
type outputResolver struct {
	params           *dagconfig.Params
	scriptHashParams *dagconfig.Params
	usedSeeds        map[string]struct{}
}

func newOutputResolver(params *dagconfig.Params, scriptVersion byte) *outputResolver {
	return &outputResolver{
		params:           params,
		scriptHashParams: params.WithScriptHashAddrID(scriptVersion),
		usedSeeds:        make(map[string]struct{}),
	}
}

// resolve returns the outputs spec expands to. Every target expands to a
// single output except stealth targets, which are preceded by a zero value
// metadata output. The last returned output always carries the amount and
// the attachment.
func (r *outputResolver) resolve(spec *OutputSpec) ([]*externalapi.DomainTransactionOutput, error) {
	if spec.Amount > constants.MaxSatoshi {
		return nil, errors.Wrapf(ruleerrors.ErrAmountOverflow, "output amount %d is above the maximum of %d",
			spec.Amount, uint64(constants.MaxSatoshi))
	}

	outputAttachment := spec.Attachment
	if outputAttachment == nil {
		outputAttachment = attachment.New(nil)
	}
	if !outputAttachment.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidAttachment, "output to %s carries an unset %s attachment",
			spec.Target, outputAttachment.Type())
	}

	if script, ok := r.addressScript(spec.Target); ok {
		return []*externalapi.DomainTransactionOutput{
			{Value: spec.Amount, ScriptPublicKey: script, Attachment: outputAttachment},
		}, nil
	}

	if script, err := hex.DecodeString(spec.Target); err == nil && len(script) > 0 {
		return []*externalapi.DomainTransactionOutput{
			{Value: spec.Amount, ScriptPublicKey: script, Attachment: outputAttachment},
		}, nil
	}

	stealthAddress, err := stealth.DecodeAddress(spec.Target, r.params.StealthAddrID)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidTarget, "%s is neither an address, a script "+
			"nor a stealth address", spec.Target)
	}
	metadataScript, paymentScript, err := r.stealthScripts(stealthAddress, spec)
	if err != nil {
		return nil, err
	}
	return []*externalapi.DomainTransactionOutput{
		{Value: 0, ScriptPublicKey: metadataScript, Attachment: attachment.New(nil)},
		{Value: spec.Amount, ScriptPublicKey: paymentScript, Attachment: outputAttachment},
	}, nil
}

// addressScript returns the payment script of a pay-to-pubkey-hash or
// pay-to-script-hash address target.
func (r *outputResolver) addressScript(target string) ([]byte, bool) {
	if address, err := util.DecodePubKeyHashAddress(target, r.params); err == nil {
		script, err := txscript.PayToAddrScript(address)
		return script, err == nil
	}
	if address, err := util.DecodeScriptHashAddress(target, r.scriptHashParams); err == nil {
		script, err := txscript.PayToAddrScript(address)
		return script, err == nil
	}
	return nil, false
}

func (r *outputResolver) stealthScripts(address *stealth.Address, spec *OutputSpec) (
	metadataScript []byte, paymentScript []byte, err error) {

	if len(spec.Seed) == 0 {
		return nil, nil, errors.Wrapf(ruleerrors.ErrMissingStealthSeed, "stealth output to %s", spec.Target)
	}
	if _, used := r.usedSeeds[string(spec.Seed)]; used {
		return nil, nil, errors.Wrapf(ruleerrors.ErrDuplicateStealthSeed, "seed %x", spec.Seed)
	}

	payment, err := address.NewPayment(spec.Seed)
	if err != nil {
		return nil, nil, errors.Wrapf(ruleerrors.ErrInvalidTarget, "stealth output to %s: %s", spec.Target, err)
	}
	metadataScript, err = txscript.NullDataScript(payment.Metadata)
	if err != nil {
		return nil, nil, err
	}
	paymentScript, err = txscript.PayToPubKeyHashScript(payment.PaymentKey, r.params.ChainParams())
	if err != nil {
		return nil, nil, err
	}

	r.usedSeeds[string(spec.Seed)] = struct{}{}
	return metadataScript, paymentScript, nil
}
