// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/utils"
)

// Payload is the decoded data attached to a token transfer into the
// converter. It is either a [DepositPayload] or a [ConvertPayload].
type Payload interface {
	isPayload()
}

// DepositPayload funds a connector reserve. It is sent as empty data.
type DepositPayload struct{}

// ConvertPayload requests a conversion of the transferred tokens.
type ConvertPayload struct {
	ToToken   codec.Address
	MinReturn *uint256.Int
}

func (DepositPayload) isPayload() {}

func (*ConvertPayload) isPayload() {}

type convertPayloadJSON struct {
	ToToken   *codec.Address `json:"toToken"`
	MinReturn json.Number    `json:"minReturn"`
}

// ParsePayload decodes transfer data. Anything that is neither empty nor a
// well-formed convert request is rejected with [ErrInvalidPayload].
func ParsePayload(data []byte) (Payload, error) {
	if len(data) == 0 {
		return DepositPayload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raw convertPayloadJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidPayload)
	}
	if raw.ToToken == nil || raw.ToToken.IsEmpty() {
		return nil, fmt.Errorf("%w: missing toToken", ErrInvalidPayload)
	}
	if raw.MinReturn == "" {
		return nil, fmt.Errorf("%w: missing minReturn", ErrInvalidPayload)
	}
	minReturn, err := utils.ParseAmount(raw.MinReturn.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return &ConvertPayload{ToToken: *raw.ToToken, MinReturn: minReturn}, nil
}

// EncodeConvertPayload returns the transfer data requesting a conversion
// into [toToken].
func EncodeConvertPayload(toToken codec.Address, minReturn *uint256.Int) ([]byte, error) {
	return json.Marshal(convertPayloadJSON{
		ToToken:   &toToken,
		MinReturn: json.Number(minReturn.ToBig().String()),
	})
}
