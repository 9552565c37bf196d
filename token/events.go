// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
)

const (
	TransferID uint8 = iota
	IssuanceID
	DestructionID
	OwnerUpdateID
)

var eventNames = map[uint8]string{
	TransferID:    "Transfer",
	IssuanceID:    "Issuance",
	DestructionID: "Destruction",
	OwnerUpdateID: "OwnerUpdate",
}

func EventName(typeID uint8) string {
	if name, ok := eventNames[typeID]; ok {
		return name
	}
	return "Unknown"
}

type Event interface {
	GetTypeID() uint8
}

// Transfer is emitted for every balance movement. Issuance has an empty
// From and destruction an empty To.
type Transfer struct {
	From   codec.Address `json:"from"`
	To     codec.Address `json:"to"`
	Amount *uint256.Int  `json:"amount"`
	Data   []byte        `json:"data,omitempty"`
}

func (*Transfer) GetTypeID() uint8 {
	return TransferID
}

type Issuance struct {
	Amount *uint256.Int `json:"amount"`
}

func (*Issuance) GetTypeID() uint8 {
	return IssuanceID
}

type Destruction struct {
	Amount *uint256.Int `json:"amount"`
}

func (*Destruction) GetTypeID() uint8 {
	return DestructionID
}

type OwnerUpdate struct {
	PrevOwner codec.Address `json:"prevOwner"`
	NewOwner  codec.Address `json:"newOwner"`
}

func (*OwnerUpdate) GetTypeID() uint8 {
	return OwnerUpdateID
}
