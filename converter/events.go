// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
)

// Event type IDs
const (
	ConversionID uint8 = iota
	PriceDataUpdateID
	ConversionsEnableID
	ConversionFeeUpdateID
	ConnectorUpdateID
	RegistryUpdateID
	RegistryUpdateEnableID
	TokensWithdrawalID
	OwnerUpdateID
	ManagerUpdateID
	TokenOwnershipUpdateID
)

var eventNames = [...]string{
	ConversionID:           "Conversion",
	PriceDataUpdateID:      "PriceDataUpdate",
	ConversionsEnableID:    "ConversionsEnable",
	ConversionFeeUpdateID:  "ConversionFeeUpdate",
	ConnectorUpdateID:      "ConnectorUpdate",
	RegistryUpdateID:       "RegistryUpdate",
	RegistryUpdateEnableID: "RegistryUpdateEnable",
	TokensWithdrawalID:     "TokensWithdrawal",
	OwnerUpdateID:          "OwnerUpdate",
	ManagerUpdateID:        "ManagerUpdate",
	TokenOwnershipUpdateID: "TokenOwnershipUpdate",
}

// EventName returns the name of the converter event with [typeID].
func EventName(typeID uint8) string {
	if int(typeID) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[typeID]
}

type Event interface {
	GetTypeID() uint8
}

var (
	_ Event = (*Conversion)(nil)
	_ Event = (*PriceDataUpdate)(nil)
	_ Event = (*ConversionsEnable)(nil)
	_ Event = (*ConversionFeeUpdate)(nil)
	_ Event = (*ConnectorUpdate)(nil)
	_ Event = (*RegistryUpdate)(nil)
	_ Event = (*RegistryUpdateEnable)(nil)
	_ Event = (*TokensWithdrawal)(nil)
	_ Event = (*OwnerUpdate)(nil)
	_ Event = (*ManagerUpdate)(nil)
	_ Event = (*TokenOwnershipUpdate)(nil)
)

type Conversion struct {
	FromToken codec.Address `json:"fromToken"`
	ToToken   codec.Address `json:"toToken"`
	Trader    codec.Address `json:"trader"`
	AmountIn  *uint256.Int  `json:"amountIn"`
	AmountOut *uint256.Int  `json:"amountOut"`
	Fee       *uint256.Int  `json:"fee"`
}

func (*Conversion) GetTypeID() uint8 {
	return ConversionID
}

// PriceDataUpdate reports a connector after a conversion went through it.
type PriceDataUpdate struct {
	ConnectorToken   codec.Address `json:"connectorToken"`
	ConnectorBalance *uint256.Int  `json:"connectorBalance"`
	TokenSupply      *uint256.Int  `json:"tokenSupply"`
	ConnectorWeight  uint32        `json:"connectorWeight"`
}

func (*PriceDataUpdate) GetTypeID() uint8 {
	return PriceDataUpdateID
}

type ConversionsEnable struct {
	Enabled bool `json:"enabled"`
}

func (*ConversionsEnable) GetTypeID() uint8 {
	return ConversionsEnableID
}

type ConversionFeeUpdate struct {
	PrevFee uint32 `json:"prevFee"`
	NewFee  uint32 `json:"newFee"`
}

func (*ConversionFeeUpdate) GetTypeID() uint8 {
	return ConversionFeeUpdateID
}

type ConnectorUpdate struct {
	Token                   codec.Address `json:"token"`
	Weight                  uint32        `json:"weight"`
	IsVirtualBalanceEnabled bool          `json:"isVirtualBalanceEnabled"`
	VirtualBalance          *uint256.Int  `json:"virtualBalance"`
	IsPurchaseEnabled       bool          `json:"isPurchaseEnabled"`
}

func (*ConnectorUpdate) GetTypeID() uint8 {
	return ConnectorUpdateID
}

type RegistryUpdate struct {
	PrevRegistry codec.Address `json:"prevRegistry"`
	NewRegistry  codec.Address `json:"newRegistry"`
}

func (*RegistryUpdate) GetTypeID() uint8 {
	return RegistryUpdateID
}

type RegistryUpdateEnable struct {
	Enabled bool `json:"enabled"`
}

func (*RegistryUpdateEnable) GetTypeID() uint8 {
	return RegistryUpdateEnableID
}

type TokensWithdrawal struct {
	Token  codec.Address `json:"token"`
	To     codec.Address `json:"to"`
	Amount *uint256.Int  `json:"amount"`
}

func (*TokensWithdrawal) GetTypeID() uint8 {
	return TokensWithdrawalID
}

type OwnerUpdate struct {
	PrevOwner codec.Address `json:"prevOwner"`
	NewOwner  codec.Address `json:"newOwner"`
}

func (*OwnerUpdate) GetTypeID() uint8 {
	return OwnerUpdateID
}

type ManagerUpdate struct {
	PrevManager codec.Address `json:"prevManager"`
	NewManager  codec.Address `json:"newManager"`
}

func (*ManagerUpdate) GetTypeID() uint8 {
	return ManagerUpdateID
}

// TokenOwnershipUpdate is emitted when the converter takes over the
// primary token.
type TokenOwnershipUpdate struct {
	Token    codec.Address `json:"token"`
	NewOwner codec.Address `json:"newOwner"`
}

func (*TokenOwnershipUpdate) GetTypeID() uint8 {
	return TokenOwnershipUpdateID
}
