// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen    = 1
	BoolLen    = 1
	Uint16Len  = 2
	Uint32Len  = 4
	Uint64Len  = 8
	Uint256Len = 32
	IDLen      = 32
	MaxUint16  = ^uint16(0)
	MaxUint32  = ^uint32(0)
)

const Name = "convertervm"

// Weights and fees are expressed in parts per million.
const (
	MaxWeight        uint32 = 1_000_000
	FeeResolution    uint32 = 1_000_000
	MaxConversionFee uint32 = 1_000_000
)

// Address type IDs. The first byte of every address names the kind of
// account that lives behind it.
const (
	AccountID uint8 = iota
	TokenID
	RegistryID
	ConverterID
)

// Well-known registry keys.
const (
	// NetworkKey resolves the router that is allowed to request conversions
	// through token transfers.
	NetworkKey = "ConverterNetwork"
	// RegistryKey resolves the latest registry, used for registry upgrades.
	RegistryKey = "ContractRegistry"
)
