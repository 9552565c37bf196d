// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes. Converter, token and registry records live in the state of
// the contract that owns them, so their keys never collide across
// contracts. Host records live in the root state.
const (
	// Converter
	configPrefix byte = iota
	ownershipPrefix
	connectorPrefix
	connectorCountPrefix
	connectorIndexPrefix

	// Token
	tokenInfoPrefix
	balancePrefix

	// Registry
	registryEntryPrefix
)

// HostPrefix is the first byte of every host record. It is never a valid
// address type ID, so host records and contract state are disjoint.
const HostPrefix byte = 0xff

const (
	hostContractPrefix byte = iota
	hostNoncePrefix
)

const (
	MaxTokenNameSize   = 64
	MaxTokenSymbolSize = 8
	MaxRegistryKeySize = 64

	// MaxConnectors bounds the connector index.
	MaxConnectors = 64
)
