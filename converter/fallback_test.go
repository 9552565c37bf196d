// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
)

func TestParsePayload(t *testing.T) {
	to := newAddress(consts.TokenID)
	tests := []struct {
		name string
		data []byte
		want Payload
		err  error
	}{
		{
			name: "empty is a deposit",
			data: nil,
			want: DepositPayload{},
		},
		{
			name: "convert",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":10}`),
			want: &ConvertPayload{ToToken: to, MinReturn: uint256.NewInt(10)},
		},
		{
			name: "quoted minimum return",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":"10"}`),
			want: &ConvertPayload{ToToken: to, MinReturn: uint256.NewInt(10)},
		},
		{
			name: "garbage",
			data: []byte("None"),
			err:  ErrInvalidPayload,
		},
		{
			name: "empty object",
			data: []byte(`{}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "missing minimum return",
			data: []byte(`{"toToken":"` + to.String() + `"}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "negative minimum return",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":-1}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "fractional minimum return",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":1.5}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "malformed address",
			data: []byte(`{"toToken":"0x1234","minReturn":1}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "unknown field",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":1,"extra":true}`),
			err:  ErrInvalidPayload,
		},
		{
			name: "trailing data",
			data: []byte(`{"toToken":"` + to.String() + `","minReturn":1}{}`),
			err:  ErrInvalidPayload,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			p, err := ParsePayload(tt.data)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				require.ErrorIs(err, ErrValidation)
				return
			}
			require.Equal(tt.want, p)
		})
	}
}

func TestEncodeConvertPayload(t *testing.T) {
	require := require.New(t)
	to := newAddress(consts.TokenID)

	data, err := EncodeConvertPayload(to, uint256.NewInt(42))
	require.NoError(err)
	p, err := ParsePayload(data)
	require.NoError(err)
	require.Equal(&ConvertPayload{ToToken: to, MinReturn: uint256.NewInt(42)}, p)
}

func TestTokenFallbackDeposit(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		sender  func(env *testEnv) codec.Address
		token   func(env *testEnv, connector codec.Address) codec.Address
		active  bool
		data    []byte
		err     error
		virtual uint64
	}{
		{
			name:    "deposit",
			value:   100,
			virtual: 100,
		},
		{
			name:  "zero value",
			value: 0,
			err:   ErrInvalidAmount,
		},
		{
			name:   "non owner sender",
			value:  100,
			sender: func(*testEnv) codec.Address { return newAddress(consts.AccountID) },
			err:    ErrNotOwner,
		},
		{
			name:  "unregistered token",
			value: 100,
			token: func(*testEnv, codec.Address) codec.Address { return newAddress(consts.TokenID) },
			err:   ErrConnectorNotSet,
		},
		{
			name:   "already active",
			value:  100,
			active: true,
			err:    ErrActive,
		},
		{
			name:  "unparsable data",
			value: 100,
			data:  []byte("None"),
			err:   ErrInvalidPayload,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			env := newTestEnv(t)
			env.install(t, 0)
			env.setActive(tt.active)
			connector, _ := env.addConnector(t, 500_000, true)
			env.resetEvents()

			sender := env.owner
			if tt.sender != nil {
				sender = tt.sender(env)
			}
			token := connector
			if tt.token != nil {
				token = tt.token(env, connector)
			}

			err := env.converter.TokenFallback(env.ctx, token, sender, uint256.NewInt(tt.value), tt.data)
			require.ErrorIs(err, tt.err)
			balance, berr := env.converter.GetConnectorBalance(env.ctx, connector)
			require.NoError(berr)
			require.Equal(tt.virtual, balance.Uint64())
		})
	}
}

func TestTokenFallbackConvertSender(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	connector, _ := env.addConnector(t, 500_000, false)
	data := convertData(t, env.token, 1)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.NetworkKey).Return(env.network, nil)
	err := env.converter.TokenFallback(env.ctx, connector, env.owner, uint256.NewInt(1), data)
	require.ErrorIs(err, ErrNotNetwork)
	require.ErrorIs(err, ErrAuthorization)

	// Without a registered network nobody can convert.
	env.reg.EXPECT().GetAddress(gomock.Any(), consts.NetworkKey).Return(codec.EmptyAddress, nil)
	require.ErrorIs(env.converter.TokenFallback(env.ctx, connector, codec.EmptyAddress, uint256.NewInt(1), data), ErrNotNetwork)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.NetworkKey).Return(codec.EmptyAddress, errTest)
	require.ErrorIs(env.converter.TokenFallback(env.ctx, connector, env.network, uint256.NewInt(1), data), errTest)
}

func TestTokenFallbackDepositOverflow(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	env.setActive(false)
	connector, _ := env.addConnector(t, 500_000, true)
	maxBalance := new(uint256.Int).SetAllOne()
	require.NoError(env.converter.UpdateConnector(env.ctx, env.owner, connector, 500_000, true, maxBalance))

	err := env.converter.TokenFallback(env.ctx, connector, env.owner, uint256.NewInt(1), nil)
	require.ErrorIs(err, ErrArithmeticRange)

	// The stored virtual balance does not wrap around.
	balance, err := env.converter.GetConnectorBalance(env.ctx, connector)
	require.NoError(err)
	require.Equal(maxBalance, balance)
}
