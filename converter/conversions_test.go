// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/storage"
)

var errTest = errors.New("test")

func convertData(t *testing.T, to codec.Address, minReturn uint64) []byte {
	data, err := EncodeConvertPayload(to, uint256.NewInt(minReturn))
	require.NoError(t, err)
	return data
}

// activeEnv installs an active converter with a 1% conversion fee and
// routes network lookups to env.network.
func activeEnv(t *testing.T, fee uint32) *testEnv {
	env := newTestEnv(t)
	env.install(t, consts.MaxConversionFee)
	require.NoError(t, env.converter.SetConversionFee(env.ctx, env.owner, fee))
	env.setActive(true)
	env.reg.EXPECT().GetAddress(gomock.Any(), consts.NetworkKey).Return(env.network, nil).AnyTimes()
	env.resetEvents()
	return env
}

func TestBuy(t *testing.T) {
	require := require.New(t)
	env := activeEnv(t, 10_000)
	connector, mock := env.addConnector(t, consts.MaxWeight, false)
	env.resetEvents()

	mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(11_000), nil).Times(2)
	gomock.InOrder(
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(10_000), nil),
		env.smart.EXPECT().Issue(gomock.Any(), env.network, uint256.NewInt(990)).Return(nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(10_990), nil),
	)

	require.NoError(env.converter.TokenFallback(
		env.ctx, connector, env.network, uint256.NewInt(1_000), convertData(t, env.token, 990),
	))
	require.Equal([]Event{
		&Conversion{
			FromToken: connector,
			ToToken:   env.token,
			Trader:    env.network,
			AmountIn:  uint256.NewInt(1_000),
			AmountOut: uint256.NewInt(990),
			Fee:       uint256.NewInt(10),
		},
		&PriceDataUpdate{
			ConnectorToken:   connector,
			ConnectorBalance: uint256.NewInt(11_000),
			TokenSupply:      uint256.NewInt(10_990),
			ConnectorWeight:  consts.MaxWeight,
		},
	}, env.events)
}

func TestBuyVirtualBalance(t *testing.T) {
	require := require.New(t)
	env := activeEnv(t, 0)
	connector, _ := env.addConnector(t, consts.MaxWeight, true)
	require.NoError(env.converter.UpdateConnector(env.ctx, env.owner, connector, consts.MaxWeight, true, uint256.NewInt(10_000)))
	env.resetEvents()

	// The virtual balance prices the purchase; the live balance is never read.
	gomock.InOrder(
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(20_000), nil),
		env.smart.EXPECT().Issue(gomock.Any(), env.network, uint256.NewInt(2_000)).Return(nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(22_000), nil),
	)
	require.NoError(env.converter.TokenFallback(
		env.ctx, connector, env.network, uint256.NewInt(1_000), convertData(t, env.token, 1),
	))

	balance, err := env.converter.GetConnectorBalance(env.ctx, connector)
	require.NoError(err)
	require.Equal(uint64(11_000), balance.Uint64())
}

func TestSell(t *testing.T) {
	require := require.New(t)
	env := activeEnv(t, 10_000)
	connector, mock := env.addConnector(t, consts.MaxWeight, false)
	env.resetEvents()

	gomock.InOrder(
		mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(10_000), nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(10_000), nil),
		env.smart.EXPECT().Destroy(gomock.Any(), env.address, uint256.NewInt(1_000)).Return(nil),
		mock.EXPECT().Transfer(gomock.Any(), env.network, uint256.NewInt(990), gomock.Nil()).Return(nil),
		mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(9_010), nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(9_000), nil),
	)

	require.NoError(env.converter.TokenFallback(
		env.ctx, env.token, env.network, uint256.NewInt(1_000), convertData(t, connector, 990),
	))
	require.Equal([]Event{
		&Conversion{
			FromToken: env.token,
			ToToken:   connector,
			Trader:    env.network,
			AmountIn:  uint256.NewInt(1_000),
			AmountOut: uint256.NewInt(990),
			Fee:       uint256.NewInt(10),
		},
		&PriceDataUpdate{
			ConnectorToken:   connector,
			ConnectorBalance: uint256.NewInt(9_010),
			TokenSupply:      uint256.NewInt(9_000),
			ConnectorWeight:  consts.MaxWeight,
		},
	}, env.events)
}

func TestSellWholeSupply(t *testing.T) {
	require := require.New(t)
	env := activeEnv(t, 0)
	connector, mock := env.addConnector(t, 500_000, false)
	env.resetEvents()

	// Only selling the whole supply may empty the reserve.
	gomock.InOrder(
		mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(5_000), nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(1_000), nil),
		env.smart.EXPECT().Destroy(gomock.Any(), env.address, uint256.NewInt(1_000)).Return(nil),
		mock.EXPECT().Transfer(gomock.Any(), env.network, uint256.NewInt(5_000), gomock.Nil()).Return(nil),
		mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(new(uint256.Int), nil),
		env.smart.EXPECT().TotalSupply(gomock.Any()).Return(new(uint256.Int), nil),
	)
	require.NoError(env.converter.TokenFallback(
		env.ctx, env.token, env.network, uint256.NewInt(1_000), convertData(t, connector, 5_000),
	))
	require.Len(env.events, 2)
}

func TestConvertCrossConnector(t *testing.T) {
	require := require.New(t)
	env := activeEnv(t, 10_000)
	from, fromMock := env.addConnector(t, 500_000, false)
	to, toMock := env.addConnector(t, 500_000, false)
	env.resetEvents()

	env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(50_000), nil).AnyTimes()
	fromMock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_001_000), nil).Times(2)
	gomock.InOrder(
		toMock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_001_000), nil),
		toMock.EXPECT().Transfer(gomock.Any(), env.network, uint256.NewInt(980), gomock.Nil()).Return(nil),
		toMock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_000_020), nil),
	)

	require.NoError(env.converter.TokenFallback(
		env.ctx, from, env.network, uint256.NewInt(1_000), convertData(t, to, 980),
	))
	// One conversion, then the source connector before the target.
	require.Equal([]Event{
		&Conversion{
			FromToken: from,
			ToToken:   to,
			Trader:    env.network,
			AmountIn:  uint256.NewInt(1_000),
			AmountOut: uint256.NewInt(980),
			Fee:       uint256.NewInt(20),
		},
		&PriceDataUpdate{
			ConnectorToken:   from,
			ConnectorBalance: uint256.NewInt(1_001_000),
			TokenSupply:      uint256.NewInt(50_000),
			ConnectorWeight:  500_000,
		},
		&PriceDataUpdate{
			ConnectorToken:   to,
			ConnectorBalance: uint256.NewInt(1_000_020),
			TokenSupply:      uint256.NewInt(50_000),
			ConnectorWeight:  500_000,
		},
	}, env.events)
}

func TestConversionFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, env *testEnv, connector codec.Address, mock *MockToken)
		to    func(env *testEnv, connector codec.Address) codec.Address
		from  func(env *testEnv, connector codec.Address) codec.Address
		min   uint64
		err   error
		kind  error
	}{
		{
			name: "slippage",
			setup: func(_ *testing.T, env *testEnv, _ codec.Address, mock *MockToken) {
				mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(11_000), nil)
				env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(10_000), nil)
			},
			min:  991,
			err:  ErrSlippage,
			kind: ErrSlippage,
		},
		{
			name: "zero minimum return",
			min:  0,
			err:  ErrInvalidMinReturn,
			kind: ErrValidation,
		},
		{
			name: "same token",
			to:   func(_ *testEnv, connector codec.Address) codec.Address { return connector },
			min:  1,
			err:  ErrSameToken,
			kind: ErrValidation,
		},
		{
			name: "unregistered target connector",
			to:   func(*testEnv, codec.Address) codec.Address { return newAddress(consts.TokenID) },
			min:  1,
			err:  ErrConnectorNotSet,
			kind: ErrValidation,
		},
		{
			name: "unregistered source connector",
			from: func(*testEnv, codec.Address) codec.Address { return newAddress(consts.TokenID) },
			min:  1,
			err:  ErrConnectorNotSet,
			kind: ErrValidation,
		},
		{
			name: "conversions disabled",
			setup: func(t *testing.T, env *testEnv, _ codec.Address, _ *MockToken) {
				require.NoError(t, env.converter.DisableConversions(env.ctx, env.owner, true))
				env.resetEvents()
			},
			min:  1,
			err:  ErrConversionsDisabled,
			kind: ErrState,
		},
		{
			name: "purchases disabled",
			setup: func(t *testing.T, env *testEnv, connector codec.Address, _ *MockToken) {
				require.NoError(t, env.converter.DisableConnectorPurchases(env.ctx, env.owner, connector, true))
				env.resetEvents()
			},
			min:  1,
			err:  ErrPurchasesDisabled,
			kind: ErrState,
		},
		{
			name: "deposit not received",
			setup: func(_ *testing.T, env *testEnv, _ codec.Address, mock *MockToken) {
				mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(999), nil)
			},
			min:  1,
			err:  ErrDepositMissing,
			kind: ErrState,
		},
		{
			name: "balance failure propagates",
			setup: func(_ *testing.T, env *testEnv, _ codec.Address, mock *MockToken) {
				mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(nil, errTest)
			},
			min:  1,
			err:  errTest,
			kind: errTest,
		},
		{
			name: "issue failure propagates",
			setup: func(_ *testing.T, env *testEnv, _ codec.Address, mock *MockToken) {
				mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(11_000), nil)
				env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(10_000), nil)
				env.smart.EXPECT().Issue(gomock.Any(), env.network, gomock.Any()).Return(errTest)
			},
			min:  1,
			err:  errTest,
			kind: errTest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			env := activeEnv(t, 10_000)
			connector, mock := env.addConnector(t, consts.MaxWeight, false)
			env.resetEvents()
			if tt.setup != nil {
				tt.setup(t, env, connector, mock)
			}
			from, to := connector, env.token
			if tt.from != nil {
				from = tt.from(env, connector)
			}
			if tt.to != nil {
				to = tt.to(env, connector)
			}

			err := env.converter.TokenFallback(env.ctx, from, env.network, uint256.NewInt(1_000), convertData(t, to, tt.min))
			require.ErrorIs(err, tt.err)
			require.ErrorIs(err, tt.kind)
			require.Empty(env.events)
		})
	}
}

func TestConvertInactive(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	env.setActive(false)
	env.reg.EXPECT().GetAddress(gomock.Any(), consts.NetworkKey).Return(env.network, nil)
	connector, _ := env.addConnector(t, consts.MaxWeight, false)

	err := env.converter.TokenFallback(env.ctx, connector, env.network, uint256.NewInt(1_000), convertData(t, env.token, 1))
	require.ErrorIs(err, ErrInactive)
	require.ErrorIs(err, ErrState)
}

func TestQuoteFixtures(t *testing.T) {
	tests := []struct {
		name     string
		maxFee   uint32
		fee      uint32
		purchase [2]uint64
		sale     [2]uint64
		cross    [2]uint64
	}{
		{
			name:     "no fee",
			maxFee:   consts.MaxConversionFee,
			fee:      0,
			purchase: [2]uint64{1_000, 0},
			sale:     [2]uint64{1_000, 0},
			cross:    [2]uint64{1_000, 0},
		},
		{
			name:     "one percent",
			maxFee:   consts.MaxConversionFee,
			fee:      10_000,
			purchase: [2]uint64{990, 10},
			sale:     [2]uint64{990, 10},
			cross:    [2]uint64{980, 20},
		},
		{
			name:     "one percent of a lower maximum",
			maxFee:   100_000,
			fee:      1_000,
			purchase: [2]uint64{990, 10},
			sale:     [2]uint64{990, 10},
			cross:    [2]uint64{980, 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			amount := uint256.NewInt(1_000)
			check := func(q *Quote, err error, want [2]uint64) {
				require.NoError(err)
				require.Equal(want[0], q.Amount.Uint64())
				require.Equal(want[1], q.Fee.Uint64())
			}

			// A full weight connector prices the primary token linearly.
			env := newTestEnv(t)
			env.install(t, tt.maxFee)
			require.NoError(env.converter.SetConversionFee(env.ctx, env.owner, tt.fee))
			connector, mock := env.addConnector(t, consts.MaxWeight, false)
			mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_000_000), nil).AnyTimes()
			env.smart.EXPECT().TotalSupply(gomock.Any()).Return(uint256.NewInt(1_000_000), nil).AnyTimes()

			q, err := env.converter.GetPurchaseReturn(env.ctx, connector, amount)
			check(q, err, tt.purchase)
			q, err = env.converter.GetReturn(env.ctx, connector, env.token, amount)
			check(q, err, tt.purchase)
			q, err = env.converter.GetSaleReturn(env.ctx, connector, amount)
			check(q, err, tt.sale)
			q, err = env.converter.GetReturn(env.ctx, env.token, connector, amount)
			check(q, err, tt.sale)

			// Connectors with equal weights price cross conversions linearly,
			// and the fee is applied once to the combined return.
			env = newTestEnv(t)
			env.install(t, tt.maxFee)
			require.NoError(env.converter.SetConversionFee(env.ctx, env.owner, tt.fee))
			from, fromMock := env.addConnector(t, consts.MaxWeight/2, false)
			to, toMock := env.addConnector(t, consts.MaxWeight/2, false)
			fromMock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_000_000), nil).AnyTimes()
			toMock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_001_000), nil).AnyTimes()

			q, err = env.converter.GetCrossConnectorReturn(env.ctx, from, to, amount)
			check(q, err, tt.cross)
			q, err = env.converter.GetReturn(env.ctx, from, to, amount)
			check(q, err, tt.cross)
		})
	}
}

func TestQuoteErrors(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	connector, mock := env.addConnector(t, 500_000, false)
	other, _ := env.addConnector(t, 500_000, false)
	env.smart.EXPECT().TotalSupply(gomock.Any()).Return(new(uint256.Int), nil).AnyTimes()
	mock.EXPECT().BalanceOf(gomock.Any(), env.address).Return(uint256.NewInt(1_000), nil).AnyTimes()

	_, err := env.converter.GetReturn(env.ctx, connector, connector, uint256.NewInt(1))
	require.ErrorIs(err, ErrSameToken)
	_, err = env.converter.GetPurchaseReturn(env.ctx, newAddress(consts.TokenID), uint256.NewInt(1))
	require.ErrorIs(err, ErrConnectorNotSet)

	// Pricing against an empty supply is rejected by the formula.
	_, err = env.converter.GetPurchaseReturn(env.ctx, connector, uint256.NewInt(1))
	require.ErrorIs(err, ErrValidation)

	require.NoError(env.converter.DisableConnectorPurchases(env.ctx, env.owner, other, true))
	_, err = env.converter.GetCrossConnectorReturn(env.ctx, connector, other, uint256.NewInt(1))
	require.ErrorIs(err, ErrPurchasesDisabled)
}

func TestCreditVirtualBalance(t *testing.T) {
	require := require.New(t)

	connector := &storage.Connector{VirtualBalance: uint256.NewInt(10)}
	require.NoError(creditVirtualBalance(connector, uint256.NewInt(5)))
	require.Equal(uint64(15), connector.VirtualBalance.Uint64())

	connector.VirtualBalance = new(uint256.Int).SetAllOne()
	require.ErrorIs(creditVirtualBalance(connector, uint256.NewInt(1)), ErrArithmeticRange)
	require.Equal(new(uint256.Int).SetAllOne(), connector.VirtualBalance)
}
