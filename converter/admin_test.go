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

func TestWithdrawTokens(t *testing.T) {
	tests := []struct {
		name   string
		isSet  bool
		active bool
		err    error
	}{
		{
			name:   "unregistered token while inactive",
			isSet:  false,
			active: false,
		},
		{
			name:   "unregistered token while active",
			isSet:  false,
			active: true,
		},
		{
			name:   "registered connector while active",
			isSet:  true,
			active: true,
		},
		{
			name:   "registered connector while inactive",
			isSet:  true,
			active: false,
			err:    ErrConnectorReserveLocked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			env := newTestEnv(t)
			env.install(t, 0)
			env.setActive(tt.active)

			token, mock := newAddress(consts.TokenID), NewMockToken(gomock.NewController(t))
			env.connectors[token] = mock
			if tt.isSet {
				token, mock = env.addConnector(t, 500_000, false)
			}
			env.resetEvents()
			to := newAddress(consts.AccountID)
			amount := uint256.NewInt(100)
			if tt.err == nil {
				mock.EXPECT().Transfer(gomock.Any(), to, amount, gomock.Nil()).Return(nil)
			}

			err := env.converter.WithdrawTokens(env.ctx, env.owner, token, to, amount)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				require.ErrorIs(err, ErrState)
				require.Empty(env.events)
				return
			}
			require.Equal([]Event{&TokensWithdrawal{Token: token, To: to, Amount: amount}}, env.events)
		})
	}
}

func TestWithdrawAllowed(t *testing.T) {
	require := require.New(t)

	require.True(withdrawAllowed(false, false))
	require.True(withdrawAllowed(false, true))
	require.True(withdrawAllowed(true, true))
	require.False(withdrawAllowed(true, false))
}

func TestWithdrawTokensValidation(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	token := newAddress(consts.TokenID)

	err := env.converter.WithdrawTokens(env.ctx, newAddress(consts.AccountID), token, env.owner, uint256.NewInt(1))
	require.ErrorIs(err, ErrNotOwner)
	err = env.converter.WithdrawTokens(env.ctx, env.owner, token, env.address, uint256.NewInt(1))
	require.ErrorIs(err, ErrInvalidAddress)
	err = env.converter.WithdrawTokens(env.ctx, env.owner, token, env.owner, new(uint256.Int))
	require.ErrorIs(err, ErrInvalidAmount)
}

func TestWithdrawVirtualBalance(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	env.setActive(true)
	token, mock := env.addConnector(t, 500_000, true)
	require.NoError(env.converter.UpdateConnector(env.ctx, env.owner, token, 500_000, true, uint256.NewInt(150)))
	mock.EXPECT().Transfer(gomock.Any(), env.owner, gomock.Any(), gomock.Nil()).Return(nil).Times(2)

	require.NoError(env.converter.WithdrawTokens(env.ctx, env.owner, token, env.owner, uint256.NewInt(100)))
	balance, err := env.converter.GetConnectorBalance(env.ctx, token)
	require.NoError(err)
	require.Equal(uint64(50), balance.Uint64())

	require.NoError(env.converter.WithdrawTokens(env.ctx, env.owner, token, env.owner, uint256.NewInt(100)))
	balance, err = env.converter.GetConnectorBalance(env.ctx, token)
	require.NoError(err)
	require.True(balance.IsZero())
}

func TestUpdateRegistry(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	latest := newAddress(consts.RegistryID)

	require.ErrorIs(env.converter.UpdateRegistry(env.ctx, newAddress(consts.AccountID)), ErrNotOwner)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.RegistryKey).Return(latest, nil)
	require.NoError(env.converter.UpdateRegistry(env.ctx, env.owner))
	cfg, err := env.converter.Config(env.ctx)
	require.NoError(err)
	require.Equal(latest, cfg.Registry)
	require.Equal(env.registry, cfg.PrevRegistry)

	require.NoError(env.converter.RestoreRegistry(env.ctx, env.owner))
	cfg, err = env.converter.Config(env.ctx)
	require.NoError(err)
	require.Equal(env.registry, cfg.Registry)
	require.Equal(env.registry, cfg.PrevRegistry)

	require.Equal([]Event{
		&RegistryUpdate{PrevRegistry: env.registry, NewRegistry: latest},
		&RegistryUpdate{PrevRegistry: latest, NewRegistry: env.registry},
	}, env.events)
}

func TestUpdateRegistryUnchanged(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.RegistryKey).Return(env.registry, nil)
	err := env.converter.UpdateRegistry(env.ctx, env.owner)
	require.ErrorIs(err, ErrRegistryUnchanged)
	require.ErrorIs(err, ErrState)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.RegistryKey).Return(codec.EmptyAddress, nil)
	require.ErrorIs(env.converter.UpdateRegistry(env.ctx, env.owner), ErrInvalidAddress)

	env.reg.EXPECT().GetAddress(gomock.Any(), consts.RegistryKey).Return(codec.EmptyAddress, errTest)
	require.ErrorIs(env.converter.UpdateRegistry(env.ctx, env.owner), errTest)

	cfg, err := env.converter.Config(env.ctx)
	require.NoError(err)
	require.Equal(env.registry, cfg.Registry)
	require.Empty(env.events)
}

func TestUpdateRegistryDisabled(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)

	require.NoError(env.converter.DisableRegistryUpdate(env.ctx, env.owner, true))
	// The registry is never consulted while updates are disabled.
	err := env.converter.UpdateRegistry(env.ctx, env.owner)
	require.ErrorIs(err, ErrRegistryUpdateDisabled)
	require.ErrorIs(err, ErrState)

	require.NoError(env.converter.DisableRegistryUpdate(env.ctx, env.owner, false))
	require.Equal([]Event{
		&RegistryUpdateEnable{Enabled: false},
		&RegistryUpdateEnable{Enabled: true},
	}, env.events)
}

func TestDisableConversions(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)

	require.ErrorIs(env.converter.DisableConversions(env.ctx, newAddress(consts.AccountID), true), ErrNotOwnerOrManager)
	require.NoError(env.converter.DisableConversions(env.ctx, env.owner, true))
	require.NoError(env.converter.DisableConversions(env.ctx, env.owner, true))
	require.NoError(env.converter.DisableConversions(env.ctx, env.owner, false))

	// Repeating the current setting is silent.
	require.Equal([]Event{
		&ConversionsEnable{Enabled: false},
		&ConversionsEnable{Enabled: true},
	}, env.events)
}

func TestSetConversionFee(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 30_000)

	err := env.converter.SetConversionFee(env.ctx, env.owner, 30_001)
	require.ErrorIs(err, ErrInvalidFee)
	require.ErrorIs(err, ErrValidation)
	require.NoError(env.converter.SetConversionFee(env.ctx, env.owner, 30_000))
	require.NoError(env.converter.SetConversionFee(env.ctx, env.owner, 1_000))

	cfg, err := env.converter.Config(env.ctx)
	require.NoError(err)
	require.Equal(uint32(1_000), cfg.ConversionFee)
	require.Equal([]Event{
		&ConversionFeeUpdate{PrevFee: 0, NewFee: 30_000},
		&ConversionFeeUpdate{PrevFee: 30_000, NewFee: 1_000},
	}, env.events)
}

func TestManagement(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 10_000)
	manager := newAddress(consts.AccountID)

	require.ErrorIs(env.converter.SetConversionFee(env.ctx, manager, 1), ErrNotOwnerOrManager)
	require.ErrorIs(env.converter.TransferManagement(env.ctx, manager, manager), ErrNotOwner)
	require.NoError(env.converter.TransferManagement(env.ctx, env.owner, manager))
	require.ErrorIs(env.converter.AcceptManagement(env.ctx, env.owner), ErrNotPendingManager)
	require.NoError(env.converter.AcceptManagement(env.ctx, manager))

	require.NoError(env.converter.SetConversionFee(env.ctx, manager, 1))
	require.NoError(env.converter.RestoreRegistry(env.ctx, manager))
	require.NoError(env.converter.DisableRegistryUpdate(env.ctx, manager, true))
	// Owner only operations stay closed to the manager.
	require.ErrorIs(env.converter.UpdateRegistry(env.ctx, manager), ErrNotOwner)
	require.ErrorIs(env.converter.AddConnector(env.ctx, manager, newAddress(consts.TokenID), 1, false), ErrNotOwner)

	o, err := env.converter.Ownership(env.ctx)
	require.NoError(err)
	require.Equal(manager, o.Manager)
	require.True(o.NewManager.IsEmpty())
}

func TestOwnershipTransfer(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	newOwner := newAddress(consts.AccountID)

	require.ErrorIs(env.converter.TransferOwnership(env.ctx, newOwner, newOwner), ErrNotOwner)
	require.ErrorIs(env.converter.TransferOwnership(env.ctx, env.owner, env.owner), ErrInvalidAddress)
	require.NoError(env.converter.TransferOwnership(env.ctx, env.owner, newOwner))
	require.ErrorIs(env.converter.AcceptOwnership(env.ctx, env.owner), ErrNotPendingOwner)

	// Nothing moves until the nominee accepts.
	o, err := env.converter.Ownership(env.ctx)
	require.NoError(err)
	require.Equal(env.owner, o.Owner)
	require.Equal(newOwner, o.NewOwner)

	require.NoError(env.converter.AcceptOwnership(env.ctx, newOwner))
	o, err = env.converter.Ownership(env.ctx)
	require.NoError(err)
	require.Equal(newOwner, o.Owner)
	require.True(o.NewOwner.IsEmpty())
	require.Equal([]Event{&OwnerUpdate{PrevOwner: env.owner, NewOwner: newOwner}}, env.events)
	require.ErrorIs(env.converter.SetConversionFee(env.ctx, env.owner, 0), ErrNotOwnerOrManager)
}

func TestTokenOwnership(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)
	upgrader := newAddress(consts.AccountID)

	env.smart.EXPECT().AcceptOwnership(gomock.Any()).Return(nil)
	require.NoError(env.converter.AcceptTokenOwnership(env.ctx, env.owner))
	require.Equal([]Event{&TokenOwnershipUpdate{Token: env.token, NewOwner: env.address}}, env.events)

	require.ErrorIs(env.converter.TransferTokenOwnership(env.ctx, upgrader, upgrader), ErrNotOwner)
	env.smart.EXPECT().TransferOwnership(gomock.Any(), upgrader).Return(nil)
	require.NoError(env.converter.TransferTokenOwnership(env.ctx, env.owner, upgrader))

	env.smart.EXPECT().AcceptOwnership(gomock.Any()).Return(errTest)
	require.ErrorIs(env.converter.AcceptTokenOwnership(env.ctx, env.owner), errTest)
}

func TestIsActive(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t)
	env.install(t, 0)

	env.smart.EXPECT().Owner(gomock.Any()).Return(env.owner, nil)
	active, err := env.converter.IsActive(env.ctx)
	require.NoError(err)
	require.False(active)

	env.smart.EXPECT().Owner(gomock.Any()).Return(env.address, nil)
	active, err = env.converter.IsActive(env.ctx)
	require.NoError(err)
	require.True(active)
}
