// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalPlan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{
			name: "yaml",
			input: `
name: buy
steps:
  - action: balance
    params:
      token: "0x01"
      owner: alice
    require:
      result:
        operator: ">="
        value: "1"
`,
		},
		{
			name:  "json",
			input: `{"name":"buy","steps":[{"action":"balance","params":{"token":"0x01","owner":"alice"},"require":{"result":{"operator":">=","value":"1"}}}]}`,
		},
		{
			name:  "neither",
			input: "not a plan",
			err:   ErrInvalidConfigFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			p, err := unmarshalPlan([]byte(tt.input))
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}
			require.Equal("buy", p.Name)
			require.Len(p.Steps, 1)
			step := p.Steps[0]
			require.Equal(Balance, step.Action)
			require.Equal("alice", step.Params["owner"])
			require.Equal(&ResultAssertion{Operator: NumericGe, Value: "1"}, step.Require.Result)
		})
	}
}

func TestVerifyPlan(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		err   error
	}{
		{
			name: "valid",
			steps: []Step{
				{Action: CreateRegistry, Caller: "owner", Alias: "registry"},
				{Action: Balance, Params: map[string]string{"token": "t", "owner": "o"}},
			},
		},
		{
			name: "no steps",
			err:  ErrInvalidPlan,
		},
		{
			name:  "unknown action",
			steps: []Step{{Action: "mint", Caller: "owner"}},
			err:   ErrInvalidAction,
		},
		{
			name:  "missing caller",
			steps: []Step{{Action: SetFee, Params: map[string]string{"converter": "c", "fee": "1"}}},
			err:   ErrMissingParam,
		},
		{
			name:  "missing param",
			steps: []Step{{Action: SetFee, Caller: "owner", Params: map[string]string{"converter": "c"}}},
			err:   ErrMissingParam,
		},
		{
			name:  "missing alias",
			steps: []Step{{Action: CreateRegistry, Caller: "owner"}},
			err:   ErrMissingParam,
		},
		{
			name: "duplicate alias",
			steps: []Step{
				{Action: CreateRegistry, Caller: "owner", Alias: "registry"},
				{Action: CreateRegistry, Caller: "owner", Alias: "registry"},
			},
			err: ErrDuplicateAlias,
		},
		{
			name: "bad operator",
			steps: []Step{{
				Action:  Balance,
				Params:  map[string]string{"token": "t", "owner": "o"},
				Require: &Require{Result: &ResultAssertion{Operator: "=~", Value: "1"}},
			}},
			err: ErrInvalidOperator,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, verifyPlan(&Plan{Steps: tt.steps}), tt.err)
		})
	}
}

func TestValidateAssertion(t *testing.T) {
	tests := []struct {
		operator Operator
		value    string
		want     bool
	}{
		{NumericGt, "9", true},
		{NumericGt, "10", false},
		{NumericLt, "11", true},
		{NumericGe, "10", true},
		{NumericLe, "9", false},
		{NumericEq, "10", true},
		{NumericNe, "10", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.operator)+tt.value, func(t *testing.T) {
			require := require.New(t)

			ok, err := validateAssertion(uint256.NewInt(10), &ResultAssertion{Operator: tt.operator, Value: tt.value})
			require.NoError(err)
			require.Equal(tt.want, ok)
		})
	}

	_, err := validateAssertion(uint256.NewInt(10), &ResultAssertion{Operator: "=~", Value: "1"})
	require.ErrorIs(t, err, ErrInvalidOperator)
}
