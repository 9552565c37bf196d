// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/convertervm/utils"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Steps performed in order against one ledger.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `json:"description" yaml:"description"`
	// The operation to perform. (required)
	Action Action `json:"action" yaml:"action"`
	// The account invoking the action. Ignored by read-only actions.
	Caller string `json:"caller" yaml:"caller"`
	// Name under which a created contract can be referenced by later steps.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
	// Action parameters. Addresses are given as an alias, an account name
	// or a 0x prefixed hex address.
	Params map[string]string `json:"params" yaml:"params"`
	// Define required assertions against this step.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Action string

const (
	CreateRegistry         Action = "create_registry"
	RegisterAddress        Action = "register_address"
	CreateToken            Action = "create_token"
	CreateConverter        Action = "create_converter"
	SetFee                 Action = "set_fee"
	AddConnector           Action = "add_connector"
	Transfer               Action = "transfer"
	TransferTokenOwnership Action = "transfer_token_ownership"
	AcceptTokenOwnership   Action = "accept_token_ownership"
	Convert                Action = "convert"
	Withdraw               Action = "withdraw"
	DisableConversions     Action = "disable_conversions"
	UpdateRegistry         Action = "update_registry"
	RestoreRegistry        Action = "restore_registry"
	Balance                Action = "balance"
	Quote                  Action = "quote"
)

type actionSpec struct {
	params   []string
	creates  bool
	readOnly bool
}

var actions = map[Action]actionSpec{
	CreateRegistry:         {creates: true},
	RegisterAddress:        {params: []string{"registry", "name", "address"}},
	CreateToken:            {params: []string{"name", "symbol", "supply"}, creates: true},
	CreateConverter:        {params: []string{"token", "registry", "max_fee", "connector", "weight"}, creates: true},
	SetFee:                 {params: []string{"converter", "fee"}},
	AddConnector:           {params: []string{"converter", "token", "weight"}},
	Transfer:               {params: []string{"token", "to", "amount"}},
	TransferTokenOwnership: {params: []string{"token", "to"}},
	AcceptTokenOwnership:   {params: []string{"converter"}},
	Convert:                {params: []string{"converter", "from", "to", "amount", "min_return"}},
	Withdraw:               {params: []string{"converter", "token", "to", "amount"}},
	DisableConversions:     {params: []string{"converter", "disable"}},
	UpdateRegistry:         {params: []string{"converter"}},
	RestoreRegistry:        {params: []string{"converter"}},
	Balance:                {params: []string{"token", "owner"}, readOnly: true},
	Quote:                  {params: []string{"converter", "from", "to", "amount"}, readOnly: true},
}

type Require struct {
	// Assertion against the amount produced by the step.
	Result *ResultAssertion `json:"result,omitempty" yaml:"result,omitempty"`
	// The step must fail with an error containing this text.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type ResultAssertion struct {
	// The operator to use for the assertion.
	Operator Operator `json:"operator" yaml:"operator"`
	// The value to compare against.
	Value string `json:"value" yaml:"value"`
}

type Operator string

const (
	NumericGt Operator = ">"
	NumericLt Operator = "<"
	NumericGe Operator = ">="
	NumericLe Operator = "<="
	NumericEq Operator = "=="
	NumericNe Operator = "!="
)

func NewResponse(id int) *Response {
	return &Response{
		ID: id,
	}
}

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The result of the step.
	Result *Result `json:"result,omitempty"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

func (r *Response) Print(w io.Writer) {
	b, err := json.Marshal(r)
	if err != nil {
		fmt.Fprintln(w, `{"error": "failed to marshal response"}`)
		return
	}
	fmt.Fprintln(w, string(b))
}

type Result struct {
	// The contract created by the step.
	Address string `json:"address,omitempty"`
	// The balance, quote or conversion output of the step.
	Amount string `json:"amount,omitempty"`
	// The conversion fee deducted from the amount.
	Fee string `json:"fee,omitempty"`
	// The names of the events committed by the step.
	Events []string `json:"events,omitempty"`

	amount *uint256.Int
}

func (r *Result) setAmount(amount, fee *uint256.Int) {
	r.amount = amount
	r.Amount = utils.FormatAmount(amount)
	if fee != nil {
		r.Fee = utils.FormatAmount(fee)
	}
}

func (o Operator) valid() bool {
	switch o {
	case NumericGt, NumericLt, NumericGe, NumericLe, NumericEq, NumericNe:
		return true
	default:
		return false
	}
}

// validateAssertion validates the assertion against the actual value.
func validateAssertion(actual *uint256.Int, assertion *ResultAssertion) (bool, error) {
	value, err := utils.ParseAmount(assertion.Value)
	if err != nil {
		return false, err
	}
	if actual == nil {
		actual = new(uint256.Int)
	}

	switch assertion.Operator {
	case NumericGt:
		return actual.Gt(value), nil
	case NumericLt:
		return actual.Lt(value), nil
	case NumericGe:
		return !actual.Lt(value), nil
	case NumericLe:
		return !actual.Gt(value), nil
	case NumericEq:
		return actual.Eq(value), nil
	case NumericNe:
		return !actual.Eq(value), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, assertion.Operator)
	}
}

func unmarshalPlan(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(string(bytes)):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(string(bytes)):
		if err := yaml.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}

	return &p, nil
}

// verifyPlan checks every step before anything is executed.
func verifyPlan(p *Plan) error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, "no steps found")
	}
	aliases := make(map[string]struct{})
	for i, step := range p.Steps {
		spec, ok := actions[step.Action]
		if !ok {
			return fmt.Errorf("%w %d %w: %q", ErrInvalidStep, i, ErrInvalidAction, step.Action)
		}
		if !spec.readOnly && len(step.Caller) == 0 {
			return fmt.Errorf("%w %d %w: caller", ErrInvalidStep, i, ErrMissingParam)
		}
		for _, name := range spec.params {
			if len(step.Params[name]) == 0 {
				return fmt.Errorf("%w %d %w: %s", ErrInvalidStep, i, ErrMissingParam, name)
			}
		}
		if spec.creates {
			if len(step.Alias) == 0 {
				return fmt.Errorf("%w %d %w: alias", ErrInvalidStep, i, ErrMissingParam)
			}
			if _, ok := aliases[step.Alias]; ok {
				return fmt.Errorf("%w %d %w: %s", ErrInvalidStep, i, ErrDuplicateAlias, step.Alias)
			}
			aliases[step.Alias] = struct{}{}
		}
		if step.Require != nil && step.Require.Result != nil && !step.Require.Result.Operator.valid() {
			return fmt.Errorf("%w %d %w: %q", ErrInvalidStep, i, ErrInvalidOperator, step.Require.Result.Operator)
		}
	}
	return nil
}

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func isYAML(s string) bool {
	var y map[string]interface{}
	return yaml.Unmarshal([]byte(s), &y) == nil
}
