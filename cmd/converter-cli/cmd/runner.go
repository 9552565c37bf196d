// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/cli/prompt"
	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/converter"
	"github.com/ava-labs/convertervm/host"
	"github.com/ava-labs/convertervm/token"
	"github.com/ava-labs/convertervm/utils"
)

const defaultDecimals = 18

// runner executes plan steps in order. Every state changing step is one
// ledger invocation.
type runner struct {
	ledger *host.Ledger
	out    io.Writer

	// alias -> contract created by an earlier step
	aliases map[string]codec.Address
}

func newRunner(ledger *host.Ledger, out io.Writer) *runner {
	return &runner{
		ledger:  ledger,
		out:     out,
		aliases: make(map[string]codec.Address),
	}
}

func (r *runner) run(ctx context.Context, p *Plan) error {
	for i := range p.Steps {
		step := &p.Steps[i]
		resp := NewResponse(i)
		res, err := r.execute(ctx, step)
		if err != nil {
			resp.Error = err.Error()
			resp.Print(r.out)
			if step.Require != nil && len(step.Require.Error) > 0 && strings.Contains(err.Error(), step.Require.Error) {
				continue
			}
			return errStep(i, err)
		}
		resp.Result = res
		resp.Print(r.out)

		if step.Require == nil {
			continue
		}
		if len(step.Require.Error) > 0 {
			return errStep(i, fmt.Errorf("%w: expected error %q", ErrAssertionFailed, step.Require.Error))
		}
		if step.Require.Result != nil {
			ok, err := validateAssertion(res.amount, step.Require.Result)
			if err != nil {
				return errStep(i, err)
			}
			if !ok {
				return errStep(i, fmt.Errorf(
					"%w: %s %s %s",
					ErrAssertionFailed,
					res.Amount,
					step.Require.Result.Operator,
					step.Require.Result.Value,
				))
			}
		}
	}
	return nil
}

// resolve maps a plan reference to an address. Aliases take precedence,
// then 0x prefixed hex addresses. Anything else names an account.
func (r *runner) resolve(name string) (codec.Address, error) {
	if addr, ok := r.aliases[name]; ok {
		return addr, nil
	}
	if strings.HasPrefix(name, "0x") {
		return codec.ParseAddress(name)
	}
	return accountAddress(name), nil
}

func accountAddress(name string) codec.Address {
	return codec.CreateAddress(consts.AccountID, utils.ToID([]byte(name)))
}

func (r *runner) execute(ctx context.Context, step *Step) (*Result, error) {
	p := params(step.Params)
	caller := accountAddress(step.Caller)
	res := &Result{}

	var (
		logs    []host.Log
		created codec.Address
		err     error
	)
	switch step.Action {
	case Balance:
		tokenAddr, owner := p.address(r, "token"), p.address(r, "owner")
		if p.err != nil {
			return nil, p.err
		}
		err = r.ledger.Query(ctx, func(tx *host.Tx) error {
			tk, err := tx.Token(ctx, tokenAddr)
			if err != nil {
				return err
			}
			balance, err := tk.BalanceOf(ctx, owner)
			if err != nil {
				return err
			}
			res.setAmount(balance, nil)
			return nil
		})
		return res, err
	case Quote:
		conv, from, to, amount := p.address(r, "converter"), p.address(r, "from"), p.address(r, "to"), p.amount("amount")
		if p.err != nil {
			return nil, p.err
		}
		err = r.ledger.Query(ctx, func(tx *host.Tx) error {
			c, err := tx.Converter(ctx, conv)
			if err != nil {
				return err
			}
			q, err := c.GetReturn(ctx, from, to, amount)
			if err != nil {
				return err
			}
			res.setAmount(q.Amount, q.Fee)
			return nil
		})
		return res, err
	case CreateRegistry:
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			var err error
			created, err = tx.CreateRegistry(ctx, caller)
			return err
		})
	case CreateToken:
		tokenParams := &token.CreateParams{
			Name:          p.str("name"),
			Symbol:        p.str("symbol"),
			Decimals:      p.u8("decimals", defaultDecimals),
			InitialSupply: p.amount("supply"),
		}
		if p.err != nil {
			return nil, p.err
		}
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			var err error
			created, err = tx.CreateToken(ctx, caller, tokenParams)
			return err
		})
	case CreateConverter:
		installParams := &converter.InstallParams{
			Token:            p.address(r, "token"),
			Registry:         p.address(r, "registry"),
			MaxConversionFee: p.u32("max_fee", consts.MaxConversionFee),
			ConnectorToken:   p.address(r, "connector"),
			ConnectorWeight:  p.u32("weight", consts.MaxWeight),
		}
		if p.err != nil {
			return nil, p.err
		}
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			var err error
			created, err = tx.CreateConverter(ctx, caller, installParams)
			return err
		})
	case RegisterAddress:
		reg, name, addr := p.address(r, "registry"), p.str("name"), p.address(r, "address")
		if p.err != nil {
			return nil, p.err
		}
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			rg, err := tx.Registry(ctx, reg)
			if err != nil {
				return err
			}
			return rg.RegisterAddress(ctx, caller, name, addr)
		})
	case Transfer, TransferTokenOwnership:
		tokenAddr, to := p.address(r, "token"), p.address(r, "to")
		var amount *uint256.Int
		if step.Action == Transfer {
			amount = p.amount("amount")
		}
		if p.err != nil {
			return nil, p.err
		}
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			tk, err := tx.Token(ctx, tokenAddr)
			if err != nil {
				return err
			}
			if amount == nil {
				return tk.TransferOwnership(ctx, caller, to)
			}
			return tk.Transfer(ctx, caller, to, amount, nil)
		})
	case Convert:
		conv, from, to := p.address(r, "converter"), p.address(r, "from"), p.address(r, "to")
		amount, minReturn := p.amount("amount"), p.amount("min_return")
		if p.err != nil {
			return nil, p.err
		}
		data, err := converter.EncodeConvertPayload(to, minReturn)
		if err != nil {
			return nil, err
		}
		logs, err = r.ledger.Invoke(ctx, func(tx *host.Tx) error {
			tk, err := tx.Token(ctx, from)
			if err != nil {
				return err
			}
			return tk.Transfer(ctx, caller, conv, amount, data)
		})
		if err != nil {
			return nil, err
		}
		for _, l := range logs {
			if c, ok := l.Event.(*converter.Conversion); ok {
				res.setAmount(c.AmountOut, c.Fee)
			}
		}
	default:
		logs, err = r.invokeConverter(ctx, step.Action, caller, p)
	}
	if err != nil {
		return nil, err
	}
	if !created.IsEmpty() {
		res.Address = created.String()
		r.aliases[step.Alias] = created
	}
	for _, l := range logs {
		res.Events = append(res.Events, l.Name)
	}
	return res, nil
}

// invokeConverter runs the administrative converter actions.
func (r *runner) invokeConverter(ctx context.Context, action Action, caller codec.Address, p *paramReader) ([]host.Log, error) {
	conv := p.address(r, "converter")
	var fn func(*converter.Converter) error
	switch action {
	case SetFee:
		fee := p.u32("fee", consts.MaxConversionFee)
		fn = func(c *converter.Converter) error {
			return c.SetConversionFee(ctx, caller, fee)
		}
	case AddConnector:
		tokenAddr, weight, virtual := p.address(r, "token"), p.u32("weight", consts.MaxWeight), p.flag("virtual")
		fn = func(c *converter.Converter) error {
			return c.AddConnector(ctx, caller, tokenAddr, weight, virtual)
		}
	case AcceptTokenOwnership:
		fn = func(c *converter.Converter) error {
			return c.AcceptTokenOwnership(ctx, caller)
		}
	case Withdraw:
		tokenAddr, to, amount := p.address(r, "token"), p.address(r, "to"), p.amount("amount")
		fn = func(c *converter.Converter) error {
			return c.WithdrawTokens(ctx, caller, tokenAddr, to, amount)
		}
	case DisableConversions:
		disable := p.flag("disable")
		fn = func(c *converter.Converter) error {
			return c.DisableConversions(ctx, caller, disable)
		}
	case UpdateRegistry:
		fn = func(c *converter.Converter) error {
			return c.UpdateRegistry(ctx, caller)
		}
	case RestoreRegistry:
		fn = func(c *converter.Converter) error {
			return c.RestoreRegistry(ctx, caller)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	if p.err != nil {
		return nil, p.err
	}
	return r.ledger.Invoke(ctx, func(tx *host.Tx) error {
		c, err := tx.Converter(ctx, conv)
		if err != nil {
			return err
		}
		return fn(c)
	})
}

// paramReader parses step params and keeps the first failure.
type paramReader struct {
	values map[string]string
	err    error
}

func params(values map[string]string) *paramReader {
	return &paramReader{values: values}
}

func (p *paramReader) fail(name string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w %s: %w", ErrInvalidParam, name, err)
	}
}

func (p *paramReader) str(name string) string {
	return p.values[name]
}

func (p *paramReader) address(r *runner, name string) codec.Address {
	addr, err := r.resolve(p.values[name])
	if err != nil {
		p.fail(name, err)
	}
	return addr
}

func (p *paramReader) amount(name string) *uint256.Int {
	v, err := utils.ParseAmount(p.values[name])
	if err != nil {
		p.fail(name, err)
		return new(uint256.Int)
	}
	return v
}

func (p *paramReader) u32(name string, maxValue uint32) uint32 {
	v, err := prompt.ParseUint32(p.values[name], maxValue)
	if err != nil {
		p.fail(name, err)
	}
	return v
}

// u8 falls back to [def] when the param is not set.
func (p *paramReader) u8(name string, def uint8) uint8 {
	raw, ok := p.values[name]
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		p.fail(name, err)
	}
	return uint8(v)
}

// flag treats a missing param as false.
func (p *paramReader) flag(name string) bool {
	raw, ok := p.values[name]
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, err)
	}
	return v
}
