// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/ava-labs/convertervm/cli/prompt"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/formula"
	"github.com/ava-labs/convertervm/utils"
)

type quoteResult struct {
	Return *uint256.Int
	Amount *uint256.Int
	Fee    *uint256.Int
}

// quoteFunc computes a return from the parsed positional values.
type quoteFunc func(values []*uint256.Int) (*uint256.Int, error)

func newQuoteCmd() *cobra.Command {
	var fee uint32
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote conversions with the weighted reserve formula",
	}
	cmd.PersistentFlags().Uint32Var(&fee, "fee", 0, "conversion fee in parts per million")

	cmd.AddCommand(
		newQuoteSubCmd(
			"purchase",
			"Quote the primary tokens issued for a connector deposit",
			[]string{"supply", "reserve-balance", "reserve-weight", "amount"},
			formula.SingleHopFeeMagnitude,
			&fee,
			purchaseReturn,
		),
		newQuoteSubCmd(
			"sale",
			"Quote the connector tokens paid out for destroying primary tokens",
			[]string{"supply", "reserve-balance", "reserve-weight", "amount"},
			formula.SingleHopFeeMagnitude,
			&fee,
			saleReturn,
		),
		newQuoteSubCmd(
			"cross",
			"Quote a conversion between two connectors",
			[]string{"from-balance", "from-weight", "to-balance", "to-weight", "amount"},
			formula.CrossConnectorFeeMagnitude,
			&fee,
			crossReturn,
		),
	)
	return cmd
}

func newQuoteSubCmd(
	use string,
	short string,
	labels []string,
	magnitude uint8,
	fee *uint32,
	f quoteFunc,
) *cobra.Command {
	usage := use
	for _, label := range labels {
		usage += " [" + label + "]"
	}
	return &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  short + ". Missing arguments are prompted for.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != len(labels) {
				return fmt.Errorf("%w: expected 0 or %d arguments, got %d", ErrInvalidParam, len(labels), len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			values, err := readValues(labels, args)
			if err != nil {
				return err
			}
			res, err := quote(values, *fee, magnitude, f)
			if err != nil {
				return err
			}
			utils.Outf(
				"{{yellow}}return:{{/}} %s {{yellow}}fee:{{/}} %s {{yellow}}net:{{/}} {{green}}%s{{/}}\n",
				utils.FormatAmount(res.Return),
				utils.FormatAmount(res.Fee),
				utils.FormatAmount(res.Amount),
			)
			return nil
		},
	}
}

func readValues(labels []string, args []string) ([]*uint256.Int, error) {
	values := make([]*uint256.Int, len(labels))
	for i, label := range labels {
		var (
			v   *uint256.Int
			err error
		)
		if len(args) > 0 {
			v, err = utils.ParseAmount(args[i])
		} else {
			v, err = prompt.Amount(label)
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidParam, label, err)
		}
		values[i] = v
	}
	return values, nil
}

func quote(values []*uint256.Int, fee uint32, magnitude uint8, f quoteFunc) (*quoteResult, error) {
	if fee > consts.MaxConversionFee {
		return nil, fmt.Errorf("%w: fee %d exceeds %d", ErrInvalidParam, fee, consts.MaxConversionFee)
	}
	raw, err := f(values)
	if err != nil {
		return nil, err
	}
	net, deducted, err := formula.FinalAmount(raw, fee, consts.FeeResolution, magnitude)
	if err != nil {
		return nil, err
	}
	return &quoteResult{Return: raw, Amount: net, Fee: deducted}, nil
}

func toWeight(v *uint256.Int) (uint32, error) {
	if !v.IsUint64() || v.Uint64() > uint64(consts.MaxWeight) {
		return 0, fmt.Errorf("%w: weight %s exceeds %d", ErrInvalidParam, utils.FormatAmount(v), consts.MaxWeight)
	}
	return uint32(v.Uint64()), nil
}

func purchaseReturn(values []*uint256.Int) (*uint256.Int, error) {
	weight, err := toWeight(values[2])
	if err != nil {
		return nil, err
	}
	return formula.CalculatePurchaseReturn(values[0], values[1], weight, values[3])
}

func saleReturn(values []*uint256.Int) (*uint256.Int, error) {
	weight, err := toWeight(values[2])
	if err != nil {
		return nil, err
	}
	return formula.CalculateSaleReturn(values[0], values[1], weight, values[3])
}

func crossReturn(values []*uint256.Int) (*uint256.Int, error) {
	fromWeight, err := toWeight(values[1])
	if err != nil {
		return nil, err
	}
	toW, err := toWeight(values[3])
	if err != nil {
		return nil, err
	}
	return formula.CalculateCrossConnectorReturn(values[0], fromWeight, values[2], toW, values[4])
}
