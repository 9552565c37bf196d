// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/manifoldco/promptui"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/utils"
)

var (
	ErrInputEmpty    = errors.New("input is empty")
	ErrInputTooLarge = errors.New("input is too large")
	ErrInvalidChoice = errors.New("invalid choice")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddress(strings.TrimSpace(raw))
}

// ValidateAmount rejects anything that is not a base-10 amount that fits in
// 256 bits.
func ValidateAmount(input string) error {
	if len(strings.TrimSpace(input)) == 0 {
		return ErrInputEmpty
	}
	_, err := utils.ParseAmount(input)
	return err
}

func Amount(label string) (*uint256.Int, error) {
	promptText := promptui.Prompt{
		Label:    label,
		Validate: ValidateAmount,
	}
	raw, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return utils.ParseAmount(raw)
}

// ParseUint32 parses [input] as a value no larger than [maxValue].
func ParseUint32(input string, maxValue uint32) (uint32, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, ErrInputEmpty
	}
	v, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, err
	}
	if uint32(v) > maxValue {
		return 0, fmt.Errorf("%w: %d must be <= %d", ErrInputTooLarge, v, maxValue)
	}
	return uint32(v), nil
}

// Uint32 is used for weights and fees, both expressed in parts per million.
func Uint32(label string, maxValue uint32) (uint32, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ParseUint32(input, maxValue)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return ParseUint32(raw, maxValue)
}

// ParseBool accepts y or n in any case.
func ParseBool(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return false, ErrInputEmpty
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, ErrInvalidChoice
	}
}

func Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label: label + " (y/n)",
		Validate: func(input string) error {
			_, err := ParseBool(input)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return ParseBool(raw)
}

func Choice(label string, maxChoice int) (int, error) {
	if maxChoice == 1 {
		utils.Outf("{{yellow}}%s:{{/}} 0 [auto-selected]\n", label)
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			index, err := strconv.Atoi(input)
			if err != nil {
				return err
			}
			if index >= maxChoice || index < 0 {
				return ErrInvalidChoice
			}
			return nil
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(rawIndex)
}
