// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "maxexpgen" regenerates the precision table embedded in the formula package.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"math/big"
	"os"
	"path/filepath"
	"text/template"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/ava-labs/convertervm/formula"
	"github.com/ava-labs/convertervm/utils"
)

const fsModeWrite = 0o600

var (
	outputFile  string
	packageName string
	check       bool

	errStaleTable = errors.New("embedded table is stale")

	rootCmd = &cobra.Command{
		Use:   "maxexpgen",
		Short: "Generate the fixed point exponent table",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
)

var tableTemplate = template.Must(template.New("max_exp").Parse(`// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Code generated by maxexpgen. DO NOT EDIT.

package {{ .Package }}

import "github.com/holiman/uint256"

// maxExpArray[p] bounds the input of fixedExp at precision p, shifted to
// MaxPrecision. Levels below MinPrecision are disabled.
var maxExpArray = [MaxPrecision + 1]uint256.Int{
{{- range .Levels }}
	{{ if not .Active }}// {{ end }}{{ .Precision }}: {{ .Limbs }},
{{- end }}
}

// expCoefficients[i] is (NumOfCoefficients-1)!/i!.
var expCoefficients = [NumOfCoefficients]uint256.Int{
{{- range .Coefficients }}
	{{ . }},
{{- end }}
}
`))

type level struct {
	Precision int
	Active    bool
	Limbs     string
}

type table struct {
	Package      string
	Levels       []level
	Coefficients []string
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "max_exp.go", "output file")
	rootCmd.Flags().StringVarP(&packageName, "package", "p", "", "package name (defaults to the output directory)")
	rootCmd.Flags().BoolVar(&check, "check", false, "fail if the output file differs instead of writing it")
}

func run(*cobra.Command, []string) error {
	if packageName == "" {
		abs, err := filepath.Abs(outputFile)
		if err != nil {
			return err
		}
		packageName = filepath.Base(filepath.Dir(abs))
	}
	src, err := render(packageName)
	if err != nil {
		return err
	}

	if check {
		current, err := os.ReadFile(outputFile)
		if err != nil {
			return err
		}
		if !bytes.Equal(current, src) {
			return fmt.Errorf("%w: %s", errStaleTable, outputFile)
		}
		utils.Outf("{{green}}%s is up to date{{/}}\n", outputFile)
		return nil
	}

	if err := os.WriteFile(outputFile, src, fsModeWrite); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	utils.Outf("{{green}}generated{{/}} %s\n", outputFile)
	return nil
}

func render(pkg string) ([]byte, error) {
	shifted, coefficients := formula.GenerateTables()
	t := table{Package: pkg}
	for p, v := range shifted {
		limbs, err := limbLiteral(v)
		if err != nil {
			return nil, fmt.Errorf("precision %d: %w", p, err)
		}
		t.Levels = append(t.Levels, level{
			Precision: p,
			Active:    p >= formula.MinPrecision && p <= formula.MaxPrecision,
			Limbs:     limbs,
		})
	}
	for i, c := range coefficients {
		limbs, err := limbLiteral(c)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		t.Coefficients = append(t.Coefficients, limbs)
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, t); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// limbLiteral renders v as a uint256.Int composite literal, least
// significant limb first.
func limbLiteral(v *big.Int) (string, error) {
	u, overflow := uint256.FromBig(v)
	if overflow {
		return "", fmt.Errorf("%s does not fit 256 bits", v)
	}
	return fmt.Sprintf("{0x%016x, 0x%016x, 0x%016x, 0x%016x}", u[0], u[1], u[2], u[3]), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.Outf("{{red}}maxexpgen exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
}
