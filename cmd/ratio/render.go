package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/govalues/ratio"
	"github.com/govalues/ratio/internal/config"
)

func (s *session) render(r ratio.Ratio) (string, error) {
	switch s.custom.Output.Format {
	case config.FormatFloat:
		return strconv.FormatFloat(r.Float64(), 'g', -1, 64), nil
	case config.FormatDecimal:
		return renderDecimal(r, s.custom.Output.Places)
	default:
		return r.String(), nil
	}
}

// renderDecimal expands r to the given number of digits after the decimal
// point, rounding half away from zero. Trailing zeros are dropped,
// so terminating expansions are shown exactly.
func renderDecimal(r ratio.Ratio, places int) (string, error) {
	if r.IsInf() {
		return "", errors.Errorf("%v has no decimal expansion", r)
	}
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, int32(places)).String(), nil
}
