package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const centsPerDollar = 100

// Price is an amount in US cents.
type Price int64

func (p Price) String() string {
	dollars, cents := int64(p)/centsPerDollar, int64(p)%centsPerDollar
	if cents == 0 {
		return fmt.Sprintf("$%d", dollars)
	}

	return fmt.Sprintf("$%d.%02d", dollars, cents)
}

// ParsePrice reads a decimal dollar amount such as "40", "40.5" or "40.50".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")

	whole, frac, hasFrac := strings.Cut(s, ".")

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, errors.Errorf("invalid price %q", s)
	}

	var cents int64

	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, errors.Errorf("invalid price %q", s)
		}

		if len(frac) == 1 {
			frac += "0"
		}

		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, errors.Errorf("invalid price %q", s)
		}
	}

	return Price(dollars*centsPerDollar + cents), nil
}

func (p *Price) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParsePrice(value.Value)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

type Equipment struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	PricePerDay Price    `yaml:"price_per_day"`
	Features    []string `yaml:"features"`
	Capacity    string   `yaml:"capacity"`
}
