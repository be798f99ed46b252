// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/output"
)

// GlobalFlagsValidator checks the cache flags every subcommand shares.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("expiry") < 0 {
		return errors.New("--expiry must not be negative")
	}
	return nil
}

// ArgsValidator requires at least atLeast positional arguments and, when
// atMost is not negative, no more than atMost.
func ArgsValidator(c *cli.Command, atLeast, atMost int) error {
	n := c.Args().Len()
	if n < atLeast {
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", c.Name, atLeast, n)
	}
	if atMost >= 0 && n > atMost {
		return fmt.Errorf("%s: expected at most %d argument(s), got %d", c.Name, atMost, n)
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	valid := false
	for _, v := range output.Formats {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// KeyValueValidator verifies that an argument has the form KEY=VALUE with a
// non-empty KEY.
func KeyValueValidator(value any) error {
	k, _, ok := strings.Cut(value.(string), "=")
	if !ok || k == "" {
		return fmt.Errorf("%q must be of the form KEY=VALUE", value)
	}
	return nil
}
