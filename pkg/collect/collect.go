// Package collect gathers replacement values for a token set interactively,
// offering a terminal alternative to the spreadsheet form round trip. The
// PromptDriver seam keeps the logic testable without a terminal.
package collect

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Option customises the collector configuration.
type Option func(*Collector)

// WithDriver injects a custom prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		c.driver = driver
	}
}

// Collector prompts for one value per token and assembles the mapping for a
// single fill-in instance.
type Collector struct {
	driver PromptDriver
}

// New constructs a Collector with defaults (survey-backed prompts).
func New(options ...Option) (*Collector, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	c := &Collector{driver: driver}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.driver == nil {
		return nil, errors.New("collect: prompt driver is nil")
	}
	return c, nil
}

// Collect prompts once per token in set order and returns the resulting
// mapping. Empty answers stay in the mapping; they render unresolved, the
// same as a blank form cell.
func (c *Collector) Collect(ctx context.Context, tokens model.TokenSet) (model.Mapping, error) {
	if ctx == nil {
		return nil, errors.New("collect: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if tokens.Len() == 0 {
		if err := c.driver.Info(ctx, "template has no placeholders"); err != nil {
			return nil, err
		}
		return model.Mapping{}, nil
	}

	values := model.Mapping{}
	for _, token := range tokens.Tokens() {
		answer, err := c.driver.Input(ctx, InputConfig{
			Message: token,
			Help:    "leave empty to keep the token unresolved",
		})
		if err != nil {
			return nil, fmt.Errorf("collect: prompt %s: %w", token, err)
		}
		values[token] = answer
	}
	return values, nil
}
