package req

import (
	"fmt"
	"net/url"

	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
)

// A Parser decodes extracted parameters into structs and validates them.
type Parser struct {
	paramDecoder paramDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		paramDecoder: newParamDecoder(),
		validator:    newValidator(),
	}
}

// ParseFilter decodes into a pointer to a struct the filter parameters in m,
// as returned by [params.Parameters.Filter].
// If successful, ParseFilter runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseFilter(m params.Map, structPtr any) error {
	if err := p.parse(m.URLValues(), structPtr); err != nil {
		return fmt.Errorf("ginger/http/req: failed parsing filter: %w", err)
	}

	return nil
}

// ParseData decodes into a pointer to a struct the data parameters in m,
// as returned by [params.Parameters.Data].
// If successful, ParseData runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseData(m params.Map, structPtr any) error {
	if err := p.parse(m.URLValues(), structPtr); err != nil {
		return fmt.Errorf("ginger/http/req: failed parsing data: %w", err)
	}

	return nil
}

// ParseParams calls ParseFilter with filterPtr and ParseData with dataPtr.
// Either pointer may be nil to skip it.
func (p *Parser) ParseParams(ps *params.Parameters, filterPtr, dataPtr any) error {
	if ps == nil {
		return fmt.Errorf("ginger/http/req: %w: no parameters", ginger.ErrMissingData)
	}

	if filterPtr != nil {
		if err := p.ParseFilter(ps.Filter(), filterPtr); err != nil {
			return err
		}
	}

	if dataPtr != nil {
		if err := p.ParseData(ps.Data(), dataPtr); err != nil {
			return err
		}
	}

	return nil
}

// ParseValues decodes into a pointer to a struct the raw values in vals.
// If successful, ParseValues runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseValues(vals url.Values, structPtr any) error {
	if err := p.parse(vals, structPtr); err != nil {
		return fmt.Errorf("ginger/http/req: failed parsing values: %w", err)
	}

	return nil
}

func (p *Parser) parse(vals url.Values, structPtr any) error {
	if err := p.paramDecoder.decode(structPtr, vals); err != nil {
		return err
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}
