package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"unitconv-core/convert"
	"unitconv-core/units"

	"unitconv/internal/output"
	"unitconv/pkg/api"
)

// ConvertInput is the convert tool input.
type ConvertInput struct {
	Domain string  `json:"domain" jsonschema:"measurement domain: length, weight, volume, speed, area, pressure or temperature"`
	Value  float64 `json:"value" jsonschema:"numeric value expressed in the source unit"`
	From   string  `json:"from" jsonschema:"source unit symbol, e.g. mile"`
	To     string  `json:"to" jsonschema:"target unit symbol, e.g. km"`
}

// ListUnitsInput is the list_units tool input.
type ListUnitsInput struct {
	Domain string `json:"domain" jsonschema:"measurement domain"`
}

// ListUnitsResult is the list_units tool output.
type ListUnitsResult struct {
	Domain string       `json:"domain" jsonschema:"measurement domain"`
	Base   string       `json:"base" jsonschema:"symbol of the base unit"`
	Units  []api.UnitV1 `json:"units" jsonschema:"units in display order"`
}

// ListDomainsInput is the (empty) list_domains tool input.
type ListDomainsInput struct{}

// ListDomainsResult is the list_domains tool output.
type ListDomainsResult struct {
	Domains []api.DomainV1 `json:"domains" jsonschema:"every domain with its base unit"`
}

// ConvertTool defines the convert tool.
func ConvertTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "convert",
		Description: "Converts a value between two units of the same domain and returns the exact and display results.",
	}
}

// ConvertHandler executes a conversion.
func ConvertHandler(conv *convert.Converter, log *zap.Logger) mcp.ToolHandlerFor[ConvertInput, api.ConversionV1] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ConvertInput) (*mcp.CallToolResult, api.ConversionV1, error) {
		d, err := units.ParseDomain(in.Domain)
		if err != nil {
			return nil, api.ConversionV1{}, err
		}
		res, err := conv.Do(convert.Request{Domain: d, Value: in.Value, From: in.From, To: in.To})
		if err != nil {
			log.Debug("convert tool", zap.String("domain", in.Domain), zap.Error(err))
			if errors.Is(err, units.ErrUnknownUnit) {
				err = fmt.Errorf("%w (known: %v)", err, conv.Symbols(d))
			}
			return nil, api.ConversionV1{}, err
		}
		return nil, output.ToAPI(res, nil), nil
	}
}

// ListUnitsTool defines the list_units tool.
func ListUnitsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_units",
		Description: "Lists the unit symbols of a domain, flagging its base unit.",
	}
}

// ListUnitsHandler lists the units of one domain.
func ListUnitsHandler(conv *convert.Converter) mcp.ToolHandlerFor[ListUnitsInput, ListUnitsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ListUnitsInput) (*mcp.CallToolResult, ListUnitsResult, error) {
		d, err := units.ParseDomain(in.Domain)
		if err != nil {
			return nil, ListUnitsResult{}, err
		}
		us, err := conv.Units(d)
		if err != nil {
			return nil, ListUnitsResult{}, err
		}
		dom := output.ToAPIDomain(d.String(), us)
		return nil, ListUnitsResult{Domain: dom.Name, Base: dom.Base, Units: dom.Units}, nil
	}
}

// ListDomainsTool defines the list_domains tool.
func ListDomainsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_domains",
		Description: "Lists the supported measurement domains and their base units.",
	}
}

// ListDomainsHandler lists every domain.
func ListDomainsHandler(conv *convert.Converter) mcp.ToolHandlerFor[ListDomainsInput, ListDomainsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListDomainsInput) (*mcp.CallToolResult, ListDomainsResult, error) {
		var out ListDomainsResult
		for _, d := range units.Domains() {
			us, err := conv.Units(d)
			if err != nil {
				return nil, ListDomainsResult{}, err
			}
			dom := output.ToAPIDomain(d.String(), us)
			dom.Units = nil
			out.Domains = append(out.Domains, dom)
		}
		return nil, out, nil
	}
}
