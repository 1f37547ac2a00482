package output

import (
	"fmt"
	"io"

	"unitconv-core/convert"

	"unitconv/pkg/api"
)

// ToAPIDomain describes one domain and its units.
func ToAPIDomain(name string, list []convert.UnitInfo) api.DomainV1 {
	d := api.DomainV1{Name: name, Units: ToAPIUnits(list)}
	for _, u := range list {
		if u.Base {
			d.Base = u.Symbol
			break
		}
	}
	return d
}

// WriteDomainsText prints "name<TAB>base<TAB>n units" per domain.
func WriteDomainsText(w io.Writer, list []api.DomainV1) error {
	for _, d := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d units\n", d.Name, d.Base, len(d.Units)); err != nil {
			return err
		}
	}
	return nil
}

// WriteUnitsText prints "symbol<TAB>label" per unit, marking the base unit.
func WriteUnitsText(w io.Writer, list []api.UnitV1) error {
	for _, u := range list {
		line := u.Symbol + "\t" + u.Label
		if u.Base {
			line += "\t(base)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
