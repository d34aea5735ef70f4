package mnemonic

import (
	"errors"
	"fmt"
	"sort"
)

// Category names of the default alias table.
const (
	CategoryROP     = "ROP"
	CategoryCal     = "Cal"
	CategoryGR      = "GR"
	CategorySP      = "SP"
	CategoryRHOB    = "RHOB"
	CategoryDPHI    = "DPHI"
	CategoryNPHI    = "NPHI"
	CategoryXPHI    = "XPHI"
	CategorySPHI    = "SPHI"
	CategoryPEF     = "PEF"
	CategoryDeepRes = "DeepRes"
	CategoryMedRes  = "MedRes"
	CategoryShalRes = "ShalRes"
)

// PlotCategories are the categories drawn on the three-track figure.
var PlotCategories = []string{
	CategoryGR,
	CategoryPEF,
	CategoryDeepRes,
	CategoryMedRes,
	CategoryShalRes,
	CategoryNPHI,
	CategoryDPHI,
}

var defaultGroups = []Group{
	{Name: CategoryROP, Aliases: []string{"ROP", "10FTRATE", "10FTROP", "5FTRATE", "5FTROP", "DR", "DRILLRATE", "FTPERHR", "ROP:1", "ROP:2", "ROPI", "ROPTVD"}},
	{Name: CategoryCal, Aliases: []string{"Cal", "CAL1", "CAL2", "CAL3", "CAL4", "CAL5", "CAL6", "CAL7", "CALD", "CALI", "CALIFLG", "CALR", "CALS", "CALX", "CALXD", "CALXR", "CALYD"}},
	{Name: CategoryGR, Aliases: []string{"GR", "CGR", "CGRD", "ECGR", "ECGR_TMG", "GR_EDTC", "GR_TMG", "GRC", "GRCM", "GRCO", "GRCX", "GRD", "GRFET", "GRGC", "GRR", "GRS", "GRTO", "GRW", "HCGR", "HGR", "HSGR", "MWD-GR", "NATURAL_GAMMA", "SGR", "SGRDD", "GAMMA"}},
	{Name: CategorySP, Aliases: []string{"SP", "SPR"}},
	{Name: CategoryRHOB, Aliases: []string{"RHOB", "ZDEN", "RHOBEDIT", "RHOL", "RHOZ"}},
	{Name: CategoryDPHI, Aliases: []string{"DPHI", "CDL_LS", "DPDL", "DPH8", "DPHD", "DPHI_LS", "DPHIL", "DPHIVV", "DPHZ", "DPLS", "DPRL", "PORD", "PORZ", "PORZC_LS", "PRZC", "DPHS"}},
	{Name: CategoryNPHI, Aliases: []string{"NPHI", "CNLS", "CNPORU", "CNS_LS", "DNPH", "HNPO", "HTNP", "NLIM", "NPDL", "NPHI_LS", "NPHL", "NPLS", "NPOR", "NPRL", "TNPH", "TNPH_LIM"}},
	{Name: CategoryXPHI, Aliases: []string{"XPHI", "CPPZ", "CPZC", "PHIX", "PXND", "PXND_HILT"}},
	{Name: CategorySPHI, Aliases: []string{"SPHI", "SPH1", "SPHI_LS", "SPHL", "XPOR"}},
	{Name: CategoryPEF, Aliases: []string{"PEF", "PE", "PEF8", "PEFZ"}},
	{Name: CategoryDeepRes, Aliases: []string{"ILD", "90IN_4FT_R", "90IN_4FT_R_S", "AHT90", "AT90", "ATCO90", "RILD", "RLA5", "RO90", "DDLL", "DEEP_RESISTIVITY", "HLLD", "IDPH", "LGRD", "RD", "RESISTIVITY_(SHORT-SPACING)", "RESISTIVITY", "RESISTIVITY_(LONG-SPACING)", "RESITIVITY_(SHORT-SPACING)", "RT90"}},
	{Name: CategoryMedRes, Aliases: []string{"ILM", "LLM", "AHT60", "60IN_4FT_R", "IMPH", "RF60", "RILM", "RLA3", "RMLL", "RO60", "RT60"}},
	{Name: CategoryShalRes, Aliases: []string{"RXO", "RXO8", "RXOZ", "RXO_HRLT", "RXRT", "SFLU", "SGRD", "SHORT_RESISTIVITY", "DSLL", "HLLS", "RLA1", "RS", "RSOZ", "RT10", "AHT10", "AT30", "RF10", "RO10"}},
}

// Table is an immutable, ordered set of alias groups.
// The zero value is an empty table.
type Table struct {
	groups []Group
	index  map[string]int
}

// DefaultTable returns the built-in alias table.
func DefaultTable() Table {
	t, err := NewTable(defaultGroups...)
	if err != nil {
		panic(fmt.Sprintf("mnemonic: invalid default table: %v", err))
	}
	return t
}

// NewTable validates and copies groups into a Table.
// Duplicate aliases inside a group are dropped, keeping the first occurrence.
func NewTable(groups ...Group) (Table, error) {
	t := Table{
		groups: make([]Group, 0, len(groups)),
		index:  make(map[string]int, len(groups)),
	}
	for i, g := range groups {
		if g.Name == "" {
			return Table{}, fmt.Errorf("group %d: name is required", i)
		}
		if _, dup := t.index[g.Name]; dup {
			return Table{}, fmt.Errorf("group %q: defined more than once", g.Name)
		}
		aliases, err := cleanAliases(g.Aliases)
		if err != nil {
			return Table{}, fmt.Errorf("group %q: %w", g.Name, err)
		}
		t.index[g.Name] = len(t.groups)
		t.groups = append(t.groups, Group{Name: g.Name, Aliases: aliases})
	}
	return t, nil
}

func cleanAliases(aliases []string) ([]string, error) {
	if len(aliases) == 0 {
		return nil, errors.New("at least one alias is required")
	}
	seen := make(map[string]bool, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a == "" {
			return nil, errors.New("aliases must not be empty strings")
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

// WithOverrides returns a new table where each override replaces the group
// of the same name, or is appended when no such group exists. Appended groups
// are sorted by name so the result does not depend on map order.
func (t Table) WithOverrides(overrides map[string][]string) (Table, error) {
	groups := t.Groups()
	var added []string
	for name, aliases := range overrides {
		if i, ok := t.index[name]; ok {
			groups[i] = Group{Name: name, Aliases: aliases}
			continue
		}
		added = append(added, name)
	}
	sort.Strings(added)
	for _, name := range added {
		groups = append(groups, Group{Name: name, Aliases: overrides[name]})
	}
	return NewTable(groups...)
}

// Group returns a copy of the named group.
func (t Table) Group(name string) (Group, bool) {
	i, ok := t.index[name]
	if !ok {
		return Group{}, false
	}
	g := t.groups[i]
	return Group{Name: g.Name, Aliases: append([]string(nil), g.Aliases...)}, true
}

// Groups returns copies of all groups in table order.
func (t Table) Groups() []Group {
	out := make([]Group, len(t.groups))
	for i, g := range t.groups {
		out[i] = Group{Name: g.Name, Aliases: append([]string(nil), g.Aliases...)}
	}
	return out
}

// Names returns the category names in table order.
func (t Table) Names() []string {
	out := make([]string, len(t.groups))
	for i, g := range t.groups {
		out[i] = g.Name
	}
	return out
}

// Len returns the number of groups.
func (t Table) Len() int {
	return len(t.groups)
}
