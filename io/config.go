package io

import (
	"fmt"
	"path/filepath"
	"sort"

	"gopkg.in/gcfg.v1"

	"github.com/Muran-prog/Mu-Sim/math/interpolate"
	"github.com/Muran-prog/Mu-Sim/units"
)

const (
	ExampleTablesFile = `[Lut1D "engine_torque"]
# Each Lut1D section describes a table of one independent variable. Breakpoints
# must be strictly ascending. Values are listed in the same order as X.
X = 0
X = 1000
X = 3000
X = 4000
Values = 0
Values = 100
Values = 200
Values = 150

#######################
# Optional Parameters #
#######################

# Unit symbols are checked against the units package. Leave them blank for
# dimensionless quantities.
# XUnit = rpm
# ValueUnit = N*m

# Instead of listing X and Values, both can be read from columns of a
# whitespace-separated text file. Relative paths are relative to this file.
# File = path/to/torque.txt
# XColumn = 0
# ValueColumn = 1

[Lut2D "tire_grip"]
# Values are listed with X varying fastest: the first len(X) values are the
# row at Y[0], the next len(X) are the row at Y[1] and so on.
X = 0
X = 10
Y = 0
Y = 10
Values = 10
Values = 20
Values = 30
Values = 100

# ValuesFile = path/to/grip.txt
# ValueColumn = 0
# XUnit = K
# YUnit = Pa

[Lut3D "air_density"]
# Values are listed with X varying fastest, then Y, then Z.
X = 0
X = 1
Y = 0
Y = 1
Z = 0
Z = 1
Values = 1
Values = 2
Values = 3
Values = 100
Values = 5
Values = 6
Values = 7
Values = 320

# ValuesFile = path/to/density.txt
# ValueColumn = 0`
)

// Units holds the unit symbols of a table's axes and values.
type Units struct {
	X, Y, Z, Value string
}

type Lut1DConfig struct {
	// Required, unless File is set
	X, Values []float64

	// Optional
	XUnit, ValueUnit     string
	File                 string
	XColumn, ValueColumn int
}

func (con *Lut1DConfig) ValidFile() bool {
	return con.File != ""
}

func (con *Lut1DConfig) CheckInit(name string) error {
	if con.ValidFile() {
		if len(con.X) > 0 || len(con.Values) > 0 {
			return fmt.Errorf(
				"Lut1D '%s' sets both File and X/Values.", name,
			)
		} else if con.XColumn < 0 || con.ValueColumn < 0 {
			return fmt.Errorf(
				"Lut1D '%s' has a negative column index.", name,
			)
		} else if con.XColumn == con.ValueColumn {
			return fmt.Errorf(
				"Lut1D '%s' reads X and Values from the same column, %d.",
				name, con.XColumn,
			)
		}
	}

	return checkUnits("Lut1D", name, con.XUnit, con.ValueUnit)
}

func (con *Lut1DConfig) Units() Units {
	return Units{X: con.XUnit, Value: con.ValueUnit}
}

type Lut2DConfig struct {
	// Required
	X, Y []float64
	// Required, unless ValuesFile is set
	Values []float64

	// Optional
	XUnit, YUnit, ValueUnit string
	ValuesFile              string
	ValueColumn             int
}

func (con *Lut2DConfig) ValidValuesFile() bool {
	return con.ValuesFile != ""
}

func (con *Lut2DConfig) CheckInit(name string) error {
	err := checkValuesFile(
		"Lut2D", name, con.ValidValuesFile(), con.Values, con.ValueColumn,
	)
	if err != nil {
		return err
	}
	return checkUnits("Lut2D", name, con.XUnit, con.YUnit, con.ValueUnit)
}

func (con *Lut2DConfig) Units() Units {
	return Units{X: con.XUnit, Y: con.YUnit, Value: con.ValueUnit}
}

type Lut3DConfig struct {
	// Required
	X, Y, Z []float64
	// Required, unless ValuesFile is set
	Values []float64

	// Optional
	XUnit, YUnit, ZUnit, ValueUnit string
	ValuesFile                     string
	ValueColumn                    int
}

func (con *Lut3DConfig) ValidValuesFile() bool {
	return con.ValuesFile != ""
}

func (con *Lut3DConfig) CheckInit(name string) error {
	err := checkValuesFile(
		"Lut3D", name, con.ValidValuesFile(), con.Values, con.ValueColumn,
	)
	if err != nil {
		return err
	}
	return checkUnits(
		"Lut3D", name, con.XUnit, con.YUnit, con.ZUnit, con.ValueUnit,
	)
}

func (con *Lut3DConfig) Units() Units {
	return Units{
		X: con.XUnit, Y: con.YUnit, Z: con.ZUnit, Value: con.ValueUnit,
	}
}

func checkValuesFile(
	kind, name string, hasFile bool, vals []float64, col int,
) error {
	if !hasFile {
		return nil
	} else if len(vals) > 0 {
		return fmt.Errorf(
			"%s '%s' sets both ValuesFile and Values.", kind, name,
		)
	} else if col < 0 {
		return fmt.Errorf(
			"%s '%s' has a negative ValueColumn, %d.", kind, name, col,
		)
	}
	return nil
}

func checkUnits(kind, name string, syms ...string) error {
	for _, sym := range syms {
		if !units.Known(sym) {
			return fmt.Errorf(
				"%s '%s' uses the unrecognized unit '%s'.", kind, name, sym,
			)
		}
	}
	return nil
}

type TablesConfig struct {
	Lut1D map[string]*Lut1DConfig
	Lut2D map[string]*Lut2DConfig
	Lut3D map[string]*Lut3DConfig
}

// Tables holds every table described by a tables config file, keyed by
// section name. Names are unique across all three maps.
type Tables struct {
	Lut1D map[string]*interpolate.Lut1D
	Lut2D map[string]*interpolate.Lut2D
	Lut3D map[string]*interpolate.Lut3D
	Units map[string]Units
}

// Dims returns the number of independent variables of the named table, or 0
// if there is no such table.
func (tabs *Tables) Dims(name string) int {
	if _, ok := tabs.Lut1D[name]; ok {
		return 1
	} else if _, ok := tabs.Lut2D[name]; ok {
		return 2
	} else if _, ok := tabs.Lut3D[name]; ok {
		return 3
	}
	return 0
}

// Names returns the names of all tables in sorted order.
func (tabs *Tables) Names() []string {
	names := make([]string, 0, len(tabs.Units))
	for name := range tabs.Units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadTablesConfig reads the tables config file fname and builds every table
// it describes. Data files named in the config are read relative to the
// directory containing fname. Construction errors are wrapped with the name
// of the offending section, so errors.Is and errors.As still see the
// underlying interpolate error.
func ReadTablesConfig(fname string) (*Tables, error) {
	tc := TablesConfig{}
	if err := gcfg.ReadFileInto(&tc, fname); err != nil {
		return nil, err
	}

	dir := filepath.Dir(fname)
	tabs := &Tables{
		Lut1D: map[string]*interpolate.Lut1D{},
		Lut2D: map[string]*interpolate.Lut2D{},
		Lut3D: map[string]*interpolate.Lut3D{},
		Units: map[string]Units{},
	}

	for _, name := range sortedKeys(tc.Lut1D) {
		con := tc.Lut1D[name]
		if err := con.CheckInit(name); err != nil {
			return nil, err
		}
		if err := tabs.claim("Lut1D", name, con.Units()); err != nil {
			return nil, err
		}

		xs, vals := con.X, con.Values
		if con.ValidFile() {
			cols, err := readColumns(
				resolve(dir, con.File), con.XColumn, con.ValueColumn,
			)
			if err != nil {
				return nil, fmt.Errorf("Lut1D '%s': %w", name, err)
			}
			xs, vals = cols[0], cols[1]
		}

		lut, err := interpolate.NewLut1D(xs, vals)
		if err != nil {
			return nil, fmt.Errorf("Lut1D '%s': %w", name, err)
		}
		tabs.Lut1D[name] = lut
	}

	for _, name := range sortedKeys(tc.Lut2D) {
		con := tc.Lut2D[name]
		if err := con.CheckInit(name); err != nil {
			return nil, err
		}
		if err := tabs.claim("Lut2D", name, con.Units()); err != nil {
			return nil, err
		}

		vals := con.Values
		if con.ValidValuesFile() {
			cols, err := readColumns(
				resolve(dir, con.ValuesFile), con.ValueColumn,
			)
			if err != nil {
				return nil, fmt.Errorf("Lut2D '%s': %w", name, err)
			}
			vals = cols[0]
		}

		lut, err := interpolate.NewLut2D(con.X, con.Y, vals)
		if err != nil {
			return nil, fmt.Errorf("Lut2D '%s': %w", name, err)
		}
		tabs.Lut2D[name] = lut
	}

	for _, name := range sortedKeys(tc.Lut3D) {
		con := tc.Lut3D[name]
		if err := con.CheckInit(name); err != nil {
			return nil, err
		}
		if err := tabs.claim("Lut3D", name, con.Units()); err != nil {
			return nil, err
		}

		vals := con.Values
		if con.ValidValuesFile() {
			cols, err := readColumns(
				resolve(dir, con.ValuesFile), con.ValueColumn,
			)
			if err != nil {
				return nil, fmt.Errorf("Lut3D '%s': %w", name, err)
			}
			vals = cols[0]
		}

		lut, err := interpolate.NewLut3D(con.X, con.Y, con.Z, vals)
		if err != nil {
			return nil, fmt.Errorf("Lut3D '%s': %w", name, err)
		}
		tabs.Lut3D[name] = lut
	}

	return tabs, nil
}

func (tabs *Tables) claim(kind, name string, u Units) error {
	if _, ok := tabs.Units[name]; ok {
		return fmt.Errorf(
			"%s '%s' reuses the name of another table.", kind, name,
		)
	}
	tabs.Units[name] = u
	return nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
