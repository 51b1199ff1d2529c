package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Muran-prog/Mu-Sim/io"
)

func main() {
	var (
		lookup, sweep string
		exampleConfig string
		points        int
		backend       string
	)
	vars := map[string]*string{
		"Lookup":        &lookup,
		"Sweep":         &sweep,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&lookup, "Lookup", "",
		"Tables config file for [Lookup] mode. Takes a table name and one "+
			"coordinate per dimension as arguments.",
	)
	flag.StringVar(
		&sweep, "Sweep", "",
		"Tables config file for [Sweep] mode. Takes a table name and an "+
			"output image file as arguments.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Tables'.",
	)
	flag.IntVar(
		&points, "Points", 200, "Number of samples taken along X in [Sweep] mode.",
	)
	flag.StringVar(
		&backend, "Plotter", "gonum",
		"Plotting backend for [Sweep] mode. Must be 'gonum' or 'pyplot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Lookup":
		args := flag.Args()
		if len(args) < 2 {
			log.Fatal("Must supply a table name and at least one coordinate.")
		}

		tabs, err := io.ReadTablesConfig(lookup)
		if err != nil {
			log.Fatal(err.Error())
		}

		val, err := lookupMain(tabs, args[0], args[1:])
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println(strconv.FormatFloat(val, 'g', -1, 64))

	case "Sweep":
		args := flag.Args()
		if len(args) != 2 {
			log.Fatal("Must supply a table name and an output file.")
		} else if points < 2 {
			log.Fatalf("'Points' must be at least 2, but is %d.", points)
		}

		tabs, err := io.ReadTablesConfig(sweep)
		if err != nil {
			log.Fatal(err.Error())
		}

		s, err := sweepTable(tabs, args[0], points)
		if err != nil {
			log.Fatal(err.Error())
		}

		switch backend {
		case "gonum":
			err = plotGonum(s, args[1])
		case "pyplot":
			plotPyplot(s, args[1])
		default:
			log.Fatalf(
				"Unrecognized 'Plotter' argument '%s'. Only recognized "+
					"arguments are 'gonum' and 'pyplot'.", backend,
			)
		}
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %d curves of '%s' to %s.", len(s.Curves), s.Name, args[1])

	case "ExampleConfig":
		switch exampleConfig {
		case "Tables":
			fmt.Println(io.ExampleTablesFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Tables'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if zero or more than one mode flags have been set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but mu-lut "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// lookupMain evaluates the named table at the coordinates given as strings.
func lookupMain(tabs *io.Tables, name string, args []string) (float64, error) {
	dims := tabs.Dims(name)
	if dims == 0 {
		return 0, fmt.Errorf(
			"No table named '%s'. Known tables are: %s.",
			name, strings.Join(tabs.Names(), ", "),
		)
	} else if len(args) != dims {
		return 0, fmt.Errorf(
			"Table '%s' has %d dimensions, but %d coordinates were given.",
			name, dims, len(args),
		)
	}

	x := make([]float64, len(args))
	for i := range args {
		var err error
		if x[i], err = strconv.ParseFloat(args[i], 64); err != nil {
			return 0, fmt.Errorf("Coordinate %d, '%s', is not a number.", i, args[i])
		}
	}

	switch dims {
	case 1:
		return tabs.Lut1D[name].Lookup(x[0]), nil
	case 2:
		return tabs.Lut2D[name].Lookup(x[0], x[1]), nil
	default:
		return tabs.Lut3D[name].Lookup(x[0], x[1], x[2]), nil
	}
}
