package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amp-labs/sortedcollections/cli"
	errors2 "github.com/amp-labs/sortedcollections/errors"
	"github.com/amp-labs/sortedcollections/logger"
	"github.com/amp-labs/sortedcollections/nearest"
	"github.com/manifoldco/promptui"
)

var errNoTable = errors.New("-table is required")

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	tablePath := flags.String("table", "", "YAML file holding the table")
	rounding := flags.String("rounding", "", "override the table's rounding: nearest, up or down")
	interactive := flags.Bool("interactive", false, "prompt for keys instead of reading arguments")
	prune := flags.Bool("prune", false, "with -interactive, pick keys to drop from the table first")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *tablePath == "" {
		if !*interactive {
			return errNoTable
		}

		path, err := cli.PromptString("Table file")
		if err != nil {
			return err
		}

		*tablePath = path
	}

	if *interactive && *rounding == "" {
		picked, err := cli.Select("Rounding", nearest.Nearest.String(), nearest.Up.String(), nearest.Down.String())
		if err != nil {
			return err
		}

		*rounding = picked
	}

	table, err := openTable(*tablePath, *rounding)
	if err != nil {
		return err
	}

	logger.Get().Debug("loaded table",
		"path", *tablePath, "entries", table.Len(), "rounding", table.Rounding().String())

	if *interactive {
		if *prune {
			picked, err := cli.MultiSelect("Keys to drop", keyChoices(table)...)
			if err != nil {
				return err
			}

			if err := dropKeys(table, picked); err != nil {
				return err
			}
		}

		return interact(table, out)
	}

	return resolveAll(table, flags.Args(), out)
}

func openTable(path, rounding string) (*nearest.Map[float64, string], error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	table, err := loadTable(f, rounding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// keyChoices renders the table's keys the way they are parsed back by dropKeys.
func keyChoices(table *nearest.Map[float64, string]) []string {
	var choices []string

	for key := range table.Keys() {
		choices = append(choices, strconv.FormatFloat(key, 'g', -1, 64))
	}

	return choices
}

// dropKeys deletes the keys picked from keyChoices.
func dropKeys(table *nearest.Map[float64, string], picked []string) error {
	for _, choice := range picked {
		key, err := cli.ParseFloat(choice)
		if err != nil {
			return err
		}

		if err := table.Delete(key); err != nil {
			return err
		}

		logger.Get().Debug("dropped key", "key", key)
	}

	return nil
}

func resolveAll(table *nearest.Map[float64, string], requests []string, out io.Writer) error {
	for _, req := range requests {
		key, err := cli.ParseFloat(req)
		if err != nil {
			return err
		}

		if err := resolve(table, key, out); err != nil {
			return err
		}
	}

	return nil
}

func interact(table *nearest.Map[float64, string], out io.Writer) error {
	for {
		request, err := cli.PromptFloat("Key")
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := resolve(table, request, out); err != nil {
			return err
		}

		again, err := cli.PromptConfirm("Another")
		if err != nil || !again {
			return err
		}
	}
}

// resolve prints one lookup as request, key and value separated by tabs. A request
// with no key in the rounding direction is printed with a dash, not treated as a
// failure.
func resolve(table *nearest.Map[float64, string], request float64, out io.Writer) error {
	key, err := table.NearestKey(request)
	if errors.Is(err, errors2.ErrKeyNotFound) {
		_, err = fmt.Fprintf(out, "%g\t-\t%v\n", request, err)

		return err
	}

	if err != nil {
		return err
	}

	value, err := table.Exact(key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%g\t%g\t%s\n", request, key, value)

	return err
}
