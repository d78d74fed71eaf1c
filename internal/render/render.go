// Package render formats conversion results and unit listings as text,
// YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"unitconvert/internal/config"
	"unitconvert/internal/convert"
	"unitconvert/internal/units"
)

// result is the encoded form of convert.Result.
type result struct {
	Category  string  `json:"category" yaml:"category"`
	Value     float64 `json:"value" yaml:"value"`
	From      string  `json:"from" yaml:"from"`
	Converted float64 `json:"result" yaml:"result"`
	To        string  `json:"to" yaml:"to"`
}

// Listing is the set of units of one category.
type Listing struct {
	Category string   `json:"category" yaml:"category"`
	Units    []string `json:"units" yaml:"units"`
}

// FormatValue formats v with precision digits after the decimal point, or
// with the shortest exact representation for config.ShortestPrecision.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Round rounds v to precision digits after the decimal point.
func Round(v float64, precision int) float64 {
	if precision < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}

	rounded, err := strconv.ParseFloat(FormatValue(v, precision), 64)
	if err != nil {
		return v
	}

	return rounded
}

// Text returns the one-line form "2 m = 6.561679790026246 ft".
func Text(r convert.Result, precision int) string {
	return fmt.Sprintf("%s %s = %s %s",
		FormatValue(r.Value, config.ShortestPrecision), r.From,
		FormatValue(r.Converted, precision), r.To)
}

// Render writes r to w in the given output format.
func Render(w io.Writer, r convert.Result, format string, precision int) error {
	if format == config.OutputText {
		_, err := fmt.Fprintln(w, Text(r, precision))
		return err
	}

	return encode(w, result{
		Category:  r.Category.String(),
		Value:     r.Value,
		From:      r.From,
		Converted: Round(r.Converted, precision),
		To:        r.To,
	}, format)
}

// Units writes the listing to w, one unit per line in text format.
func Units(w io.Writer, l Listing, format string) error {
	if format != config.OutputText {
		return encode(w, l, format)
	}

	for _, u := range l.Units {
		if _, err := fmt.Fprintln(w, u); err != nil {
			return err
		}
	}

	return nil
}

// Categories writes the names of the supported categories.
func Categories(w io.Writer, names []string, format string) error {
	if format != config.OutputText {
		return encode(w, map[string][]string{"categories": names}, format)
	}

	if _, err := fmt.Fprintln(w, "Supported unit types:"); err != nil {
		return err
	}

	for _, n := range names {
		if _, err := fmt.Fprintf(w, " - %s\n", n); err != nil {
			return err
		}
	}

	return nil
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	default:
		return config.ValidateOutput(format)
	}
}

// List writes the units of the named category, or the category names when
// category is empty.
func List(w io.Writer, category string, format string) error {
	if category == "" {
		names := make([]string, 0, len(units.Categories()))
		for _, c := range units.Categories() {
			names = append(names, c.String())
		}

		return Categories(w, names, format)
	}

	c, err := units.ParseCategory(category)
	if err != nil {
		return err
	}

	return Units(w, Listing{Category: c.String(), Units: units.ListUnits(c)}, format)
}
