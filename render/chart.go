package render

import (
	"errors"
	"fmt"
	"slices"
)

type ChartKind string

const ChartBar ChartKind = "bar"

var (
	ErrSeriesLengthMismatch = errors.New("data and labels differ in length")
	ErrUnsupportedChart     = errors.New("unsupported chart kind")
)

// Bar is one bar of a chart; Percent is its height relative to the tallest bar
type Bar struct {
	Label   string
	Value   float64
	Percent float64
}

type Chart struct {
	Kind   ChartKind
	Label  string
	data   []float64
	labels []string
}

// NewChart validates that data and labels are parallel series
func NewChart(kind ChartKind, label string, data []float64, labels []string) (*Chart, error) {
	if kind != ChartBar {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChart, kind)
	}
	if len(data) != len(labels) {
		return nil, fmt.Errorf("%w: %d values, %d labels", ErrSeriesLengthMismatch, len(data), len(labels))
	}
	return &Chart{
		Kind:   kind,
		Label:  label,
		data:   slices.Clone(data),
		labels: slices.Clone(labels),
	}, nil
}

func (c *Chart) Len() int {
	return len(c.data)
}

func (c *Chart) Data() []float64 {
	return slices.Clone(c.data)
}

func (c *Chart) Labels() []string {
	return slices.Clone(c.labels)
}

// Max is the largest value, or 0 for an empty chart
func (c *Chart) Max() float64 {
	if len(c.data) == 0 {
		return 0
	}
	return slices.Max(c.data)
}

// Bars scales every value against Max. Non-positive values get a zero height.
func (c *Chart) Bars() []Bar {
	top := c.Max()
	bars := make([]Bar, len(c.data))
	for i, v := range c.data {
		bars[i] = Bar{Label: c.labels[i], Value: v}
		if top > 0 && v > 0 {
			bars[i].Percent = v / top * 100
		}
	}
	return bars
}
