//go:build linux

package gpio

import (
	"fmt"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/warthog618/go-gpiocdev"
)

type cdevChip struct {
	chip *gpiocdev.Chip
	path string
}

// OpenChip opens a GPIO character device such as /dev/gpiochip0.
func OpenChip(path string) (Chip, error) {
	c, err := gpiocdev.NewChip(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrGPIO,
			fmt.Sprintf("Can't open GPIO chip %s", path),
			"Check the device exists and that you are in the gpio group")
	}
	return &cdevChip{chip: c, path: path}, nil
}

// Request claims offsets in one direction. Output lines start low.
func (c *cdevChip) Request(consumer string, offsets []int, dir Direction) (Lines, error) {
	opts := []gpiocdev.LineReqOption{gpiocdev.WithConsumer(consumer)}
	values := make([]int, len(offsets))
	if dir == Output {
		opts = append(opts, gpiocdev.AsOutput(values...))
	} else {
		opts = append(opts, gpiocdev.AsInput)
	}

	req, err := c.chip.RequestLines(offsets, opts...)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrGPIO,
			fmt.Sprintf("Can't request %s lines %v on %s", dir, offsets, c.path),
			"Make sure no other process holds these lines")
	}

	index := make(map[int]int, len(offsets))
	for i, o := range offsets {
		index[o] = i
	}
	return &cdevLines{req: req, index: index, values: values}, nil
}

func (c *cdevChip) Close() error {
	return c.chip.Close()
}

// lineValues is the part of *gpiocdev.Lines the group wrapper uses.
type lineValues interface {
	SetValues(values []int) error
	Values(values []int) error
	Close() error
}

// cdevLines maps single-line operations onto the group request. The whole
// group is written on every Set, so the last applied values are cached.
type cdevLines struct {
	req    lineValues
	index  map[int]int
	values []int
}

// Set drives one line. The cache only changes once the write succeeded.
func (l *cdevLines) Set(offset int, value bool) error {
	i, ok := l.index[offset]
	if !ok {
		return fmt.Errorf("line %d not in request", offset)
	}
	next := make([]int, len(l.values))
	copy(next, l.values)
	next[i] = 0
	if value {
		next[i] = 1
	}
	if err := l.req.SetValues(next); err != nil {
		return err
	}
	l.values = next
	return nil
}

func (l *cdevLines) Get(offset int) (bool, error) {
	i, ok := l.index[offset]
	if !ok {
		return false, fmt.Errorf("line %d not in request", offset)
	}
	vals := make([]int, len(l.values))
	if err := l.req.Values(vals); err != nil {
		return false, err
	}
	return vals[i] != 0, nil
}

func (l *cdevLines) Close() error {
	return l.req.Close()
}
