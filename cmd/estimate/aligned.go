package main

import (
	"fmt"

	"github.com/cwbudde/algo-estimate/buffer"
	"github.com/cwbudde/algo-estimate/estimate"
)

// alignedColumns holds a copy of Lines whose six columns live in aligned
// blocks taken from a buffer.Pool.
type alignedColumns struct {
	pool  *buffer.Pool
	held  []*buffer.Aligned
	lines estimate.Lines
}

func newAlignedColumns(src estimate.Lines) (*alignedColumns, error) {
	n := src.Len()
	c := &alignedColumns{pool: buffer.NewPool(6)}

	cols := []struct {
		dst *[]float64
		src []float64
	}{
		{&c.lines.Quantities, src.Quantities},
		{&c.lines.Direct, src.Direct},
		{&c.lines.Labor, src.Labor},
		{&c.lines.MachineOperator, src.MachineOperator},
		{&c.lines.Material, src.Material},
		{&c.lines.Machine, src.Machine},
	}

	for _, col := range cols {
		blk, err := c.pool.GetFloat64s(n)
		if err != nil {
			_ = c.release()
			return nil, fmt.Errorf("aligned columns: %w", err)
		}
		dst := blk.Float64s()[:n]
		copy(dst, col.src[:n])
		*col.dst = dst
		c.held = append(c.held, blk)
	}
	return c, nil
}

// release returns every block to the pool and unmaps them.
func (c *alignedColumns) release() error {
	for _, blk := range c.held {
		c.pool.Put(blk)
	}
	c.held = nil
	c.lines = estimate.Lines{}
	return c.pool.Close()
}
