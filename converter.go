package yuv

import (
	"sync/atomic"

	"github.com/gogpu/yuv/internal/bufpool"
	"github.com/gogpu/yuv/internal/parallel"
)

// bandAlign keeps bands on chroma row boundaries: luma rows 2k and 2k+1
// share chroma row k.
const bandAlign = 2

// Converter converts frames using several goroutines per frame.
//
// A frame is split into horizontal bands that start on even rows; each band
// runs the same kernel as ConvertSemiPlanar or ConvertFullyPlanar on its
// rows, so output is bit-identical to the single-threaded functions.
//
// Thread safety: Converter is safe for concurrent use. Frames converted
// concurrently must not share a destination.
type Converter struct {
	workers     int
	minBandRows int

	pool *parallel.WorkerPool // nil when workers == 1
	bufs *bufpool.Pool

	closed atomic.Bool
}

// NewConverter creates a converter. Call Close to stop its workers.
func NewConverter(opts ...ConverterOption) *Converter {
	o := defaultConverterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Converter{
		workers:     o.workers,
		minBandRows: o.minBandRows,
		bufs:        bufpool.New(o.maxPooled),
	}
	if c.workers != 1 {
		c.pool = parallel.NewWorkerPool(c.workers)
		c.workers = c.pool.Workers()
	}
	return c
}

// Workers returns the number of goroutines a frame may be split across.
func (c *Converter) Workers() int {
	return c.workers
}

// Convert writes f into dst, which must hold at least width*height words.
// The words use f.Layout().
func (c *Converter) Convert(f Frame, dst []uint32) error {
	if c.closed.Load() {
		return ErrConverterClosed
	}

	a := f.args(dst)
	if err := a.validate(); err != nil {
		Logger().Warn("yuv: frame rejected", "err", err)
		return err
	}

	bands := parallel.SplitRows(a.height, c.workers, bandAlign, c.minBandRows)
	if c.pool == nil || len(bands) <= 1 {
		a.convertRows(0, a.height)
		return nil
	}

	Logger().Debug("yuv: converting frame",
		"width", a.width, "height", a.height, "layout", a.layout, "bands", len(bands))

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		tasks[i] = func() { a.convertRows(b.Start, b.End) }
	}
	if !c.pool.ExecuteAll(tasks) {
		return ErrConverterClosed
	}
	return nil
}

// NewPixmap converts f into a pixmap whose buffer comes from the
// converter's pool. Pass the pixmap to Release once it is no longer needed.
func (c *Converter) NewPixmap(f Frame) (*Pixmap, error) {
	if c.closed.Load() {
		return nil, ErrConverterClosed
	}
	if err := f.Validate(); err != nil {
		Logger().Warn("yuv: frame rejected", "err", err)
		return nil, err
	}

	w, h := f.Size()
	words := c.bufs.Get(w * h)
	if err := c.Convert(f, words); err != nil {
		c.bufs.Put(words)
		return nil, err
	}
	return &Pixmap{width: w, height: h, layout: f.Layout(), words: words}, nil
}

// Release returns a pixmap's buffer to the pool. The pixmap must not be
// used afterwards.
func (c *Converter) Release(p *Pixmap) {
	if p == nil {
		return
	}
	c.bufs.Put(p.words)
	p.words = nil
}

// Close stops the worker goroutines. Close is safe to call multiple times.
func (c *Converter) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	if c.pool != nil {
		c.pool.Close()
	}
}
