package yuv

// ConverterOption configures a Converter during creation.
//
// Example:
//
//	// One band per CPU, default band size
//	c := yuv.NewConverter()
//
//	// Serial conversion, useful when the caller already parallelises frames
//	c := yuv.NewConverter(yuv.WithWorkers(1))
type ConverterOption func(*converterOptions)

// converterOptions holds optional configuration for Converter creation.
type converterOptions struct {
	workers     int
	minBandRows int
	maxPooled   int
}

// DefaultMinBandRows is the smallest band a frame is split into.
const DefaultMinBandRows = 32

// defaultMaxPooled bounds how many output buffers of one size are kept.
const defaultMaxPooled = 4

// defaultConverterOptions returns the default converter options.
func defaultConverterOptions() converterOptions {
	return converterOptions{
		workers:     0, // GOMAXPROCS
		minBandRows: DefaultMinBandRows,
		maxPooled:   defaultMaxPooled,
	}
}

// WithWorkers sets the number of goroutines used per frame.
// 0 or negative means GOMAXPROCS; 1 converts on the calling goroutine.
func WithWorkers(n int) ConverterOption {
	return func(o *converterOptions) {
		o.workers = n
	}
}

// WithMinBandRows sets the minimum number of rows per parallel band.
// Values are rounded up to an even number.
func WithMinBandRows(rows int) ConverterOption {
	return func(o *converterOptions) {
		if rows > 0 {
			o.minBandRows = rows
		}
	}
}

// WithPooledBuffers sets how many output buffers of each frame size
// NewPixmap keeps for reuse after Release. 0 disables the limit.
func WithPooledBuffers(n int) ConverterOption {
	return func(o *converterOptions) {
		if n >= 0 {
			o.maxPooled = n
		}
	}
}
