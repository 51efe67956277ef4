package value

// Element is the closed set of array element types node_data supports
// (spec.md §3: "{u8, i64, f64}").
type Element interface {
	~uint8 | ~int64 | ~float64
}

// Array is a rank-0/1/2 numeric array. It may either own its backing slice
// exclusively (Owned == true) or borrow it from another Array (a "view").
// Views never mutate; any modifying operation on a view first copies into
// a freshly owned backing slice (see EnsureOwned), matching spec.md §3's
// invariant that "reference-valued node-data never escape a modifying
// slice without being converted to owned storage".
//
// Row-major layout: for a 2-D array of Shape [rows, cols], element (r, c)
// lives at Data[Offset + r*Strides[0] + c*Strides[1]].
type Array[T Element] struct {
	Shape   []int // len 0 (scalar), 1 (vector) or 2 (matrix)
	Strides []int // same length as Shape
	Offset  int
	Data    []T
	Owned   bool
}

// Scalar wraps a single value as a rank-0 Array.
func Scalar[T Element](v T) Array[T] {
	return Array[T]{Data: []T{v}, Owned: true}
}

// FromVector wraps a freshly-owned 1-D slice.
func FromVector[T Element](data []T) Array[T] {
	return Array[T]{
		Shape:   []int{len(data)},
		Strides: []int{1},
		Data:    data,
		Owned:   true,
	}
}

// FromMatrix wraps a freshly-owned row-major 2-D slice of shape rows x cols.
func FromMatrix[T Element](data []T, rows, cols int) Array[T] {
	return Array[T]{
		Shape:   []int{rows, cols},
		Strides: []int{cols, 1},
		Data:    data,
		Owned:   true,
	}
}

// Rank returns 0, 1, or 2.
func (a Array[T]) Rank() int { return len(a.Shape) }

// Len returns the total element count (1 for rank 0).
func (a Array[T]) Len() int {
	n := 1
	for _, s := range a.Shape {
		n *= s
	}
	return n
}

// ScalarValue returns the single element of a rank-0 array.
func (a Array[T]) ScalarValue() T { return a.Data[a.Offset] }

// At1 returns element i of a rank-1 array.
func (a Array[T]) At1(i int) T { return a.Data[a.Offset+i*a.Strides[0]] }

// At2 returns element (r, c) of a rank-2 array.
func (a Array[T]) At2(r, c int) T {
	return a.Data[a.Offset+r*a.Strides[0]+c*a.Strides[1]]
}

// Set1 writes element i of a rank-1 array. Callers must call EnsureOwned
// first; Set1 does not check Owned itself so that slicing code can batch
// a single EnsureOwned ahead of a loop of writes.
func (a Array[T]) Set1(i int, v T) { a.Data[a.Offset+i*a.Strides[0]] = v }

// Set2 writes element (r, c) of a rank-2 array.
func (a Array[T]) Set2(r, c int, v T) {
	a.Data[a.Offset+r*a.Strides[0]+c*a.Strides[1]] = v
}

// EnsureOwned returns an array guaranteed safe to mutate in place: a itself
// if it is already owned, or a freshly-allocated copy otherwise.
func (a Array[T]) EnsureOwned() Array[T] {
	if a.Owned {
		return a
	}
	n := a.Len()
	data := make([]T, n)
	strides := contiguousStrides(a.Shape)
	copyInto(a, data, strides)
	return Array[T]{Shape: append([]int(nil), a.Shape...), Strides: strides, Data: data, Owned: true}
}

func contiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	switch len(shape) {
	case 0:
	case 1:
		strides[0] = 1
	case 2:
		strides[0] = shape[1]
		strides[1] = 1
	}
	return strides
}

func copyInto[T Element](a Array[T], dst []T, dstStrides []int) {
	switch a.Rank() {
	case 0:
		dst[0] = a.ScalarValue()
	case 1:
		for i := 0; i < a.Shape[0]; i++ {
			dst[i*dstStrides[0]] = a.At1(i)
		}
	case 2:
		for r := 0; r < a.Shape[0]; r++ {
			for c := 0; c < a.Shape[1]; c++ {
				dst[r*dstStrides[0]+c*dstStrides[1]] = a.At2(r, c)
			}
		}
	}
}

// View1 builds an unowned view into a's backing storage describing n
// elements starting at start and advancing by step (which may be negative),
// by scaling the stride. Basic slicing uses it for every step; advanced
// (gather) extraction instead copies into owned storage.
func (a Array[T]) View1(start, n, step int) Array[T] {
	return Array[T]{
		Shape:   []int{n},
		Strides: []int{a.Strides[0] * step},
		Offset:  a.Offset + start*a.Strides[0],
		Data:    a.Data,
		Owned:   false,
	}
}

// ViewRows builds an unowned view selecting a contiguous row range
// [startRow, startRow+nRows) of a 2-D array, all columns.
func (a Array[T]) ViewRows(startRow, nRows int) Array[T] {
	return Array[T]{
		Shape:   []int{nRows, a.Shape[1]},
		Strides: append([]int(nil), a.Strides...),
		Offset:  a.Offset + startRow*a.Strides[0],
		Data:    a.Data,
		Owned:   false,
	}
}

// ToFloat64 copies a's elements into a new float64 slice in row-major
// order, used at dtype-promotion boundaries (e.g. arithmetic between
// differently-typed operands).
func (a Array[T]) ToFloat64() []float64 {
	out := make([]float64, a.Len())
	switch a.Rank() {
	case 0:
		out[0] = float64(a.ScalarValue())
	case 1:
		for i := range out {
			out[i] = float64(a.At1(i))
		}
	case 2:
		rows, cols := a.Shape[0], a.Shape[1]
		idx := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out[idx] = float64(a.At2(r, c))
				idx++
			}
		}
	}
	return out
}
