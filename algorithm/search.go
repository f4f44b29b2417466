// Package algorithm contains the binary search variants
package algorithm

import (
	"cmp"
	"unsafe"
)

// Searcher finds target in a sorted slice,
// returns the index of target and whether it was found.
type Searcher[T cmp.Ordered] func(s []T, target T) (idx int, found bool)

var (
	_ Searcher[int32]  = BinarySearch[int32]
	_ Searcher[string] = BinarySearchUnchecked[string]
)

// BinarySearch searches for target in an ascending sorted slice s.
//
// Every element is read by the ordinary indexed access,
// so the compiler keeps its bounds check.
//
// Returns the index of target and true, or 0 and false if target is not present.
func BinarySearch[T cmp.Ordered](s []T, target T) (idx int, found bool) {
	low, high := 0, len(s)
	for low < high {
		mid := low + (high-low)/2
		switch v := s[mid]; {
		case v < target:
			low = mid + 1
		case v > target:
			high = mid
		default:
			return mid, true
		}
	}

	return 0, false
}

// BinarySearchUnchecked behaves exactly like BinarySearch,
// but reads elements by adding an offset to the slice's base pointer,
// which skips the bounds check on every access.
//
// The loop keeps 0 <= low <= mid < high <= len(s),
// so mid always addresses an element of s.
func BinarySearchUnchecked[T cmp.Ordered](s []T, target T) (idx int, found bool) {
	low, high := 0, len(s)
	if high == 0 {
		return 0, false
	}

	var zero T
	base := unsafe.Pointer(unsafe.SliceData(s))
	size := unsafe.Sizeof(zero)
	for low < high {
		mid := low + (high-low)/2
		switch v := *(*T)(unsafe.Add(base, uintptr(mid)*size)); {
		case v < target:
			low = mid + 1
		case v > target:
			high = mid
		default:
			return mid, true
		}
	}

	return 0, false
}

// BinarySearchFunc searches for target in a sorted slice s.
//
// cmp must implement the same ordering as the slice,
// i.e. it must return a negative value if the target is less than the element at index,
// a positive value if the target is greater than the element at index,
// and zero if the target is equal to the element at index.
//
// Returns the index of target in s, or -1 if target is not present.
//
// cmp receives the index and the element at each iteration,
// so it can do more than just comparing. There is no target parameter,
// wrap the target in the cmp closure.
func BinarySearchFunc[T any](s []T, cmp func(index int, element T) int) int {
	leftIdx, rightIdx := 0, len(s)-1

	for leftIdx <= rightIdx {
		midIdx := leftIdx + (rightIdx-leftIdx)/2
		res := cmp(midIdx, s[midIdx])

		if res == 0 {
			return midIdx
		} else if res < 0 {
			rightIdx = midIdx - 1
		} else {
			leftIdx = midIdx + 1
		}
	}

	return -1
}
