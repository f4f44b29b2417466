package bench

import (
	"strconv"
	"strings"
)

const (
	// StringItemPrefix prefix of every generated string item
	StringItemPrefix = "item"
	// StringItemWidth zero padded width of the index in a string item
	StringItemWidth = 7
)

// GenerateSortedInts generates 0..n-1
func GenerateSortedInts(n int) []int32 {
	if n < 0 {
		n = 0
	}

	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}

	return data
}

// GenerateSortedStrings generates StringItem(0)..StringItem(n-1).
//
// The items sort lexicographically as long as n does not exceed 10^StringItemWidth.
func GenerateSortedStrings(n int) []string {
	if n < 0 {
		n = 0
	}

	data := make([]string, n)
	for i := range data {
		data[i] = StringItem(i)
	}

	return data
}

// StringItem formats i like "item0000042"
func StringItem(i int) string {
	num := strconv.Itoa(i)
	if pad := StringItemWidth - len(num); pad > 0 {
		num = strings.Repeat("0", pad) + num
	}

	return StringItemPrefix + num
}
