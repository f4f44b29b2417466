package bench

import (
	"math/rand"
	"os"
	"time"

	"github.com/Laisky/errors/v2"
)

// ErrEmptyDataset there is nothing to pick a target from
var ErrEmptyDataset = errors.New("dataset is empty")

// NewRand new individual random to aviod global mutex.
//
// seed 0 means seeding by current time and pid.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano() + int64(os.Getpid())
	}

	return rand.New(rand.NewSource(seed))
}

// RandomTarget picks one element of data uniformly,
// so the target is always present in data.
func RandomTarget[T any](r *rand.Rand, data []T) (target T, err error) {
	if len(data) == 0 {
		return target, ErrEmptyDataset
	}

	return data[r.Intn(len(data))], nil
}
