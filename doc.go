// Package bench benchmarks bounds-checked and unchecked binary search
//
// # Modules
//
//   - `dataset.go`: generate sorted int32 and "item0000042" string sequences
//   - `random.go`: pick a random target that exists in a sequence
//   - `bench.go`: time every search variant once and print the results
//   - `color.go`: colorful console output
//   - `algorithm/`: the search variants
//   - `cmd/`: command line
//   - `config/`: flag backed settings
//   - `log/`: enhanched zap logger
package bench
