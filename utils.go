package bench

import (
	"runtime"
	"runtime/debug"

	"github.com/Laisky/bsearch-bench/log"
)

// ForceGC force to run blocking manual gc.
//
// Call it after generating a dataset, so the garbage of the generator
// is not collected in the middle of a timed search.
func ForceGC() {
	log.Shared.Debug("force gc")
	runtime.GC()
	debug.FreeOSMemory()
}
