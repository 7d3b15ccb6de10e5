// Package profile captures CPU profiles around a block of work.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
)

// StartCPU starts writing a CPU profile to path. The returned stop function
// ends profiling and closes the file; it must be called exactly once.
func StartCPU(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create profile file: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("could not start cpu profile: %w", err), f.Close())
	}

	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("could not close profile file: %w", err)
		}

		return nil
	}, nil
}
