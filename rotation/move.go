package rotation

import (
	"os"

	"github.com/alpacahq/logroller/utils/log"
)

// Move renames oldFP to newFP. The error of the rename is returned as is so
// that callers can tell a missing source from other failures.
func Move(oldFP, newFP string) error {
	if err := os.Rename(oldFP, newFP); err != nil {
		return err
	}
	log.Info("moved %s to %s", oldFP, newFP)
	return nil
}
