// Package diff produces the patches stored in a wiki's revision history.
package diff

import (
	"errors"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var dmp *diffmatchpatch.DiffMatchPatch

func init() {
	dmp = diffmatchpatch.New()
}

// FindPatches returns the textual patch that turns text1 into text2.
func FindPatches(text1, text2 string) string {
	diffs := dmp.DiffMain(text1, text2, false)
	return dmp.PatchToText(dmp.PatchMake(text1, diffs))
}

// Apply applies a patch produced by FindPatches to text.
func Apply(text, patch string) (string, error) {
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return "", err
	}

	result, applied := dmp.PatchApply(patches, text)
	for _, ok := range applied {
		if !ok {
			return "", errors.New("patch does not apply")
		}
	}
	return result, nil
}
