package util

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %v", dir)
	}
	return nil
}

// WriteFile creates or truncates path and hands the file to write.
func WriteFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open file: %v", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write failed for file: %v", path)
	}
	return errors.Wrapf(f.Close(), "couldn't close file: %v", path)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Contains[A comparable](items []A, item A) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}
