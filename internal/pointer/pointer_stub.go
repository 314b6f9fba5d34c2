//go:build !windows && !(linux && !android)

package pointer

// open reports that no backend exists.
func open() (Source, error) {
	return nil, ErrUnsupported
}
