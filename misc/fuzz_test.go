package misc

import "testing"

// FuzzFFMetadataUnescape checks spec.md §8's fuzz-totality and
// no-output-past-terminator properties for the NUL-terminated two-pass
// unescape call.
func FuzzFFMetadataUnescape(f *testing.F) {
	f.Add([]byte(`foo\=bar\\baz`))
	f.Add([]byte(""))
	f.Add([]byte(`trailing backslash\`))

	f.Fuzz(func(t *testing.T, data []byte) {
		required, err := FFMetadataUnescape(data, nil, 0)
		if err == nil {
			t.Fatalf("zero-capacity call unexpectedly succeeded")
		}
		if required <= 0 {
			return
		}
		dst := make([]byte, required)
		n, err := FFMetadataUnescape(data, dst, len(dst))
		if err != nil {
			t.Fatalf("second pass failed after first pass reported required=%d: %v", required, err)
		}
		if n > len(dst) {
			t.Fatalf("wrote %d bytes past capacity %d", n, len(dst))
		}
		for _, b := range dst[n:] {
			if b != 0 {
				t.Fatalf("byte past written length was not left untouched/zero: %v", dst)
			}
		}
	})
}
