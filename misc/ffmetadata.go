package misc

// FFMetadataSplitKV finds the first '=' in line that is not preceded by an
// odd run of '\' (i.e. not escaped), returning its byte offset. ok is false
// ("not_found") if no such '=' exists.
func FFMetadataSplitKV(line []byte) (eqOffset int, ok bool) {
	for i, c := range line {
		if c != '=' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i, true
		}
	}
	return 0, false
}

// FFMetadataUnescape removes a single leading '\' from each escape pair in
// input, writing the result (always NUL-terminated when dst has any
// capacity) into dst following the two-pass capacity protocol.
func FFMetadataUnescape(input []byte, dst []byte, dstCap int) (required int, err error) {
	var out []byte
	for i := 0; i < len(input); i++ {
		if input[i] == '\\' && i+1 < len(input) {
			i++
			out = append(out, input[i])
			continue
		}
		out = append(out, input[i])
	}
	required = len(out) + 1
	if dstCap <= 0 || len(dst) == 0 {
		return required, errOutOfSpace(required)
	}
	if dstCap < required {
		n := dstCap - 1
		if n > len(out) {
			n = len(out)
		}
		copy(dst, out[:n])
		dst[n] = 0
		return required, errOutOfSpace(required)
	}
	n := copy(dst, out)
	dst[n] = 0
	return required, nil
}

