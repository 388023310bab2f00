package iolib

import "io"

// WriteFull writes buf to w, looping over partial writes until every byte is
// out. On failure it reports how many bytes made it onto the wire; those bytes
// are not retracted.
func WriteFull(w io.Writer, buf []byte) (uint, error) {
	total := uint(0)
	for total < uint(len(buf)) {
		n, err := w.Write(buf[total:])
		total += uint(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
