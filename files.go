/*
 * files.go, part of molcheck.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package molcheck

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Extensions of the compressed files ReadFile understands.
var compressedExt = map[string]struct{}{
	".gz":  {},
	".zst": {},
}

//Open returns a reader for the file at name. Files ending in .gz are
//gunzipped and files ending in .zst go through zstd; anything else is
//read as is. The caller must close the returned reader.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(err, "Open")
	}
	r, err := decompressor(f, strings.ToLower(filepath.Ext(name)))
	if err != nil {
		f.Close()
		return nil, newError(err, "Open")
	}
	return r, nil
}

//multiCloser closes the decoder and then the file below it.
type multiCloser struct {
	io.Reader
	closers []func() error
}

func (M *multiCloser) Close() error {
	var first error
	for _, c := range M.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func decompressor(f *os.File, ext string) (io.ReadCloser, error) {
	br := bufio.NewReader(f)
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiCloser{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		//*zstd.Decoder.Close returns nothing.
		zclose := func() error { zr.Close(); return nil }
		return &multiCloser{Reader: zr, closers: []func() error{zclose, f.Close}}, nil
	}
	return &multiCloser{Reader: br, closers: []func() error{f.Close}}, nil
}

//ReadFile reads the whole, decompressed, content of the file at name.
func ReadFile(name string) ([]byte, error) {
	r, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(err, "ReadFile")
	}
	return b, nil
}
