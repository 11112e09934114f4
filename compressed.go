/*
 * compressed.go, part of chemutil
 *
 * Copyright 2012 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package chem

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compression returns the compression format implied by the extension of fname:
//"gz", "zst" or "" for plain files.
func compression(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	default:
		return ""
	}
}

//readCloser closes the decompressor and then the file under it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//prepSource opens fname and returns an object that will read data from the file, either
//'as is' or decompressing first, depending on the file extension (.gz for gzip, .zst or
//.zstd for zstd, anything else is read uncompressed).
func prepSource(fname string) (io.ReadCloser, error) {
	fhandle, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	reader := bufio.NewReader(fhandle)
	switch compression(fname) {
	case "gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			fhandle.Close()
			return nil, err
		}
		return &readCloser{gz, []func() error{gz.Close, fhandle.Close}}, nil
	case "zst":
		zs, err := zstd.NewReader(reader)
		if err != nil {
			fhandle.Close()
			return nil, err
		}
		//*zstd.Decoder's Close doesn't return an error.
		zclose := func() error { zs.Close(); return nil }
		return &readCloser{zs, []func() error{zclose, fhandle.Close}}, nil
	}
	return &readCloser{reader, []func() error{fhandle.Close}}, nil
}

//writeCloser flushes and closes the compressor, the buffer, and then the file.
type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//prepTarget creates fname and returns an io.WriteCloser that will write data, crude or
//compressed, depending on the file extension (see prepSource). The file is
//complete only after Close returns without error.
func prepTarget(fname string) (io.WriteCloser, error) {
	fhandle, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(fhandle)
	switch compression(fname) {
	case "gz":
		gz := gzip.NewWriter(buf)
		return &writeCloser{gz, []func() error{gz.Close, buf.Flush, fhandle.Close}}, nil
	case "zst":
		zs, err := zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			fhandle.Close()
			return nil, err
		}
		return &writeCloser{zs, []func() error{zs.Close, buf.Flush, fhandle.Close}}, nil
	}
	return &writeCloser{buf, []func() error{buf.Flush, fhandle.Close}}, nil
}
