/*
 * files_test.go, part of molcheck.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGzip(Te *testing.T, path string, data []byte) {
	Te.Helper()
	f, err := os.Create(path)
	require.NoError(Te, err)
	w := gzip.NewWriter(f)
	_, err = w.Write(data)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())
}

func writeZstd(Te *testing.T, path string, data []byte) {
	Te.Helper()
	f, err := os.Create(path)
	require.NoError(Te, err)
	w, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = w.Write(data)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())
}

func TestReadFileCompressed(Te *testing.T) {
	plain, err := os.ReadFile("test/peptide.pdb")
	require.NoError(Te, err)
	dir := Te.TempDir()

	gz := filepath.Join(dir, "peptide.pdb.gz")
	writeGzip(Te, gz, plain)
	zs := filepath.Join(dir, "peptide.pdb.zst")
	writeZstd(Te, zs, plain)

	for _, name := range []string{"test/peptide.pdb", gz, zs} {
		got, err := ReadFile(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, plain, got, name)
		res := ValidateFile(name, FormatPDB)
		assert.True(Te, res.Valid, name)
	}
}

func TestReadFileErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := ReadFile(filepath.Join(dir, "nothere.pdb"))
	assert.ErrorIs(Te, err, os.ErrNotExist)

	//not really gzip
	fake := filepath.Join(dir, "fake.pdb.gz")
	require.NoError(Te, os.WriteFile(fake, []byte("ATOM      1\n"), 0o644))
	_, err = ReadFile(fake)
	assert.Error(Te, err)
	res := ValidateFile(fake, FormatPDB)
	assert.False(Te, res.Valid)
	assert.Contains(Te, res.Error(), "File validation failed")
}
