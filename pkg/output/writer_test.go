// Copyright 2025 Distributions Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseCompression(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	for value, want := range map[string]Compression{
		"":     NoCompression,
		"none": NoCompression,
		"zstd": ZSTDCompression,
		"gzip": GZIPCompression,
	} {
		got, err := ParseCompression(value)
		assert.NoError(err)
		assert.Equal(want, got)
		if value != "" {
			assert.Equal(value, got.String())
		}
	}

	_, err := ParseCompression("lz4")
	assert.Error(err)
}

func TestWriterRoundTrip(t *testing.T) {
	t.Parallel()

	for _, compression := range []Compression{NoCompression, ZSTDCompression, GZIPCompression} {
		t.Run(compression.String(), func(t *testing.T) {
			t.Parallel()

			assert := require.New(t)

			var buf bytes.Buffer

			w, err := NewWriter(&buf, compression, zap.NewNop())
			assert.NoError(err)

			values := make([]float64, 2500)
			for i := range values {
				values[i] = float64(i) / 7
				w.Write(values[i])
			}

			assert.NoError(w.Close())
			assert.EqualValues(len(values), w.Written())

			var body io.Reader = &buf
			switch compression {
			case ZSTDCompression:
				dec, decErr := zstd.NewReader(&buf)
				assert.NoError(decErr)
				defer dec.Close()
				body = dec
			case GZIPCompression:
				gz, decErr := gzip.NewReader(&buf)
				assert.NoError(decErr)
				body = gz
			case NoCompression:
			}

			raw, err := io.ReadAll(body)
			assert.NoError(err)

			lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
			assert.Len(lines, len(values))

			for i, line := range lines {
				v, parseErr := strconv.ParseFloat(line, 64)
				assert.NoError(parseErr)
				assert.InDelta(values[i], v, 0)
			}
		})
	}
}

func TestWriterCloseIdempotent(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	var buf bytes.Buffer

	w, err := NewWriter(&buf, NoCompression, zap.NewNop())
	assert.NoError(err)

	w.Write(1.5)
	assert.NoError(w.Close())
	assert.NoError(w.Close())

	// Writes after close are dropped, not panics.
	w.Write(2.5)
	assert.EqualValues(1, w.Written())
}

func TestFileWriter(t *testing.T) {
	t.Parallel()

	assert := require.New(t)

	nop, err := NewFileWriter("", NoCompression, zap.NewNop())
	assert.NoError(err)
	nop.Write(1)
	assert.Zero(nop.Written())
	assert.NoError(nop.Close())

	path := filepath.Join(t.TempDir(), "variates.txt")

	w, err := NewFileWriter(path, NoCompression, zap.NewNop())
	assert.NoError(err)
	w.Write(0.5)
	w.Write(-2)
	assert.NoError(w.Close())

	raw, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("0.5\n-2\n", string(raw))
}
