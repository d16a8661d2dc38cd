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
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultChanSize   = 1024
	errorsOnSinkLimit = 5
	flushEvery        = 1000

	bufioWriterSize = 8192 * 4
)

type (
	flusher interface {
		io.Writer
		Flush() error
	}

	// Writer consumes variates. Write never blocks on the sink directly;
	// values travel through a channel to a background committer.
	Writer interface {
		Write(v float64)
		Written() int64
		Close() error
	}

	writer struct {
		closers []io.Closer
		channel chan float64
		logger  *zap.Logger
		wg      sync.WaitGroup
		written atomic.Int64
		active  atomic.Bool
	}
)

// NewFileWriter writes variates to the named file through the given
// compression. An empty filename yields a writer that discards everything.
func NewFileWriter(filename string, compression Compression, logger *zap.Logger) (Writer, error) {
	if filename == "" {
		return &nopWriter{}, nil
	}

	fd, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open variate output %q", filename)
	}

	w, err := NewWriter(fd, compression, logger)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}

	return w, nil
}

// NewWriter writes variates to w through the given compression. If w is an
// io.Closer it is closed together with the writer.
func NewWriter(w io.Writer, compression Compression, logger *zap.Logger) (Writer, error) {
	sink, closer, err := compression.newWriter(w)
	if err != nil {
		return nil, errors.Wrap(err, "build compressed writer")
	}

	out := &writer{
		channel: make(chan float64, defaultChanSize),
		logger:  logger,
	}

	if closer != nil {
		out.closers = append(out.closers, closer)
	}
	if fd, ok := w.(io.Closer); ok && fd != closer {
		out.closers = append(out.closers, fd)
	}

	out.active.Store(true)
	out.wg.Add(1)

	go out.commit(sink)

	return out, nil
}

func (w *writer) Write(v float64) {
	if w.active.Load() {
		w.channel <- v
	}
}

func (w *writer) Written() int64 {
	return w.written.Load()
}

func (w *writer) Close() error {
	if !w.active.Swap(false) {
		return nil
	}
	close(w.channel)

	// Wait for the committer to drain the channel and flush.
	w.wg.Wait()

	for _, closer := range w.closers {
		if err := closer.Close(); err != nil {
			return errors.Wrap(err, "close variate output")
		}
	}

	return nil
}

func (w *writer) commit(sink flusher) {
	defer w.wg.Done()

	errsAtRow := 0
	buf := make([]byte, 0, 32)
	counter := 0

	for v := range w.channel {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')

		if _, err := sink.Write(buf); err != nil {
			if errsAtRow <= errorsOnSinkLimit {
				errsAtRow++
				w.logger.Error("failed to write variate", zap.Error(err))
			}
			continue
		}

		errsAtRow = 0
		w.written.Inc()

		counter++
		if counter%flushEvery == 0 {
			if err := sink.Flush(); err != nil {
				w.logger.Error("failed to flush variate sink", zap.Error(err))
			}
		}
	}

	if err := sink.Flush(); err != nil {
		w.logger.Error("failed to flush variate sink", zap.Error(err))
	}
}

type nopWriter struct{}

func (n *nopWriter) Write(_ float64) {}

func (n *nopWriter) Written() int64 { return 0 }

func (n *nopWriter) Close() error { return nil }
