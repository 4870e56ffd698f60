// Package fileproc adapts Go readers to the BASS custom file source contract.
//
// BASS can read audio data through four user callbacks (close, length, read,
// seek) instead of a native file handle. A Stream implements those callbacks
// on top of any io.Reader, so that files, network bodies, in-memory buffers
// or ring buffers can be handed to bass.StreamCreateFileUser.
//
//	f, _ := os.Open("song.mp3")
//	procs, _ := fileproc.New(f)
//	procs.Whence = io.SeekStart // BASS seeks to absolute offsets
//	h, err := bass.StreamCreateFileUser(bass.StreamFileNoBuffer, 0, procs)
//
// bass.StreamCreateReader does the same in one call.
//
// # Fail-soft callbacks
//
// The callbacks are invoked by BASS from its own threads (file reader,
// decoder). Errors and panics never cross back into native code: a failed
// read reports 0 bytes, which BASS treats as the end of available data, and
// a failed seek reports false. The last swallowed error is kept for
// diagnostics and can be retrieved with Err.
//
// # Ownership
//
// A Stream owns its reader. When BASS frees the stream it invokes Close,
// which closes the reader (if it implements io.Closer) exactly once. A closed
// Stream must not be reused; Read returns 0 and Seek returns false.
//
// # Thread Safety
//
// No locking is added around the reader. BASS calls the procedures of one
// stream sequentially, so any reader that tolerates sequential use from
// different OS threads works.
package fileproc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// ErrNotReadable is returned by New when no readable source is given.
var ErrNotReadable = errors.New("fileproc: provide a readable stream")

// errClosed is recorded when a closed Stream is used.
var errClosed = errors.New("fileproc: stream closed")

// sizer is implemented by bytes.Reader, strings.Reader and io.SectionReader.
type sizer interface {
	Size() int64
}

// stater is implemented by *os.File.
type stater interface {
	Stat() (os.FileInfo, error)
}

// Stream bridges an io.Reader to the four BASS file procedures.
type Stream struct {
	r      io.Reader
	seeker io.Seeker // nil when r is not seekable

	// Whence is the origin used by Seek. It defaults to io.SeekCurrent,
	// which moves by offset from the current position. Set it to
	// io.SeekStart to treat offsets as absolute file positions.
	Whence int

	// scratch grows to the largest requested read and is reused.
	scratch []byte

	closeOnce sync.Once
	closed    atomic.Bool

	errMu   sync.Mutex
	lastErr error
}

// New creates a Stream reading from r. If r also implements io.Seeker the
// Stream is seekable, and if it implements io.Closer it is closed when the
// native engine signals close.
func New(r io.Reader) (*Stream, error) {
	if r == nil {
		return nil, ErrNotReadable
	}

	s := &Stream{
		r:      r,
		Whence: io.SeekCurrent,
	}
	if sk, ok := r.(io.Seeker); ok {
		s.seeker = sk
	}
	return s, nil
}

// CanSeek reports whether the underlying reader supports seeking.
func (s *Stream) CanSeek() bool {
	return s.seeker != nil
}

// Closed reports whether Close has been called.
func (s *Stream) Closed() bool {
	return s.closed.Load()
}

// Err returns the last error swallowed by a callback, or nil.
func (s *Stream) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

func (s *Stream) setErr(err error) {
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
}

// Read fills buf with up to len(buf) bytes from the reader and returns the
// number of bytes copied. Errors and panics are reported as 0 bytes.
func (s *Stream) Read(buf []byte) (n int) {
	defer func() {
		if r := recover(); r != nil {
			s.setErr(fmt.Errorf("fileproc: read panic: %v", r))
			n = 0
		}
	}()

	if s.closed.Load() {
		s.setErr(errClosed)
		return 0
	}
	if len(buf) == 0 {
		return 0
	}

	if len(s.scratch) < len(buf) {
		s.scratch = make([]byte, len(buf))
	}

	read, err := s.r.Read(s.scratch[:len(buf)])
	if read < 0 || read > len(buf) {
		s.setErr(fmt.Errorf("fileproc: reader returned invalid count %d", read))
		return 0
	}
	if err != nil && err != io.EOF {
		s.setErr(err)
		if read == 0 {
			return 0
		}
	}

	copy(buf, s.scratch[:read])
	return read
}

// Seek moves the reader by offset relative to Whence. It returns false when
// the reader is not seekable or the seek fails.
func (s *Stream) Seek(offset uint64) (ok bool) {
	if s.seeker == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			s.setErr(fmt.Errorf("fileproc: seek panic: %v", r))
			ok = false
		}
	}()

	if s.closed.Load() {
		s.setErr(errClosed)
		return false
	}

	if _, err := s.seeker.Seek(int64(offset), s.Whence); err != nil {
		s.setErr(err)
		return false
	}
	return true
}

// Length returns the total length of the data in bytes, or 0 when it is
// unknown.
func (s *Stream) Length() (length uint64) {
	defer func() {
		if r := recover(); r != nil {
			s.setErr(fmt.Errorf("fileproc: length panic: %v", r))
			length = 0
		}
	}()

	if s.closed.Load() {
		return 0
	}

	switch v := s.r.(type) {
	case sizer:
		if size := v.Size(); size > 0 {
			return uint64(size)
		}
		return 0
	case stater:
		fi, err := v.Stat()
		if err != nil {
			s.setErr(err)
			return 0
		}
		if fi.Mode().IsRegular() && fi.Size() > 0 {
			return uint64(fi.Size())
		}
		return 0
	}

	if s.seeker == nil {
		return 0
	}

	cur, err := s.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		s.setErr(err)
		return 0
	}
	end, err := s.seeker.Seek(0, io.SeekEnd)
	if err != nil {
		s.setErr(err)
		return 0
	}
	if _, err := s.seeker.Seek(cur, io.SeekStart); err != nil {
		s.setErr(err)
		return 0
	}
	if end < 0 {
		return 0
	}
	return uint64(end)
}

// Close releases the reader. Only the first call has an effect.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		c, ok := s.r.(io.Closer)
		if !ok {
			return
		}

		defer func() {
			if r := recover(); r != nil {
				s.setErr(fmt.Errorf("fileproc: close panic: %v", r))
			}
		}()
		if err := c.Close(); err != nil {
			s.setErr(err)
		}
	})
}
