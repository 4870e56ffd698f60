package bass

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// countingProcs records calls made through the file procedures.
type countingProcs struct {
	data   []byte
	pos    int
	closes int
}

func (p *countingProcs) Close()         { p.closes++ }
func (p *countingProcs) Length() uint64 { return uint64(len(p.data)) }

func (p *countingProcs) Read(buf []byte) int {
	n := copy(buf, p.data[p.pos:])
	p.pos += n
	return n
}

func (p *countingProcs) Seek(offset uint64) bool {
	if offset > uint64(len(p.data)) {
		return false
	}
	p.pos = int(offset)
	return true
}

func TestStreamCreateFileUser(t *testing.T) {
	f := newFake()
	useFake(t, f)

	procs := &countingProcs{data: []byte("RIFF....WAVE")}
	h, err := StreamCreateFileUser(StreamFileNoBuffer, StreamDecode, procs)
	if err != nil {
		t.Fatalf("StreamCreateFileUser failed: %v", err)
	}
	id := f.files[uint32(h)]

	if n := dispatchFileLength(id); n != 12 {
		t.Errorf("length = %d, want 12", n)
	}
	buf := make([]byte, 4)
	if n := dispatchFileRead(id, buf); n != 4 || string(buf) != "RIFF" {
		t.Errorf("read = %d %q", n, buf)
	}
	if !dispatchFileSeek(id, 8) {
		t.Error("seek to 8 failed")
	}
	if n := dispatchFileRead(id, buf); n != 4 || string(buf) != "WAVE" {
		t.Errorf("read after seek = %d %q", n, buf)
	}
	if dispatchFileSeek(id, 100) {
		t.Error("seek past end succeeded")
	}

	if err := StreamFree(h); err != nil {
		t.Fatalf("StreamFree failed: %v", err)
	}
	if procs.closes != 1 {
		t.Errorf("Close called %d times, want 1", procs.closes)
	}
	if _, ok := getCallback(id); ok {
		t.Error("file procedures still registered after close")
	}
}

func TestStreamCreateFileUserFailureClosesOnce(t *testing.T) {
	tests := []struct {
		name        string
		closeOnFail bool
	}{
		{"LibraryCloses", true},
		{"LibraryDoesNotClose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			f.fail = true
			f.code = ErrorFileFormat
			f.closeOnFail = tt.closeOnFail
			useFake(t, f)

			procs := &countingProcs{}
			_, err := StreamCreateFileUser(StreamFileNoBuffer, 0, procs)
			if !errors.Is(err, ErrorFileFormat) {
				t.Fatalf("error = %v, want ErrorFileFormat", err)
			}
			if procs.closes != 1 {
				t.Errorf("Close called %d times, want 1", procs.closes)
			}
			if n := callbackCount(); n != 0 {
				t.Errorf("callbackCount() = %d after failure", n)
			}
		})
	}
}

func TestStreamCreateFileUserNil(t *testing.T) {
	useFake(t, newFake())

	if _, err := StreamCreateFileUser(StreamFileNoBuffer, 0, nil); err == nil {
		t.Error("nil file procedures accepted")
	}
	if _, err := StreamCreateFile("", 0, 0, 0); err == nil {
		t.Error("empty path accepted")
	}
}

// closeTracker is a seekable reader that records Close.
type closeTracker struct {
	*bytes.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestStreamCreateReader(t *testing.T) {
	f := newFake()
	useFake(t, f)

	src := &closeTracker{Reader: bytes.NewReader([]byte("0123456789"))}
	h, err := StreamCreateReader(src, StreamFileNoBuffer, 0)
	if err != nil {
		t.Fatalf("StreamCreateReader failed: %v", err)
	}
	id := f.files[uint32(h)]

	if n := dispatchFileLength(id); n != 10 {
		t.Errorf("length = %d, want 10", n)
	}

	// BASS seeks to absolute offsets
	buf := make([]byte, 3)
	dispatchFileRead(id, buf)
	if !dispatchFileSeek(id, 5) {
		t.Fatal("seek failed")
	}
	if n := dispatchFileRead(id, buf); n != 3 || string(buf) != "567" {
		t.Errorf("read after seek = %d %q, want 567", n, buf)
	}
	if !dispatchFileSeek(id, 5) {
		t.Fatal("repeated seek failed")
	}
	if n := dispatchFileRead(id, buf); string(buf[:n]) != "567" {
		t.Errorf("repeated seek read %q, want 567", buf[:n])
	}

	if err := StreamFree(h); err != nil {
		t.Fatalf("StreamFree failed: %v", err)
	}
	if !src.closed {
		t.Error("reader not closed with the stream")
	}
}

func TestStreamCreateReaderNonSeekable(t *testing.T) {
	f := newFake()
	useFake(t, f)

	h, err := StreamCreateReader(io.MultiReader(bytes.NewReader([]byte("abc"))), StreamFileBuffer, 0)
	if err != nil {
		t.Fatalf("StreamCreateReader failed: %v", err)
	}
	id := f.files[uint32(h)]
	if dispatchFileSeek(id, 0) {
		t.Error("seek on non-seekable reader succeeded")
	}
	if n := dispatchFileLength(id); n != 0 {
		t.Errorf("length of unknown-size reader = %d, want 0", n)
	}

	if _, err := StreamCreateReader(nil, StreamFileBuffer, 0); err == nil {
		t.Error("nil reader accepted")
	}
}

func TestStreamCreate(t *testing.T) {
	f := newFake()
	useFake(t, f)

	if _, err := StreamCreate(44100, 2, 0, nil); err == nil {
		t.Error("nil stream procedure accepted")
	}

	var phase byte
	h, err := StreamCreate(44100, 2, 0, func(handle Channel, buf []byte) (int, bool) {
		for i := range buf {
			buf[i] = phase
			phase++
		}
		return len(buf), false
	})
	if err != nil {
		t.Fatalf("StreamCreate failed: %v", err)
	}

	buf := make([]byte, 4)
	if r := dispatchStream(f.streams[uint32(h)], uint32(h), buf); r != 4 {
		t.Errorf("stream result = %#x, want 4", r)
	}
	if buf[3] != 3 {
		t.Errorf("buf = %v", buf)
	}

	// the stream proc and its free watch go away with the stream
	if err := StreamFree(h); err != nil {
		t.Fatalf("StreamFree failed: %v", err)
	}
	if n := callbackCount(); n != 0 {
		t.Errorf("callbackCount() = %d after StreamFree", n)
	}
}

func TestStreamCreateFailure(t *testing.T) {
	f := newFake()
	f.fail = true
	f.code = ErrorFormat
	useFake(t, f)

	_, err := StreamCreate(44100, 9, 0, func(Channel, []byte) (int, bool) { return 0, true })
	if !errors.Is(err, ErrorFormat) {
		t.Fatalf("error = %v, want ErrorFormat", err)
	}
	if n := callbackCount(); n != 0 {
		t.Errorf("callbackCount() = %d after failure", n)
	}
}

func TestStreamPush(t *testing.T) {
	f := newFake()
	useFake(t, f)

	n, err := StreamPutData(testChannel, make([]byte, 512))
	if err != nil || n != 512 {
		t.Errorf("StreamPutData = %d, %v", n, err)
	}
	if err := StreamEndPush(testChannel); err != nil {
		t.Errorf("StreamEndPush failed: %v", err)
	}
	if len(f.pushed) != 2 || f.pushed[1] != streamProcEnd {
		t.Errorf("pushed lengths = %v", f.pushed)
	}

	f.fail = true
	if _, err := StreamPutData(testChannel, make([]byte, 4)); !errors.Is(err, ErrorHandle) {
		t.Errorf("StreamPutData error = %v", err)
	}
}

func TestRecordStart(t *testing.T) {
	f := newFake()
	useFake(t, f)

	if _, err := RecordStart(0, 2, 0, nil); err == nil {
		t.Error("zero frequency accepted")
	}

	// without a proc no callback is registered
	if _, err := RecordStart(44100, 2, RecordPause, nil); err != nil {
		t.Fatalf("RecordStart without proc failed: %v", err)
	}
	if n := callbackCount(); n != 0 {
		t.Errorf("callbackCount() = %d for proc-less recording", n)
	}

	var got int
	h, err := RecordStart(44100, 1, 0, func(handle Channel, buf []byte) bool {
		got += len(buf)
		return got < 8
	})
	if err != nil {
		t.Fatalf("RecordStart failed: %v", err)
	}
	id := f.streams[uint32(h)]
	if !dispatchRecord(id, uint32(h), make([]byte, 4)) {
		t.Error("recording stopped early")
	}
	if dispatchRecord(id, uint32(h), make([]byte, 4)) {
		t.Error("recording did not stop")
	}
	if got != 8 {
		t.Errorf("received %d bytes, want 8", got)
	}
}

func TestStreamPutFileData(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantN      int
		wantNil    bool
		wantLength uint32
	}{
		{"Data", []byte{1, 2, 3}, 3, false, 3},
		{"NilEndsFile", nil, 0, true, fileDataEnd},
		{"EmptyEndsFile", []byte{}, 0, true, fileDataEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			useFake(t, f)

			n, err := StreamPutFileData(testChannel, tt.data)
			if err != nil || n != tt.wantN {
				t.Fatalf("StreamPutFileData = %d, %v; want %d", n, err, tt.wantN)
			}
			if len(f.fileData) != 1 {
				t.Fatalf("native called %d times, want 1", len(f.fileData))
			}
			got := f.fileData[0]
			if got.nilBuf != tt.wantNil || got.length != tt.wantLength {
				t.Errorf("native got buf nil=%v length=%#x, want nil=%v length=%#x",
					got.nilBuf, got.length, tt.wantNil, tt.wantLength)
			}
		})
	}

	f := newFake()
	f.fail = true
	useFake(t, f)
	if _, err := StreamPutFileData(testChannel, []byte{1}); !errors.Is(err, ErrorHandle) {
		t.Errorf("StreamPutFileData error = %v, want ErrorHandle", err)
	}
}
