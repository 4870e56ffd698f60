package bass

import (
	"errors"
	"io"

	"github.com/drgolem/go-bass/fileproc"
)

// FileProcedures is the custom file source contract of
// StreamCreateFileUser. BASS calls the methods from its own threads:
//
//   - Read fills buf and returns the number of bytes read; 0 means no more
//     data is available for now (end of file).
//   - Seek moves to offset and reports success.
//   - Length returns the total length of the file in bytes, 0 if unknown.
//   - Close is called once when the stream is freed.
//
// fileproc.Stream implements FileProcedures for any io.Reader.
type FileProcedures interface {
	Close()
	Length() uint64
	Read(buf []byte) int
	Seek(offset uint64) bool
}

// StreamCreateFile creates a sample stream from an MP3, MP2, MP1, OGG, WAV,
// AIFF or plugin supported file. length 0 means to the end of the file.
func StreamCreateFile(path string, offset, length uint64, flags Flags) (Channel, error) {
	if path == "" {
		return 0, errors.New("bass: file path cannot be empty")
	}
	h, code := lib.streamCreateFile(path, offset, length, uint32(flags))
	if h == 0 {
		return 0, newError("StreamCreateFile", code)
	}
	return Channel(h), nil
}

// StreamCreateFileUser creates a sample stream that reads its file data
// through procs. procs is owned by the stream from now on: BASS calls
// Close when the stream is freed, and if creation fails Close is called
// before returning.
func StreamCreateFileUser(system FileSystem, flags Flags, procs FileProcedures) (Channel, error) {
	if procs == nil {
		return 0, errors.New("bass: file procedures cannot be nil")
	}

	id := registerCallback(&callbackEntry{kind: kindFile, file: procs})
	h, code := lib.streamCreateFileUser(uint32(system), uint32(flags), id)
	if h == 0 {
		// close the source if BASS did not already do so
		if _, ok := getCallback(id); ok {
			dispatchFileClose(id)
		}
		return 0, newError("StreamCreateFileUser", code)
	}
	setCallbackChannel(id, h)
	return Channel(h), nil
}

// StreamCreateReader creates a sample stream reading from r. If r is an
// io.Seeker seeks are absolute file offsets; use StreamFileBuffer for
// readers that cannot seek. r is closed with the stream if it is an
// io.Closer.
func StreamCreateReader(r io.Reader, system FileSystem, flags Flags) (Channel, error) {
	procs, err := fileproc.New(r)
	if err != nil {
		return 0, err
	}
	procs.Whence = io.SeekStart
	return StreamCreateFileUser(system, flags, procs)
}

// StreamCreate creates a user sample stream whose data is produced by proc.
func StreamCreate(freq, chans uint32, flags Flags, proc StreamProc) (Channel, error) {
	if proc == nil {
		return 0, errors.New("bass: stream procedure cannot be nil")
	}

	id := registerCallback(&callbackEntry{kind: kindStream, stream: proc})
	h, code := lib.streamCreate(freq, chans, uint32(flags), id)
	if h == 0 {
		unregisterCallback(id)
		return 0, newError("StreamCreate", code)
	}
	setCallbackChannel(id, h)
	watchChannelFree(h)
	return Channel(h), nil
}

// StreamCreatePush creates a push stream; data is added with StreamPutData.
func StreamCreatePush(freq, chans uint32, flags Flags) (Channel, error) {
	h, code := lib.streamCreatePush(freq, chans, uint32(flags))
	if h == 0 {
		return 0, newError("StreamCreatePush", code)
	}
	return Channel(h), nil
}

// StreamPutData adds sample data to a push stream and returns the amount
// of queued data. A nil data just queries the queued amount.
func StreamPutData(handle Channel, data []byte) (int, error) {
	n, code := lib.streamPutData(uint32(handle), bytesPtr(data), uint32(len(data)))
	if n == invalidDWORD {
		return 0, newError("StreamPutData", code)
	}
	return int(n), nil
}

// StreamEndPush signals the end of the data of a push stream.
func StreamEndPush(handle Channel) error {
	n, code := lib.streamPutData(uint32(handle), nil, streamProcEnd)
	if n == invalidDWORD {
		return newError("StreamPutData", code)
	}
	return nil
}

// fileDataEnd is BASS_FILEDATA_END, the length that ends a pushed file.
const fileDataEnd = 0

// StreamPutFileData adds file data to a StreamFileBufferPush stream and
// returns the number of bytes read from data. An empty data (nil or zero
// length) signals the end of the file.
func StreamPutFileData(handle Channel, data []byte) (int, error) {
	if len(data) == 0 {
		data = nil
	}
	length := uint32(len(data))
	if data == nil {
		length = fileDataEnd
	}
	n, code := lib.streamPutFileData(uint32(handle), bytesPtr(data), length)
	if n == invalidDWORD {
		return 0, newError("StreamPutFileData", code)
	}
	return int(n), nil
}

// StreamFree frees a sample stream's resources, including its DSP, syncs
// and custom file source.
func StreamFree(handle Channel) error {
	if ok, code := lib.streamFree(uint32(handle)); !ok {
		return newError("StreamFree", code)
	}
	return nil
}

// StreamGetFilePosition returns the file position/status of a stream.
func StreamGetFilePosition(handle Channel, mode FilePosition) (uint64, error) {
	n, code := lib.streamGetFilePosition(uint32(handle), uint32(mode))
	if n == invalidQWORD {
		return 0, newError("StreamGetFilePosition", code)
	}
	return n, nil
}
