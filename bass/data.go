package bass

import (
	"errors"
	"unsafe"
)

// maxDataLength is the largest byte count that fits next to the
// BASS_DATA_* flags in the length argument of ChannelGetData.
const maxDataLength = 0x0fffffff

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func clampLength(n int) uint32 {
	if n > maxDataLength {
		return maxDataLength
	}
	return uint32(n)
}

// getData calls BASS_ChannelGetData and converts the -1 failure value.
func getData(op string, handle Channel, buf unsafe.Pointer, length uint32) (int, error) {
	n, code := lib.channelGetData(uint32(handle), buf, length)
	if n == invalidDWORD {
		return 0, newError(op, code)
	}
	return int(n), nil
}

// ChannelGetData retrieves sample data from a channel in its native format
// and returns the number of bytes written to buf. For decoding channels this
// decodes and advances the position.
//
// A nil buf on a recording channel discards the data instead.
func ChannelGetData(handle Channel, buf []byte) (int, error) {
	return getData("ChannelGetData", handle, bytesPtr(buf), clampLength(len(buf)))
}

// ChannelGetDataInt16 retrieves 16-bit sample data and returns the number of
// samples written. The channel must produce 16-bit data.
func ChannelGetDataInt16(handle Channel, buf []int16) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := getData("ChannelGetData", handle, unsafe.Pointer(&buf[0]), clampLength(len(buf)*2))
	return n / 2, err
}

// ChannelGetDataFloat retrieves sample data converted to 32-bit floats and
// returns the number of samples written.
func ChannelGetDataFloat(handle Channel, buf []float32) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := getData("ChannelGetData", handle, unsafe.Pointer(&buf[0]), clampLength(len(buf)*4)|uint32(DataFloat))
	return n / 4, err
}

// ChannelGetDataFixed retrieves sample data converted to 8.24 fixed-point
// integers and returns the number of samples written.
func ChannelGetDataFixed(handle Channel, buf []int32) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := getData("ChannelGetData", handle, unsafe.Pointer(&buf[0]), clampLength(len(buf)*4)|uint32(DataFixed))
	return n / 4, err
}

// ChannelGetDataAvailable returns the amount of buffered data in bytes:
// the playback buffer for playing channels, the recording buffer for
// recording channels.
func ChannelGetDataAvailable(handle Channel) (int, error) {
	return getData("ChannelGetData", handle, nil, uint32(DataAvailable))
}

// ErrFFTBufferTooSmall is returned by ChannelGetFFT when out cannot hold the
// requested FFT.
var ErrFFTBufferTooSmall = errors.New("bass: FFT buffer too small")

// FFTSize returns the number of float values produced by an FFT request for
// one channel: half the FFT size, plus one with DataFFTNyquist. A complex FFT
// returns real and imaginary parts of the full result, four times as many
// values, with the Nyquist frequency always included. It returns 0 when
// flags do not request an FFT.
func FFTSize(flags DataFlags) int {
	if flags&DataFFT256 == 0 {
		return 0
	}
	n := 128 << (flags & 0x7)
	if flags&DataFFTComplex != 0 {
		return n * 4
	}
	if flags&DataFFTNyquist != 0 {
		n++
	}
	return n
}

// ChannelGetFFT computes an FFT of the channel's current data. flags must
// contain one of the DataFFT* sizes and may add DataFFT* modifiers. For
// DataFFTIndividual, out must hold FFTSize(flags) values per channel.
// It returns the number of bytes consumed from the channel.
func ChannelGetFFT(handle Channel, flags DataFlags, out []float32) (int, error) {
	size := FFTSize(flags)
	if size == 0 {
		return 0, errors.New("bass: flags do not request an FFT")
	}
	if len(out) < size {
		return 0, ErrFFTBufferTooSmall
	}
	if flags&DataFFTIndividual != 0 {
		info, err := ChannelGetInfo(handle)
		if err != nil {
			return 0, err
		}
		if len(out) < size*info.Channels {
			return 0, ErrFFTBufferTooSmall
		}
	}
	return getData("ChannelGetData", handle, unsafe.Pointer(&out[0]), uint32(flags))
}

// Float32Samples reinterprets a DSP or stream buffer holding 32-bit float
// data. The returned slice aliases buf.
func Float32Samples(buf []byte) []float32 {
	if len(buf) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&buf[0])), len(buf)/4)
}

// Int16Samples reinterprets a DSP or stream buffer holding 16-bit data. The
// returned slice aliases buf.
func Int16Samples(buf []byte) []int16 {
	if len(buf) < 2 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&buf[0])), len(buf)/2)
}
