// Package bass provides Go bindings for BASS - the un4seen audio library.
//
// BASS decodes, mixes and plays audio streams, MOD music and recordings on
// Windows, macOS and Linux. This package wraps its C API: every native entry
// point is declared once, parameters are marshalled to C types, and native
// failure values (FALSE, a 0 handle, -1) are turned into Go errors carrying
// the BASS error code.
//
// # Quick Start
//
//	if err := bass.Init(bass.DefaultDevice, 44100, bass.DeviceDefault); err != nil {
//	    log.Fatal(err)
//	}
//	defer bass.Free()
//
//	h, err := bass.StreamCreateFile("song.mp3", 0, 0, bass.FlagDefault)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bass.StreamFree(h)
//	bass.ChannelPlay(h, false)
//
// Any io.Reader can be played through a custom file source:
//
//	h, err := bass.StreamCreateReader(resp.Body, bass.StreamFileBuffer, 0)
//
// # Errors
//
// Functions return an *Error when BASS reports a failure. The error code is
// read in the same C call as the failing function, because BASS keeps error
// codes per OS thread and goroutines move between threads. Codes can be
// matched with errors.Is:
//
//	if errors.Is(err, bass.ErrorHandle) { ... }
//
// # Callbacks
//
// DSP, sync, stream, record and file callbacks run on threads owned by BASS
// (the mixer, decoder or file reader thread), not on a goroutine started by
// this package. Callbacks are looked up by integer id, so no Go pointer is
// ever stored in C memory. A panic inside a callback is recovered, reported
// on stderr and turned into a fail-soft result (no data, stop, false).
//
// # Thread Safety
//
// BASS itself is thread-safe; this package adds locking only around its
// callback registry and the Init/Free reference count. ChannelLock must be
// released on the OS thread that acquired it; use WithChannelLock, which
// pins the goroutine to its thread for the duration.
//
// # Building
//
// The package links against libbass (-lbass) and needs bass.h on the include
// path, e.g.
//
//	CGO_CFLAGS=-I/opt/bass CGO_LDFLAGS=-L/opt/bass go build ./...
//
// Without cgo every call fails with ErrorNotAvailable.
package bass

import (
	"fmt"
	"sync"
)

var (
	// initialized tracks the initialization reference count
	initialized int
	// initMu protects the initialized counter
	initMu sync.Mutex
)

// GetVersion returns the BASS version as a packed 0xAABBCCDD value
// (AA.BB.CC.DD).
func GetVersion() uint32 {
	return lib.getVersion()
}

// VersionString returns the BASS version in dotted form, e.g. "2.4.17.0".
func VersionString() string {
	return formatVersion(GetVersion())
}

func formatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24, (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}

// Init initializes an output device.
//
// Init uses reference counting like Free: only the first call reaches
// BASS_Init, and the device is released when the last matching Free is
// made. device is a device number from Devices, DefaultDevice (-1) or
// NoSoundDevice (0); freq is the output sample rate.
//
// Example:
//
//	if err := bass.Init(bass.DefaultDevice, 44100, bass.DeviceDefault); err != nil {
//	    log.Fatal("Failed to initialize BASS:", err)
//	}
//	defer bass.Free()
//
// Thread Safety: This function is thread-safe due to internal mutex protection.
func Init(device int, freq uint32, flags InitFlags) error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized == 0 {
		ok, code := lib.init(device, freq, uint32(flags))
		if !ok {
			return newError("Init", code)
		}
	}
	initialized++
	return nil
}

// Free releases the resources of the device initialized by Init once the
// reference count drops to zero. All streams, musics and samples are freed
// with it.
//
// Thread Safety: This function is thread-safe due to internal mutex protection.
func Free() error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized == 0 {
		return nil
	}

	initialized--
	if initialized == 0 {
		ok, code := lib.free()
		if !ok {
			initialized++ // restore count on error
			return newError("Free", code)
		}
	}
	return nil
}

// GetDeviceInfo returns information on an output device.
func GetDeviceInfo(device int) (*DeviceInfo, error) {
	if device < 0 {
		return nil, newError("GetDeviceInfo", ErrorDevice)
	}
	info, ok, code := lib.getDeviceInfo(uint32(device))
	if !ok {
		return nil, newError("GetDeviceInfo", code)
	}
	info.Index = device
	return &info, nil
}

// Devices returns all output devices, starting with the "no sound" device 0.
func Devices() ([]*DeviceInfo, error) {
	var devices []*DeviceInfo
	for i := 0; ; i++ {
		info, ok, code := lib.getDeviceInfo(uint32(i))
		if !ok {
			if code == ErrorDevice {
				return devices, nil
			}
			return nil, newError("GetDeviceInfo", code)
		}
		info.Index = i
		devices = append(devices, &info)
	}
}

// SetDevice sets the device to use for subsequent calls in the current
// thread.
func SetDevice(device int) error {
	if ok, code := lib.setDevice(uint32(device)); !ok {
		return newError("SetDevice", code)
	}
	return nil
}

// GetDevice returns the device used by the current thread.
func GetDevice() (int, error) {
	d, code := lib.getDevice()
	if d == invalidDWORD {
		return 0, newError("GetDevice", code)
	}
	return int(d), nil
}

// SetConfig sets the value of a config option.
func SetConfig(option ConfigOption, value uint32) error {
	if ok, code := lib.setConfig(uint32(option), value); !ok {
		return newError("SetConfig", code)
	}
	return nil
}

// SetConfigBool sets a boolean config option.
func SetConfigBool(option ConfigOption, value bool) error {
	var v uint32
	if value {
		v = 1
	}
	return SetConfig(option, v)
}

// GetConfig returns the value of a config option.
func GetConfig(option ConfigOption) (uint32, error) {
	v, code := lib.getConfig(uint32(option))
	if v == invalidDWORD {
		return 0, newError("GetConfig", code)
	}
	return v, nil
}

// Start starts (or resumes) the output.
func Start() error {
	if ok, code := lib.start(); !ok {
		return newError("Start", code)
	}
	return nil
}

// Stop stops the output, stopping all musics, samples and streams.
func Stop() error {
	if ok, code := lib.stop(); !ok {
		return newError("Stop", code)
	}
	return nil
}

// Pause stops the output, pausing all playing channels.
func Pause() error {
	if ok, code := lib.pause(); !ok {
		return newError("Pause", code)
	}
	return nil
}

// SetVolume sets the output master volume (0..1).
func SetVolume(volume float64) error {
	if ok, code := lib.setVolume(float32(volume)); !ok {
		return newError("SetVolume", code)
	}
	return nil
}

// GetVolume returns the output master volume (0..1).
func GetVolume() (float64, error) {
	v, code := lib.getVolume()
	if v < 0 {
		return 0, newError("GetVolume", code)
	}
	return float64(v), nil
}

// GetCPU returns the current CPU usage of BASS in percent.
func GetCPU() float64 {
	return float64(lib.getCPU())
}

// Update updates the playback buffers of all channels, length is in
// milliseconds.
func Update(length uint32) error {
	if ok, code := lib.update(length); !ok {
		return newError("Update", code)
	}
	return nil
}
