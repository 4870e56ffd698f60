package bass

import "unsafe"

// native is the raw BASS API. Each method maps to one C entry point and
// returns the native failure value unchanged, together with the error code
// read in the same C call. The cgo implementation lives in native_cgo.go;
// tests substitute a fake.
type native interface {
	errorGetCode() int
	getVersion() uint32

	init(device int, freq uint32, flags uint32) (bool, Errors)
	free() (bool, Errors)
	getDeviceInfo(device uint32) (DeviceInfo, bool, Errors)
	setDevice(device uint32) (bool, Errors)
	getDevice() (uint32, Errors)
	setConfig(option, value uint32) (bool, Errors)
	getConfig(option uint32) (uint32, Errors)
	start() (bool, Errors)
	stop() (bool, Errors)
	pause() (bool, Errors)
	setVolume(volume float32) (bool, Errors)
	getVolume() (float32, Errors)
	getCPU() float32
	update(length uint32) (bool, Errors)

	streamCreateFile(path string, offset, length uint64, flags uint32) (uint32, Errors)
	streamCreateFileUser(system, flags uint32, id uintptr) (uint32, Errors)
	streamCreate(freq, chans, flags uint32, id uintptr) (uint32, Errors)
	streamCreatePush(freq, chans, flags uint32) (uint32, Errors)
	streamPutData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors)
	streamPutFileData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors)
	streamFree(handle uint32) (bool, Errors)
	streamGetFilePosition(handle, mode uint32) (uint64, Errors)

	channelGetInfo(handle uint32) (ChannelInfo, bool, Errors)
	channelSetDSP(handle uint32, id uintptr, priority int) (uint32, Errors)
	channelRemoveDSP(handle, dsp uint32) (bool, Errors)
	channelPlay(handle uint32, restart bool) (bool, Errors)
	channelPause(handle uint32) (bool, Errors)
	channelStop(handle uint32) (bool, Errors)
	channelLock(handle uint32, lock bool) (bool, Errors)
	channelIsActive(handle uint32) (uint32, Errors)
	channelSetLink(handle, channel uint32) (bool, Errors)
	channelRemoveLink(handle, channel uint32) (bool, Errors)
	channelFlags(handle, flags, mask uint32) (uint32, Errors)
	channelGetAttribute(handle, attrib uint32) (float32, bool, Errors)
	channelGetAttributeEx(handle, attrib uint32, value unsafe.Pointer, size uint32) (uint32, Errors)
	channelSetAttribute(handle, attrib uint32, value float32) (bool, Errors)
	channelSetAttributeEx(handle, attrib uint32, value unsafe.Pointer, size uint32) (bool, Errors)
	channelGetTags(handle, tags uint32) (unsafe.Pointer, Errors)
	channelGetLength(handle, mode uint32) (uint64, Errors)
	channelSetSync(handle, typ uint32, param uint64, id uintptr) (uint32, Errors)
	channelRemoveSync(handle, sync uint32) (bool, Errors)
	channelBytes2Seconds(handle uint32, pos uint64) (float64, Errors)
	channelSeconds2Bytes(handle uint32, pos float64) (uint64, Errors)
	channelGetPosition(handle, mode uint32) (uint64, Errors)
	channelSetPosition(handle uint32, pos uint64, mode uint32) (bool, Errors)
	channelIsSliding(handle, attrib uint32) bool
	channelSlideAttribute(handle, attrib uint32, value float32, time uint32) (bool, Errors)
	channelGetLevel(handle uint32) (uint32, Errors)
	channelGetLevelEx(handle uint32, levels []float32, length float32, flags uint32) (bool, Errors)
	channelGetData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors)
	channelUpdate(handle, length uint32) (bool, Errors)

	recordInit(device int) (bool, Errors)
	recordFree() (bool, Errors)
	recordStart(freq, chans, flags uint32, id uintptr) (uint32, Errors)

	// releaseUser frees the C memory holding a callback id.
	releaseUser(id uintptr)
}

// Native failure values.
const (
	invalidDWORD = ^uint32(0)
	invalidQWORD = ^uint64(0)
)

// lib is the active native implementation.
var lib native = newNative()
