//go:build !cgo

package bass

import "unsafe"

// stubNative is used when the package is built without cgo. Every call
// fails with ErrorNotAvailable.
type stubNative struct{}

func newNative() native { return stubNative{} }

const stubCode = ErrorNotAvailable

func (stubNative) errorGetCode() int  { return int(stubCode) }
func (stubNative) getVersion() uint32 { return 0 }
func (stubNative) getCPU() float32    { return 0 }

func (stubNative) init(int, uint32, uint32) (bool, Errors) { return false, stubCode }
func (stubNative) free() (bool, Errors)                    { return false, stubCode }
func (stubNative) getDeviceInfo(uint32) (DeviceInfo, bool, Errors) {
	return DeviceInfo{}, false, stubCode
}
func (stubNative) setDevice(uint32) (bool, Errors)         { return false, stubCode }
func (stubNative) getDevice() (uint32, Errors)             { return invalidDWORD, stubCode }
func (stubNative) setConfig(uint32, uint32) (bool, Errors) { return false, stubCode }
func (stubNative) getConfig(uint32) (uint32, Errors)       { return invalidDWORD, stubCode }
func (stubNative) start() (bool, Errors)                   { return false, stubCode }
func (stubNative) stop() (bool, Errors)                    { return false, stubCode }
func (stubNative) pause() (bool, Errors)                   { return false, stubCode }
func (stubNative) setVolume(float32) (bool, Errors)        { return false, stubCode }
func (stubNative) getVolume() (float32, Errors)            { return -1, stubCode }
func (stubNative) update(uint32) (bool, Errors)            { return false, stubCode }

func (stubNative) streamCreateFile(string, uint64, uint64, uint32) (uint32, Errors) {
	return 0, stubCode
}
func (stubNative) streamCreateFileUser(uint32, uint32, uintptr) (uint32, Errors) { return 0, stubCode }
func (stubNative) streamCreate(uint32, uint32, uint32, uintptr) (uint32, Errors) { return 0, stubCode }
func (stubNative) streamCreatePush(uint32, uint32, uint32) (uint32, Errors)      { return 0, stubCode }
func (stubNative) streamPutData(uint32, unsafe.Pointer, uint32) (uint32, Errors) {
	return invalidDWORD, stubCode
}
func (stubNative) streamPutFileData(uint32, unsafe.Pointer, uint32) (uint32, Errors) {
	return invalidDWORD, stubCode
}
func (stubNative) streamFree(uint32) (bool, Errors) { return false, stubCode }
func (stubNative) streamGetFilePosition(uint32, uint32) (uint64, Errors) {
	return invalidQWORD, stubCode
}

func (stubNative) channelGetInfo(uint32) (ChannelInfo, bool, Errors) {
	return ChannelInfo{}, false, stubCode
}
func (stubNative) channelSetDSP(uint32, uintptr, int) (uint32, Errors) { return 0, stubCode }
func (stubNative) channelRemoveDSP(uint32, uint32) (bool, Errors)      { return false, stubCode }
func (stubNative) channelPlay(uint32, bool) (bool, Errors)             { return false, stubCode }
func (stubNative) channelPause(uint32) (bool, Errors)                  { return false, stubCode }
func (stubNative) channelStop(uint32) (bool, Errors)                   { return false, stubCode }
func (stubNative) channelLock(uint32, bool) (bool, Errors)             { return false, stubCode }
func (stubNative) channelIsActive(uint32) (uint32, Errors)             { return 0, stubCode }
func (stubNative) channelSetLink(uint32, uint32) (bool, Errors)        { return false, stubCode }
func (stubNative) channelRemoveLink(uint32, uint32) (bool, Errors)     { return false, stubCode }
func (stubNative) channelFlags(uint32, uint32, uint32) (uint32, Errors) {
	return invalidDWORD, stubCode
}
func (stubNative) channelGetAttribute(uint32, uint32) (float32, bool, Errors) {
	return 0, false, stubCode
}
func (stubNative) channelGetAttributeEx(uint32, uint32, unsafe.Pointer, uint32) (uint32, Errors) {
	return 0, stubCode
}
func (stubNative) channelSetAttribute(uint32, uint32, float32) (bool, Errors) {
	return false, stubCode
}
func (stubNative) channelSetAttributeEx(uint32, uint32, unsafe.Pointer, uint32) (bool, Errors) {
	return false, stubCode
}
func (stubNative) channelGetTags(uint32, uint32) (unsafe.Pointer, Errors) { return nil, stubCode }
func (stubNative) channelGetLength(uint32, uint32) (uint64, Errors) {
	return invalidQWORD, stubCode
}
func (stubNative) channelSetSync(uint32, uint32, uint64, uintptr) (uint32, Errors) {
	return 0, stubCode
}
func (stubNative) channelRemoveSync(uint32, uint32) (bool, Errors)       { return false, stubCode }
func (stubNative) channelBytes2Seconds(uint32, uint64) (float64, Errors) { return -1, stubCode }
func (stubNative) channelSeconds2Bytes(uint32, float64) (uint64, Errors) {
	return invalidQWORD, stubCode
}
func (stubNative) channelGetPosition(uint32, uint32) (uint64, Errors) {
	return invalidQWORD, stubCode
}
func (stubNative) channelSetPosition(uint32, uint64, uint32) (bool, Errors) {
	return false, stubCode
}
func (stubNative) channelIsSliding(uint32, uint32) bool { return false }
func (stubNative) channelSlideAttribute(uint32, uint32, float32, uint32) (bool, Errors) {
	return false, stubCode
}
func (stubNative) channelGetLevel(uint32) (uint32, Errors) { return invalidDWORD, stubCode }
func (stubNative) channelGetLevelEx(uint32, []float32, float32, uint32) (bool, Errors) {
	return false, stubCode
}
func (stubNative) channelGetData(uint32, unsafe.Pointer, uint32) (uint32, Errors) {
	return invalidDWORD, stubCode
}
func (stubNative) channelUpdate(uint32, uint32) (bool, Errors) { return false, stubCode }

func (stubNative) recordInit(int) (bool, Errors)                                { return false, stubCode }
func (stubNative) recordFree() (bool, Errors)                                   { return false, stubCode }
func (stubNative) recordStart(uint32, uint32, uint32, uintptr) (uint32, Errors) { return 0, stubCode }

func (stubNative) releaseUser(uintptr) {}
