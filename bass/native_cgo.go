//go:build cgo

package bass

/*
#cgo LDFLAGS: -lbass
#include <bass.h>
#include <stdlib.h>
#include <stdint.h>

// Forward declarations of the Go callback bridges
extern void goFileClose(uintptr_t id);
extern QWORD goFileLength(uintptr_t id);
extern DWORD goFileRead(void *buffer, DWORD length, uintptr_t id);
extern BOOL goFileSeek(QWORD offset, uintptr_t id);
extern void goDSP(HDSP handle, DWORD channel, void *buffer, DWORD length, uintptr_t id);
extern void goSync(HSYNC handle, DWORD channel, DWORD data, uintptr_t id);
extern DWORD goStream(HSTREAM handle, void *buffer, DWORD length, uintptr_t id);
extern BOOL goRecord(HRECORD handle, void *buffer, DWORD length, uintptr_t id);

// user points to a malloc'd uintptr_t holding the callback id
static void CALLBACK fileCloseProc(void *user) {
    goFileClose(*(uintptr_t*)user);
}

static QWORD CALLBACK fileLenProc(void *user) {
    return goFileLength(*(uintptr_t*)user);
}

static DWORD CALLBACK fileReadProc(void *buffer, DWORD length, void *user) {
    return goFileRead(buffer, length, *(uintptr_t*)user);
}

static BOOL CALLBACK fileSeekProc(QWORD offset, void *user) {
    return goFileSeek(offset, *(uintptr_t*)user);
}

static BASS_FILEPROCS fileProcs = {fileCloseProc, fileLenProc, fileReadProc, fileSeekProc};

static void CALLBACK dspProc(HDSP handle, DWORD channel, void *buffer, DWORD length, void *user) {
    goDSP(handle, channel, buffer, length, *(uintptr_t*)user);
}

static void CALLBACK syncProc(HSYNC handle, DWORD channel, DWORD data, void *user) {
    goSync(handle, channel, data, *(uintptr_t*)user);
}

static DWORD CALLBACK streamProc(HSTREAM handle, void *buffer, DWORD length, void *user) {
    return goStream(handle, buffer, length, *(uintptr_t*)user);
}

static BOOL CALLBACK recordProc(HRECORD handle, const void *buffer, DWORD length, void *user) {
    return goRecord(handle, (void*)buffer, length, *(uintptr_t*)user);
}

// BASS keeps error codes per thread. Each wrapper reads the code in the same
// C call as the function, so a goroutine switching threads between two cgo
// calls cannot pick up another thread's code.
#define GOBASS_WRAP(ret, name, params, args) \
static ret go_##name params { \
    ret r = BASS_##name args; \
    *err = BASS_ErrorGetCode(); \
    return r; \
}

GOBASS_WRAP(BOOL, Init, (int device, DWORD freq, DWORD flags, int *err), (device, freq, flags, NULL, NULL))
GOBASS_WRAP(BOOL, Free, (int *err), ())
GOBASS_WRAP(BOOL, GetDeviceInfo, (DWORD device, BASS_DEVICEINFO *info, int *err), (device, info))
GOBASS_WRAP(BOOL, SetDevice, (DWORD device, int *err), (device))
GOBASS_WRAP(DWORD, GetDevice, (int *err), ())
GOBASS_WRAP(BOOL, SetConfig, (DWORD option, DWORD value, int *err), (option, value))
GOBASS_WRAP(DWORD, GetConfig, (DWORD option, int *err), (option))
GOBASS_WRAP(BOOL, Start, (int *err), ())
GOBASS_WRAP(BOOL, Stop, (int *err), ())
GOBASS_WRAP(BOOL, Pause, (int *err), ())
GOBASS_WRAP(BOOL, SetVolume, (float volume, int *err), (volume))
GOBASS_WRAP(float, GetVolume, (int *err), ())
GOBASS_WRAP(BOOL, Update, (DWORD length, int *err), (length))

GOBASS_WRAP(HSTREAM, StreamCreateFile, (BOOL mem, const void *file, QWORD offset, QWORD length, DWORD flags, int *err), (mem, file, offset, length, flags))
GOBASS_WRAP(HSTREAM, StreamCreateFileUser, (DWORD system, DWORD flags, void *user, int *err), (system, flags, &fileProcs, user))
GOBASS_WRAP(HSTREAM, StreamCreate, (DWORD freq, DWORD chans, DWORD flags, void *user, int *err), (freq, chans, flags, streamProc, user))
GOBASS_WRAP(DWORD, StreamPutData, (HSTREAM handle, const void *buffer, DWORD length, int *err), (handle, buffer, length))
GOBASS_WRAP(DWORD, StreamPutFileData, (HSTREAM handle, const void *buffer, DWORD length, int *err), (handle, buffer, length))
GOBASS_WRAP(BOOL, StreamFree, (HSTREAM handle, int *err), (handle))
GOBASS_WRAP(QWORD, StreamGetFilePosition, (HSTREAM handle, DWORD mode, int *err), (handle, mode))

static HSTREAM go_StreamCreatePush(DWORD freq, DWORD chans, DWORD flags, int *err) {
    HSTREAM r = BASS_StreamCreate(freq, chans, flags, STREAMPROC_PUSH, NULL);
    *err = BASS_ErrorGetCode();
    return r;
}

GOBASS_WRAP(BOOL, ChannelGetInfo, (DWORD handle, BASS_CHANNELINFO *info, int *err), (handle, info))
GOBASS_WRAP(HDSP, ChannelSetDSP, (DWORD handle, void *user, int priority, int *err), (handle, dspProc, user, priority))
GOBASS_WRAP(BOOL, ChannelRemoveDSP, (DWORD handle, HDSP dsp, int *err), (handle, dsp))
GOBASS_WRAP(BOOL, ChannelPlay, (DWORD handle, BOOL restart, int *err), (handle, restart))
GOBASS_WRAP(BOOL, ChannelPause, (DWORD handle, int *err), (handle))
GOBASS_WRAP(BOOL, ChannelStop, (DWORD handle, int *err), (handle))
GOBASS_WRAP(BOOL, ChannelLock, (DWORD handle, BOOL lock, int *err), (handle, lock))
GOBASS_WRAP(DWORD, ChannelIsActive, (DWORD handle, int *err), (handle))
GOBASS_WRAP(BOOL, ChannelSetLink, (DWORD handle, DWORD chan, int *err), (handle, chan))
GOBASS_WRAP(BOOL, ChannelRemoveLink, (DWORD handle, DWORD chan, int *err), (handle, chan))
GOBASS_WRAP(DWORD, ChannelFlags, (DWORD handle, DWORD flags, DWORD mask, int *err), (handle, flags, mask))
GOBASS_WRAP(BOOL, ChannelGetAttribute, (DWORD handle, DWORD attrib, float *value, int *err), (handle, attrib, value))
GOBASS_WRAP(DWORD, ChannelGetAttributeEx, (DWORD handle, DWORD attrib, void *value, DWORD size, int *err), (handle, attrib, value, size))
GOBASS_WRAP(BOOL, ChannelSetAttribute, (DWORD handle, DWORD attrib, float value, int *err), (handle, attrib, value))
GOBASS_WRAP(BOOL, ChannelSetAttributeEx, (DWORD handle, DWORD attrib, void *value, DWORD size, int *err), (handle, attrib, value, size))
GOBASS_WRAP(const char *, ChannelGetTags, (DWORD handle, DWORD tags, int *err), (handle, tags))
GOBASS_WRAP(QWORD, ChannelGetLength, (DWORD handle, DWORD mode, int *err), (handle, mode))
GOBASS_WRAP(HSYNC, ChannelSetSync, (DWORD handle, DWORD type, QWORD param, void *user, int *err), (handle, type, param, syncProc, user))
GOBASS_WRAP(BOOL, ChannelRemoveSync, (DWORD handle, HSYNC sync, int *err), (handle, sync))
GOBASS_WRAP(double, ChannelBytes2Seconds, (DWORD handle, QWORD pos, int *err), (handle, pos))
GOBASS_WRAP(QWORD, ChannelSeconds2Bytes, (DWORD handle, double pos, int *err), (handle, pos))
GOBASS_WRAP(QWORD, ChannelGetPosition, (DWORD handle, DWORD mode, int *err), (handle, mode))
GOBASS_WRAP(BOOL, ChannelSetPosition, (DWORD handle, QWORD pos, DWORD mode, int *err), (handle, pos, mode))
GOBASS_WRAP(BOOL, ChannelSlideAttribute, (DWORD handle, DWORD attrib, float value, DWORD time, int *err), (handle, attrib, value, time))
GOBASS_WRAP(DWORD, ChannelGetLevel, (DWORD handle, int *err), (handle))
GOBASS_WRAP(BOOL, ChannelGetLevelEx, (DWORD handle, float *levels, float length, DWORD flags, int *err), (handle, levels, length, flags))
GOBASS_WRAP(DWORD, ChannelGetData, (DWORD handle, void *buffer, DWORD length, int *err), (handle, buffer, length))
GOBASS_WRAP(BOOL, ChannelUpdate, (DWORD handle, DWORD length, int *err), (handle, length))

GOBASS_WRAP(BOOL, RecordInit, (int device, int *err), (device))
GOBASS_WRAP(BOOL, RecordFree, (int *err), ())
GOBASS_WRAP(HRECORD, RecordStart, (DWORD freq, DWORD chans, DWORD flags, void *user, int *err), (freq, chans, flags, user ? recordProc : NULL, user))
*/
import "C"
import (
	"sync"
	"unsafe"
)

type cgoNative struct {
	// userData maps callback ids to the C memory passed to BASS as user
	// data. Storing the id in C memory avoids unsafe.Pointer(uintptr(id)),
	// which fails checkptr validation under -race.
	mu       sync.Mutex
	userData map[uintptr]unsafe.Pointer
}

func newNative() native {
	return &cgoNative{userData: make(map[uintptr]unsafe.Pointer)}
}

func (n *cgoNative) user(id uintptr) unsafe.Pointer {
	if id == 0 {
		return nil
	}
	p := C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0))))
	*(*C.uintptr_t)(p) = C.uintptr_t(id)

	n.mu.Lock()
	n.userData[id] = p
	n.mu.Unlock()
	return p
}

func (n *cgoNative) releaseUser(id uintptr) {
	n.mu.Lock()
	p, ok := n.userData[id]
	delete(n.userData, id)
	n.mu.Unlock()

	if ok {
		C.free(p)
	}
}

func cbool(b bool) C.BOOL {
	if b {
		return 1
	}
	return 0
}

func (n *cgoNative) errorGetCode() int  { return int(C.BASS_ErrorGetCode()) }
func (n *cgoNative) getVersion() uint32 { return uint32(C.BASS_GetVersion()) }
func (n *cgoNative) getCPU() float32    { return float32(C.BASS_GetCPU()) }

func (n *cgoNative) init(device int, freq uint32, flags uint32) (bool, Errors) {
	var code C.int
	ok := C.go_Init(C.int(device), C.DWORD(freq), C.DWORD(flags), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) free() (bool, Errors) {
	var code C.int
	ok := C.go_Free(&code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) getDeviceInfo(device uint32) (DeviceInfo, bool, Errors) {
	var code C.int
	var di C.BASS_DEVICEINFO
	if C.go_GetDeviceInfo(C.DWORD(device), &di, &code) == 0 {
		return DeviceInfo{}, false, Errors(code)
	}
	return DeviceInfo{
		Name:   C.GoString(di.name),
		Driver: C.GoString(di.driver),
		Flags:  DeviceFlags(di.flags),
	}, true, Errors(code)
}

func (n *cgoNative) setDevice(device uint32) (bool, Errors) {
	var code C.int
	ok := C.go_SetDevice(C.DWORD(device), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) getDevice() (uint32, Errors) {
	var code C.int
	d := C.go_GetDevice(&code)
	return uint32(d), Errors(code)
}

func (n *cgoNative) setConfig(option, value uint32) (bool, Errors) {
	var code C.int
	ok := C.go_SetConfig(C.DWORD(option), C.DWORD(value), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) getConfig(option uint32) (uint32, Errors) {
	var code C.int
	v := C.go_GetConfig(C.DWORD(option), &code)
	return uint32(v), Errors(code)
}

func (n *cgoNative) start() (bool, Errors) {
	var code C.int
	ok := C.go_Start(&code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) stop() (bool, Errors) {
	var code C.int
	ok := C.go_Stop(&code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) pause() (bool, Errors) {
	var code C.int
	ok := C.go_Pause(&code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) setVolume(volume float32) (bool, Errors) {
	var code C.int
	ok := C.go_SetVolume(C.float(volume), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) getVolume() (float32, Errors) {
	var code C.int
	v := C.go_GetVolume(&code)
	return float32(v), Errors(code)
}

func (n *cgoNative) update(length uint32) (bool, Errors) {
	var code C.int
	ok := C.go_Update(C.DWORD(length), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) streamCreateFile(path string, offset, length uint64, flags uint32) (uint32, Errors) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var code C.int
	h := C.go_StreamCreateFile(0, unsafe.Pointer(cpath), C.QWORD(offset), C.QWORD(length), C.DWORD(flags), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) streamCreateFileUser(system, flags uint32, id uintptr) (uint32, Errors) {
	var code C.int
	h := C.go_StreamCreateFileUser(C.DWORD(system), C.DWORD(flags), n.user(id), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) streamCreate(freq, chans, flags uint32, id uintptr) (uint32, Errors) {
	var code C.int
	h := C.go_StreamCreate(C.DWORD(freq), C.DWORD(chans), C.DWORD(flags), n.user(id), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) streamCreatePush(freq, chans, flags uint32) (uint32, Errors) {
	var code C.int
	h := C.go_StreamCreatePush(C.DWORD(freq), C.DWORD(chans), C.DWORD(flags), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) streamPutData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	var code C.int
	r := C.go_StreamPutData(C.HSTREAM(handle), buf, C.DWORD(length), &code)
	return uint32(r), Errors(code)
}

func (n *cgoNative) streamPutFileData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	var code C.int
	r := C.go_StreamPutFileData(C.HSTREAM(handle), buf, C.DWORD(length), &code)
	return uint32(r), Errors(code)
}

func (n *cgoNative) streamFree(handle uint32) (bool, Errors) {
	var code C.int
	ok := C.go_StreamFree(C.HSTREAM(handle), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) streamGetFilePosition(handle, mode uint32) (uint64, Errors) {
	var code C.int
	r := C.go_StreamGetFilePosition(C.HSTREAM(handle), C.DWORD(mode), &code)
	return uint64(r), Errors(code)
}

func (n *cgoNative) channelGetInfo(handle uint32) (ChannelInfo, bool, Errors) {
	var code C.int
	var ci C.BASS_CHANNELINFO
	if C.go_ChannelGetInfo(C.DWORD(handle), &ci, &code) == 0 {
		return ChannelInfo{}, false, Errors(code)
	}

	info := ChannelInfo{
		Frequency:          int(ci.freq),
		Channels:           int(ci.chans),
		Flags:              Flags(ci.flags),
		ChannelType:        ChannelType(ci.ctype),
		OriginalResolution: int(ci.origres),
		Plugin:             uint32(ci.plugin),
		Sample:             uint32(ci.sample),
	}
	if ci.filename != nil && info.Flags&Unicode == 0 {
		info.FileName = C.GoString(ci.filename)
	}
	return info, true, Errors(code)
}

func (n *cgoNative) channelSetDSP(handle uint32, id uintptr, priority int) (uint32, Errors) {
	var code C.int
	h := C.go_ChannelSetDSP(C.DWORD(handle), n.user(id), C.int(priority), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) channelRemoveDSP(handle, dsp uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelRemoveDSP(C.DWORD(handle), C.HDSP(dsp), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelPlay(handle uint32, restart bool) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelPlay(C.DWORD(handle), cbool(restart), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelPause(handle uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelPause(C.DWORD(handle), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelStop(handle uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelStop(C.DWORD(handle), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelLock(handle uint32, lock bool) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelLock(C.DWORD(handle), cbool(lock), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelIsActive(handle uint32) (uint32, Errors) {
	var code C.int
	s := C.go_ChannelIsActive(C.DWORD(handle), &code)
	return uint32(s), Errors(code)
}

func (n *cgoNative) channelSetLink(handle, channel uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelSetLink(C.DWORD(handle), C.DWORD(channel), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelRemoveLink(handle, channel uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelRemoveLink(C.DWORD(handle), C.DWORD(channel), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelFlags(handle, flags, mask uint32) (uint32, Errors) {
	var code C.int
	f := C.go_ChannelFlags(C.DWORD(handle), C.DWORD(flags), C.DWORD(mask), &code)
	return uint32(f), Errors(code)
}

func (n *cgoNative) channelGetAttribute(handle, attrib uint32) (float32, bool, Errors) {
	var code C.int
	var v C.float
	ok := C.go_ChannelGetAttribute(C.DWORD(handle), C.DWORD(attrib), &v, &code)
	return float32(v), ok != 0, Errors(code)
}

func (n *cgoNative) channelGetAttributeEx(handle, attrib uint32, value unsafe.Pointer, size uint32) (uint32, Errors) {
	var code C.int
	r := C.go_ChannelGetAttributeEx(C.DWORD(handle), C.DWORD(attrib), value, C.DWORD(size), &code)
	return uint32(r), Errors(code)
}

func (n *cgoNative) channelSetAttribute(handle, attrib uint32, value float32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelSetAttribute(C.DWORD(handle), C.DWORD(attrib), C.float(value), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelSetAttributeEx(handle, attrib uint32, value unsafe.Pointer, size uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelSetAttributeEx(C.DWORD(handle), C.DWORD(attrib), value, C.DWORD(size), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelGetTags(handle, tags uint32) (unsafe.Pointer, Errors) {
	var code C.int
	p := C.go_ChannelGetTags(C.DWORD(handle), C.DWORD(tags), &code)
	return unsafe.Pointer(p), Errors(code)
}

func (n *cgoNative) channelGetLength(handle, mode uint32) (uint64, Errors) {
	var code C.int
	r := C.go_ChannelGetLength(C.DWORD(handle), C.DWORD(mode), &code)
	return uint64(r), Errors(code)
}

func (n *cgoNative) channelSetSync(handle, typ uint32, param uint64, id uintptr) (uint32, Errors) {
	var code C.int
	h := C.go_ChannelSetSync(C.DWORD(handle), C.DWORD(typ), C.QWORD(param), n.user(id), &code)
	return uint32(h), Errors(code)
}

func (n *cgoNative) channelRemoveSync(handle, sync uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelRemoveSync(C.DWORD(handle), C.HSYNC(sync), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelBytes2Seconds(handle uint32, pos uint64) (float64, Errors) {
	var code C.int
	r := C.go_ChannelBytes2Seconds(C.DWORD(handle), C.QWORD(pos), &code)
	return float64(r), Errors(code)
}

func (n *cgoNative) channelSeconds2Bytes(handle uint32, pos float64) (uint64, Errors) {
	var code C.int
	r := C.go_ChannelSeconds2Bytes(C.DWORD(handle), C.double(pos), &code)
	return uint64(r), Errors(code)
}

func (n *cgoNative) channelGetPosition(handle, mode uint32) (uint64, Errors) {
	var code C.int
	r := C.go_ChannelGetPosition(C.DWORD(handle), C.DWORD(mode), &code)
	return uint64(r), Errors(code)
}

func (n *cgoNative) channelSetPosition(handle uint32, pos uint64, mode uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelSetPosition(C.DWORD(handle), C.QWORD(pos), C.DWORD(mode), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelIsSliding(handle, attrib uint32) bool {
	return C.BASS_ChannelIsSliding(C.DWORD(handle), C.DWORD(attrib)) != 0
}

func (n *cgoNative) channelSlideAttribute(handle, attrib uint32, value float32, time uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelSlideAttribute(C.DWORD(handle), C.DWORD(attrib), C.float(value), C.DWORD(time), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelGetLevel(handle uint32) (uint32, Errors) {
	var code C.int
	r := C.go_ChannelGetLevel(C.DWORD(handle), &code)
	return uint32(r), Errors(code)
}

func (n *cgoNative) channelGetLevelEx(handle uint32, levels []float32, length float32, flags uint32) (bool, Errors) {
	if len(levels) == 0 {
		return false, ErrorParameter
	}
	var code C.int
	ok := C.go_ChannelGetLevelEx(C.DWORD(handle), (*C.float)(unsafe.Pointer(&levels[0])), C.float(length), C.DWORD(flags), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) channelGetData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	var code C.int
	r := C.go_ChannelGetData(C.DWORD(handle), buf, C.DWORD(length), &code)
	return uint32(r), Errors(code)
}

func (n *cgoNative) channelUpdate(handle, length uint32) (bool, Errors) {
	var code C.int
	ok := C.go_ChannelUpdate(C.DWORD(handle), C.DWORD(length), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) recordInit(device int) (bool, Errors) {
	var code C.int
	ok := C.go_RecordInit(C.int(device), &code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) recordFree() (bool, Errors) {
	var code C.int
	ok := C.go_RecordFree(&code)
	return ok != 0, Errors(code)
}

func (n *cgoNative) recordStart(freq, chans, flags uint32, id uintptr) (uint32, Errors) {
	var code C.int
	h := C.go_RecordStart(C.DWORD(freq), C.DWORD(chans), C.DWORD(flags), n.user(id), &code)
	return uint32(h), Errors(code)
}

// byteSlice views C memory handed to a callback as a Go slice.
func byteSlice(buffer unsafe.Pointer, length C.DWORD) []byte {
	if buffer == nil || length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(buffer), int(length))
}

//export goFileClose
func goFileClose(id C.uintptr_t) {
	dispatchFileClose(uintptr(id))
}

//export goFileLength
func goFileLength(id C.uintptr_t) C.QWORD {
	return C.QWORD(dispatchFileLength(uintptr(id)))
}

//export goFileRead
func goFileRead(buffer unsafe.Pointer, length C.DWORD, id C.uintptr_t) C.DWORD {
	return C.DWORD(dispatchFileRead(uintptr(id), byteSlice(buffer, length)))
}

//export goFileSeek
func goFileSeek(offset C.QWORD, id C.uintptr_t) C.BOOL {
	return cbool(dispatchFileSeek(uintptr(id), uint64(offset)))
}

//export goDSP
func goDSP(handle C.HDSP, channel C.DWORD, buffer unsafe.Pointer, length C.DWORD, id C.uintptr_t) {
	dispatchDSP(uintptr(id), uint32(handle), uint32(channel), byteSlice(buffer, length))
}

//export goSync
func goSync(handle C.HSYNC, channel C.DWORD, data C.DWORD, id C.uintptr_t) {
	dispatchSync(uintptr(id), uint32(handle), uint32(channel), uint32(data))
}

//export goStream
func goStream(handle C.HSTREAM, buffer unsafe.Pointer, length C.DWORD, id C.uintptr_t) C.DWORD {
	return C.DWORD(dispatchStream(uintptr(id), uint32(handle), byteSlice(buffer, length)))
}

//export goRecord
func goRecord(handle C.HRECORD, buffer unsafe.Pointer, length C.DWORD, id C.uintptr_t) C.BOOL {
	return cbool(dispatchRecord(uintptr(id), uint32(handle), byteSlice(buffer, length)))
}
