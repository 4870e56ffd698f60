package bass

import (
	"bytes"
	"testing"
	"unsafe"
)

// fakeNative stands in for libbass. Methods not overridden here panic
// through the nil embedded interface, so a test touching an unexpected
// entry point fails loudly.
type fakeNative struct {
	native

	fail bool   // every call returns its failure value
	code Errors // code reported with failures

	version    uint32
	initCalls  int
	freeCalls  int
	devices    []DeviceInfo
	nextHandle uint32

	syncs    map[uint32]fakeSync // sync handle -> registration
	dsps     map[uint32]uintptr  // DSP handle -> id
	streams  map[uint32]uintptr  // stream handle -> proc id
	files    map[uint32]uintptr  // stream handle -> file id
	released []uintptr

	// closeOnFail makes a failing streamCreateFileUser close the file
	// procedures the way BASS does.
	closeOnFail bool
	// failSync and failUnlock fail only channelSetSync and unlocking.
	failSync   bool
	failUnlock bool

	info      ChannelInfo
	attribs   map[uint32]float32
	flags     uint32
	state     uint32
	slides    []fakeSlide
	level     uint32
	levels    []float32
	lastLevel fakeLevelCall
	data      []byte
	lastData  uint32
	bytesPerS float64
	position  uint64
	length    uint64
	locks     []bool
	tags      []byte
	pushed    []uint32
	fileData  []fakeFilePut
}

type fakeFilePut struct {
	nilBuf bool
	length uint32
}

type fakeSync struct {
	channel uint32
	typ     uint32
	id      uintptr
}

type fakeSlide struct {
	attrib uint32
	value  float32
	time   uint32
}

type fakeLevelCall struct {
	n      int
	length float32
	flags  uint32
}

func newFake() *fakeNative {
	return &fakeNative{
		code:       ErrorHandle,
		version:    0x02041100,
		nextHandle: 100,
		syncs:      make(map[uint32]fakeSync),
		dsps:       make(map[uint32]uintptr),
		streams:    make(map[uint32]uintptr),
		files:      make(map[uint32]uintptr),
		attribs:    make(map[uint32]float32),
		bytesPerS:  176400,
	}
}

// useFake installs f as the native layer for the duration of the test and
// resets package state around it. It returns the buffer receiving callback
// panic reports.
func useFake(t *testing.T, f *fakeNative) *bytes.Buffer {
	t.Helper()
	old := lib
	lib = f
	resetState()

	var logs bytes.Buffer
	oldLog := logOutput
	logOutput = &logs

	t.Cleanup(func() {
		lib = old
		logOutput = oldLog
		resetState()
	})
	return &logs
}

func resetState() {
	initMu.Lock()
	initialized = 0
	initMu.Unlock()

	callbackRegistryMu.Lock()
	callbackRegistry = make(map[uintptr]*callbackEntry)
	freeWatches = make(map[uint32]uintptr)
	nextCallbackID = 1
	callbackRegistryMu.Unlock()
}

func (f *fakeNative) result() Errors {
	if f.fail {
		return f.code
	}
	return ErrorOK
}

func (f *fakeNative) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

// freeChannel fires the SyncFree syncs of channel, as BASS does when the
// channel is freed.
func (f *fakeNative) freeChannel(channel uint32) {
	for h, s := range f.syncs {
		if s.channel == channel && SyncFlags(s.typ)&SyncFree != 0 {
			delete(f.syncs, h)
			dispatchSync(s.id, h, channel, 0)
		}
	}
}

// syncID returns the id registered for a user sync of the given type.
func (f *fakeNative) syncID(channel uint32, typ SyncFlags) (uint32, uintptr) {
	for h, s := range f.syncs {
		if s.channel == channel && s.typ == uint32(typ) {
			return h, s.id
		}
	}
	return 0, 0
}

func (f *fakeNative) errorGetCode() int  { return int(f.result()) }
func (f *fakeNative) getVersion() uint32 { return f.version }

func (f *fakeNative) init(int, uint32, uint32) (bool, Errors) {
	f.initCalls++
	return !f.fail, f.result()
}

func (f *fakeNative) free() (bool, Errors) {
	f.freeCalls++
	return !f.fail, f.result()
}

func (f *fakeNative) getDeviceInfo(device uint32) (DeviceInfo, bool, Errors) {
	if f.fail {
		return DeviceInfo{}, false, f.code
	}
	if int(device) >= len(f.devices) {
		return DeviceInfo{}, false, ErrorDevice
	}
	return f.devices[device], true, ErrorOK
}

func (f *fakeNative) getVolume() (float32, Errors) {
	if f.fail {
		return -1, f.code
	}
	return 0.5, ErrorOK
}

func (f *fakeNative) streamCreate(freq, chans, flags uint32, id uintptr) (uint32, Errors) {
	if f.fail {
		return 0, f.code
	}
	h := f.handle()
	f.streams[h] = id
	return h, ErrorOK
}

func (f *fakeNative) streamCreateFileUser(system, flags uint32, id uintptr) (uint32, Errors) {
	if f.fail {
		if f.closeOnFail {
			dispatchFileClose(id)
		}
		return 0, f.code
	}
	h := f.handle()
	f.files[h] = id
	return h, ErrorOK
}

func (f *fakeNative) streamPutData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	if f.fail {
		return invalidDWORD, f.code
	}
	f.pushed = append(f.pushed, length)
	return length, ErrorOK
}

func (f *fakeNative) streamPutFileData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	if f.fail {
		return invalidDWORD, f.code
	}
	f.fileData = append(f.fileData, fakeFilePut{nilBuf: buf == nil, length: length})
	return length, ErrorOK
}

func (f *fakeNative) streamFree(handle uint32) (bool, Errors) {
	if f.fail {
		return false, f.code
	}
	if id, ok := f.files[handle]; ok {
		delete(f.files, handle)
		dispatchFileClose(id)
	}
	f.freeChannel(handle)
	return true, ErrorOK
}

func (f *fakeNative) recordStart(freq, chans, flags uint32, id uintptr) (uint32, Errors) {
	if f.fail {
		return 0, f.code
	}
	h := f.handle()
	f.streams[h] = id
	return h, ErrorOK
}

func (f *fakeNative) releaseUser(id uintptr) {
	f.released = append(f.released, id)
}

func (f *fakeNative) channelGetInfo(uint32) (ChannelInfo, bool, Errors) {
	if f.fail {
		return ChannelInfo{}, false, f.code
	}
	return f.info, true, ErrorOK
}

func (f *fakeNative) channelSetDSP(handle uint32, id uintptr, priority int) (uint32, Errors) {
	if f.fail {
		return 0, f.code
	}
	h := f.handle()
	f.dsps[h] = id
	return h, ErrorOK
}

func (f *fakeNative) channelRemoveDSP(handle, dsp uint32) (bool, Errors) {
	if _, ok := f.dsps[dsp]; !ok {
		return false, ErrorHandle
	}
	delete(f.dsps, dsp)
	return true, ErrorOK
}

func (f *fakeNative) channelPlay(uint32, bool) (bool, Errors) { return !f.fail, f.result() }
func (f *fakeNative) channelPause(uint32) (bool, Errors)      { return !f.fail, f.result() }
func (f *fakeNative) channelStop(uint32) (bool, Errors)       { return !f.fail, f.result() }

func (f *fakeNative) channelLock(handle uint32, lock bool) (bool, Errors) {
	if f.fail || (f.failUnlock && !lock) {
		return false, f.code
	}
	f.locks = append(f.locks, lock)
	return true, ErrorOK
}

func (f *fakeNative) channelIsActive(uint32) (uint32, Errors) {
	if f.fail {
		return 0, f.code
	}
	return f.state, ErrorOK
}

func (f *fakeNative) channelFlags(handle, flags, mask uint32) (uint32, Errors) {
	if f.fail {
		return invalidDWORD, f.code
	}
	f.flags = f.flags&^mask | flags&mask
	return f.flags, ErrorOK
}

func (f *fakeNative) channelGetAttribute(handle, attrib uint32) (float32, bool, Errors) {
	if f.fail {
		return 0, false, f.code
	}
	return f.attribs[attrib], true, ErrorOK
}

func (f *fakeNative) channelSetAttribute(handle, attrib uint32, value float32) (bool, Errors) {
	if f.fail {
		return false, f.code
	}
	f.attribs[attrib] = value
	return true, ErrorOK
}

func (f *fakeNative) channelGetTags(handle, tags uint32) (unsafe.Pointer, Errors) {
	if f.fail || len(f.tags) == 0 {
		return nil, ErrorNotAvailable
	}
	return unsafe.Pointer(&f.tags[0]), ErrorOK
}

func (f *fakeNative) channelGetLength(handle, mode uint32) (uint64, Errors) {
	if f.fail {
		return invalidQWORD, f.code
	}
	return f.length, ErrorOK
}

func (f *fakeNative) channelSetSync(handle, typ uint32, param uint64, id uintptr) (uint32, Errors) {
	if f.fail || f.failSync {
		return 0, f.code
	}
	h := f.handle()
	f.syncs[h] = fakeSync{channel: handle, typ: typ, id: id}
	return h, ErrorOK
}

func (f *fakeNative) channelRemoveSync(handle, sync uint32) (bool, Errors) {
	if _, ok := f.syncs[sync]; !ok {
		return false, ErrorHandle
	}
	delete(f.syncs, sync)
	return true, ErrorOK
}

func (f *fakeNative) channelBytes2Seconds(handle uint32, pos uint64) (float64, Errors) {
	if f.fail {
		return -1, f.code
	}
	return float64(pos) / f.bytesPerS, ErrorOK
}

func (f *fakeNative) channelSeconds2Bytes(handle uint32, pos float64) (uint64, Errors) {
	if f.fail {
		return invalidQWORD, f.code
	}
	return uint64(pos * f.bytesPerS), ErrorOK
}

func (f *fakeNative) channelGetPosition(handle, mode uint32) (uint64, Errors) {
	if f.fail {
		return invalidQWORD, f.code
	}
	return f.position, ErrorOK
}

func (f *fakeNative) channelSetPosition(handle uint32, pos uint64, mode uint32) (bool, Errors) {
	if f.fail {
		return false, f.code
	}
	f.position = pos
	return true, ErrorOK
}

func (f *fakeNative) channelIsSliding(handle, attrib uint32) bool {
	for _, s := range f.slides {
		if attrib == 0 || s.attrib == attrib {
			return true
		}
	}
	return false
}

func (f *fakeNative) channelSlideAttribute(handle, attrib uint32, value float32, time uint32) (bool, Errors) {
	if f.fail {
		return false, f.code
	}
	f.slides = append(f.slides, fakeSlide{attrib: attrib, value: value, time: time})
	return true, ErrorOK
}

func (f *fakeNative) channelGetLevel(uint32) (uint32, Errors) {
	if f.fail {
		return invalidDWORD, f.code
	}
	return f.level, ErrorOK
}

func (f *fakeNative) channelGetLevelEx(handle uint32, levels []float32, length float32, flags uint32) (bool, Errors) {
	if f.fail {
		return false, f.code
	}
	f.lastLevel = fakeLevelCall{n: len(levels), length: length, flags: flags}
	copy(levels, f.levels)
	return true, ErrorOK
}

func (f *fakeNative) channelGetData(handle uint32, buf unsafe.Pointer, length uint32) (uint32, Errors) {
	if f.fail {
		return invalidDWORD, f.code
	}
	f.lastData = length
	if buf == nil {
		return uint32(len(f.data)), ErrorOK
	}
	n := length & maxDataLength
	if n > uint32(len(f.data)) {
		n = uint32(len(f.data))
	}
	copy(unsafe.Slice((*byte)(buf), n), f.data)
	return n, ErrorOK
}
