package bass

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DSPProc processes the sample data of a channel in place. buffer holds
// the channel's data in its native format (float when ConfigFloatDSP is
// enabled or the channel is SampleFloat).
//
// IMPORTANT: DSP functions run on the BASS mixing thread. Keep them short and
// avoid blocking, allocation and I/O.
type DSPProc func(handle DSP, channel Channel, buffer []byte)

// SyncProc is called when the event a sync was set for occurs. The meaning
// of data depends on the sync type.
type SyncProc func(handle Sync, channel Channel, data uint32)

// StreamProc supplies sample data for a stream created with StreamCreate.
// It returns the number of bytes written to buffer, and end=true once the
// stream has ended.
type StreamProc func(handle Channel, buffer []byte) (n int, end bool)

// RecordProc receives recorded sample data. Returning false stops the
// recording.
type RecordProc func(handle Channel, buffer []byte) bool

type callbackKind int

const (
	kindFile callbackKind = iota
	kindDSP
	kindSync
	kindStream
	kindRecord
	kindFreeWatch
)

// callbackEntry holds a Go callback registered with BASS.
type callbackEntry struct {
	kind    callbackKind
	channel uint32 // owning channel, 0 until known
	handle  uint32 // DSP or sync handle returned by BASS

	file     FileProcedures
	dsp      DSPProc
	sync     SyncProc
	syncType SyncFlags
	stream   StreamProc
	record   RecordProc
}

// Callback registry mapping the ids handed to BASS as user data to Go
// callbacks. Integer ids keep Go pointers out of C memory.
var (
	callbackRegistry   = make(map[uintptr]*callbackEntry)
	callbackRegistryMu sync.RWMutex
	nextCallbackID     uintptr = 1

	// freeWatches maps a channel to the id of its internal SyncFree sync
	freeWatches = make(map[uint32]uintptr)
)

// logOutput receives reports of panics recovered in callbacks.
var logOutput io.Writer = os.Stderr

func registerCallback(e *callbackEntry) uintptr {
	callbackRegistryMu.Lock()
	defer callbackRegistryMu.Unlock()

	id := nextCallbackID
	nextCallbackID++
	callbackRegistry[id] = e
	return id
}

func getCallback(id uintptr) (*callbackEntry, bool) {
	callbackRegistryMu.RLock()
	defer callbackRegistryMu.RUnlock()
	e, ok := callbackRegistry[id]
	return e, ok
}

// setCallbackChannel records the channel an entry belongs to once BASS has
// returned its handle.
func setCallbackChannel(id uintptr, channel uint32) {
	callbackRegistryMu.Lock()
	defer callbackRegistryMu.Unlock()
	if e, ok := callbackRegistry[id]; ok {
		e.channel = channel
	}
}

// setCallbackHandle records the DSP or sync handle BASS returned for an
// entry.
func setCallbackHandle(id uintptr, handle uint32) {
	callbackRegistryMu.Lock()
	defer callbackRegistryMu.Unlock()
	if e, ok := callbackRegistry[id]; ok {
		e.handle = handle
	}
}

// unregisterHandle removes the entry of a DSP or sync by its handle.
func unregisterHandle(kind callbackKind, channel, handle uint32) {
	callbackRegistryMu.RLock()
	var found uintptr
	for id, e := range callbackRegistry {
		if e.kind == kind && e.channel == channel && e.handle == handle {
			found = id
			break
		}
	}
	callbackRegistryMu.RUnlock()

	if found != 0 {
		unregisterCallback(found)
	}
}

// unregisterCallback removes an entry and frees its C user data. It is a
// no-op for unknown ids.
func unregisterCallback(id uintptr) {
	callbackRegistryMu.Lock()
	e, ok := callbackRegistry[id]
	if ok {
		delete(callbackRegistry, id)
		if e.kind == kindFreeWatch && freeWatches[e.channel] == id {
			delete(freeWatches, e.channel)
		}
	}
	callbackRegistryMu.Unlock()

	if ok {
		lib.releaseUser(id)
	}
}

// releaseChannel drops every callback that belongs to channel.
func releaseChannel(channel uint32) {
	callbackRegistryMu.RLock()
	var ids []uintptr
	for id, e := range callbackRegistry {
		if e.channel == channel && e.kind != kindFile {
			ids = append(ids, id)
		}
	}
	callbackRegistryMu.RUnlock()

	for _, id := range ids {
		unregisterCallback(id)
	}
}

// callbackCount returns the number of registered callbacks.
func callbackCount() int {
	callbackRegistryMu.RLock()
	defer callbackRegistryMu.RUnlock()
	return len(callbackRegistry)
}

// watchChannelFree makes sure the callbacks of channel are released when
// BASS frees it.
func watchChannelFree(channel uint32) {
	callbackRegistryMu.Lock()
	if _, ok := freeWatches[channel]; ok {
		callbackRegistryMu.Unlock()
		return
	}
	id := nextCallbackID
	nextCallbackID++
	callbackRegistry[id] = &callbackEntry{kind: kindFreeWatch, channel: channel}
	freeWatches[channel] = id
	callbackRegistryMu.Unlock()

	h, code := lib.channelSetSync(channel, uint32(SyncFree|SyncMixtime), 0, id)
	if h == 0 {
		unregisterCallback(id)
		fmt.Fprintf(logOutput, "bass: cannot watch channel %d for free, callbacks stay registered: %v\n", channel, code)
	}
}

func recoverCallback(what string, id uintptr) {
	if r := recover(); r != nil {
		fmt.Fprintf(logOutput, "PANIC in %s callback (id %d): %v\n", what, id, r)
	}
}

func dispatchFileClose(id uintptr) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindFile {
		return
	}
	defer unregisterCallback(id)
	defer recoverCallback("file close", id)

	e.file.Close()
}

func dispatchFileLength(id uintptr) (length uint64) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindFile {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logOutput, "PANIC in file length callback (id %d): %v\n", id, r)
			length = 0
		}
	}()

	return e.file.Length()
}

func dispatchFileRead(id uintptr, buf []byte) (n uint32) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindFile {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logOutput, "PANIC in file read callback (id %d): %v\n", id, r)
			n = 0
		}
	}()

	read := e.file.Read(buf)
	if read <= 0 {
		return 0
	}
	if read > len(buf) {
		read = len(buf)
	}
	return uint32(read)
}

func dispatchFileSeek(id uintptr, offset uint64) (ok bool) {
	e, found := getCallback(id)
	if !found || e.kind != kindFile {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logOutput, "PANIC in file seek callback (id %d): %v\n", id, r)
			ok = false
		}
	}()

	return e.file.Seek(offset)
}

func dispatchDSP(id uintptr, handle, channel uint32, buf []byte) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindDSP {
		return
	}
	defer recoverCallback("DSP", id)

	e.dsp(DSP(handle), Channel(channel), buf)
}

func dispatchSync(id uintptr, handle, channel, data uint32) {
	e, ok := getCallback(id)
	if !ok {
		return
	}

	switch e.kind {
	case kindFreeWatch:
		releaseChannel(channel)
	case kindSync:
		func() {
			defer recoverCallback("sync", id)
			e.sync(Sync(handle), Channel(channel), data)
		}()
		if e.syncType&SyncOnetime != 0 {
			unregisterCallback(id)
		}
	}
}

// streamProcEnd is or'ed into a STREAMPROC result to end the stream.
const streamProcEnd = 0x80000000

func dispatchStream(id uintptr, handle uint32, buf []byte) (result uint32) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindStream {
		return streamProcEnd
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logOutput, "PANIC in stream callback (id %d): %v\n", id, r)
			result = streamProcEnd
		}
	}()

	n, end := e.stream(Channel(handle), buf)
	if n < 0 {
		n = 0
	}
	if n > len(buf) {
		n = len(buf)
	}
	result = uint32(n)
	if end {
		result |= streamProcEnd
	}
	return result
}

func dispatchRecord(id uintptr, handle uint32, buf []byte) (cont bool) {
	e, ok := getCallback(id)
	if !ok || e.kind != kindRecord {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(logOutput, "PANIC in record callback (id %d): %v\n", id, r)
			cont = false
		}
	}()

	return e.record(Channel(handle), buf)
}
