package bass

import "errors"

// RecordInit initializes a recording device. device is a device number or
// DefaultRecordDevice.
func RecordInit(device int) error {
	if ok, code := lib.recordInit(device); !ok {
		return newError("RecordInit", code)
	}
	return nil
}

// RecordFree frees all resources used by the recording device.
func RecordFree() error {
	if ok, code := lib.recordFree(); !ok {
		return newError("RecordFree", code)
	}
	return nil
}

// RecordStart starts recording. proc receives the recorded data; with a nil
// proc the data is fetched with ChannelGetData instead. Pass SampleFloat
// in flags for float samples, and RecordPause to create the channel paused.
func RecordStart(freq, chans uint32, flags Flags, proc RecordProc) (Channel, error) {
	if freq == 0 || chans == 0 {
		return 0, errors.New("bass: freq and chans must be positive")
	}

	var id uintptr
	if proc != nil {
		id = registerCallback(&callbackEntry{kind: kindRecord, record: proc})
	}

	h, code := lib.recordStart(freq, chans, uint32(flags), id)
	if h == 0 {
		if id != 0 {
			unregisterCallback(id)
		}
		return 0, newError("RecordStart", code)
	}

	if id != 0 {
		setCallbackChannel(id, h)
		watchChannelFree(h)
	}
	return Channel(h), nil
}

// RecordPause is the BASS_RECORD_PAUSE flag for RecordStart.
const RecordPause Flags = 0x8000
