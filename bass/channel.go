package bass

import (
	"errors"
	"math"
	"time"
)

// ChannelGetInfo retrieves information on a channel.
func ChannelGetInfo(handle Channel) (*ChannelInfo, error) {
	info, ok, code := lib.channelGetInfo(uint32(handle))
	if !ok {
		return nil, newError("ChannelGetInfo", code)
	}
	return &info, nil
}

// ChannelSetDSP sets up a DSP function on a channel. DSP functions with a
// higher priority are called before those with a lower priority.
//
// The DSP stays registered until it is removed with ChannelRemoveDSP or the
// channel is freed.
func ChannelSetDSP(handle Channel, proc DSPProc, priority int) (DSP, error) {
	if proc == nil {
		return 0, errors.New("bass: DSP procedure cannot be nil")
	}

	id := registerCallback(&callbackEntry{kind: kindDSP, channel: uint32(handle), dsp: proc})
	h, code := lib.channelSetDSP(uint32(handle), id, priority)
	if h == 0 {
		unregisterCallback(id)
		return 0, newError("ChannelSetDSP", code)
	}
	setCallbackHandle(id, h)
	watchChannelFree(uint32(handle))
	return DSP(h), nil
}

// ChannelRemoveDSP removes a DSP function from a channel.
func ChannelRemoveDSP(handle Channel, dsp DSP) error {
	ok, code := lib.channelRemoveDSP(uint32(handle), uint32(dsp))
	if !ok {
		return newError("ChannelRemoveDSP", code)
	}
	unregisterHandle(kindDSP, uint32(handle), uint32(dsp))
	return nil
}

// ChannelPlay starts (or resumes) playback of a channel. If restart is
// true, playback restarts from the beginning.
func ChannelPlay(handle Channel, restart bool) error {
	if ok, code := lib.channelPlay(uint32(handle), restart); !ok {
		return newError("ChannelPlay", code)
	}
	return nil
}

// ChannelPause pauses a channel.
func ChannelPause(handle Channel) error {
	if ok, code := lib.channelPause(uint32(handle)); !ok {
		return newError("ChannelPause", code)
	}
	return nil
}

// ChannelStop stops a channel. Stopping a user stream clears its buffer.
func ChannelStop(handle Channel) error {
	if ok, code := lib.channelStop(uint32(handle)); !ok {
		return newError("ChannelStop", code)
	}
	return nil
}

// ChannelIsActive checks whether a channel is playing, stalled or paused.
// For decoding channels Playing is returned while there is data left to
// decode. An invalid handle yields Stopped and an error.
func ChannelIsActive(handle Channel) (PlaybackState, error) {
	state, code := lib.channelIsActive(uint32(handle))
	if state == uint32(Stopped) && code != ErrorOK {
		return Stopped, newError("ChannelIsActive", code)
	}
	return PlaybackState(state), nil
}

// ChannelSetLink links two channels, so that actions applied to handle
// (play, stop, pause, position changes) are also applied to channel.
func ChannelSetLink(handle, channel Channel) error {
	if ok, code := lib.channelSetLink(uint32(handle), uint32(channel)); !ok {
		return newError("ChannelSetLink", code)
	}
	return nil
}

// ChannelRemoveLink removes a link between two channels.
func ChannelRemoveLink(handle, channel Channel) error {
	if ok, code := lib.channelRemoveLink(uint32(handle), uint32(channel)); !ok {
		return newError("ChannelRemoveLink", code)
	}
	return nil
}

// ChannelFlags modifies the flags selected by mask and returns the updated
// flags. A zero mask only reads the current flags.
func ChannelFlags(handle Channel, flags, mask Flags) (Flags, error) {
	f, code := lib.channelFlags(uint32(handle), uint32(flags), uint32(mask))
	if f == invalidDWORD {
		return 0, newError("ChannelFlags", code)
	}
	return Flags(f), nil
}

// ChannelHasFlag reports whether flag is set on the channel.
func ChannelHasFlag(handle Channel, flag Flags) (bool, error) {
	f, err := ChannelFlags(handle, 0, 0)
	if err != nil {
		return false, err
	}
	return f.Has(flag), nil
}

// ChannelAddFlag sets flag on the channel and reports whether it took
// effect.
func ChannelAddFlag(handle Channel, flag Flags) (bool, error) {
	f, err := ChannelFlags(handle, flag, flag)
	if err != nil {
		return false, err
	}
	return f.Has(flag), nil
}

// ChannelRemoveFlag clears flag on the channel and reports whether it took
// effect.
func ChannelRemoveFlag(handle Channel, flag Flags) (bool, error) {
	f, err := ChannelFlags(handle, 0, flag)
	if err != nil {
		return false, err
	}
	return !f.Has(flag), nil
}

// ChannelGetAttribute retrieves the value of a channel attribute.
func ChannelGetAttribute(handle Channel, attrib ChannelAttribute) (float64, error) {
	v, ok, code := lib.channelGetAttribute(uint32(handle), uint32(attrib))
	if !ok {
		return 0, newError("ChannelGetAttribute", code)
	}
	return float64(v), nil
}

// ChannelGetAttributeOrZero returns the attribute value, or 0 if it could
// not be retrieved.
func ChannelGetAttributeOrZero(handle Channel, attrib ChannelAttribute) float64 {
	v, _, _ := lib.channelGetAttribute(uint32(handle), uint32(attrib))
	return float64(v)
}

// ChannelGetAttributeEx retrieves the value of a variable-size attribute
// into value and returns the attribute's size in bytes. Pass a nil value
// to query the size.
func ChannelGetAttributeEx(handle Channel, attrib ChannelAttribute, value []byte) (int, error) {
	n, code := lib.channelGetAttributeEx(uint32(handle), uint32(attrib), bytesPtr(value), uint32(len(value)))
	if n == 0 {
		return 0, newError("ChannelGetAttributeEx", code)
	}
	return int(n), nil
}

// ChannelSetAttribute sets the value of a channel attribute. The value is
// stored by BASS as a 32-bit float.
func ChannelSetAttribute(handle Channel, attrib ChannelAttribute, value float64) error {
	if ok, code := lib.channelSetAttribute(uint32(handle), uint32(attrib), float32(value)); !ok {
		return newError("ChannelSetAttribute", code)
	}
	return nil
}

// ChannelSetAttributeEx sets the value of a variable-size attribute.
func ChannelSetAttributeEx(handle Channel, attrib ChannelAttribute, value []byte) error {
	if ok, code := lib.channelSetAttributeEx(uint32(handle), uint32(attrib), bytesPtr(value), uint32(len(value))); !ok {
		return newError("ChannelSetAttributeEx", code)
	}
	return nil
}

// ChannelGetLength returns the playback length of a channel in the unit
// given by mode.
func ChannelGetLength(handle Channel, mode PositionFlags) (uint64, error) {
	n, code := lib.channelGetLength(uint32(handle), uint32(mode))
	if n == invalidQWORD {
		return 0, newError("ChannelGetLength", code)
	}
	return n, nil
}

// ChannelGetDuration returns the playback length of a channel as a
// duration.
func ChannelGetDuration(handle Channel) (time.Duration, error) {
	n, err := ChannelGetLength(handle, PositionBytes)
	if err != nil {
		return 0, err
	}
	secs, err := ChannelBytes2Seconds(handle, n)
	if err != nil {
		return 0, err
	}
	return secondsToDuration(secs), nil
}

// ChannelSetSync sets up a sync on a channel. param depends on typ, e.g.
// the byte position for SyncPosition.
//
// Syncs with SyncOnetime are released after they fire; all others stay
// registered until ChannelRemoveSync or until the channel is freed.
func ChannelSetSync(handle Channel, typ SyncFlags, param uint64, proc SyncProc) (Sync, error) {
	if proc == nil {
		return 0, errors.New("bass: sync procedure cannot be nil")
	}

	id := registerCallback(&callbackEntry{kind: kindSync, channel: uint32(handle), sync: proc, syncType: typ})
	h, code := lib.channelSetSync(uint32(handle), uint32(typ), param, id)
	if h == 0 {
		unregisterCallback(id)
		return 0, newError("ChannelSetSync", code)
	}
	setCallbackHandle(id, h)
	watchChannelFree(uint32(handle))
	return Sync(h), nil
}

// ChannelRemoveSync removes a sync from a channel.
func ChannelRemoveSync(handle Channel, sync Sync) error {
	ok, code := lib.channelRemoveSync(uint32(handle), uint32(sync))
	if !ok {
		return newError("ChannelRemoveSync", code)
	}
	unregisterHandle(kindSync, uint32(handle), uint32(sync))
	return nil
}

// ChannelBytes2Seconds translates a byte position into seconds.
func ChannelBytes2Seconds(handle Channel, pos uint64) (float64, error) {
	secs, code := lib.channelBytes2Seconds(uint32(handle), pos)
	if secs < 0 {
		return 0, newError("ChannelBytes2Seconds", code)
	}
	return secs, nil
}

// ChannelSeconds2Bytes translates a position in seconds into bytes.
func ChannelSeconds2Bytes(handle Channel, secs float64) (uint64, error) {
	n, code := lib.channelSeconds2Bytes(uint32(handle), secs)
	if n == invalidQWORD {
		return 0, newError("ChannelSeconds2Bytes", code)
	}
	return n, nil
}

// ChannelGetPosition returns the playback position of a channel in the
// unit given by mode.
func ChannelGetPosition(handle Channel, mode PositionFlags) (uint64, error) {
	pos, code := lib.channelGetPosition(uint32(handle), uint32(mode))
	if pos == invalidQWORD {
		return 0, newError("ChannelGetPosition", code)
	}
	return pos, nil
}

// ChannelSetPosition sets the playback position of a channel.
func ChannelSetPosition(handle Channel, pos uint64, mode PositionFlags) error {
	if ok, code := lib.channelSetPosition(uint32(handle), pos, uint32(mode)); !ok {
		return newError("ChannelSetPosition", code)
	}
	return nil
}

// ChannelGetElapsed returns the playback position as a duration.
func ChannelGetElapsed(handle Channel) (time.Duration, error) {
	pos, err := ChannelGetPosition(handle, PositionBytes)
	if err != nil {
		return 0, err
	}
	secs, err := ChannelBytes2Seconds(handle, pos)
	if err != nil {
		return 0, err
	}
	return secondsToDuration(secs), nil
}

// ChannelSeek sets the playback position to d from the start.
func ChannelSeek(handle Channel, d time.Duration) error {
	pos, err := ChannelSeconds2Bytes(handle, d.Seconds())
	if err != nil {
		return err
	}
	return ChannelSetPosition(handle, pos, PositionBytes)
}

// ChannelIsSliding reports whether attrib (or any attribute, if 0) is
// sliding.
func ChannelIsSliding(handle Channel, attrib ChannelAttribute) bool {
	return lib.channelIsSliding(uint32(handle), uint32(attrib))
}

// IsSlidableAttribute reports whether attrib can be used with
// ChannelSlideAttribute.
func IsSlidableAttribute(attrib ChannelAttribute) bool {
	switch attrib {
	case AttribEAXMix,
		AttribFrequency,
		AttribPan,
		AttribVolume,
		AttribMusicAmplify,
		AttribMusicBPM,
		AttribMusicPanSeparation,
		AttribMusicPositionScaler,
		AttribMusicSpeed,
		AttribMusicVolumeChannel,
		AttribMusicVolumeGlobal,
		AttribMusicVolumeInstrument:
		return true
	default:
		return false
	}
}

// ChannelSlideAttribute slides an attribute from its current value to value
// over the given duration (millisecond resolution). A slide already in
// progress on the attribute is replaced.
func ChannelSlideAttribute(handle Channel, attrib ChannelAttribute, value float64, d time.Duration) error {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	if ms > math.MaxUint32 {
		ms = math.MaxUint32
	}
	if ok, code := lib.channelSlideAttribute(uint32(handle), uint32(attrib), float32(value), uint32(ms)); !ok {
		return newError("ChannelSlideAttribute", code)
	}
	return nil
}

// ChannelUpdate updates the playback buffer of a channel, length is in
// milliseconds (0 = default buffer length).
func ChannelUpdate(handle Channel, length uint32) error {
	if ok, code := lib.channelUpdate(uint32(handle), length); !ok {
		return newError("ChannelUpdate", code)
	}
	return nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
