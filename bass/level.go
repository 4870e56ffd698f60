package bass

import "time"

// Level is the packed peak level returned by BASS_ChannelGetLevel: the
// left channel in the low word and the right channel in the high word, each
// ranging from 0 (silent) to 32768 (max). Mono channels report the same
// level in both words.
type Level uint32

const levelScale = 32768.0

// LeftWord returns the raw left level (0..32768).
func (l Level) LeftWord() int { return int(uint32(l) & 0xffff) }

// RightWord returns the raw right level (0..32768).
func (l Level) RightWord() int { return int(uint32(l) >> 16) }

// Left returns the left level as 0..1.
func (l Level) Left() float64 { return float64(l.LeftWord()) / levelScale }

// Right returns the right level as 0..1.
func (l Level) Right() float64 { return float64(l.RightWord()) / levelScale }

// Average returns the mean of both channels as 0..1.
func (l Level) Average() float64 {
	return float64(l.LeftWord()+l.RightWord()) / (2 * levelScale)
}

// ChannelGetLevel retrieves the peak level of a sample, stream, MOD music or
// recording channel over the last 20ms.
func ChannelGetLevel(handle Channel) (Level, error) {
	v, code := lib.channelGetLevel(uint32(handle))
	if v == invalidDWORD {
		return 0, newError("ChannelGetLevel", code)
	}
	return Level(v), nil
}

// ChannelGetLevelEx retrieves the level of each channel (or a mono/stereo
// mix when flags contain LevelMono or LevelStereo) over the given period,
// up to one second. Levels range from 0 to 1, and can exceed 1 for
// floating-point channels.
func ChannelGetLevelEx(handle Channel, length time.Duration, flags LevelFlags) ([]float32, error) {
	var n int
	switch {
	case flags&LevelMono != 0:
		n = 1
	case flags&LevelStereo != 0:
		n = 2
	default:
		info, err := ChannelGetInfo(handle)
		if err != nil {
			return nil, err
		}
		n = info.Channels
	}
	if n <= 0 {
		n = 1
	}

	levels := make([]float32, n)
	ok, code := lib.channelGetLevelEx(uint32(handle), levels, float32(length.Seconds()), uint32(flags))
	if !ok {
		return nil, newError("ChannelGetLevelEx", code)
	}
	return levels, nil
}
