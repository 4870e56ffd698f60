package bass

import (
	"errors"
	"unsafe"
)

// maxTagBytes bounds the scan of a tag block returned by BASS.
const maxTagBytes = 1 << 20

// errBinaryTag is returned by ChannelGetTags for tag types that are not text.
var errBinaryTag = errors.New("bass: tag type is not text, use ChannelGetTagsRaw")

// ChannelGetTags retrieves text tags of a channel. List tags (OGG, HTTP,
// ICY, APE, MP4, WMA, MF, RIFF INFO) return one entry per "key=value" line;
// single-string tags (META, MOD name, ...) return one entry.
func ChannelGetTags(handle Channel, tags TagType) ([]string, error) {
	layout := tags.layout()
	if layout == tagLayoutBinary {
		return nil, errBinaryTag
	}

	p, code := lib.channelGetTags(uint32(handle), uint32(tags))
	if p == nil {
		return nil, newError("ChannelGetTags", code)
	}

	if layout == tagLayoutString {
		return []string{readCString(p, maxTagBytes)}, nil
	}
	return readStringList(p, maxTagBytes), nil
}

// ChannelGetTagsRaw returns the raw tag memory of a channel, e.g. the
// TAG_ID3 structure. The memory is owned by BASS and stays valid until the
// channel is freed or the tags change.
func ChannelGetTagsRaw(handle Channel, tags TagType) (unsafe.Pointer, error) {
	p, code := lib.channelGetTags(uint32(handle), uint32(tags))
	if p == nil {
		return nil, newError("ChannelGetTags", code)
	}
	return p, nil
}

// readCString reads a NUL-terminated string of at most limit bytes.
func readCString(p unsafe.Pointer, limit int) string {
	n := 0
	for n < limit && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// readStringList reads NUL-separated strings terminated by an empty string.
func readStringList(p unsafe.Pointer, limit int) []string {
	var list []string
	off := 0
	for off < limit {
		s := readCString(unsafe.Add(p, off), limit-off)
		if s == "" {
			break
		}
		list = append(list, s)
		off += len(s) + 1
	}
	return list
}
