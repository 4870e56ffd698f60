package bass

// Handle types. All of them are opaque 32-bit values owned by BASS.
type (
	// Channel identifies a stream, music, sample channel or recording.
	Channel uint32
	// DSP identifies a DSP function attached to a channel.
	DSP uint32
	// Sync identifies a sync attached to a channel.
	Sync uint32
)

// InitFlags are passed to Init.
type InitFlags uint32

const (
	DeviceDefault     InitFlags = 0
	Device8Bits       InitFlags = 1
	DeviceMono        InitFlags = 2
	Device3D          InitFlags = 4
	Device16Bits      InitFlags = 8
	DeviceReinit      InitFlags = 128
	DeviceLatency     InitFlags = 0x100
	DeviceCPSpeakers  InitFlags = 0x400
	DeviceSpeakers    InitFlags = 0x800
	DeviceNoSpeaker   InitFlags = 0x1000
	DeviceDMix        InitFlags = 0x2000
	DeviceFrequency   InitFlags = 0x4000
	DeviceStereo      InitFlags = 0x8000
	DeviceHog         InitFlags = 0x10000
	DeviceAudioTrack  InitFlags = 0x20000
	DeviceDirectSound InitFlags = 0x40000
	DeviceSoftware    InitFlags = 0x80000
)

// Special device numbers accepted by Init and RecordInit.
const (
	NoSoundDevice       = 0
	DefaultDevice       = -1
	DefaultRecordDevice = -1
)

// DeviceFlags describe the state of a device in DeviceInfo.
type DeviceFlags uint32

const (
	DeviceEnabled     DeviceFlags = 1
	DeviceIsDefault   DeviceFlags = 2
	DeviceInitialized DeviceFlags = 4
	DeviceLoopback    DeviceFlags = 8
	DeviceDefaultCom  DeviceFlags = 128
)

// DeviceInfo describes an output or recording device.
type DeviceInfo struct {
	// Index is the device number used with Init or SetDevice
	Index int
	// const char *name
	Name string
	// const char *driver
	Driver string
	// DWORD flags
	Flags DeviceFlags
}

// IsEnabled reports whether the device is enabled.
func (d *DeviceInfo) IsEnabled() bool { return d.Flags&DeviceEnabled != 0 }

// IsDefault reports whether the device is the system default.
func (d *DeviceInfo) IsDefault() bool { return d.Flags&DeviceIsDefault != 0 }

// IsInitialized reports whether the device has been initialized.
func (d *DeviceInfo) IsInitialized() bool { return d.Flags&DeviceInitialized != 0 }

// Flags are the BASS_SAMPLE_*, BASS_STREAM_* and BASS_MUSIC_* creation and
// channel flags.
type Flags uint32

const (
	FlagDefault      Flags = 0
	Sample8Bits      Flags = 1
	SampleMono       Flags = 2
	SampleLoop       Flags = 4
	Sample3D         Flags = 8
	SampleSoftware   Flags = 0x10
	SampleMuteMax    Flags = 0x20
	SampleFX         Flags = 0x80
	SampleFloat      Flags = 0x100
	StreamPrescan    Flags = 0x20000
	StreamAutoFree   Flags = 0x40000
	StreamRestrate   Flags = 0x80000
	StreamBlock      Flags = 0x100000
	StreamDecode     Flags = 0x200000
	StreamStatus     Flags = 0x800000
	MusicRamp        Flags = 0x200
	MusicRamps       Flags = 0x400
	MusicSurround    Flags = 0x800
	MusicSurround2   Flags = 0x1000
	MusicFT2Pan      Flags = 0x2000
	MusicFT2Mod      Flags = 0x2000
	MusicPT1Mod      Flags = 0x4000
	MusicNonInter    Flags = 0x10000
	MusicSinc        Flags = 0x800000
	MusicPosReset    Flags = 0x8000
	MusicPosResetEx  Flags = 0x400000
	MusicStopBack    Flags = 0x80000
	MusicNoSample    Flags = 0x100000
	SpeakerFront     Flags = 0x1000000
	SpeakerRear      Flags = 0x2000000
	SpeakerCenterLFE Flags = 0x3000000
	SpeakerRear2     Flags = 0x4000000
	SpeakerLeft      Flags = 0x10000000
	SpeakerRight     Flags = 0x20000000
	AsyncFile        Flags = 0x40000000
	Unicode          Flags = 0x80000000
)

// Has reports whether all bits of flag are set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// ChannelType is the ctype member of ChannelInfo.
type ChannelType uint32

const (
	ChannelTypeSample         ChannelType = 1
	ChannelTypeRecord         ChannelType = 2
	ChannelTypeStream         ChannelType = 0x10000
	ChannelTypeStreamVorbis   ChannelType = 0x10002
	ChannelTypeStreamMP1      ChannelType = 0x10003
	ChannelTypeStreamMP2      ChannelType = 0x10004
	ChannelTypeStreamMP3      ChannelType = 0x10005
	ChannelTypeStreamAIFF     ChannelType = 0x10006
	ChannelTypeStreamCA       ChannelType = 0x10007
	ChannelTypeStreamMF       ChannelType = 0x10008
	ChannelTypeStreamAM       ChannelType = 0x10009
	ChannelTypeStreamDummy    ChannelType = 0x18000
	ChannelTypeStreamDevice   ChannelType = 0x18001
	ChannelTypeStreamWAV      ChannelType = 0x40000
	ChannelTypeStreamWAVPCM   ChannelType = 0x50001
	ChannelTypeStreamWAVFloat ChannelType = 0x50003
	ChannelTypeMusicMOD       ChannelType = 0x20000
	ChannelTypeMusicMTM       ChannelType = 0x20001
	ChannelTypeMusicS3M       ChannelType = 0x20002
	ChannelTypeMusicXM        ChannelType = 0x20003
	ChannelTypeMusicIT        ChannelType = 0x20004
	ChannelTypeMusicMO3       ChannelType = 0x00100
)

// ChannelInfo mirrors BASS_CHANNELINFO.
type ChannelInfo struct {
	// DWORD freq
	Frequency int
	// DWORD chans
	Channels int
	// DWORD flags
	Flags Flags
	// DWORD ctype
	ChannelType ChannelType
	// DWORD origres, original resolution in bits (0 = undefined)
	OriginalResolution int
	// HPLUGIN plugin
	Plugin uint32
	// HSAMPLE sample
	Sample uint32
	// const char *filename
	FileName string
}

// IsDecodingChannel reports whether the channel was created with StreamDecode.
func (ci *ChannelInfo) IsDecodingChannel() bool {
	return ci.Flags.Has(StreamDecode)
}

// IsFloat reports whether the channel uses 32-bit floating-point samples.
func (ci *ChannelInfo) IsFloat() bool {
	return ci.Flags.Has(SampleFloat)
}

// Resolution returns the sample size in bytes of the channel's data.
func (ci *ChannelInfo) Resolution() int {
	switch {
	case ci.Flags.Has(SampleFloat):
		return 4
	case ci.Flags.Has(Sample8Bits):
		return 1
	default:
		return 2
	}
}

// PlaybackState is returned by ChannelIsActive.
type PlaybackState uint32

const (
	Stopped      PlaybackState = 0
	Playing      PlaybackState = 1
	Stalled      PlaybackState = 2
	Paused       PlaybackState = 3
	PausedDevice PlaybackState = 4
)

func (s PlaybackState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Stalled:
		return "stalled"
	case Paused:
		return "paused"
	case PausedDevice:
		return "paused (device)"
	default:
		return "unknown"
	}
}

// PositionFlags select the unit of channel positions and lengths.
type PositionFlags uint32

const (
	PositionBytes       PositionFlags = 0
	PositionMusicOrders PositionFlags = 1
	PositionOGG         PositionFlags = 3
	PositionEnd         PositionFlags = 0x10
	PositionLoop        PositionFlags = 0x11
	PositionFlush       PositionFlags = 0x1000000
	PositionReset       PositionFlags = 0x2000000
	PositionRelative    PositionFlags = 0x4000000
	PositionInexact     PositionFlags = 0x8000000
	PositionDecode      PositionFlags = 0x10000000
	PositionDecodeTo    PositionFlags = 0x20000000
	PositionScan        PositionFlags = 0x40000000
)

// ChannelAttribute identifies an attribute for Get/Set/SlideAttribute.
type ChannelAttribute uint32

const (
	AttribFrequency             ChannelAttribute = 1
	AttribVolume                ChannelAttribute = 2
	AttribPan                   ChannelAttribute = 3
	AttribEAXMix                ChannelAttribute = 4
	AttribNoBuffer              ChannelAttribute = 5
	AttribVBR                   ChannelAttribute = 6
	AttribCPU                   ChannelAttribute = 7
	AttribSRC                   ChannelAttribute = 8
	AttribNetResume             ChannelAttribute = 9
	AttribScanInfo              ChannelAttribute = 10
	AttribNoRamp                ChannelAttribute = 11
	AttribBitrate               ChannelAttribute = 12
	AttribBuffer                ChannelAttribute = 13
	AttribGranule               ChannelAttribute = 14
	AttribUser                  ChannelAttribute = 15
	AttribTail                  ChannelAttribute = 16
	AttribPushLimit             ChannelAttribute = 17
	AttribDownmix               ChannelAttribute = 18
	AttribVolumeDSP             ChannelAttribute = 19
	AttribVolumeDSPPriority     ChannelAttribute = 20
	AttribMusicAmplify          ChannelAttribute = 0x100
	AttribMusicPanSeparation    ChannelAttribute = 0x101
	AttribMusicPositionScaler   ChannelAttribute = 0x102
	AttribMusicBPM              ChannelAttribute = 0x103
	AttribMusicSpeed            ChannelAttribute = 0x104
	AttribMusicVolumeGlobal     ChannelAttribute = 0x105
	AttribMusicActive           ChannelAttribute = 0x106
	AttribMusicVolumeChannel    ChannelAttribute = 0x200
	AttribMusicVolumeInstrument ChannelAttribute = 0x300
)

// SyncFlags select the event that triggers a sync.
type SyncFlags uint32

const (
	SyncPosition         SyncFlags = 0
	SyncMusicInstrument  SyncFlags = 1
	SyncEnd              SyncFlags = 2
	SyncMusicFX          SyncFlags = 3
	SyncMetadataReceived SyncFlags = 4
	SyncSlided           SyncFlags = 5
	SyncStalled          SyncFlags = 6
	SyncDownloaded       SyncFlags = 7
	SyncFree             SyncFlags = 8
	SyncMusicPosition    SyncFlags = 10
	SyncSeeking          SyncFlags = 11
	SyncOggChange        SyncFlags = 12
	SyncDeviceFail       SyncFlags = 14
	SyncDeviceFormat     SyncFlags = 15
	SyncThread           SyncFlags = 0x20000000
	SyncMixtime          SyncFlags = 0x40000000
	SyncOnetime          SyncFlags = 0x80000000
)

// DataFlags are or'ed into the length argument of ChannelGetData.
type DataFlags uint32

const (
	DataAvailable     DataFlags = 0
	DataFixed         DataFlags = 0x20000000
	DataFloat         DataFlags = 0x40000000
	DataFFT256        DataFlags = 0x80000000
	DataFFT512        DataFlags = 0x80000001
	DataFFT1024       DataFlags = 0x80000002
	DataFFT2048       DataFlags = 0x80000003
	DataFFT4096       DataFlags = 0x80000004
	DataFFT8192       DataFlags = 0x80000005
	DataFFT16384      DataFlags = 0x80000006
	DataFFT32768      DataFlags = 0x80000007
	DataFFTIndividual DataFlags = 0x10
	DataFFTNoWindow   DataFlags = 0x20
	DataFFTRemoveDC   DataFlags = 0x40
	DataFFTComplex    DataFlags = 0x80
	DataFFTNyquist    DataFlags = 0x100
)

// LevelFlags are passed to ChannelGetLevelEx.
type LevelFlags uint32

const (
	LevelAll      LevelFlags = 0
	LevelMono     LevelFlags = 1
	LevelStereo   LevelFlags = 2
	LevelRMS      LevelFlags = 4
	LevelVolPan   LevelFlags = 8
	LevelNoRemove LevelFlags = 16
)

// TagType selects the tags returned by ChannelGetTags.
type TagType uint32

const (
	TagID3          TagType = 0
	TagID3v2        TagType = 1
	TagOGG          TagType = 2
	TagHTTP         TagType = 3
	TagICY          TagType = 4
	TagMETA         TagType = 5
	TagAPE          TagType = 6
	TagMP4          TagType = 7
	TagWMA          TagType = 8
	TagOggEncoder   TagType = 9
	TagLyrics3      TagType = 10
	TagCoreAudio    TagType = 11
	TagMF           TagType = 13
	TagWaveFormat   TagType = 14
	TagAMName       TagType = 16
	TagID3v2Second  TagType = 17
	TagAMMime       TagType = 18
	TagLocation     TagType = 19
	TagRiffInfo     TagType = 0x100
	TagRiffBext     TagType = 0x101
	TagRiffCart     TagType = 0x102
	TagRiffDisp     TagType = 0x103
	TagRiffCue      TagType = 0x104
	TagRiffSmpl     TagType = 0x105
	TagApeBinary    TagType = 0x1000
	TagMusicName    TagType = 0x10000
	TagMusicMessage TagType = 0x10001
	TagMusicOrders  TagType = 0x10002
	TagMusicAuth    TagType = 0x10003
	TagMusicInst    TagType = 0x10100
	TagMusicSample  TagType = 0x10300
)

// tagLayout describes how the memory returned by BASS_ChannelGetTags for a
// tag type is laid out.
type tagLayout int

const (
	tagLayoutBinary tagLayout = iota // structure or raw block, not decoded
	tagLayoutString                  // single NUL-terminated string
	tagLayoutList                    // NUL-separated strings ending with a double NUL
)

func (t TagType) layout() tagLayout {
	switch {
	case t == TagOGG, t == TagHTTP, t == TagICY, t == TagAPE, t == TagMP4,
		t == TagWMA, t == TagMF, t == TagRiffInfo:
		return tagLayoutList
	case t == TagMETA, t == TagOggEncoder, t == TagLyrics3, t == TagAMName,
		t == TagAMMime, t == TagLocation, t == TagMusicName, t == TagMusicMessage,
		t == TagMusicAuth:
		return tagLayoutString
	case t >= TagMusicInst && t < TagMusicInst+0x100, t >= TagMusicSample && t < TagMusicSample+0x100:
		return tagLayoutString
	case t >= TagApeBinary && t < TagApeBinary+0x1000:
		return tagLayoutBinary
	default:
		return tagLayoutBinary
	}
}

// FileSystem selects the buffering used by StreamCreateFileUser.
type FileSystem uint32

const (
	// StreamFileNoBuffer reads the file on demand; the file must be seekable
	// for seeking to work.
	StreamFileNoBuffer FileSystem = 0
	// StreamFileBuffer buffers the file data, allowing reads from sources
	// without a known length, such as network streams.
	StreamFileBuffer FileSystem = 1
	// StreamFileBufferPush is like StreamFileBuffer, but data is provided
	// with StreamPutFileData instead of the read callback.
	StreamFileBufferPush FileSystem = 2
)

// FilePosition selects the value returned by StreamGetFilePosition.
type FilePosition uint32

const (
	FilePositionCurrent   FilePosition = 0
	FilePositionDecode    FilePosition = 0
	FilePositionDownload  FilePosition = 1
	FilePositionEnd       FilePosition = 2
	FilePositionStart     FilePosition = 3
	FilePositionConnected FilePosition = 4
	FilePositionBuffer    FilePosition = 5
	FilePositionSocket    FilePosition = 6
	FilePositionAsyncBuf  FilePosition = 7
	FilePositionSize      FilePosition = 8
	FilePositionBuffering FilePosition = 9
	FilePositionAvailable FilePosition = 10
)

// ConfigOption identifies a BASS_CONFIG_* setting.
type ConfigOption uint32

const (
	ConfigBuffer           ConfigOption = 0
	ConfigUpdatePeriod     ConfigOption = 1
	ConfigGlobalVolSample  ConfigOption = 4
	ConfigGlobalVolStream  ConfigOption = 5
	ConfigGlobalVolMusic   ConfigOption = 6
	ConfigCurveVol         ConfigOption = 7
	ConfigCurvePan         ConfigOption = 8
	ConfigFloatDSP         ConfigOption = 9
	Config3DAlgorithm      ConfigOption = 10
	ConfigNetTimeout       ConfigOption = 11
	ConfigNetBuffer        ConfigOption = 12
	ConfigPauseNoPlay      ConfigOption = 13
	ConfigNetPrebuf        ConfigOption = 15
	ConfigNetPassive       ConfigOption = 18
	ConfigRecordBuffer     ConfigOption = 19
	ConfigNetPlaylist      ConfigOption = 21
	ConfigMusicVirtual     ConfigOption = 22
	ConfigVerifyFile       ConfigOption = 23
	ConfigUpdateThreads    ConfigOption = 24
	ConfigDevBuffer        ConfigOption = 27
	ConfigDevDefault       ConfigOption = 36
	ConfigNetReadTimeout   ConfigOption = 37
	ConfigHandles          ConfigOption = 41
	ConfigSRC              ConfigOption = 43
	ConfigSRCSample        ConfigOption = 44
	ConfigAsyncFileBuffer  ConfigOption = 45
	ConfigOggPrescan       ConfigOption = 47
	ConfigDevNonStop       ConfigOption = 50
	ConfigVerifyNet        ConfigOption = 52
	ConfigDevPeriod        ConfigOption = 53
	ConfigFloat            ConfigOption = 54
	ConfigNetSeek          ConfigOption = 56
	ConfigNoRamp           ConfigOption = 57
	ConfigNetPlaylistDepth ConfigOption = 59
	ConfigNetPrebufWait    ConfigOption = 60
	ConfigLibSSL           ConfigOption = 64
	ConfigUnicode          ConfigOption = 42
)
