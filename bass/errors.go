package bass

import "fmt"

// Errors is a BASS error code as reported by BASS_ErrorGetCode.
//
// Errors implements error, so a code can be matched against any error
// returned by this package:
//
//	if errors.Is(err, bass.ErrorHandle) { ... }
type Errors int

const (
	ErrorOK           Errors = 0
	ErrorMem          Errors = 1
	ErrorFileOpen     Errors = 2
	ErrorDriver       Errors = 3
	ErrorBufLost      Errors = 4
	ErrorHandle       Errors = 5
	ErrorFormat       Errors = 6
	ErrorPosition     Errors = 7
	ErrorInit         Errors = 8
	ErrorStart        Errors = 9
	ErrorSSL          Errors = 10
	ErrorReinit       Errors = 11
	ErrorAlready      Errors = 14
	ErrorNotAudio     Errors = 17
	ErrorNoChannel    Errors = 18
	ErrorType         Errors = 19
	ErrorParameter    Errors = 20
	ErrorNo3D         Errors = 21
	ErrorNoEAX        Errors = 22
	ErrorDevice       Errors = 23
	ErrorNotPlaying   Errors = 24
	ErrorSampleRate   Errors = 25
	ErrorNotFile      Errors = 27
	ErrorNoHW         Errors = 29
	ErrorEmpty        Errors = 31
	ErrorNoInternet   Errors = 32
	ErrorCreate       Errors = 33
	ErrorNoFX         Errors = 34
	ErrorNotAvailable Errors = 37
	ErrorDecode       Errors = 38
	ErrorDirectX      Errors = 39
	ErrorTimeout      Errors = 40
	ErrorFileFormat   Errors = 41
	ErrorSpeaker      Errors = 42
	ErrorVersion      Errors = 43
	ErrorCodec        Errors = 44
	ErrorEnded        Errors = 45
	ErrorBusy         Errors = 46
	ErrorUnstreamable Errors = 47
	ErrorProtocol     Errors = 48
	ErrorDenied       Errors = 49
	ErrorUnknown      Errors = -1
)

var errorText = map[Errors]string{
	ErrorOK:           "all is OK",
	ErrorMem:          "memory error",
	ErrorFileOpen:     "can't open the file",
	ErrorDriver:       "can't find a free/valid driver",
	ErrorBufLost:      "the sample buffer was lost",
	ErrorHandle:       "invalid handle",
	ErrorFormat:       "unsupported sample format",
	ErrorPosition:     "invalid position",
	ErrorInit:         "BASS_Init has not been successfully called",
	ErrorStart:        "BASS_Start has not been successfully called",
	ErrorSSL:          "SSL/HTTPS support isn't available",
	ErrorReinit:       "device needs to be reinitialized",
	ErrorAlready:      "already initialized/paused/whatever",
	ErrorNotAudio:     "file does not contain audio",
	ErrorNoChannel:    "can't get a free channel",
	ErrorType:         "an illegal type was specified",
	ErrorParameter:    "an illegal parameter was specified",
	ErrorNo3D:         "no 3D support",
	ErrorNoEAX:        "no EAX support",
	ErrorDevice:       "illegal device number",
	ErrorNotPlaying:   "not playing",
	ErrorSampleRate:   "illegal sample rate",
	ErrorNotFile:      "the stream is not a file stream",
	ErrorNoHW:         "no hardware voices available",
	ErrorEmpty:        "the file has no sample data",
	ErrorNoInternet:   "no internet connection could be opened",
	ErrorCreate:       "couldn't create the file",
	ErrorNoFX:         "effects are not available",
	ErrorNotAvailable: "requested data/action is not available",
	ErrorDecode:       "the channel is/isn't a decoding channel",
	ErrorDirectX:      "a sufficient DirectX version is not installed",
	ErrorTimeout:      "connection timed out",
	ErrorFileFormat:   "unsupported file format",
	ErrorSpeaker:      "unavailable speaker",
	ErrorVersion:      "invalid BASS version",
	ErrorCodec:        "codec is not available/supported",
	ErrorEnded:        "the channel/file has ended",
	ErrorBusy:         "the device is busy",
	ErrorUnstreamable: "unstreamable file",
	ErrorProtocol:     "unsupported protocol",
	ErrorDenied:       "access denied",
	ErrorUnknown:      "some other mystery problem",
}

// String returns the description of the error code.
func (e Errors) String() string {
	if text, ok := errorText[e]; ok {
		return text
	}
	return fmt.Sprintf("unknown error code %d", int(e))
}

func (e Errors) Error() string {
	return "bass: " + e.String()
}

// Error describes a failed BASS call.
type Error struct {
	// Op is the name of the function that failed, e.g. "ChannelPlay".
	Op string
	// Code is the error code reported by BASS_ErrorGetCode after the failure.
	Code Errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("bass: %s: %s (%d)", e.Op, e.Code.String(), int(e.Code))
}

// Unwrap exposes the error code so errors.Is can match it.
func (e *Error) Unwrap() error {
	return e.Code
}

// LastError returns the error code of the most recent BASS call made on
// the calling OS thread. Goroutines migrate between threads, so prefer the
// code carried by the returned *Error; LastError is only reliable inside
// WithChannelLock or after runtime.LockOSThread.
func LastError() Errors {
	return Errors(lib.errorGetCode())
}

// newError builds an *Error for a call that returned its failure value.
// code must be captured by the native layer in the same C call as the
// failing function, since BASS keeps error codes per thread.
func newError(op string, code Errors) error {
	if code == ErrorOK {
		code = ErrorUnknown
	}
	return &Error{Op: op, Code: code}
}
