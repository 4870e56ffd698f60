package bass

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := newError("ChannelPlay", ErrorHandle)

	if !errors.Is(err, ErrorHandle) {
		t.Errorf("errors.Is(%v, ErrorHandle) = false", err)
	}
	if errors.Is(err, ErrorInit) {
		t.Errorf("errors.Is(%v, ErrorInit) = true", err)
	}

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("errors.As failed for %T", err)
	}
	if be.Op != "ChannelPlay" || be.Code != ErrorHandle {
		t.Errorf("got Op=%q Code=%d", be.Op, be.Code)
	}
}

func TestErrorMessage(t *testing.T) {
	msg := newError("StreamCreateFile", ErrorFileOpen).Error()
	for _, want := range []string{"StreamCreateFile", "can't open the file", "(2)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}
}

func TestNewErrorWithoutCode(t *testing.T) {
	err := newError("Init", ErrorOK)
	if !errors.Is(err, ErrorUnknown) {
		t.Errorf("failure with ErrorOK code = %v, want ErrorUnknown", err)
	}
}

func TestErrorsString(t *testing.T) {
	tests := []struct {
		code Errors
		want string
	}{
		{ErrorOK, "all is OK"},
		{ErrorHandle, "invalid handle"},
		{ErrorUnknown, "some other mystery problem"},
		{Errors(999), "unknown error code 999"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Errors(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestLastError(t *testing.T) {
	f := newFake()
	f.fail = true
	f.code = ErrorNotPlaying
	useFake(t, f)

	if got := LastError(); got != ErrorNotPlaying {
		t.Errorf("LastError() = %v, want ErrorNotPlaying", got)
	}
}
