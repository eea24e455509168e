package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of the same root": {
			kind: ErrUnauthorized,
			err:  ErrUnauthorized,
			want: true,
		},
		"wrapped instance": {
			kind: ErrUnauthorized,
			err:  Wrap(ErrUnauthorized, "not your contract"),
			want: true,
		},
		"deeply wrapped instance": {
			kind: ErrState,
			err:  Wrap(Wrap(ErrState, "inner"), "outer"),
			want: true,
		},
		"different root": {
			kind: ErrUnauthorized,
			err:  ErrState,
			want: false,
		},
		"wrapped different root": {
			kind: ErrUnauthorized,
			err:  Wrap(ErrState, "invalid"),
			want: false,
		},
		"stdlib error": {
			kind: ErrUnauthorized,
			err:  fmt.Errorf("unauthorized"),
			want: false,
		},
		"nil kind matches nil error": {
			kind: nil,
			err:  nil,
			want: true,
		},
		"non-nil error does not match nil kind": {
			kind: ErrUnauthorized,
			err:  nil,
			want: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrInput, "deadline")
	const want = "deadline: invalid input"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	err := Wrap(ErrInput, "inner")
	st := stackTrace(err)
	if st == nil {
		t.Fatal("stack trace not attached")
	}
	outer := Wrap(err, "outer")
	if got := stackTrace(outer); fmt.Sprintf("%v", got) != fmt.Sprintf("%v", st) {
		t.Fatal("stack trace must not be attached twice")
	}
}

func TestHostInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil error": {
			err:      nil,
			wantCode: SuccessCode,
			wantLog:  "",
		},
		"registered root error": {
			err:      ErrUnauthorized,
			wantCode: 2,
			wantLog:  "unauthorized",
		},
		"wrapped registered error": {
			err:      Wrap(ErrUnauthorized, "wrong depositor"),
			wantCode: 2,
			wantLog:  "wrong depositor: unauthorized",
		},
		"stdlib error is internal": {
			err:      fmt.Errorf("jrrr"),
			wantCode: internalCode,
			wantLog:  internalLog,
		},
		"stdlib error in debug mode": {
			err:      fmt.Errorf("jrrr"),
			debug:    true,
			wantCode: internalCode,
			wantLog:  "jrrr",
		},
		"pkg errors error is internal": {
			err:      pkgerrors.New("jrrr"),
			wantCode: internalCode,
			wantLog:  internalLog,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, log := HostInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("the sky is falling")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}
