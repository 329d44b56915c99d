package res

import (
	"errors"
	"testing"

	"github.com/ib-77/fpcore/pkg/fp/tagerr"
)

func TestTry_Success(t *testing.T) {
	t.Parallel()

	got := Try(func() (int, error) { return 4, nil })
	if !got.IsOk() || got.Unwrap() != 4 {
		t.Fatalf("expected Ok(4), got: ok=%v, err=%v", got.IsOk(), got.Err())
	}
}

func TestTry_ReturnedErrorPassesThroughBare(t *testing.T) {
	t.Parallel()

	cause := errors.New("db closed")
	got := Try(func() (int, error) { return 0, cause })
	if got.IsOk() || got.Err() != cause {
		t.Fatalf("expected the original error untouched, got: %v", got.Err())
	}
	if tagerr.Is(got.Err()) {
		t.Fatalf("a returned error must not be wrapped as a tagged error")
	}
}

func TestTry_PanicWithError(t *testing.T) {
	t.Parallel()

	got := Try(func() (int, error) { panic(errors.New("x")) })
	if got.IsOk() {
		t.Fatalf("expected Err")
	}

	var te *tagerr.Error
	if !errors.As(got.Err(), &te) {
		t.Fatalf("expected a tagged error, got: %v", got.Err())
	}
	if te.Tag() != tagerr.TagTryCatch {
		t.Fatalf("expected tag %q, got: %q", tagerr.TagTryCatch, te.Tag())
	}

	cause, ok := te.Cause().(error)
	if !ok || cause.Error() != "x" {
		t.Fatalf("expected error cause with message x, got: %v", te.Cause())
	}
}

func TestTry_PanicWithNonErrorValue(t *testing.T) {
	t.Parallel()

	got := Try(func() (string, error) { panic("boom") })
	if got.IsOk() {
		t.Fatalf("expected Err")
	}

	var te *tagerr.Error
	if !errors.As(got.Err(), &te) {
		t.Fatalf("expected a tagged error, got: %v", got.Err())
	}
	if te.Cause() != "boom" {
		t.Fatalf("expected the original panic value preserved, got: %v", te.Cause())
	}
}

func TestTry_PanicErrorReachableViaErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	got := Try(func() (int, error) { panic(cause) })
	if !errors.Is(got.Err(), cause) {
		t.Fatalf("expected errors.Is to reach the panic cause through the tagged error")
	}
}
