package common

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeLimitExceeded, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeForbidden, http.StatusForbidden},
		{CodeUnavailable, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.code); got != tc.want {
			t.Fatalf("code %s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestCodeOfUntypedError(t *testing.T) {
	if got := CodeOf(errors.New("connection reset")); got != CodeUnavailable {
		t.Fatalf("expected unavailable for untyped errors, got %s", got)
	}
	err := NewError(CodeNotFound, "notification not found", nil)
	if got := CodeOf(err); got != CodeNotFound {
		t.Fatalf("expected not_found, got %s", got)
	}
}
