// server/internal/service/errors_test.go
package service

import (
	"fmt"
	"testing"

	"fforecasting/server/internal/biz"

	"github.com/go-kratos/kratos/v2/errors"
)

func TestToAPIError_EmailMismatchCarriesRequiredEmail(t *testing.T) {
	src := &biz.EmailMismatchError{RequiredEmail: "owner@casaverde.com"}

	err := toAPIError(src)
	ke := errors.FromError(err)
	if ke.Code != 403 || ke.Reason != "INVITE_EMAIL_MISMATCH" {
		t.Fatalf("unexpected mapping: code=%d reason=%s", ke.Code, ke.Reason)
	}
	if got := ke.Metadata["required_email"]; got != "owner@casaverde.com" {
		t.Fatalf("required_email = %q, want owner@casaverde.com", got)
	}
}

func TestToAPIError_WrappedEmailMismatchStillCarriesEmail(t *testing.T) {
	src := fmt.Errorf("redeem: %w", &biz.EmailMismatchError{RequiredEmail: "owner@casaverde.com"})

	ke := errors.FromError(toAPIError(src))
	if ke.Reason != "INVITE_EMAIL_MISMATCH" {
		t.Fatalf("reason = %s", ke.Reason)
	}
	if ke.Metadata["required_email"] != "owner@casaverde.com" {
		t.Fatalf("metadata lost through wrapping: %+v", ke.Metadata)
	}
}

func TestToAPIError_BareSentinelMismatchHasNoMetadata(t *testing.T) {
	ke := errors.FromError(toAPIError(biz.ErrEmailMismatch))
	if ke.Reason != "INVITE_EMAIL_MISMATCH" {
		t.Fatalf("reason = %s", ke.Reason)
	}
	if _, ok := ke.Metadata["required_email"]; ok {
		t.Fatalf("bare sentinel must not invent an email: %+v", ke.Metadata)
	}
}
