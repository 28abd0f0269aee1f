package upload

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeClientRequired  = "UPLOAD_CLIENT_REQUIRED"
	TextCodeTransportFailed = "UPLOAD_TRANSPORT_FAILED"
	TextCodeRejected        = "UPLOAD_REJECTED"
	TextCodeInvalidConfig   = "UPLOAD_INVALID_CONFIG"
)

var (
	ErrClientRequired = errors.New("upload: client is required")
	ErrRejected       = errors.New("upload: rejected by storage service")
)

func clientRequiredError() error {
	return goerrors.Wrap(ErrClientRequired, goerrors.CategoryValidation, "uploader requires a client").
		WithTextCode(TextCodeClientRequired)
}

func invalidConfigError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid upload client config").
		WithTextCode(TextCodeInvalidConfig)
}

func transportError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "upload transport failed").
		WithTextCode(TextCodeTransportFailed)
}

func rejectedError(res Result) error {
	err := fmt.Errorf("%w: code=%d message=%q", ErrRejected, res.Code, res.Message)
	return goerrors.Wrap(err, goerrors.CategoryCommand, "upload rejected").
		WithTextCode(TextCodeRejected)
}
