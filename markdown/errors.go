package markdown

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeDocumentRequired     = "MARKDOWN_DOCUMENT_REQUIRED"
	TextCodeUnsupportedConstruct = "MARKDOWN_UNSUPPORTED_CONSTRUCT"
)

var (
	ErrDocumentRequired     = errors.New("markdown: document is required")
	ErrUnsupportedConstruct = errors.New("markdown: unsupported construct")
)

func documentRequiredError() error {
	return goerrors.Wrap(ErrDocumentRequired, goerrors.CategoryValidation, "markdown engine requires a document").
		WithTextCode(TextCodeDocumentRequired)
}

func unsupportedConstructError(op string, c Construct) error {
	return goerrors.Wrap(ErrUnsupportedConstruct, goerrors.CategoryValidation,
		fmt.Sprintf("%s does not support %s", op, c)).
		WithTextCode(TextCodeUnsupportedConstruct)
}
