// Package clipboard copies a finished snapshot to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned on systems without a clipboard utility, such as headless Linux hosts.
var ErrUnsupported = errors.New("system clipboard unavailable")

const errorWriteClipboardFormat = "write clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	unsupported func() bool
	write       func(text string) error
}

// NewService constructs a clipboard Service bound to the system clipboard.
func NewService() *Service {
	return &Service{
		unsupported: func() bool { return clipboard.Unsupported },
		write:       clipboard.WriteAll,
	}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if service.unsupported != nil && service.unsupported() {
		return ErrUnsupported
	}
	if writeError := service.write(text); writeError != nil {
		return fmt.Errorf(errorWriteClipboardFormat, writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
