package app

import (
	"io"

	"github.com/vk/bytehook/internal/registry"
	"github.com/vk/bytehook/modules/checksum"
	"github.com/vk/bytehook/modules/hexdump"
	"github.com/vk/bytehook/modules/print"
)

// coreModules is the definitive list of all hook modules compiled into the
// bytehook binary. Each module writes hook output to the app's writer, not
// directly to stdout, so output stays capturable in tests.
func coreModules(out io.Writer) []registry.Module {
	return []registry.Module{
		&print.Module{Out: out},
		&hexdump.Module{Out: out},
		&checksum.Module{Out: out},
	}
}
